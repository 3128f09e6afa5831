package domain

import "strings"

// Cat is one record of the static catalog listed by the cats command.
type Cat struct {
	Name    string `yaml:"name"`
	Country string `yaml:"country"`
}

// FromCountry reports whether the cat's country equals country, ignoring case.
func (c Cat) FromCountry(country string) bool {
	return strings.EqualFold(c.Country, country)
}

// Catalog is an ordered, read-only list of cats.
type Catalog []Cat

// Clone returns a copy that can be filtered or sorted without touching the original.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	copy(out, c)
	return out
}
