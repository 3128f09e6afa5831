package interpreter

import (
	"fmt"
	"sort"

	"github.com/doeshing/cligui-go/internal/domain"
)

// listCats applies the --country and --sortBy flags found from token 2 on and
// renders the surviving records followed by a count line.
func (s *Service) listCats(tokens []string) domain.Fragment {
	var out domain.Fragment
	cats := s.catalog.Clone()

	end := len(tokens)
	if s.legacyWindow {
		end = len(tokens) - 2
	}

	for i := 2; i < end; i++ {
		value, hasValue := "", i+1 < len(tokens)
		if hasValue {
			value = tokens[i+1]
		}

		switch tokens[i] {
		case domain.FlagCountry:
			if !hasValue {
				out.Add(domain.Emphasis((&domain.CommandError{Kind: domain.ErrFilterArgumentMissing, Token: "country"}).Error()))
				return out
			}
			cats = filterByCountry(cats, value)
		case domain.FlagSortBy:
			if !sortByName(cats, value) {
				out.Add(domain.Emphasis((&domain.CommandError{Kind: domain.ErrInvalidSortOrder, Token: "sortBy"}).Error()))
			}
		}
	}

	for _, cat := range cats {
		out.Add(domain.Highlight(cat.Name), domain.Plain(" : "+cat.Country))
	}
	out.Add(domain.Plain(countLine(len(cats))))

	s.logger.Debug("cats listed", map[string]interface{}{"found": len(cats)})
	return out
}

func filterByCountry(cats domain.Catalog, country string) domain.Catalog {
	out := cats[:0:0]
	for _, cat := range cats {
		if cat.FromCountry(country) {
			out = append(out, cat)
		}
	}
	return out
}

// sortByName orders cats in place. It reports false and leaves the order
// untouched when order is neither ASC nor DESC.
func sortByName(cats domain.Catalog, order string) bool {
	switch order {
	case domain.SortAscending:
		sort.SliceStable(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name })
	case domain.SortDescending:
		sort.SliceStable(cats, func(i, j int) bool { return cats[i].Name > cats[j].Name })
	default:
		return false
	}
	return true
}

func countLine(n int) string {
	noun := "cats"
	if n == 1 {
		noun = "cat"
	}
	return fmt.Sprintf("%d %s found.", n, noun)
}
