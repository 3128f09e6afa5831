// Package catalog loads the static cat catalog from its configured source.
package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/cligui-go/assets"
	"github.com/doeshing/cligui-go/internal/domain"
	"github.com/doeshing/cligui-go/internal/ports"
)

type catalogFile struct {
	Cats []domain.Cat `yaml:"cats"`
}

// YAMLSource reads a catalog document shaped like assets/defaults/cats.yaml.
type YAMLSource struct {
	path string
	data []byte
}

// NewEmbedded returns the catalog compiled into the binary.
func NewEmbedded() *YAMLSource {
	return &YAMLSource{data: assets.DefaultCatalogYAML}
}

// NewYAMLFile returns a source reading path on Load.
func NewYAMLFile(path string) *YAMLSource {
	return &YAMLSource{path: path}
}

// Name implements ports.CatalogSource.
func (s *YAMLSource) Name() string {
	if s.path == "" {
		return domain.CatalogSourceEmbedded
	}
	return domain.CatalogSourceYAML
}

// Load implements ports.CatalogSource.
func (s *YAMLSource) Load(context.Context) (domain.Catalog, error) {
	data := s.data
	if s.path != "" {
		raw, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		data = raw
	}
	return parseYAML(data)
}

func parseYAML(data []byte) (domain.Catalog, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i, cat := range doc.Cats {
		if cat.Name == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
	}
	return domain.Catalog(doc.Cats), nil
}

var _ ports.CatalogSource = (*YAMLSource)(nil)
