package catalog

import (
	"fmt"
	"strings"

	"github.com/doeshing/cligui-go/internal/domain"
	"github.com/doeshing/cligui-go/internal/ports"
)

// ForSettings builds the catalog source named by the configuration.
func ForSettings(settings domain.CatalogSettings) (ports.CatalogSource, error) {
	switch strings.ToLower(settings.Source) {
	case "", domain.CatalogSourceEmbedded:
		return NewEmbedded(), nil
	case domain.CatalogSourceYAML:
		return NewYAMLFile(settings.Path), nil
	case domain.CatalogSourceSQLite:
		return NewSQLiteStore(settings.Path), nil
	default:
		return nil, fmt.Errorf("unsupported catalog source %q", settings.Source)
	}
}
