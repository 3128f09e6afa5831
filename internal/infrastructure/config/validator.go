package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/doeshing/cligui-go/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if strings.TrimSpace(cfg.PrimaryCommand) == "" {
		return errors.New("primary_command must be set")
	}
	if len(strings.Fields(cfg.PrimaryCommand)) != 1 {
		return fmt.Errorf("primary_command must be a single word, got %q", cfg.PrimaryCommand)
	}
	return validateCatalog(cfg.Catalog)
}

func validateCatalog(cat domain.CatalogSettings) error {
	switch strings.ToLower(cat.Source) {
	case "", domain.CatalogSourceEmbedded:
		return nil
	case domain.CatalogSourceYAML, domain.CatalogSourceSQLite:
		if cat.Path == "" {
			return fmt.Errorf("catalog.path must be set for source %s", cat.Source)
		}
		return nil
	default:
		return fmt.Errorf("catalog.source must be embedded|yaml|sqlite, got %s", cat.Source)
	}
}
