package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// DefaultCatalogYAML contains the embedded cat catalog.
//
//go:embed defaults/cats.yaml
var DefaultCatalogYAML []byte
