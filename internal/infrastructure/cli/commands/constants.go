package commands

import (
	"context"

	"github.com/doeshing/cligui-go/internal/app"
)

// ContainerFunc returns the lazily built application container. The root
// command builds it once flags such as --config have been parsed.
type ContainerFunc func(ctx context.Context) (*app.Container, error)

// Error messages
const (
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrCatalogSourceUnavailable = "catalog source unavailable"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
)
