// Package ports defines the interfaces (ports) between the cli-gui core and its adapters.
//
// The interpreter, history tracker and session live in the application layer and
// depend only on these abstractions. Concrete adapters (YAML config loader,
// catalog sources, loggers, terminal hosts) live in the infrastructure layer.
package ports

import (
	"context"

	"github.com/doeshing/cligui-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.cligui/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// CatalogSource loads the static cat catalog once at startup.
type CatalogSource interface {
	Name() string
	Load(context.Context) (domain.Catalog, error)
}

// Interpreter turns one raw input line into one output fragment.
type Interpreter interface {
	Submit(raw string) domain.Result
	Banner() domain.Fragment
	PrimaryCommand() string
}

// HistoryTracker records submitted lines and recalls them on navigation.
type HistoryTracker interface {
	Record(raw string)
	Recall(domain.Direction) (string, bool)
	Len() int
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, files).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
