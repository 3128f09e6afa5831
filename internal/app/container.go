package app

import (
	"context"
	"fmt"

	"github.com/doeshing/cligui-go/internal/application/history"
	"github.com/doeshing/cligui-go/internal/application/interpreter"
	"github.com/doeshing/cligui-go/internal/application/session"
	"github.com/doeshing/cligui-go/internal/domain"
	"github.com/doeshing/cligui-go/internal/infrastructure/catalog"
	"github.com/doeshing/cligui-go/internal/infrastructure/config"
	"github.com/doeshing/cligui-go/internal/pkg/logger"
	"github.com/doeshing/cligui-go/internal/ports"
)

// Options controls how the container is built.
type Options struct {
	ConfigPath string
	Verbose    bool
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	CatalogSource  ports.CatalogSource
	Interpreter    *interpreter.Service
	Logger         *logger.StdLogger
}

// BuildContainer constructs the dependency graph. The catalog is loaded here,
// once, and shared read-only by every session the container creates.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewStd(opts.Verbose || cfg.Preferences.Verbose)

	source, err := catalog.ForSettings(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	cats, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s catalog: %w", source.Name(), err)
	}
	log.Info("catalog loaded", map[string]interface{}{
		"source": source.Name(),
		"cats":   len(cats),
	})

	interp, err := interpreter.New(interpreter.Options{
		PrimaryCommand:   cfg.PrimaryCommand,
		Version:          cfg.Version,
		LegacyFlagWindow: cfg.Interpreter.LegacyFlagWindow,
		Catalog:          cats,
		Logger:           log,
	})
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		CatalogSource:  source,
		Interpreter:    interp,
		Logger:         log,
	}, nil
}

// NewSession starts a fresh terminal session with its own log and history.
func (c *Container) NewSession(opts session.Options) (*session.Session, error) {
	if opts.Prompt == "" {
		opts.Prompt = c.Config.Prompt
	}
	tracker := history.NewTracker(history.Options{Clamp: c.Config.History.Clamp})
	return session.New(c.Interpreter, tracker, c.Logger, opts)
}
