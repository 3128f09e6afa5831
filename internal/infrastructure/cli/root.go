package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/doeshing/cligui-go/internal/app"
	"github.com/doeshing/cligui-go/internal/application/session"
	"github.com/doeshing/cligui-go/internal/infrastructure/cli/commands"
	"github.com/doeshing/cligui-go/internal/pkg/filesystem"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(opts Options) *cobra.Command {
	var (
		configPath string
		verbose    = opts.Verbose
		container  *app.Container
	)

	containerFn := func(ctx context.Context) (*app.Container, error) {
		if container != nil {
			return container, nil
		}
		c, err := app.BuildContainer(ctx, app.Options{ConfigPath: configPath, Verbose: verbose})
		if err != nil {
			return nil, err
		}
		container = c
		return c, nil
	}

	root := &cobra.Command{
		Use:   "cligui",
		Short: "cli-gui - an emulated shell with a cat catalog",
		Long:  "cligui opens an interactive terminal that understands the cli-gui command family.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := containerFn(cmd.Context())
			if err != nil {
				return err
			}
			return runInteractive(c)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.cligui/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "V", opts.Verbose, "Enable debug logging")

	root.AddCommand(newExecCommand(containerFn))
	root.AddCommand(commands.NewVersionCommand(containerFn))
	root.AddCommand(commands.NewConfigCommand(containerFn))
	root.AddCommand(commands.NewCatalogCommand(containerFn))
	return root
}

func runInteractive(c *app.Container) error {
	if c.Logger.Verbose() {
		path := c.Config.Preferences.LogFile
		if path == "" {
			path = filesystem.AppPath("debug.log")
		}
		f, err := tea.LogToFile(path, "cligui")
		if err != nil {
			return err
		}
		defer f.Close()
		c.Logger.SetOutput(f)
	}

	s, err := c.NewSession(session.Options{})
	if err != nil {
		return err
	}
	return RunTUI(s)
}
