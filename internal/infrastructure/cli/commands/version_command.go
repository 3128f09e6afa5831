package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/doeshing/cligui-go/internal/domain"
	"github.com/doeshing/cligui-go/internal/version"
)

// NewVersionCommand reports the build of cligui alongside the version string
// the emulated shell answers to `<primary> version`.
func NewVersionCommand(containerFn ContainerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show cligui build and emulated shell version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := containerFn(cmd.Context())
			if err != nil {
				return err
			}
			return displayVersionInformation(cmd.OutOrStdout(), c.Config)
		},
	}
}

func displayVersionInformation(out io.Writer, cfg domain.Config) error {
	fmt.Fprintf(out, "cligui version %s\n", version.Version)
	if version.Commit != "" {
		fmt.Fprintf(out, "Commit: %s\n", version.Commit)
	}
	if version.BuildDate != "" {
		fmt.Fprintf(out, "Built: %s\n", version.BuildDate)
	}
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())

	fmt.Fprintf(out, "Emulated command: %s\n", cfg.PrimaryCommandOrDefault())
	fmt.Fprintf(out, "Emulated version: %s\n", cfg.VersionOrDefault())
	return nil
}
