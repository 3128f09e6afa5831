package commands

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/cligui-go/internal/infrastructure/catalog"
)

// NewCatalogCommand creates the catalog command with all subcommands
func NewCatalogCommand(containerFn ContainerFunc) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the cat catalog",
	}

	catalogCmd.AddCommand(
		newCatalogSourceCommand(containerFn),
		newCatalogSeedCommand(containerFn),
	)

	return catalogCmd
}

// newCatalogSourceCommand creates the 'catalog source' subcommand
func newCatalogSourceCommand(containerFn ContainerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "source",
		Short: "Print where the catalog is loaded from",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := containerFn(cmd.Context())
			if err != nil {
				return err
			}
			if container.CatalogSource == nil {
				return errors.New(ErrCatalogSourceUnavailable)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", container.CatalogSource.Name(), container.Config.Catalog.Path)
			return nil
		},
	}
}

// newCatalogSeedCommand creates the 'catalog seed' subcommand
func newCatalogSeedCommand(containerFn ContainerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <db-path>",
		Short: "Write the current catalog into a SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := containerFn(cmd.Context())
			if err != nil {
				return err
			}
			if container.CatalogSource == nil {
				return errors.New(ErrCatalogSourceUnavailable)
			}
			cats, err := container.CatalogSource.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			db, err := sql.Open("sqlite", args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer db.Close()

			if err := catalog.Seed(cmd.Context(), db, cats); err != nil {
				return fmt.Errorf("failed to seed %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d cats into %s\n", len(cats), args[0])
			return nil
		},
	}
}
