package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/doeshing/cligui-go/internal/app"
	"github.com/doeshing/cligui-go/internal/domain"
	"github.com/doeshing/cligui-go/internal/infrastructure/catalog"
)

func testContainerFn(t *testing.T) (ContainerFunc, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	return func(ctx context.Context) (*app.Container, error) {
		return app.BuildContainer(ctx, app.Options{ConfigPath: path})
	}, path
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute(%v) error = %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestVersionCommandOutput(t *testing.T) {
	fn, _ := testContainerFn(t)
	out := execute(t, NewVersionCommand(fn))

	for _, want := range []string{
		"cligui version",
		"Go version:",
		"Emulated command: " + domain.DefaultPrimaryCommand,
		"Emulated version: " + domain.DefaultVersion,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("version output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigShowAndPath(t *testing.T) {
	fn, path := testContainerFn(t)

	show := execute(t, NewConfigCommand(fn), "show")
	if !strings.Contains(show, "primary_command: cli-gui") {
		t.Errorf("config show missing primary command:\n%s", show)
	}

	got := strings.TrimSpace(execute(t, NewConfigCommand(fn), "path"))
	if got != path {
		t.Errorf("config path = %q, want %q", got, path)
	}
}

func TestConfigValidateAndDiff(t *testing.T) {
	fn, _ := testContainerFn(t)

	if out := execute(t, NewConfigCommand(fn), "validate"); strings.TrimSpace(out) != MsgConfigurationValid {
		t.Errorf("validate output = %q", out)
	}
	if out := execute(t, NewConfigCommand(fn), "diff"); strings.TrimSpace(out) != MsgNoDifferencesFromDefault {
		t.Errorf("diff output = %q", out)
	}
}

func TestCatalogSeedRoundTrip(t *testing.T) {
	fn, _ := testContainerFn(t)
	db := filepath.Join(t.TempDir(), "cats.db")

	out := execute(t, NewCatalogCommand(fn), "seed", db)
	if !strings.Contains(out, "Seeded 23 cats") {
		t.Errorf("seed output = %q", out)
	}

	cats, err := catalog.NewSQLiteStore(db).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cats) != 23 || cats[22] != (domain.Cat{Name: "Somali", Country: "Canada"}) {
		t.Errorf("seeded catalog = %+v", cats)
	}

	execute(t, NewCatalogCommand(fn), "seed", db)
	again, err := catalog.NewSQLiteStore(db).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() after reseed error = %v", err)
	}
	if len(again) != 23 {
		t.Errorf("reseeded catalog has %d cats, want 23", len(again))
	}

	if out := execute(t, NewCatalogCommand(fn), "source"); !strings.HasPrefix(out, domain.CatalogSourceEmbedded) {
		t.Errorf("source output = %q", out)
	}
}
