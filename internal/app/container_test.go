package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/doeshing/cligui-go/internal/application/session"
	"github.com/doeshing/cligui-go/internal/domain"
)

func TestBuildContainerWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c, err := BuildContainer(context.Background(), Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("BuildContainer() error = %v", err)
	}
	if c.CatalogSource.Name() != domain.CatalogSourceEmbedded {
		t.Errorf("catalog source = %q", c.CatalogSource.Name())
	}

	s, err := c.NewSession(session.Options{SkipGreeting: true})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	out := s.Submit("cli-gui cats --country usa")
	lines := out.Lines
	if got := lines[len(lines)-1].Text(); got != "6 cats found." {
		t.Errorf("count line = %q, want %q", got, "6 cats found.")
	}
	if s.Prompt() != domain.DefaultPrompt {
		t.Errorf("Prompt() = %q", s.Prompt())
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c, err := BuildContainer(context.Background(), Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("BuildContainer() error = %v", err)
	}
	a, _ := c.NewSession(session.Options{SkipGreeting: true})
	b, _ := c.NewSession(session.Options{SkipGreeting: true})

	a.Submit("cli-gui -v")
	if _, ok := b.Recall(domain.DirectionPrevious); ok {
		t.Error("history leaked between sessions")
	}
	if len(b.Log()) != 0 {
		t.Error("log leaked between sessions")
	}
}

func TestBuildContainerReportsCatalogErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	cfg := "catalog:\n  source: yaml\n  path: " + filepath.Join(dir, "missing.yaml") + "\n"
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := BuildContainer(context.Background(), Options{ConfigPath: path}); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}
