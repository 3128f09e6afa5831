package catalog

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/cligui-go/internal/domain"
)

func TestEmbeddedCatalog(t *testing.T) {
	cats, err := NewEmbedded().Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cats) != 23 {
		t.Fatalf("embedded catalog has %d cats, want 23", len(cats))
	}
	if cats[0] != (domain.Cat{Name: "American curl", Country: "USA"}) {
		t.Errorf("first cat = %+v", cats[0])
	}

	usa := 0
	for _, cat := range cats {
		if cat.FromCountry("usa") {
			usa++
		}
	}
	if usa != 6 {
		t.Errorf("usa cats = %d, want 6", usa)
	}
}

func TestYAMLFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cats.yaml")
	data := "cats:\n  - {name: Korat, country: Thai}\n  - {name: Siam, country: Thailand}\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	src := NewYAMLFile(path)
	if src.Name() != domain.CatalogSourceYAML {
		t.Errorf("Name() = %q", src.Name())
	}
	cats, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := domain.Catalog{{Name: "Korat", Country: "Thai"}, {Name: "Siam", Country: "Thailand"}}
	if diff := cmp.Diff(want, cats); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestYAMLFileSourceErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := NewYAMLFile(filepath.Join(dir, "missing.yaml")).Load(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(dir, "nameless.yaml")
	if err := os.WriteFile(path, []byte("cats:\n  - {country: Kenya}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewYAMLFile(path).Load(context.Background()); err == nil {
		t.Error("expected error for entry without a name")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cats.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	seed := domain.Catalog{
		{Name: "Sockeye", Country: "Kenya"},
		{Name: "Somali", Country: "Canada"},
		{Name: "Chartreuse", Country: "France"},
	}
	if err := Seed(ctx, db, seed); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	store := NewSQLiteStore(path)
	cats, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(seed, cats); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestSeedReplacesExistingRows(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cats.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	first := domain.Catalog{
		{Name: "Sockeye", Country: "Kenya"},
		{Name: "Somali", Country: "Canada"},
	}
	second := domain.Catalog{{Name: "Korat", Country: "Thai"}}

	for _, tc := range []struct {
		name string
		seed domain.Catalog
	}{
		{"initial", first},
		{"same rows again", first},
		{"different rows", second},
	} {
		if err := Seed(ctx, db, tc.seed); err != nil {
			t.Fatalf("%s: Seed() error = %v", tc.name, err)
		}
		got, err := queryCats(ctx, db)
		if err != nil {
			t.Fatalf("%s: queryCats() error = %v", tc.name, err)
		}
		if diff := cmp.Diff(tc.seed, got); diff != "" {
			t.Errorf("%s: catalog mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestSQLiteStoreMissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	if _, err := NewSQLiteStore(path).Load(context.Background()); err == nil {
		t.Fatal("expected error when cats table is missing")
	}
}

func TestForSettings(t *testing.T) {
	tests := []struct {
		settings domain.CatalogSettings
		wantName string
		wantErr  bool
	}{
		{settings: domain.CatalogSettings{}, wantName: domain.CatalogSourceEmbedded},
		{settings: domain.CatalogSettings{Source: "YAML", Path: "cats.yaml"}, wantName: domain.CatalogSourceYAML},
		{settings: domain.CatalogSettings{Source: "sqlite", Path: "cats.db"}, wantName: domain.CatalogSourceSQLite},
		{settings: domain.CatalogSettings{Source: "bolt"}, wantErr: true},
	}
	for _, tt := range tests {
		src, err := ForSettings(tt.settings)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ForSettings(%+v) expected error", tt.settings)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ForSettings(%+v) error = %v", tt.settings, err)
		}
		if src.Name() != tt.wantName {
			t.Errorf("ForSettings(%+v).Name() = %q, want %q", tt.settings, src.Name(), tt.wantName)
		}
	}
}
