package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/doeshing/cligui-go/internal/domain"
	"github.com/doeshing/cligui-go/internal/ports"
)

// SQLiteStore reads the catalog from the cats table of a SQLite database.
// The database is opened once per Load and only read.
type SQLiteStore struct {
	path string
}

// NewSQLiteStore creates a store for the database at path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Name implements ports.CatalogSource.
func (s *SQLiteStore) Name() string {
	return domain.CatalogSourceSQLite
}

// Load implements ports.CatalogSource.
func (s *SQLiteStore) Load(ctx context.Context) (domain.Catalog, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	defer db.Close()
	return queryCats(ctx, db)
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func queryCats(ctx context.Context, db *sql.DB) (domain.Catalog, error) {
	rows, err := db.QueryContext(ctx, "SELECT name, country FROM cats ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query cats: %w", err)
	}
	defer rows.Close()

	var cats domain.Catalog
	for rows.Next() {
		var cat domain.Cat
		if err := rows.Scan(&cat.Name, &cat.Country); err != nil {
			return nil, err
		}
		cats = append(cats, cat)
	}
	return cats, rows.Err()
}

// Seed creates the cats table in db when missing and replaces its rows with
// cats, in order. Reseeding an existing database never duplicates entries.
func Seed(ctx context.Context, db *sql.DB, cats domain.Catalog) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS cats (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		country TEXT NOT NULL
	);`); err != nil {
		return fmt.Errorf("create cats table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM cats"); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear cats table: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO cats (name, country) VALUES (?, ?)")
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, cat := range cats {
		if _, err := stmt.ExecContext(ctx, cat.Name, cat.Country); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert %s: %w", cat.Name, err)
		}
	}
	return tx.Commit()
}

var _ ports.CatalogSource = (*SQLiteStore)(nil)
