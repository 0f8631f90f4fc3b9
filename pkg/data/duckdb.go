package data

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const capturesSchema = `
CREATE TABLE IF NOT EXISTS captures (
	category    VARCHAR NOT NULL,
	name        VARCHAR NOT NULL,
	captured    BOOLEAN NOT NULL,
	exported_at TIMESTAMP NOT NULL
)`

// InitDuckDB opens (or creates) the export database and its schema.
func InitDuckDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(capturesSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create captures table: %w", err)
	}

	return db, nil
}

// Repository writes checklist snapshots to DuckDB for ad-hoc querying.
type Repository struct {
	db *sql.DB
}

func NewDuckDBRepository(path string) (*Repository, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// ReplaceSnapshot swaps the table content for the given captures.
func (r *Repository) ReplaceSnapshot(captures []Capture, at time.Time) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM captures`); err != nil {
		return fmt.Errorf("clear captures: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO captures (category, name, captured, exported_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range captures {
		if _, err := stmt.Exec(string(c.Category), c.Name, c.Captured, at); err != nil {
			return fmt.Errorf("insert %s: %w", c.Name, err)
		}
	}

	return tx.Commit()
}

// CategoryCounts returns captured and total counts per category.
func (r *Repository) CategoryCounts() (map[Category]Summary, error) {
	rows, err := r.db.Query(`
		SELECT category, COUNT(*) FILTER (WHERE captured), COUNT(*)
		FROM captures
		GROUP BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[Category]Summary)
	for rows.Next() {
		var cat string
		var s Summary
		if err := rows.Scan(&cat, &s.Done, &s.Total); err != nil {
			return nil, err
		}
		counts[Category(cat)] = s
	}
	return counts, rows.Err()
}
