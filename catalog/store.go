// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/srgcat/srg"
)

// Store persists catalogs and registry snapshots in SQLite.
type Store struct {
	db *sql.DB
}

// RegistryRow is one persisted registry entry.
type RegistryRow struct {
	Params srg.Params
	Family srg.Family
	Recipe string
}

// Open opens (creating if needed) the database at path and applies the
// schema. ":memory:" gives a private in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	// One connection: an in-memory database is per connection, and SQLite
	// serialises writers anyway.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: migrate %s: %w", path, err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	PRAGMA foreign_keys = ON;

	CREATE TABLE IF NOT EXISTS catalog (
		v        INTEGER NOT NULL,
		k        INTEGER NOT NULL,
		lambda   INTEGER NOT NULL,
		mu       INTEGER NOT NULL,
		status   TEXT NOT NULL,
		comments TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (v, k, lambda, mu)
	);

	CREATE TABLE IF NOT EXISTS runs (
		id         TEXT PRIMARY KEY,
		entries    INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS registry (
		run_id TEXT NOT NULL,
		v      INTEGER NOT NULL,
		k      INTEGER NOT NULL,
		lambda INTEGER NOT NULL,
		mu     INTEGER NOT NULL,
		family TEXT NOT NULL,
		recipe TEXT NOT NULL,
		PRIMARY KEY (run_id, v, k, lambda, mu),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_catalog_status ON catalog(status);
	CREATE INDEX IF NOT EXISTS idx_registry_family ON registry(run_id, family);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveCatalog replaces the stored catalog with cat.
func (s *Store) SaveCatalog(ctx context.Context, cat srg.Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM catalog`); err != nil {
		return fmt.Errorf("catalog: clear catalog: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO catalog (v, k, lambda, mu, status, comments)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("catalog: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range sortedKeys(cat) {
		e := cat[p]
		if e.Status == srg.StatusUnknown {
			return fmt.Errorf("catalog: save %s: %w", p, ErrUnknownStatus)
		}
		if _, err := stmt.ExecContext(ctx, p.V, p.K, p.Lambda, p.Mu, e.Status.String(), e.Comments); err != nil {
			return fmt.Errorf("catalog: insert %s: %w", p, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("catalog: commit: %w", err)
	}
	return nil
}

// LoadCatalog reads the stored catalog.
func (s *Store) LoadCatalog(ctx context.Context) (srg.Catalog, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT v, k, lambda, mu, status, comments FROM catalog`)
	if err != nil {
		return nil, fmt.Errorf("catalog: query catalog: %w", err)
	}
	defer rows.Close()

	cat := make(srg.Catalog)
	for rows.Next() {
		var (
			p        srg.Params
			status   string
			comments string
		)
		if err := rows.Scan(&p.V, &p.K, &p.Lambda, &p.Mu, &status, &comments); err != nil {
			return nil, fmt.Errorf("catalog: scan catalog: %w", err)
		}
		st, err := srg.ParseStatus(status)
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: %w: %w", p, err, ErrUnknownStatus)
		}
		cat[p] = srg.CatalogEntry{Status: st, Comments: comments}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: iterate catalog: %w", err)
	}

	return cat, nil
}

// SaveRegistry stores a snapshot of reg under runID. Saving the same runID
// twice replaces the earlier snapshot.
func (s *Store) SaveRegistry(ctx context.Context, runID string, reg *srg.Registry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM registry WHERE run_id = ?`, runID); err != nil {
		return fmt.Errorf("catalog: clear run %s: %w", runID, err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, entries) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET entries = excluded.entries
	`, runID, reg.Len()); err != nil {
		return fmt.Errorf("catalog: insert run %s: %w", runID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO registry (run_id, v, k, lambda, mu, family, recipe)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("catalog: prepare insert: %w", err)
	}
	defer stmt.Close()

	snap := reg.Snapshot()
	for _, p := range reg.Keys() {
		e, ok := snap[p]
		if !ok {
			continue
		}
		if _, err := stmt.ExecContext(ctx, runID, p.V, p.K, p.Lambda, p.Mu, e.Family.String(), e.Recipe.String()); err != nil {
			return fmt.Errorf("catalog: insert %s: %w", p, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("catalog: commit: %w", err)
	}
	return nil
}

// LoadRegistry returns the rows stored under runID, sorted by parameters.
func (s *Store) LoadRegistry(ctx context.Context, runID string) ([]RegistryRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v, k, lambda, mu, family, recipe FROM registry
		WHERE run_id = ?
		ORDER BY v, k, lambda, mu
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("catalog: query registry: %w", err)
	}
	defer rows.Close()

	var out []RegistryRow
	for rows.Next() {
		var (
			r      RegistryRow
			family string
		)
		if err := rows.Scan(&r.Params.V, &r.Params.K, &r.Params.Lambda, &r.Params.Mu, &family, &r.Recipe); err != nil {
			return nil, fmt.Errorf("catalog: scan registry: %w", err)
		}
		if r.Family, err = srg.ParseFamily(family); err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", r.Params, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: iterate registry: %w", err)
	}

	return out, nil
}

// Runs lists stored run ids, oldest first.
func (s *Store) Runs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM runs ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("catalog: query runs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("catalog: scan run: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
