// Package sqlite stores artifact state in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"relicforge/internal/artifact"
	"relicforge/internal/store"
	"relicforge/internal/store/sqlite/migrations"
)

// Store persists saves in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ store.Store = (*Store)(nil)

// Open opens the SQLite database at dsn and applies embedded migrations.
// ":memory:" gives a private in-memory database.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("storage dsn is required")
	}
	if dsn != ":memory:" && !strings.Contains(dsn, "?") {
		dsn += "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Each connection to :memory: is its own database.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := store.Migrate(ctx, sqlDB, migrations.FS, "sqlite3"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveArtifacts writes sv in one transaction, replacing an earlier save with
// the same ID.
func (s *Store) SaveArtifacts(ctx context.Context, sv store.Save) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	id := sv.ID.String()
	if _, err := tx.ExecContext(ctx, `DELETE FROM save_artifacts WHERE save_id = ?`, id); err != nil {
		return fmt.Errorf("clear save %s: %w", id, err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO saves (id, dungeon, seed, depth, created_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   dungeon = excluded.dungeon,
		   seed = excluded.seed,
		   depth = excluded.depth,
		   created_at = excluded.created_at`,
		id, sv.Dungeon, sv.Seed, sv.Depth, sv.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert save %s: %w", id, err)
	}
	for _, st := range sv.Artifacts {
		if !st.Generated {
			continue
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO save_artifacts (save_id, artifact_id, floor_id) VALUES (?, ?, ?)`,
			id, int(st.ID), st.FloorID,
		)
		if err != nil {
			return fmt.Errorf("insert artifact %d: %w", st.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save %s: %w", id, err)
	}
	return nil
}

// LoadArtifacts returns the save with the given ID.
func (s *Store) LoadArtifacts(ctx context.Context, id uuid.UUID) (store.Save, error) {
	sv := store.Save{ID: id}
	var createdAt int64
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT dungeon, seed, depth, created_at FROM saves WHERE id = ?`, id.String(),
	).Scan(&sv.Dungeon, &sv.Seed, &sv.Depth, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return sv, fmt.Errorf("load save %s: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return sv, fmt.Errorf("load save %s: %w", id, err)
	}
	sv.CreatedAt = time.UnixMilli(createdAt).UTC()

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT artifact_id, floor_id FROM save_artifacts WHERE save_id = ? ORDER BY artifact_id`,
		id.String(),
	)
	if err != nil {
		return sv, fmt.Errorf("query artifacts of %s: %w", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var artID, floorID int
		if err := rows.Scan(&artID, &floorID); err != nil {
			return sv, fmt.Errorf("scanning artifact row: %w", err)
		}
		sv.Artifacts = append(sv.Artifacts, artifact.State{
			ID:        artifact.ID(artID),
			Generated: true,
			FloorID:   floorID,
		})
	}
	if err := rows.Err(); err != nil {
		return sv, fmt.Errorf("iterating artifact rows: %w", err)
	}
	return sv, nil
}
