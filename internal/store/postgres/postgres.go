// Package postgres stores artifact state in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"relicforge/internal/artifact"
	"relicforge/internal/store"
	"relicforge/internal/store/postgres/migrations"
)

// Store persists saves in PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

var _ store.Store = (*Store)(nil)

// Open runs migrations on dsn and connects a pool to it.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if err := RunMigrations(ctx, dsn); err != nil {
		return nil, err
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// RunMigrations runs goose migrations on the given DSN.
func RunMigrations(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("opening sql connection for migrations: %w", err)
	}
	defer sqlDB.Close()

	if err := store.Migrate(ctx, sqlDB, migrations.FS, "postgres"); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// SaveArtifacts writes sv in one transaction, replacing an earlier save with
// the same ID.
func (s *Store) SaveArtifacts(ctx context.Context, sv store.Save) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO saves (id, dungeon, seed, depth, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			dungeon = EXCLUDED.dungeon,
			seed = EXCLUDED.seed,
			depth = EXCLUDED.depth,
			created_at = EXCLUDED.created_at`,
		sv.ID, sv.Dungeon, sv.Seed, sv.Depth, sv.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting save %s: %w", sv.ID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM save_artifacts WHERE save_id = $1`, sv.ID); err != nil {
		return fmt.Errorf("clearing artifacts of %s: %w", sv.ID, err)
	}

	batch := &pgx.Batch{}
	for _, st := range sv.Artifacts {
		if !st.Generated {
			continue
		}
		batch.Queue(`INSERT INTO save_artifacts (save_id, artifact_id, floor_id) VALUES ($1, $2, $3)`,
			sv.ID, int32(st.ID), int32(st.FloorID))
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("inserting artifacts of %s: %w", sv.ID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing save %s: %w", sv.ID, err)
	}
	return nil
}

// LoadArtifacts returns the save with the given ID.
func (s *Store) LoadArtifacts(ctx context.Context, id uuid.UUID) (store.Save, error) {
	sv := store.Save{ID: id}
	err := s.pool.QueryRow(ctx,
		`SELECT dungeon, seed, depth, created_at FROM saves WHERE id = $1`, id,
	).Scan(&sv.Dungeon, &sv.Seed, &sv.Depth, &sv.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return sv, fmt.Errorf("loading save %s: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return sv, fmt.Errorf("loading save %s: %w", id, err)
	}
	sv.CreatedAt = sv.CreatedAt.UTC()

	rows, err := s.pool.Query(ctx,
		`SELECT artifact_id, floor_id FROM save_artifacts WHERE save_id = $1 ORDER BY artifact_id`, id,
	)
	if err != nil {
		return sv, fmt.Errorf("querying artifacts of %s: %w", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var artID, floorID int32
		if err := rows.Scan(&artID, &floorID); err != nil {
			return sv, fmt.Errorf("scanning artifact row: %w", err)
		}
		sv.Artifacts = append(sv.Artifacts, artifact.State{
			ID:        artifact.ID(artID),
			Generated: true,
			FloorID:   int(floorID),
		})
	}
	if err := rows.Err(); err != nil {
		return sv, fmt.Errorf("iterating artifact rows: %w", err)
	}
	return sv, nil
}
