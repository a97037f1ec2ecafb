package store

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"
)

func migrationFS(table string) fstest.MapFS {
	return fstest.MapFS{
		"00001_" + table + ".sql": {Data: []byte(fmt.Sprintf(
			"-- +goose Up\nCREATE TABLE %s (id INTEGER PRIMARY KEY);\n\n-- +goose Down\nDROP TABLE %s;\n",
			table, table))},
	}
}

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func hasTable(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&n)
	require.NoError(t, err)
	return n == 1
}

func TestMigrateConcurrentBackends(t *testing.T) {
	ctx := context.Background()
	tables := []string{"alpha", "beta", "gamma", "delta"}
	dbs := make([]*sql.DB, len(tables))
	for i := range tables {
		dbs[i] = openMemory(t)
	}

	var g errgroup.Group
	for round := range 5 {
		for i, table := range tables {
			g.Go(func() error {
				if err := Migrate(ctx, dbs[i], migrationFS(table), "sqlite3"); err != nil {
					return fmt.Errorf("round %d %s: %w", round, table, err)
				}
				return nil
			})
		}
	}
	require.NoError(t, g.Wait())

	for i, db := range dbs {
		for j, table := range tables {
			assert.Equal(t, i == j, hasTable(t, db, table), "db %d table %s", i, table)
		}
	}
}

func TestMigrateUnknownDialect(t *testing.T) {
	err := Migrate(context.Background(), openMemory(t), migrationFS("alpha"), "no-such-dialect")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting goose dialect")
}
