// Package backend opens the Store a config names.
package backend

import (
	"context"
	"fmt"

	"relicforge/internal/config"
	"relicforge/internal/store"
	"relicforge/internal/store/postgres"
	"relicforge/internal/store/sqlite"
)

// Open returns the store for cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig) (store.Store, error) {
	switch cfg.Driver {
	case "sqlite":
		st, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return st, nil
	case "postgres":
		st, err := postgres.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return st, nil
	case "none", "":
		return store.Discard{}, nil
	}
	return nil, fmt.Errorf("storage driver %q: %w", cfg.Driver, config.ErrInvalid)
}
