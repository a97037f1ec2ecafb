// relicforge-simulate runs many headless games in parallel and reports what
// the generator produced: quality tiers, egos and fixed artifacts. Each
// game's artifact registry is saved to the configured store.
//
// Usage:
//
//	go run ./cmd/simulate [-config relicforge.yaml] [-games 200] [-floors 40] [-workers 8]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"relicforge/assets"
	"relicforge/internal/config"
	"relicforge/internal/game"
	"relicforge/internal/store"
	"relicforge/internal/store/backend"
)

func main() {
	configPath := flag.String("config", "relicforge.yaml", "Path to the YAML config (optional)")
	games := flag.Int("games", 0, "Number of games (overrides config)")
	floors := flag.Int("floors", 0, "Floors per game (overrides config)")
	workers := flag.Int("workers", 0, "Parallel games (overrides config)")
	top := flag.Int("top", 15, "Egos to list")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err == nil {
		override(&cfg.Simulate.Games, *games)
		override(&cfg.Simulate.Floors, *floors)
		override(&cfg.Simulate.Workers, *workers)
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger, err := cfg.Log.Logger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := backend.Open(ctx, cfg.Storage)
	if err != nil {
		slog.Error("open storage", "err", err)
		os.Exit(1)
	}
	defer st.Close()

	start := time.Now()
	stats, err := simulate(ctx, cfg, st)
	if err != nil {
		slog.Error("simulation failed", "err", err)
		os.Exit(1)
	}
	slog.Info("simulation finished", "games", stats.Games, "elapsed", time.Since(start).Round(time.Millisecond))
	stats.Print(os.Stdout, *top)
}

func override(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

// simulate plays cfg.Simulate.Games games of cfg.Simulate.Floors floors
// each, at most cfg.Simulate.Workers at a time. Games share nothing but the
// read-only tables and the store.
func simulate(ctx context.Context, cfg config.Config, st store.Store) (*Stats, error) {
	def, ok := assets.DungeonByName(cfg.Dungeon)
	if !ok {
		return nil, fmt.Errorf("dungeon %q: %w", cfg.Dungeon, config.ErrUnknownDungeon)
	}
	class, ok := assets.ClassByID(cfg.Player.Class)
	if !ok {
		return nil, fmt.Errorf("class %q: %w", cfg.Player.Class, config.ErrUnknownClass)
	}
	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	stats := newStats()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Simulate.Workers, 1))
	for i := range cfg.Simulate.Games {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := cfg.NewPlayer()
			if err != nil {
				return err
			}
			seed := baseSeed + int64(i)
			s := game.NewSession(game.Options{
				Dungeon: def,
				Depth:   cfg.Depth,
				Seed:    seed,
				Player:  p,
				Class:   class.Name,
			})

			tally := newGameStats()
			tally.survey(s.World())
			for f := 1; f < cfg.Simulate.Floors; f++ {
				s.EnterFloor(s.Depth() + 1)
				tally.survey(s.World())
			}
			stats.merge(tally)

			sv := store.NewSave(s.Registry(), def.Name, seed, s.Depth())
			if err := st.SaveArtifacts(gctx, sv); err != nil {
				return fmt.Errorf("save game %d: %w", i, err)
			}
			slog.Debug("game finished", "game", i, "seed", seed, "save", sv.ID, "artifacts", len(sv.Artifacts))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}
	return stats, nil
}
