// relicforge opens the loot viewer in the current terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"relicforge/internal/config"
	"relicforge/internal/game"
	"relicforge/internal/store/backend"
)

func main() {
	configPath := flag.String("config", "relicforge.yaml", "Path to the YAML config (optional)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The terminal belongs to the viewer, so logs go to a file.
	logFile, err := os.OpenFile(filepath.Join(os.TempDir(), "relicforge.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger, err := cfg.Log.Logger(logFile)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	st, err := backend.Open(context.Background(), cfg.Storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer st.Close()

	g, err := game.New(cfg, st)
	if err != nil {
		return err
	}
	g.Run()
	return nil
}
