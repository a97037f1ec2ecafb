// Package config loads relicforge settings from YAML, a .env file and the
// environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"relicforge/assets"
	"relicforge/internal/player"
)

var (
	ErrUnknownDungeon = errors.New("unknown dungeon")
	ErrUnknownClass   = errors.New("unknown class")
	ErrInvalid        = errors.New("invalid config")
)

// Config holds everything the commands need to start a game.
type Config struct {
	Seed     int64          `yaml:"seed" env:"SEED"` // zero seeds from the clock
	Dungeon  string         `yaml:"dungeon" env:"DUNGEON"`
	Depth    int            `yaml:"depth" env:"DEPTH"`
	Player   PlayerConfig   `yaml:"player" envPrefix:"PLAYER_"`
	Storage  StorageConfig  `yaml:"storage" envPrefix:"STORAGE_"`
	Server   ServerConfig   `yaml:"server" envPrefix:"SERVER_"`
	Simulate SimulateConfig `yaml:"simulate" envPrefix:"SIMULATE_"`
	Log      LogConfig      `yaml:"log" envPrefix:"LOG_"`
}

// PlayerConfig picks a class preset and optionally overrides parts of it.
type PlayerConfig struct {
	Name        string `yaml:"name" env:"NAME"`
	Class       string `yaml:"class" env:"CLASS"`
	Personality string `yaml:"personality" env:"PERSONALITY"` // empty keeps the preset's
	Level       int    `yaml:"level" env:"LEVEL"`             // zero keeps the preset's
}

// StorageConfig selects where artifact state is saved.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"DRIVER"` // sqlite, postgres or none
	DSN    string `yaml:"dsn" env:"DSN"`
}

// ServerConfig configures the SSH viewer.
type ServerConfig struct {
	Addr        string `yaml:"addr" env:"ADDR"`
	HostKeyPath string `yaml:"host_key_path" env:"HOST_KEY_PATH"`
	MaxSessions int    `yaml:"max_sessions" env:"MAX_SESSIONS"`
}

// SimulateConfig sizes a batch simulation.
type SimulateConfig struct {
	Games   int `yaml:"games" env:"GAMES"`
	Floors  int `yaml:"floors" env:"FLOORS"`
	Workers int `yaml:"workers" env:"WORKERS"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"` // text or json
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Dungeon: assets.Dungeons[0].Name,
		Depth:   1,
		Player: PlayerConfig{
			Name:  "Wanderer",
			Class: assets.Classes[0].ID,
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			DSN:    "relicforge.db",
		},
		Server: ServerConfig{
			Addr:        ":2222",
			HostKeyPath: ".ssh/relicforge_host_ed25519",
			MaxSessions: 32,
		},
		Simulate: SimulateConfig{
			Games:   100,
			Floors:  40,
			Workers: 4,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies a .env
// file from the working directory and RELICFORGE_* environment variables.
// A missing YAML or .env file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "RELICFORGE_"}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks names against the built-in tables and sizes for sanity.
func (c Config) Validate() error {
	if _, ok := assets.DungeonByName(c.Dungeon); !ok {
		return fmt.Errorf("dungeon %q: %w", c.Dungeon, ErrUnknownDungeon)
	}
	if _, ok := assets.ClassByID(c.Player.Class); !ok {
		return fmt.Errorf("class %q: %w", c.Player.Class, ErrUnknownClass)
	}
	if c.Player.Personality != "" {
		if _, err := player.ParsePersonality(c.Player.Personality); err != nil {
			return fmt.Errorf("player personality: %w", err)
		}
	}
	if c.Depth < 0 {
		return fmt.Errorf("depth %d: %w", c.Depth, ErrInvalid)
	}
	switch c.Storage.Driver {
	case "sqlite", "postgres", "none":
	default:
		return fmt.Errorf("storage driver %q: %w", c.Storage.Driver, ErrInvalid)
	}
	if c.Simulate.Games < 0 || c.Simulate.Floors < 0 || c.Simulate.Workers < 0 {
		return fmt.Errorf("simulate sizes must not be negative: %w", ErrInvalid)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log format %q: %w", c.Log.Format, ErrInvalid)
	}
	return nil
}

// NewPlayer builds the configured player from its class preset.
func (c Config) NewPlayer() (*player.Player, error) {
	class, ok := assets.ClassByID(c.Player.Class)
	if !ok {
		return nil, fmt.Errorf("class %q: %w", c.Player.Class, ErrUnknownClass)
	}
	p := class.Player(c.Player.Name)
	if c.Player.Personality != "" {
		pers, err := player.ParsePersonality(c.Player.Personality)
		if err != nil {
			return nil, fmt.Errorf("player personality: %w", err)
		}
		p.Personality = pers
	}
	if c.Player.Level > 0 {
		p.Level = c.Player.Level
	}
	return p, nil
}

// Logger returns a slog logger writing to w in the configured format.
func (l LogConfig) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("log level %q: %w", s, ErrInvalid)
	}
	return level, nil
}
