package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relicforge/internal/player"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "relicforge.yaml", `
seed: 42
dungeon: orc-cave
depth: 15
player:
  class: mage
storage:
  driver: none
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.EqualValues(t, 42, cfg.Seed)
	assert.Equal(t, "orc-cave", cfg.Dungeon)
	assert.Equal(t, 15, cfg.Depth)
	assert.Equal(t, "mage", cfg.Player.Class)
	assert.Equal(t, "none", cfg.Storage.Driver)
	assert.Equal(t, ":2222", cfg.Server.Addr, "unset keys keep defaults")
}

func TestLoadEnvBeatsYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "relicforge.yaml", "depth: 15\n")
	t.Setenv("RELICFORGE_DEPTH", "30")
	t.Setenv("RELICFORGE_SERVER_ADDR", ":3000")
	t.Setenv("RELICFORGE_SIMULATE_WORKERS", "9")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Depth)
	assert.Equal(t, ":3000", cfg.Server.Addr)
	assert.Equal(t, 9, cfg.Simulate.Workers)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".env", "RELICFORGE_DUNGEON=mirkwood\n")
	t.Cleanup(func() { os.Unsetenv("RELICFORGE_DUNGEON") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "mirkwood", cfg.Dungeon)
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "bad.yaml", "depth: [\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"unknown dungeon", func(c *Config) { c.Dungeon = "moria" }, ErrUnknownDungeon},
		{"unknown class", func(c *Config) { c.Player.Class = "necromancer" }, ErrUnknownClass},
		{"negative depth", func(c *Config) { c.Depth = -1 }, ErrInvalid},
		{"bad driver", func(c *Config) { c.Storage.Driver = "mongo" }, ErrInvalid},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, ErrInvalid},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, ErrInvalid},
		{"negative games", func(c *Config) { c.Simulate.Games = -3 }, ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}

	cfg := Default()
	cfg.Player.Personality = "grumpy"
	assert.Error(t, cfg.Validate())
}

func TestNewPlayerOverrides(t *testing.T) {
	cfg := Default()
	cfg.Player.Class = "samurai"
	cfg.Player.Personality = "lucky"
	cfg.Player.Level = 50

	p, err := cfg.NewPlayer()
	require.NoError(t, err)
	assert.Equal(t, player.Samurai, p.Class)
	assert.Equal(t, player.Lucky, p.Personality)
	assert.Equal(t, 50, p.Level)
	assert.Equal(t, "Wanderer", p.Name)
}

func TestLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	log, err := LogConfig{Level: "debug", Format: "json"}.Logger(&buf)
	require.NoError(t, err)
	log.Debug("hello", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	log, err = LogConfig{Level: "warn"}.Logger(&buf)
	require.NoError(t, err)
	log.Info("quiet")
	assert.Empty(t, buf.String())
	log.Warn("loud")
	assert.Contains(t, buf.String(), "msg=loud")
}
