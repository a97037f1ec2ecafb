package game

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// RunLog records what one viewing session turned up.
type RunLog struct {
	Class         string
	Dungeon       string
	FloorsVisited int
	DeepestDepth  int
	ObjectsSeen   int
	GoldSeen      int
	EgosSeen      int
	Artifacts     []string // names of fixed artifacts found, in order
	PickedUp      []string
}

// saveRunLog appends the completed run as a single JSON line to runs.jsonl.
// Failures are logged and otherwise ignored so a disk problem never ends
// the session.
func saveRunLog(log RunLog) {
	dir, err := runLogDir()
	if err != nil {
		slog.Debug("run log skipped", "err", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.Debug("run log skipped", "err", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Debug("run log skipped", "err", err)
		return
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return
	}
	data = append(data, '\n')
	if _, err := f.Write(data); err != nil {
		slog.Debug("run log write failed", "err", err)
	}
}

// runLogDir returns the directory where run logs are stored.
// Follows XDG Base Directory spec: $XDG_DATA_HOME/relicforge,
// defaulting to ~/.local/share/relicforge.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "relicforge"), nil
}
