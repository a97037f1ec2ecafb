// relicforge-server serves the loot viewer over SSH. Every connection gets
// its own isolated game: its own artifact registry, random stream and floor.
// Build:
//
//	go build -o relicforge-server ./cmd/server
//
// Usage:
//
//	./relicforge-server [-config relicforge.yaml]
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"unicode"
	"unicode/utf8"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
	"golang.org/x/sync/errgroup"

	"relicforge/internal/config"
	"relicforge/internal/game"
	internalssh "relicforge/internal/ssh"
	"relicforge/internal/store"
	"relicforge/internal/store/backend"
)

// maxNameBytes bounds the player name taken from the SSH user.
const maxNameBytes = 16

// allowedTerms lists the TERM values the server will hand to terminfo.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

func main() {
	configPath := flag.String("config", "relicforge.yaml", "Path to the YAML config (optional)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("server stopped", "err", err)
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
	logger, err := cfg.Log.Logger(os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := backend.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer st.Close()

	signer, err := loadOrCreateHostKey(cfg.Server.HostKeyPath)
	if err != nil {
		return err
	}

	h := &handler{cfg: cfg, store: st, slots: make(chan struct{}, max(cfg.Server.MaxSessions, 1))}
	srv := &gossh.Server{
		Addr:    cfg.Server.Addr,
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Any client may connect; the viewer holds nothing worth protecting.
		HostSigners: []gossh.Signer{signer},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("relicforge SSH server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
			return fmt.Errorf("serve ssh: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		return srv.Close()
	})
	return g.Wait()
}

// handler runs one isolated game per SSH connection.
type handler struct {
	cfg   config.Config
	store store.Store
	slots chan struct{}
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the connection so the SSH session stays open.
func (h *handler) handleSession(s gossh.Session) {
	if _, _, hasPTY := s.Pty(); !hasPTY {
		fmt.Fprintln(s, "The viewer requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	select {
	case h.slots <- struct{}{}:
		defer func() { <-h.slots }()
	default:
		fmt.Fprintln(s, "The forge is busy. Try again in a little while.")
		return
	}

	term := internalssh.Term(s)
	if !allowedTerms[term] {
		term = internalssh.DefaultTerm
	}
	screen, err := internalssh.NewScreen(s, term)
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	cfg := h.cfg
	if name := sanitizeName(s.User()); name != "" {
		cfg.Player.Name = name
	}
	log := slog.With("user", cfg.Player.Name, "remote", s.RemoteAddr().String())
	log.Info("session started")
	game.NewWithScreen(screen, cfg, h.store).Run()
	log.Info("session ended")
}

// sanitizeName drops control characters from name and truncates it to
// maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	out := make([]byte, 0, maxNameBytes)
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		if len(out)+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		out = utf8.AppendRune(out, r)
	}
	return string(out)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			slog.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	slog.Info("generating new ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	pemBlock, err := xssh.MarshalPrivateKey(key, "relicforge server")
	if err == nil {
		if dir := filepath.Dir(path); dir != "." {
			_ = os.MkdirAll(dir, 0o700)
		}
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			slog.Warn("host key not saved", "path", path, "err", err)
		}
	}
	return signer, nil
}
