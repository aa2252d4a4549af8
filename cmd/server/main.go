// Command server serves the tile world over SSH. Every connection gets its
// own level, player and clock. Build:
//
//	go build -o tsmi-server ./cmd/server
//
// Usage:
//
//	./tsmi-server [-port 2222] [-key server_host_key] [-world wilderness]
//
// Connect:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"
	"unicode"

	"tsmi/internal/game"
	internalssh "tsmi/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	cfg := game.DefaultConfig()
	game.RegisterFlags(flag.CommandLine, &cfg)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	h := &handler{base: cfg, logger: logger}

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{loadOrCreateHostKey(*keyFile)},
	}

	log.Printf("tsmi SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -t -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// handler runs one game per SSH session.
type handler struct {
	base   game.Config
	logger *slog.Logger
	nextID atomic.Int64
}

// sessionConfig derives a per-session config so concurrent players get
// different levels unless a fixed seed was requested.
func (h *handler) sessionConfig(id int64) game.Config {
	cfg := h.base
	cfg.Seed = h.base.Seed + id*7919
	return cfg
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the connection so the SSH session stays open.
func (h *handler) handleSession(s gossh.Session) {
	id := h.nextID.Add(1)
	logger := h.logger.With("session", id, "user", sanitizeName(s.User()), "remote", s.RemoteAddr().String())

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "A terminal is required. Connect with: ssh -t -p 2222 <host>")
		return
	}

	screen, err := newSessionScreen(s, pty, winCh)
	if err != nil {
		logger.Warn("terminal setup failed", "error", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	defer screen.Fini()

	start := time.Now()
	logger.Info("session started", "term", pty.Term)
	g, err := game.New(screen, h.sessionConfig(id), logger)
	if err != nil {
		logger.Error("game setup failed", "error", err)
		return
	}
	if err := g.Run(s.Context()); err != nil {
		logger.Error("game ended with error", "error", err)
	}
	logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
}

// termMu protects os.Setenv("TERM") around screen creation; terminfo is
// looked up from the process environment.
var termMu sync.Mutex

func newSessionScreen(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) (tcell.Screen, error) {
	term := internalssh.Term(s.Environ())
	if pty.Term != "" && internalssh.AllowedTerms[pty.Term] {
		term = pty.Term
	}
	tty := internalssh.NewSessionTty(s, pty, winCh)

	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// maxNameBytes caps user names in log lines.
const maxNameBytes = 16

// sanitizeName strips control characters from an SSH user name and truncates
// it to maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	out := make([]rune, 0, len(name))
	n := 0
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		size := len(string(r))
		if n+size > maxNameBytes {
			break
		}
		out = append(out, r)
		n += size
	}
	return string(out)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key -> %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "tsmi server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
