// Package ssh adapts gliderlabs SSH sessions into tcell terminals so each
// remote player gets a private screen.
package ssh

import (
	"io"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// DefaultTerm is used when the client does not send TERM or sends one we do
// not trust.
const DefaultTerm = "xterm-256color"

// AllowedTerms lists the TERM values a client may select. Anything else falls
// back to DefaultTerm, keeping arbitrary strings out of terminfo lookups.
var AllowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"xterm-color":           true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
	"alacritty":             true,
}

// Term picks the terminal type from a session environment.
func Term(environ []string) string {
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok {
			if AllowedTerms[v] {
				return v
			}
			break
		}
	}
	return DefaultTerm
}

// SessionTty implements tcell.Tty over an SSH channel.
type SessionTty struct {
	rw     io.ReadWriteCloser
	mu     sync.Mutex
	window gossh.Window
	winCh  <-chan gossh.Window
	cb     func() // resize callback registered by tcell
}

// NewSessionTty wraps a session channel as a tcell Tty. pty holds the initial
// window size; winCh delivers later resizes and may be nil.
func NewSessionTty(rw io.ReadWriteCloser, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		rw:     rw,
		window: pty.Window,
		winCh:  winCh,
	}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.rw.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.rw.Write(b) }
func (t *SessionTty) Close() error                { return t.rw.Close() }

// Start, Stop and Drain are no-ops: the channel is opened and closed by the
// server handler.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb and starts draining the window-change channel.
// The goroutine exits when the channel closes with the session.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()
	if t.winCh == nil {
		return
	}

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			localCb := t.cb
			t.mu.Unlock()
			if localCb != nil {
				localCb()
			}
		}
	}()
}
