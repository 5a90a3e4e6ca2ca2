package tui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
)

// fakeSession implements the parts of ssh.Session the middlewares touch.
type fakeSession struct {
	ssh.Session
	stderr bytes.Buffer
	exit   int
	closed bool
}

func (f *fakeSession) User() string          { return "pilot" }
func (f *fakeSession) Stderr() io.ReadWriter { return &f.stderr }
func (f *fakeSession) Exit(code int) error   { f.exit = code; return nil }
func (f *fakeSession) Close() error          { f.closed = true; return nil }

func TestNewSSHServerRequiresFactory(t *testing.T) {
	if _, err := NewSSHServer(DefaultSSHServerConfig()); err == nil {
		t.Error("missing game factory should fail")
	}
}

func TestCapacityMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		preloaded int64
		wantRun   bool
	}{
		{"unlimited", 0, 50, true},
		{"below limit", 2, 1, true},
		{"at limit", 2, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := &SSHServer{
				config: SSHServerConfig{MaxSessions: tt.limit},
				logger: log.New(io.Discard),
			}
			srv.active.Store(tt.preloaded)

			ran := false
			var during int
			handler := srv.capacityMiddleware(func(ssh.Session) {
				ran = true
				during = srv.ActiveSessions()
			})

			sess := &fakeSession{}
			handler(sess)

			if ran != tt.wantRun {
				t.Fatalf("ran = %v, want %v", ran, tt.wantRun)
			}
			if ran && during != int(tt.preloaded)+1 {
				t.Errorf("active during session = %d, want %d", during, tt.preloaded+1)
			}
			if !ran {
				if sess.exit != 1 {
					t.Errorf("exit = %d, want 1", sess.exit)
				}
				if !strings.Contains(sess.stderr.String(), "full") {
					t.Errorf("stderr = %q", sess.stderr.String())
				}
			}
			if got := srv.ActiveSessions(); got != int(tt.preloaded) {
				t.Errorf("active after = %d, want %d", got, tt.preloaded)
			}
		})
	}
}
