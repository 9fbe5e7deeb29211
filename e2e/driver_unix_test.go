//go:build e2e && unix

package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var binPath = "chromamem_e2e"

const (
	termRows = 40
	termCols = 100
	ringSize = 1 << 20
)

// Key sequences as a terminal sends them.
const (
	KeyEsc   = "\x1b"
	KeyCtrlC = "\x03"
)

var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?<>]*[ -/]*[@-~])|` + // CSI
		`(?:\x1b\][^\x07]*\x07)|` + // OSC
		`(?:\x1b[\(\)][A-Za-z])|` + // charset
		`(?:\x1b=|\x1b>)|` + // keypad mode
		`\r`,
)

// tui runs the binary on a pseudo-terminal and records everything it draws.
type tui struct {
	t    *testing.T
	pty  *os.File
	tty  *os.File
	cmd  *exec.Cmd
	home string

	mu   sync.Mutex
	buf  []byte
	head int
	full bool
}

func newTUI(t *testing.T) *tui {
	t.Helper()
	d := &tui{t: t, home: t.TempDir(), buf: make([]byte, ringSize)}
	t.Cleanup(d.close)
	return d
}

// start launches the app with args in an isolated HOME.
func (d *tui) start(args ...string) error {
	d.cmd = exec.Command(binPath, args...)
	d.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+d.home,
		"XDG_CONFIG_HOME="+d.home,
		"OTEL_EXPORTER_OTLP_ENDPOINT=",
	)

	p, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}
	d.pty, d.tty = p, tty
	if err := pty.Setsize(p, &pty.Winsize{Rows: termRows, Cols: termCols}); err != nil {
		return fmt.Errorf("failed to size pty: %w", err)
	}
	d.cmd.Stdin, d.cmd.Stdout, d.cmd.Stderr = tty, tty, tty

	if err := d.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start command: %w", err)
	}
	go d.read()
	return nil
}

func (d *tui) read() {
	chunk := make([]byte, 8192)
	for {
		n, err := d.pty.Read(chunk)
		if n > 0 {
			d.mu.Lock()
			for _, b := range chunk[:n] {
				d.buf[d.head] = b
				d.head = (d.head + 1) % ringSize
				if d.head == 0 {
					d.full = true
				}
			}
			d.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

func (d *tui) send(keys string) {
	d.t.Helper()
	if _, err := d.pty.Write([]byte(keys)); err != nil {
		d.t.Fatalf("write to pty: %v", err)
	}
}

// click sends an SGR left press and release at the zero-based cell (x, y).
func (d *tui) click(x, y int) {
	d.t.Helper()
	d.send(fmt.Sprintf("\x1b[<0;%d;%dM\x1b[<0;%d;%dm", x+1, y+1, x+1, y+1))
}

// plain returns everything drawn so far with escape sequences removed.
func (d *tui) plain() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var raw []byte
	if d.full {
		raw = append(append(raw, d.buf[d.head:]...), d.buf[:d.head]...)
	} else {
		raw = d.buf[:d.head]
	}
	return ansiRe.ReplaceAllString(string(raw), "")
}

// see waits for text to show up on screen.
func (d *tui) see(text string) bool {
	d.t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for {
		if strings.Contains(d.plain(), text) {
			return true
		}
		if time.Now().After(deadline) {
			tail := d.plain()
			if len(tail) > 2048 {
				tail = tail[len(tail)-2048:]
			}
			d.t.Logf("did not see %q\n--- tail ---\n%s", text, tail)
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// wait blocks until the process exits or timeout elapses.
func (d *tui) wait(timeout time.Duration) error {
	done := make(chan error, 1)
	go func() { done <- d.cmd.Wait() }()
	select {
	case err := <-done:
		d.cmd = nil
		return err
	case <-time.After(timeout):
		return fmt.Errorf("process still running after %s", timeout)
	}
}

func (d *tui) close() {
	if d.pty != nil {
		_ = d.pty.Close()
	}
	if d.tty != nil {
		_ = d.tty.Close()
	}
	if d.cmd != nil && d.cmd.Process != nil {
		_ = d.cmd.Process.Kill()
		_, _ = d.cmd.Process.Wait()
	}
}
