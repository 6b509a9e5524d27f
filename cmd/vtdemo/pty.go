package main

import (
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// hostPTY wraps github.com/creack/pty behind the teacher's PTY interface
// (pty.go, kept from the teacher and re-implemented here instead of the
// teacher's hand-rolled cgo pty_unix.go/pty_windows.go). creack/pty is
// grounded on its use across the pack (andyrewlee-amux/internal/pty,
// noppefoxwolf-vibetunnel, javanhut-RavenTerminal).
type hostPTY struct {
	f *os.File
}

func (h *hostPTY) Start(cmd *exec.Cmd) error {
	f, err := pty.Start(cmd)
	if err != nil {
		return err
	}
	h.f = f
	return nil
}

func (h *hostPTY) Read(p []byte) (int, error)  { return h.f.Read(p) }
func (h *hostPTY) Write(p []byte) (int, error) { return h.f.Write(p) }
func (h *hostPTY) Close() error                { return h.f.Close() }

func (h *hostPTY) Resize(cols, rows int) error {
	return pty.Setsize(h.f, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
}
