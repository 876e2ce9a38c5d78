package riffline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when raw mode is requested on an input that
// is not a terminal.
var ErrNotTerminal = errors.New("riffline: input is not a terminal")

// Terminal is the I/O capability a Session drives. EnterRaw and LeaveRaw
// must be idempotent: entering twice or leaving without entering is a
// no-op.
type Terminal interface {
	io.ByteReader
	io.Writer
	EnterRaw() error
	LeaveRaw() error
}

// TTY is a Terminal backed by a file descriptor pair, typically stdin and
// stdout. It owns the settings saved when raw mode was entered.
type TTY struct {
	in    *os.File
	out   io.Writer
	fd    int
	saved *term.State
	buf   [1]byte
}

// NewTTY creates a TTY reading from in and writing to out.
func NewTTY(in *os.File, out io.Writer) *TTY {
	return &TTY{
		in:  in,
		out: out,
		fd:  int(in.Fd()),
	}
}

// ReadByte blocks until one byte is available. Exactly one byte is
// consumed from the input per call.
func (t *TTY) ReadByte() (byte, error) {
	n, err := t.in.Read(t.buf[:])
	if n == 1 {
		return t.buf[0], nil
	}
	if err == nil {
		err = io.EOF
	}
	return 0, err
}

// Write writes p to the output.
func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// EnterRaw switches the input to raw mode, saving the current settings.
// It does nothing if raw mode is already active.
func (t *TTY) EnterRaw() error {
	if t.saved != nil {
		return nil
	}
	if !term.IsTerminal(t.fd) {
		return ErrNotTerminal
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("riffline: enter raw mode: %w", err)
	}
	t.saved = state
	return nil
}

// LeaveRaw restores the settings saved by EnterRaw. It does nothing if
// raw mode is not active. On failure the saved settings are kept so a
// later call can retry.
func (t *TTY) LeaveRaw() error {
	if t.saved == nil {
		return nil
	}
	if err := term.Restore(t.fd, t.saved); err != nil {
		return fmt.Errorf("riffline: leave raw mode: %w", err)
	}
	t.saved = nil
	return nil
}

// Raw reports whether raw mode is active.
func (t *TTY) Raw() bool {
	return t.saved != nil
}
