package riffline

import (
	"io"
	"strconv"
)

// csi is the Control Sequence Introducer.
const csi = "\x1b["

// CursorBack returns the sequence moving the cursor n columns left.
// It returns nil for n <= 0.
func CursorBack(n int) []byte {
	return cursorMove(n, 'D')
}

// CursorForward returns the sequence moving the cursor n columns right.
// It returns nil for n <= 0.
func CursorForward(n int) []byte {
	return cursorMove(n, 'C')
}

func cursorMove(n int, final byte) []byte {
	if n <= 0 {
		return nil
	}
	seq := append([]byte(csi), strconv.Itoa(n)...)
	return append(seq, final)
}

// Display keeps the terminal row in step with a Line. Each method is
// called after the matching Line mutation and issues at most one write.
type Display struct {
	w io.Writer
}

// NewDisplay creates a Display writing to w.
func NewDisplay(w io.Writer) *Display {
	return &Display{w: w}
}

// Insert echoes text inserted in front of tail, rewrites tail and returns
// the cursor to just after the inserted text.
func (d *Display) Insert(text, tail string) error {
	out := make([]byte, 0, len(text)+2*len(tail)+8)
	out = append(out, text...)
	out = append(out, tail...)
	out = append(out, CursorBack(len(tail))...)
	return d.write(out)
}

// Backspace erases the column left of the cursor. tail is the content
// after the cursor once the character has been removed; it shifts left by
// one and a trailing space blanks the column it vacated.
func (d *Display) Backspace(tail string) error {
	out := CursorBack(1)
	out = append(out, tail...)
	out = append(out, ' ')
	out = append(out, CursorBack(len(tail)+1)...)
	return d.write(out)
}

// MoveBack moves the cursor n columns left.
func (d *Display) MoveBack(n int) error {
	return d.write(CursorBack(n))
}

// MoveForward moves the cursor n columns right.
func (d *Display) MoveForward(n int) error {
	return d.write(CursorForward(n))
}

// Submit ends the current row, echoes the submitted line on its own row
// and leaves the cursor at the start of the next one.
func (d *Display) Submit(line string) error {
	if line == "" {
		return d.WriteString("\n")
	}
	return d.WriteString("\n" + line + "\n")
}

// WriteString writes s unchanged.
func (d *Display) WriteString(s string) error {
	return d.write([]byte(s))
}

// write skips empty writes so no-op edits produce no output.
func (d *Display) write(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	_, err := d.w.Write(p)
	return err
}
