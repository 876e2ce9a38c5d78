package riffline

// Line is an editable single-line buffer with a cursor.
// The cursor always satisfies 0 <= Pos() <= Len(); every operation is
// total and out-of-range moves are no-ops.
type Line struct {
	buf []byte
	pos int
}

// Insert inserts text at the cursor and moves the cursor past it.
func (l *Line) Insert(text string) {
	if text == "" {
		return
	}
	l.buf = append(l.buf[:l.pos], append([]byte(text), l.buf[l.pos:]...)...)
	l.pos += len(text)
}

// DeleteBeforeCursor removes the character left of the cursor.
// It reports whether anything was removed.
func (l *Line) DeleteBeforeCursor() bool {
	if l.pos == 0 {
		return false
	}
	l.buf = append(l.buf[:l.pos-1], l.buf[l.pos:]...)
	l.pos--
	return true
}

// MoveLeft moves the cursor one character left, reporting whether it moved.
func (l *Line) MoveLeft() bool {
	if l.pos == 0 {
		return false
	}
	l.pos--
	return true
}

// MoveRight moves the cursor one character right, reporting whether it moved.
func (l *Line) MoveRight() bool {
	if l.pos == len(l.buf) {
		return false
	}
	l.pos++
	return true
}

// Snapshot returns the buffer content.
func (l *Line) Snapshot() string {
	return string(l.buf)
}

// Tail returns the content from the cursor to the end.
func (l *Line) Tail() string {
	return string(l.buf[l.pos:])
}

// Clear empties the buffer.
func (l *Line) Clear() {
	l.buf = l.buf[:0]
	l.pos = 0
}

// Len returns the number of characters in the buffer.
func (l *Line) Len() int { return len(l.buf) }

// Pos returns the cursor index.
func (l *Line) Pos() int { return l.pos }
