package riffline

import "io"

const (
	// escPrefix starts every escape sequence.
	escPrefix = 0x1b

	// DefaultLongestSequence is the number of bytes an escape sequence may
	// accumulate before it is discarded.
	DefaultLongestSequence = 5
)

// Raw byte values with a fixed meaning.
const (
	byteExit      = 4   // Ctrl-D
	byteTab       = 9   // Ctrl-I
	byteEnter     = 13  // Ctrl-M
	byteBackspace = 127 // DEL
)

// sequences maps complete escape sequences to their keys.
var sequences = map[string]Key{
	"\x1b[A": Arrow(Up),
	"\x1b[B": Arrow(Down),
	"\x1b[C": Arrow(Right),
	"\x1b[D": Arrow(Left),
}

// Decoder turns a raw byte stream into Keys.
type Decoder struct {
	r       io.ByteReader
	pending []byte // accumulated escape sequence, including the prefix
	longest int
}

// NewDecoder creates a Decoder reading one byte at a time from r.
// It never reads past the last byte of the key it returns.
func NewDecoder(r io.ByteReader) *Decoder {
	return &Decoder{
		r:       r,
		pending: make([]byte, 0, DefaultLongestSequence+1),
		longest: DefaultLongestSequence,
	}
}

// LongestSequence sets how many bytes an unmatched escape sequence may
// accumulate before it is dropped.
func (d *Decoder) LongestSequence(n int) *Decoder {
	if n > 0 {
		d.longest = n
	}
	return d
}

// Next reads bytes until one complete Key is available and returns it.
// Unknown escape sequences are swallowed. Any read error other than an
// interrupted read is returned as is, including io.EOF.
func (d *Decoder) Next() (Key, error) {
	for {
		b, err := d.readByte()
		if err != nil {
			d.pending = d.pending[:0]
			return Key{}, err
		}

		// A prefix always starts a fresh sequence, even mid-sequence
		if b == escPrefix {
			d.pending = append(d.pending[:0], b)
			continue
		}

		if len(d.pending) > 0 {
			d.pending = append(d.pending, b)
			if k, ok := sequences[string(d.pending)]; ok {
				d.pending = d.pending[:0]
				return k, nil
			}
			if len(d.pending) > d.longest {
				d.pending = d.pending[:0]
			}
			continue
		}

		return decodeByte(b), nil
	}
}

// Pending reports whether an escape sequence is partially accumulated.
func (d *Decoder) Pending() bool {
	return len(d.pending) > 0
}

// readByte reads the next byte, retrying interrupted reads in place.
func (d *Decoder) readByte() (byte, error) {
	for {
		b, err := d.r.ReadByte()
		if err == nil {
			return b, nil
		}
		if !isInterrupted(err) {
			return 0, err
		}
	}
}

// decodeByte handles a byte outside any escape sequence.
func decodeByte(b byte) Key {
	switch {
	case b == byteEnter:
		return KeyEnter
	case b == byteBackspace:
		return KeyBackspace
	case b == byteExit:
		return KeyExit
	case b == byteTab:
		return Char(b)
	case b >= 1 && b <= 26:
		// Ctrl+letter arrives as the letter minus 64
		return Ctrl(b + 64)
	default:
		return Char(b)
	}
}
