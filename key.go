package riffline

// Kind tags which variant a Key holds.
type Kind uint8

const (
	KindChar Kind = iota
	KindControl
	KindArrow
)

// Control names a control action.
type Control uint8

const (
	ControlNone Control = iota
	ControlEnter
	ControlBackspace
	ControlExit
	ControlLetter // Ctrl+A..Z not otherwise named; the letter is in Key.Byte
)

// Direction is the direction of an arrow key.
type Direction uint8

const (
	DirectionNone Direction = iota
	Up
	Down
	Left
	Right
)

var directionNames = map[Direction]string{
	Up:    "Up",
	Down:  "Down",
	Left:  "Left",
	Right: "Right",
}

// String returns the direction name.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "None"
}

// Key is a single decoded input unit: a character, a named control
// action or an arrow key.
type Key struct {
	Kind    Kind
	Byte    byte      // the character for KindChar, the letter for ControlLetter
	Control Control   // set for KindControl
	Arrow   Direction // set for KindArrow
}

// Char returns a character key.
func Char(b byte) Key {
	return Key{Kind: KindChar, Byte: b}
}

// Ctrl returns the control key for a letter, e.g. Ctrl('A').
func Ctrl(letter byte) Key {
	return Key{Kind: KindControl, Control: ControlLetter, Byte: letter}
}

// Arrow returns an arrow key.
func Arrow(d Direction) Key {
	return Key{Kind: KindArrow, Arrow: d}
}

var (
	KeyEnter     = Key{Kind: KindControl, Control: ControlEnter}
	KeyBackspace = Key{Kind: KindControl, Control: ControlBackspace}
	KeyExit      = Key{Kind: KindControl, Control: ControlExit}
)

// Caret returns the caret notation of a control letter ("^A").
// Other keys return an empty string.
func (k Key) Caret() string {
	switch {
	case k.Kind == KindControl && k.Control == ControlLetter:
		return "^" + string(rune(k.Byte))
	case k == KeyExit:
		return "^D"
	}
	return ""
}

// String returns a readable representation of the key.
func (k Key) String() string {
	switch k.Kind {
	case KindChar:
		return string(rune(k.Byte))
	case KindArrow:
		return "<" + k.Arrow.String() + ">"
	}

	switch k.Control {
	case ControlEnter:
		return "<CR>"
	case ControlBackspace:
		return "<BS>"
	case ControlExit, ControlLetter:
		return k.Caret()
	}
	return "<None>"
}
