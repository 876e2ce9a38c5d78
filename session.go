package riffline

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// DefaultPrompt is written at the start of every input line.
const DefaultPrompt = ">>>"

// Option configures a Session.
type Option func(*Session)

// WithPrompt sets the prompt string.
func WithPrompt(p string) Option {
	return func(s *Session) { s.prompt = p }
}

// WithLogger sets the logger diagnostics are reported to.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithLongestSequence sets how many bytes an unknown escape sequence may
// accumulate before it is discarded.
func WithLongestSequence(n int) Option {
	return func(s *Session) { s.dec.LongestSequence(n) }
}

// OnSubmit registers a function called with every line submitted by Enter.
func OnSubmit(fn func(line string)) Option {
	return func(s *Session) { s.onSubmit = fn }
}

// Session is an interactive line editing loop over a Terminal.
type Session struct {
	term     Terminal
	dec      *Decoder
	line     Line
	disp     *Display
	prompt   string
	log      *log.Logger
	onSubmit func(line string)
	active   bool
}

// NewSession creates a Session driving t.
func NewSession(t Terminal, opts ...Option) *Session {
	s := &Session{
		term:   t,
		dec:    NewDecoder(t),
		disp:   NewDisplay(t),
		prompt: DefaultPrompt,
		log:    log.New(os.Stderr, "riffline: ", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run writes the prompt, enters raw mode and edits lines until the Exit
// key or the end of input. It returns nil after Exit and io.EOF at the
// end of input; any other read error is returned wrapped. Raw mode is
// always left before Run returns.
func (s *Session) Run() error {
	if err := s.disp.WriteString(s.prompt); err != nil {
		s.log.Printf("write prompt: %v", err)
	}
	s.enterRaw()
	defer s.leaveRaw()

	s.active = true
	for s.active {
		k, err := s.dec.Next()
		if err != nil {
			s.active = false
			if errors.Is(err, io.EOF) {
				return io.EOF
			}
			return fmt.Errorf("riffline: read input: %w", err)
		}
		if err := s.dispatch(k); err != nil {
			s.log.Printf("handle %s: %v", k, err)
		}
	}
	return nil
}

// Line returns the line being edited.
func (s *Session) Line() *Line {
	return &s.line
}

// dispatch applies one key, converting a panic into an error so a single
// bad key cannot end the session.
func (s *Session) dispatch(k Key) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.handle(k)
}

func (s *Session) handle(k Key) error {
	switch k.Kind {
	case KindChar:
		return s.insert(string([]byte{k.Byte}))
	case KindArrow:
		return s.arrow(k.Arrow)
	}

	switch k.Control {
	case ControlEnter:
		return s.enter()
	case ControlBackspace:
		return s.backspace()
	case ControlExit:
		s.active = false
		return nil
	case ControlLetter:
		return s.insert(k.Caret())
	}
	return fmt.Errorf("unknown key %+v", k)
}

func (s *Session) insert(text string) error {
	tail := s.line.Tail()
	s.line.Insert(text)
	return s.disp.Insert(text, tail)
}

func (s *Session) backspace() error {
	if !s.line.DeleteBeforeCursor() {
		return nil
	}
	return s.disp.Backspace(s.line.Tail())
}

func (s *Session) arrow(d Direction) error {
	switch d {
	case Left:
		if s.line.MoveLeft() {
			return s.disp.MoveBack(1)
		}
	case Right:
		if s.line.MoveRight() {
			return s.disp.MoveForward(1)
		}
	case Up, Down:
		// reserved for history
		s.log.Printf("key %s: no history", d)
	}
	return nil
}

// enter submits the line with the terminal back in its normal mode, then
// starts a fresh line.
// The prompt is redrawn even if the submit hook fails.
func (s *Session) enter() (err error) {
	s.leaveRaw()
	defer s.enterRaw()
	defer func() {
		if perr := s.disp.WriteString(s.prompt); err == nil {
			err = perr
		}
	}()

	submitted := s.line.Snapshot()
	s.line.Clear()
	if err := s.disp.Submit(submitted); err != nil {
		return err
	}
	if s.onSubmit != nil {
		s.onSubmit(submitted)
	}
	return nil
}

// Raw mode failures are reported but never fatal.

func (s *Session) enterRaw() {
	if err := s.term.EnterRaw(); err != nil {
		s.log.Print(err)
	}
}

func (s *Session) leaveRaw() {
	if err := s.term.LeaveRaw(); err != nil {
		s.log.Print(err)
	}
}
