package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// PushbackSize is the number of bytes that can be pushed back onto a Source
// at the same time: one for ordinary lookahead, one more to back out of a
// dotted tail that turned out to be a symbol.
const PushbackSize = 2

// ErrPushbackOverflow is returned by Push when the pushback buffer is full.
var ErrPushbackOverflow = errors.New("pushback buffer is full")

// Source delivers bytes from an underlying reader one at a time and allows
// callers to push back bytes they already consumed.
type Source struct {
	in *bufio.Reader

	buf [PushbackSize]byte
	n   int

	line   int
	offset int64
}

// New initializes a Source that reads from r
func New(r io.Reader) *Source {
	return &Source{
		in:   bufio.NewReader(r),
		line: 1,
	}
}

// Next returns the next byte, preferring the most recently pushed back one.
// It returns io.EOF once the input is exhausted, any other error means the
// underlying reader failed and the Source can't be used anymore.
func (s *Source) Next() (byte, error) {
	if s.n > 0 {
		s.n--
		c := s.buf[s.n]
		s.advance(c)
		return c, nil
	}

	c, err := s.in.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("reading input: %w", err)
	}

	s.advance(c)
	return c, nil
}

// Push makes c the next byte returned by Next.
func (s *Source) Push(c byte) error {
	if s.n >= PushbackSize {
		return ErrPushbackOverflow
	}
	s.buf[s.n] = c
	s.n++
	s.retreat(c)
	return nil
}

// Free returns how many more bytes can be pushed back
func (s *Source) Free() int {
	return PushbackSize - s.n
}

// HasPending returns true if there are pushed back bytes or bytes that were
// already read from the underlying reader but not consumed yet.
func (s *Source) HasPending() bool {
	return s.n > 0 || s.in.Buffered() > 0
}

// ClearPendingSpace drops pending spaces up to and including the first
// newline. Any other byte stops it and is kept.
func (s *Source) ClearPendingSpace() {
	for s.HasPending() {
		c, err := s.Next()
		if err != nil {
			return
		}
		switch c {
		case ' ':
			// continue
		case '\n':
			return
		default:
			// can't overflow, Next just freed a slot
			_ = s.Push(c)
			return
		}
	}
}

// SkipLine consumes bytes up to and including the next newline, or up to
// the end of the input. Unlike Discard it may block on the underlying reader.
func (s *Source) SkipLine() error {
	for {
		c, err := s.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if IsNewLine(c) {
			return nil
		}
	}
}

// Discard drops every pending byte without blocking on the underlying
// reader.
func (s *Source) Discard() {
	for s.n > 0 {
		s.n--
		s.advance(s.buf[s.n])
	}

	pending, _ := s.in.Peek(s.in.Buffered())
	for _, c := range pending {
		s.advance(c)
	}
	_, _ = s.in.Discard(len(pending))
}

// Pos returns the position of the next byte.
func (s *Source) Pos() Pos {
	return Pos{Line: s.line, Offset: s.offset}
}

func (s *Source) advance(c byte) {
	s.offset++
	if IsNewLine(c) {
		s.line++
	}
}

func (s *Source) retreat(c byte) {
	s.offset--
	if IsNewLine(c) {
		s.line--
	}
}
