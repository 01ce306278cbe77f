package scan

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineSource is a forward-only sequence of lines.
// Next returns io.EOF once the input is exhausted, and keeps returning it.
type LineSource interface {
	Next() (string, error)
}

// ReaderSource reads lines from an io.Reader.
// Lines may be of any length; "\n", "\r\n" and a lone "\r" all end a line.
type ReaderSource struct {
	r    *bufio.Reader
	done bool
}

// NewReaderSource wraps r in a LineSource.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: bufio.NewReader(r)}
}

// Next returns the next line without its terminator.
func (s *ReaderSource) Next() (string, error) {
	if s.done {
		return "", io.EOF
	}

	var b strings.Builder
	for {
		c, err := s.r.ReadByte()
		if err != nil {
			s.done = true
			if errors.Is(err, io.EOF) {
				if b.Len() == 0 {
					return "", io.EOF
				}
				return b.String(), nil
			}
			return "", err
		}

		switch c {
		case '\n':
			return b.String(), nil
		case '\r':
			// Swallow the '\n' of a "\r\n" pair.
			if peek, err := s.r.Peek(1); err == nil && peek[0] == '\n' {
				_, _ = s.r.ReadByte()
			}
			return b.String(), nil
		default:
			b.WriteByte(c)
		}
	}
}

// SliceSource serves lines from memory.
type SliceSource struct {
	lines []string
	pos   int
}

// NewSliceSource creates a LineSource over lines.
func NewSliceSource(lines []string) *SliceSource {
	return &SliceSource{lines: lines}
}

// Next returns the next line or io.EOF.
func (s *SliceSource) Next() (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}
