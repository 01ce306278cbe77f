// Package scan implements the per-file line scanner.
//
// A scan streams the lines of one file through a Matcher and decides which
// lines to emit, honoring the display flags and the before/after context
// windows. Before-context is served from a Ring that is never cleared, so a
// run of close matches reuses earlier lines (matches included) as context.
// After-context lines are consumed straight from the source: they are
// emitted unconditionally and never tested against the pattern.
package scan

import (
	"errors"
	"fmt"
	"io"
)

// Matcher reports whether a line matches the search pattern.
type Matcher interface {
	Match(line string) bool
}

// Line is one line of input with its 1-based number in the file.
type Line struct {
	Text   string
	Number int
}

// Result is the outcome of scanning one file.
type Result struct {
	// FileName is the display name used in prefixes and summaries
	FileName string
	// Lines holds the output records in emission order
	Lines []string
	// MatchCount is the number of lines the matcher accepted
	MatchCount int
	// LinesRead counts every line taken from the source, context included
	LinesRead int
}

// scanner holds the state of a single file scan.
type scanner struct {
	fileName string
	src      LineSource
	matcher  Matcher
	cfg      DisplayConfig
	ring     *Ring
	result   *Result
	lineNo   int
	eof      bool
}

// Scan runs the matcher over every line of src and collects the output.
//
// On a read error the lines emitted so far are returned together with the
// error; the rest of the file is abandoned.
func Scan(fileName string, src LineSource, matcher Matcher, cfg DisplayConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &scanner{
		fileName: fileName,
		src:      src,
		matcher:  matcher,
		cfg:      cfg,
		ring:     NewRing(cfg.ContextBefore),
		result:   &Result{FileName: fileName, Lines: make([]string, 0)},
	}

	for {
		line, ok, err := s.next()
		if err != nil {
			return s.result, err
		}
		if !ok {
			break
		}

		if !s.matcher.Match(line.Text) {
			s.handleMiss(line)
			continue
		}

		if err := s.handleMatch(line); err != nil {
			return s.result, err
		}
	}

	if cfg.CountOnly {
		s.emit(Summary(fileName, s.result.MatchCount))
	}

	return s.result, nil
}

// next reads one line from the source and numbers it.
func (s *scanner) next() (Line, bool, error) {
	if s.eof {
		return Line{}, false, nil
	}

	text, err := s.src.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			s.eof = true
			return Line{}, false, nil
		}
		return Line{}, false, fmt.Errorf("failed to read line %d of %s: %w", s.lineNo+1, s.fileName, err)
	}

	s.lineNo++
	s.result.LinesRead++
	return Line{Text: text, Number: s.lineNo}, true, nil
}

func (s *scanner) handleMiss(line Line) {
	formatted := s.format(line)

	if s.cfg.InvertMatch && !s.cfg.CountOnly {
		s.emit(formatted)
	}

	if s.cfg.ContextBefore > 0 {
		s.ring.Push(formatted)
	}
}

func (s *scanner) handleMatch(line Line) error {
	s.result.MatchCount++

	if s.cfg.Quiet() {
		return nil
	}

	formatted := s.format(line)

	if s.cfg.ContextBefore > 0 {
		for _, before := range s.ring.Lines() {
			s.emit(before)
		}
		s.ring.Push(formatted)
	}

	s.emit(formatted)

	if s.cfg.ContextAfter == 0 {
		if s.cfg.ContextBefore > 0 {
			s.emit(Separator)
		}
		return nil
	}

	for i := 0; i < s.cfg.ContextAfter; i++ {
		after, ok, err := s.next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		s.emit(s.format(after))
	}
	s.emit(Separator)

	return nil
}

func (s *scanner) format(line Line) string {
	return Format(s.fileName, line.Text, line.Number, s.cfg)
}

func (s *scanner) emit(out string) {
	s.result.Lines = append(s.result.Lines, out)
}
