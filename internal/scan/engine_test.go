package scan

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// containsMatcher matches lines containing a substring and records every
// line it was asked about.
type containsMatcher struct {
	sub    string
	tested []string
}

func (m *containsMatcher) Match(line string) bool {
	m.tested = append(m.tested, line)
	return strings.Contains(line, m.sub)
}

// failingSource yields its lines and then a read error.
type failingSource struct {
	lines []string
	err   error
}

func (f *failingSource) Next() (string, error) {
	if len(f.lines) == 0 {
		return "", f.err
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func scanLines(t *testing.T, lines []string, pattern string, cfg DisplayConfig) (*Result, *containsMatcher) {
	t.Helper()
	m := &containsMatcher{sub: pattern}
	res, err := Scan("f.txt", NewSliceSource(lines), m, cfg)
	require.NoError(t, err)
	return res, m
}

func TestScanDefaultPrintsMatchesWithFilename(t *testing.T) {
	res, _ := scanLines(t, []string{"foo", "bar", "foo", "baz"}, "foo", DisplayConfig{ShowFilenames: true})

	assert.Equal(t, []string{"f.txt:foo", "f.txt:foo"}, res.Lines)
	assert.Equal(t, 2, res.MatchCount)
	assert.Equal(t, 4, res.LinesRead)
}

func TestScanCountOnly(t *testing.T) {
	res, _ := scanLines(t, []string{"foo", "bar", "foo", "baz"}, "foo",
		DisplayConfig{ShowFilenames: true, CountOnly: true, ContextBefore: 1, ContextAfter: 1})

	assert.Equal(t, []string{"f.txt: 2"}, res.Lines)
	assert.Equal(t, 2, res.MatchCount)
}

func TestScanInvertMatch(t *testing.T) {
	res, _ := scanLines(t, []string{"foo", "bar", "foo", "baz"}, "foo",
		DisplayConfig{ShowFilenames: true, InvertMatch: true})

	assert.Equal(t, []string{"f.txt:bar", "f.txt:baz"}, res.Lines)
	assert.Equal(t, 2, res.MatchCount)
	assert.Equal(t, res.LinesRead-res.MatchCount, len(res.Lines))
}

func TestScanInvertIgnoresContext(t *testing.T) {
	res, _ := scanLines(t, []string{"a", "m", "b", "c"}, "m",
		DisplayConfig{InvertMatch: true, ContextBefore: 1, ContextAfter: 1})

	assert.Equal(t, []string{"a", "b", "c"}, res.Lines)
}

func TestScanCountAndInvertEmitsOnlySummary(t *testing.T) {
	res, _ := scanLines(t, []string{"foo", "bar"}, "foo",
		DisplayConfig{CountOnly: true, InvertMatch: true})

	assert.Equal(t, []string{"f.txt: 1"}, res.Lines)
}

func TestScanAfterContextIsNotRetested(t *testing.T) {
	res, m := scanLines(t, []string{"x", "ba", "y", "ba", "z"}, "ba",
		DisplayConfig{ShowLineNumbers: true, ContextAfter: 1})

	assert.Equal(t, []string{"2:ba", "3:y", Separator, "4:ba", "5:z", Separator}, res.Lines)
	assert.Equal(t, []string{"x", "ba", "ba"}, m.tested)
}

func TestScanAfterContextSwallowsAdjacentMatch(t *testing.T) {
	res, m := scanLines(t, []string{"ba", "ba", "x"}, "ba", DisplayConfig{ContextAfter: 1})

	assert.Equal(t, []string{"ba", "ba", Separator}, res.Lines)
	assert.Equal(t, 1, res.MatchCount)
	assert.Equal(t, []string{"ba", "x"}, m.tested)
}

func TestScanAfterContextTruncatedAtEOF(t *testing.T) {
	res, _ := scanLines(t, []string{"x", "m", "y"}, "m", DisplayConfig{ContextAfter: 3})

	assert.Equal(t, []string{"m", "y", Separator}, res.Lines)
	assert.Equal(t, 3, res.LinesRead)
}

func TestScanBeforeContextReusesRing(t *testing.T) {
	res, _ := scanLines(t, []string{"a", "b", "m1", "c", "m2"}, "m", DisplayConfig{ContextBefore: 2})

	assert.Equal(t, []string{
		"a", "b", "m1", Separator,
		"m1", "c", "m2", Separator,
	}, res.Lines)
}

func TestScanBeforeContextPartialRing(t *testing.T) {
	res, _ := scanLines(t, []string{"m", "x"}, "m", DisplayConfig{ContextBefore: 2})

	assert.Equal(t, []string{"m", Separator}, res.Lines)
}

func TestScanBeforeAndAfterContext(t *testing.T) {
	res, _ := scanLines(t, []string{"a", "m", "b", "c"}, "m",
		DisplayConfig{ShowLineNumbers: true, ContextBefore: 1, ContextAfter: 1})

	assert.Equal(t, []string{"1:a", "2:m", "3:b", Separator}, res.Lines)
}

func TestScanAfterContextNotPushedIntoRing(t *testing.T) {
	res, _ := scanLines(t, []string{"a", "m1", "b", "m2"}, "m",
		DisplayConfig{ContextBefore: 1, ContextAfter: 1})

	// "b" was consumed as after-context, so m1 is m2's before-context.
	assert.Equal(t, []string{"a", "m1", "b", Separator, "m1", "m2", Separator}, res.Lines)
}

func TestScanNamesOnly(t *testing.T) {
	res, _ := scanLines(t, []string{"foo", "bar", "foo"}, "foo",
		DisplayConfig{NamesOnly: true, ShowLineNumbers: true})

	assert.Equal(t, []string{"f.txt:", "f.txt:"}, res.Lines)
}

func TestScanEmptyInput(t *testing.T) {
	res, _ := scanLines(t, nil, "foo", DisplayConfig{CountOnly: true})

	assert.Equal(t, []string{"f.txt: 0"}, res.Lines)
	assert.Zero(t, res.LinesRead)
}

func TestScanReadErrorKeepsPartialOutput(t *testing.T) {
	boom := errors.New("device gone")
	src := &failingSource{lines: []string{"foo", "bar"}, err: boom}

	res, err := Scan("f.txt", src, &containsMatcher{sub: "foo"}, DisplayConfig{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "line 3")
	assert.Equal(t, []string{"foo"}, res.Lines)
}

func TestScanReadErrorDuringAfterContext(t *testing.T) {
	boom := errors.New("permission revoked")
	src := &failingSource{lines: []string{"foo"}, err: boom}

	res, err := Scan("f.txt", src, &containsMatcher{sub: "foo"}, DisplayConfig{ContextAfter: 2})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"foo"}, res.Lines)
}

func TestScanRejectsNegativeContext(t *testing.T) {
	_, err := Scan("f.txt", NewSliceSource(nil), &containsMatcher{}, DisplayConfig{ContextAfter: -1})
	assert.Error(t, err)
}

func TestScanFromReaderSource(t *testing.T) {
	src := NewReaderSource(strings.NewReader("foo\r\nbar\nfoo"))

	res, err := Scan("f.txt", src, &containsMatcher{sub: "foo"}, DisplayConfig{ShowLineNumbers: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"1:foo", "3:foo"}, res.Lines)

	_, err = src.Next()
	assert.ErrorIs(t, err, io.EOF)
}
