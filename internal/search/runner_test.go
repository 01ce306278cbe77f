package search

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/sgrep/internal/fileutil"
	"github.com/harrison/sgrep/internal/matcher"
	"github.com/harrison/sgrep/internal/scan"
)

type recordingLogger struct {
	warns  []string
	errors []string
}

func (l *recordingLogger) LogDebug(string)   {}
func (l *recordingLogger) LogInfo(string)    {}
func (l *recordingLogger) LogWarn(m string)  { l.warns = append(l.warns, m) }
func (l *recordingLogger) LogError(m string) { l.errors = append(l.errors, m) }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func writeFile(t *testing.T, dir, name, content string) fileutil.File {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return fileutil.File{Path: path, Name: name}
}

func newRunner(t *testing.T, pattern string, cfg scan.DisplayConfig, out *bytes.Buffer, log Logger) *Runner {
	t.Helper()
	m, err := matcher.New(pattern, matcher.Options{})
	require.NoError(t, err)
	return &Runner{Config: cfg, Matcher: m, Out: out, Logger: log}
}

func TestRunWritesFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "foo\nbar\nfoo\nbaz\n")
	b := writeFile(t, dir, "b.txt", "nothing\nfood\n")

	var out bytes.Buffer
	r := newRunner(t, "foo", scan.DisplayConfig{ShowFilenames: true}, &out, nil)

	summary, err := r.Run([]fileutil.File{a, b})
	require.NoError(t, err)

	assert.Equal(t, "a.txt:foo\na.txt:foo\nb.txt:food\n", out.String())
	assert.Equal(t, 2, summary.Files)
	assert.Equal(t, 3, summary.Matches)
	assert.Empty(t, summary.Failed)
}

func TestRunCountOnly(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "foo\nbar\nfoo\nbaz\n")

	var out bytes.Buffer
	r := newRunner(t, "foo", scan.DisplayConfig{CountOnly: true}, &out, nil)

	_, err := r.Run([]fileutil.File{a})
	require.NoError(t, err)
	assert.Equal(t, "a.txt: 2\n", out.String())
}

func TestRunContinuesAfterMissingFile(t *testing.T) {
	dir := t.TempDir()
	gone := fileutil.File{Path: filepath.Join(dir, "gone.txt"), Name: "gone.txt"}
	ok := writeFile(t, dir, "ok.txt", "foo\n")

	var out bytes.Buffer
	log := &recordingLogger{}
	r := newRunner(t, "foo", scan.DisplayConfig{}, &out, log)

	summary, err := r.Run([]fileutil.File{gone, ok})
	require.NoError(t, err)

	assert.Equal(t, "foo\n", out.String())
	assert.Equal(t, []string{"gone.txt"}, summary.Failed)
	require.Len(t, log.errors, 1)
	assert.True(t, strings.HasPrefix(log.errors[0], "failed to search gone.txt"))
}

func TestRunSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))

	var out bytes.Buffer
	log := &recordingLogger{}
	r := newRunner(t, "foo", scan.DisplayConfig{}, &out, log)

	summary, err := r.Run([]fileutil.File{{Path: sub, Name: "sub"}})
	require.NoError(t, err)

	assert.Empty(t, out.String())
	assert.Equal(t, []string{"sub"}, summary.Skipped)
	assert.Equal(t, []string{"sub is a directory"}, log.warns)
	assert.Zero(t, summary.Files)
}

func TestRunOutputFailureStops(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", strings.Repeat("foo\n", 10000))

	m, err := matcher.New("foo", matcher.Options{})
	require.NoError(t, err)
	r := &Runner{Matcher: m, Out: failingWriter{}}

	_, err = r.Run([]fileutil.File{a})
	assert.ErrorContains(t, err, "failed to write output")
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	var out bytes.Buffer
	r := newRunner(t, "foo", scan.DisplayConfig{ContextBefore: -1}, &out, nil)

	_, err := r.Run(nil)
	assert.Error(t, err)
}
