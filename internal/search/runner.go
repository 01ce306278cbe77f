// Package search runs the line scanner over every selected file, one file
// at a time, and writes the results in order.
package search

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/harrison/sgrep/internal/fileutil"
	"github.com/harrison/sgrep/internal/scan"
)

// Logger receives diagnostics about the run.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}

// Summary aggregates the outcome of a run.
type Summary struct {
	// Files is the number of files scanned, including those that failed midway
	Files int
	// Matches is the total number of matching lines
	Matches int
	// Skipped lists entries that were not regular files
	Skipped []string
	// Failed lists the files whose scan ended with an I/O error
	Failed []string
}

// Runner scans files sequentially with a shared configuration.
type Runner struct {
	Config  scan.DisplayConfig
	Matcher scan.Matcher
	Out     io.Writer
	Logger  Logger
}

// Run scans files in order. A file that cannot be opened or read is
// reported and the run moves on; only a failure to write output stops it.
func (r *Runner) Run(files []fileutil.File) (*Summary, error) {
	if err := r.Config.Validate(); err != nil {
		return nil, err
	}

	log := r.logger()
	out := bufio.NewWriter(r.Out)
	summary := &Summary{
		Skipped: make([]string, 0),
		Failed:  make([]string, 0),
	}

	for _, f := range files {
		res, err := r.searchFile(f)
		if res != nil {
			summary.Files++
			summary.Matches += res.MatchCount
			for _, line := range res.Lines {
				if _, werr := fmt.Fprintln(out, line); werr != nil {
					return summary, fmt.Errorf("failed to write output: %w", werr)
				}
			}
			log.LogDebug(fmt.Sprintf("%s: %d line(s), %d match(es)", f.Name, res.LinesRead, res.MatchCount))
		}

		if errors.Is(err, errIsDirectory) {
			log.LogWarn(fmt.Sprintf("%s is a directory", f.Name))
			summary.Skipped = append(summary.Skipped, f.Name)
			continue
		}
		if err != nil {
			log.LogError(fmt.Sprintf("failed to search %s: %v", f.Name, err))
			summary.Failed = append(summary.Failed, f.Name)
		}
	}

	if err := out.Flush(); err != nil {
		return summary, fmt.Errorf("failed to write output: %w", err)
	}
	return summary, nil
}

var errIsDirectory = errors.New("is a directory")

// searchFile scans one file. The handle is closed on every return path.
func (r *Runner) searchFile(f fileutil.File) (*scan.Result, error) {
	info, err := os.Stat(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to access file: %w", err)
	}
	if info.IsDir() {
		return nil, errIsDirectory
	}

	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return scan.Scan(f.Name, scan.NewReaderSource(file), r.Matcher, r.Config)
}

func (r *Runner) logger() Logger {
	if r.Logger == nil {
		return nopLogger{}
	}
	return r.Logger
}

type nopLogger struct{}

func (nopLogger) LogDebug(string) {}
func (nopLogger) LogInfo(string)  {}
func (nopLogger) LogWarn(string)  {}
func (nopLogger) LogError(string) {}
