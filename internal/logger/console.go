// Package logger provides leveled diagnostic logging for sgrep.
//
// Search results go to standard output; everything else (skipped
// directories, unreadable files, run summaries) goes through a
// ConsoleLogger, normally on standard error. Implementations are
// thread-safe.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// Color modes accepted by NewConsoleLogger
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ConsoleLogger writes diagnostics to a writer with level filtering.
// Format: "[LEVEL] <message>". The level tag is colored when the writer
// is a terminal or color is forced.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "warn".
// colorMode is one of auto, always, never; auto colors terminals only.
func NewConsoleLogger(writer io.Writer, logLevel string, colorMode string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: useColor(writer, colorMode),
	}
}

// useColor decides whether level tags get ANSI colors.
func useColor(w io.Writer, mode string) bool {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return w != nil
	case ColorNever:
		return false
	}
	return isTerminal(w)
}

// isTerminal reports whether w is a terminal that supports colors.
// NO_COLOR (via color.NoColor) disables detection.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if color.NoColor && (f == os.Stdout || f == os.Stderr) {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}
	return "warn"
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelWarn
	}
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// Colored reports whether output to this logger's writer is colored.
func (cl *ConsoleLogger) Colored() bool {
	return cl.colorOutput
}

// Level returns the active log level.
func (cl *ConsoleLogger) Level() string {
	return cl.logLevel
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

// LogSummary logs the per-run totals at INFO level.
// Format: "[INFO] searched <files> file(s), <matches> match(es), <failed> unreadable"
func (cl *ConsoleLogger) LogSummary(files, matches, failed int) {
	cl.logWithLevel("INFO", fmt.Sprintf("searched %d file(s), %d match(es), %d unreadable", files, matches, failed))
}

// logWithLevel logs a message at the specified level if filtering allows it.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}

	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	var formatted string
	if cl.colorOutput {
		formatted = cl.formatWithColor(level, message)
	} else {
		formatted = fmt.Sprintf("[%s] %s\n", level, message)
	}

	_, _ = io.WriteString(cl.writer, formatted)
}

// formatWithColor formats a log message with ANSI color codes.
func (cl *ConsoleLogger) formatWithColor(level, message string) string {
	var c *color.Color

	switch level {
	case "TRACE":
		c = color.New(color.FgHiBlack)
	case "DEBUG":
		c = color.New(color.FgCyan)
	case "INFO":
		c = color.New(color.FgBlue)
	case "WARN":
		c = color.New(color.FgYellow)
	case "ERROR":
		c = color.New(color.FgRed)
	default:
		return fmt.Sprintf("[%s] %s\n", level, message)
	}

	// Forced colors must survive fatih/color's own terminal detection.
	c.EnableColor()
	return fmt.Sprintf("[%s] %s\n", c.Sprint(level), message)
}
