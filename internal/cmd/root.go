package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// ErrUsage marks errors that were already reported together with the usage text.
var ErrUsage = errors.New("usage error")

// NewRootCommand creates and returns the root cobra command for sgrep
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sgrep -sP <pattern> -fP <selector> [flags]",
		Short: "Search files for lines matching a regular expression",
		Long: `sgrep scans the files picked by a selector line by line and prints
the lines that match a regular expression, optionally with context.

A selector is "." or "*" for every file in the current directory, a glob
such as "*.log", or a directory and glob such as "logs\*.log". Several
selectors can be joined with ";".

Defaults can be set in .sgrep/config.yaml (or the file named by
SGREP_CONFIG); command-line flags override them.

Examples:
  sgrep -sP error -fP "*.log"
  sgrep -n -B 2 -A 1 -sP "timeout" -fP "logs\*.txt"
  sgrep -R -c -sP TODO -fP "*.go"
  sgrep -i -w foo .`,
		Version: Version,
		Args:    cobra.MaximumNArgs(2),
		// Errors are reported by runSearch or the flag error handler
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSearch,
	}

	f := cmd.Flags()
	f.BoolP("ignore-case", "i", false, "Ignore case sensitivity")
	f.BoolP("files-with-matches", "l", false, "Show only file names")
	f.BoolP("line-number", "n", false, "Show line numbers")
	f.BoolP("recursive", "R", false, "Recursively match files")
	f.BoolP("no-filename", "h", false, "Do not show the names of the files")
	f.BoolP("word-regexp", "w", false, "Match only whole words")
	f.BoolP("count", "c", false, "Show the number of matches found")
	f.BoolP("invert-match", "v", false, "Show lines with no matches")
	f.IntP("after-context", "A", 0, "Show this number of lines after a match")
	f.IntP("before-context", "B", 0, "Show this number of lines before a match")
	f.String(flagSearchPattern, "", "Pattern for matching in files")
	f.String(flagFilePattern, "", `Pattern for searching files (separate several with ";")`)
	// Defined here so cobra does not claim -h for help
	f.Bool("help", false, "Show the usage pattern and options")
	f.String("config", "", "Path to config file (default: nearest .sgrep/config.yaml)")
	f.String("log-level", "", "Diagnostic verbosity: trace, debug, info, warn, error")
	f.String("color", "", "Color diagnostics: auto, always, never")
	f.String("output", "", "Write results to this file instead of standard output")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError(c, err.Error())
	})

	return cmd
}

// usageError prints message and the usage text, then returns an ErrUsage.
func usageError(c *cobra.Command, message string) error {
	c.PrintErrln(message)
	_ = c.Usage()
	return fmt.Errorf("%w: %s", ErrUsage, message)
}
