// Package display renders user-facing warnings for the end of a run.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning to out, in yellow when colored is true.
func (w Warning) Display(out io.Writer, colored bool) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		if len(w.Files) == 1 {
			b.WriteString("    Affected file:\n")
		} else {
			b.WriteString("    Affected files:\n")
		}
		for i, file := range w.Files {
			fmt.Fprintf(&b, "      %d. %s\n", i+1, file)
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if !colored {
		fmt.Fprint(out, b.String())
		return
	}

	yellow := color.New(color.FgYellow)
	yellow.EnableColor()
	fmt.Fprint(out, yellow.Sprint(b.String()))
}

// UnreadableFiles builds the warning shown when files failed mid-search.
func UnreadableFiles(files []string) Warning {
	title := fmt.Sprintf("%d %s could not be read", len(files), plural(len(files), "file", "files"))
	return Warning{
		Title:      title,
		Message:    "Output for these files is missing or incomplete.",
		Files:      files,
		Suggestion: "Check that the files still exist and are readable, then search again.",
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
