package scan

import (
	"strconv"
	"strings"
)

// Separator is printed after each block of context output.
const Separator = "-----------"

// Format renders a single output line.
//
// The filename prefix is written when filenames are shown or in names-only
// mode, which always prefixes. Names-only mode stops there. Otherwise the
// optional line number and the raw text follow.
func Format(fileName, text string, lineNumber int, cfg DisplayConfig) string {
	var b strings.Builder

	if cfg.ShowFilenames || cfg.NamesOnly {
		b.WriteString(fileName)
		b.WriteByte(':')
	}

	if cfg.NamesOnly {
		return b.String()
	}

	if cfg.ShowLineNumbers {
		b.WriteString(strconv.Itoa(lineNumber))
		b.WriteByte(':')
	}
	b.WriteString(text)

	return b.String()
}

// Summary renders the count-only record for a file.
func Summary(fileName string, matchCount int) string {
	return fileName + ": " + strconv.Itoa(matchCount)
}
