package scan

import "fmt"

// DisplayConfig controls what a scan emits for each file.
// It is resolved once per invocation and shared read-only by every scan.
type DisplayConfig struct {
	// CaseInsensitive and WholeWord describe how the matcher was built.
	// The engine itself does not consult them.
	CaseInsensitive bool
	WholeWord       bool

	// ShowFilenames prefixes every emitted line with "<file>:"
	ShowFilenames bool
	// ShowLineNumbers prefixes every emitted line body with "<n>:"
	ShowLineNumbers bool
	// CountOnly replaces per-line output with a "<file>: <count>" summary
	CountOnly bool
	// InvertMatch emits the lines that do not match instead of those that do
	InvertMatch bool
	// NamesOnly emits the filename prefix without the line body
	NamesOnly bool

	// ContextBefore is the number of lines kept for display before a match
	ContextBefore int
	// ContextAfter is the number of lines read and displayed after a match
	ContextAfter int
}

// Quiet reports whether matched lines are kept out of the output.
func (c DisplayConfig) Quiet() bool {
	return c.CountOnly || c.InvertMatch
}

// Validate checks that the context sizes are usable.
func (c DisplayConfig) Validate() error {
	if c.ContextBefore < 0 {
		return fmt.Errorf("before-context must be >= 0, got %d", c.ContextBefore)
	}
	if c.ContextAfter < 0 {
		return fmt.Errorf("after-context must be >= 0, got %d", c.ContextAfter)
	}
	return nil
}
