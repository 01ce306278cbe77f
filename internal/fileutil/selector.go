package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoSuchDirectory is returned when the directory part of a selector does not exist.
var ErrNoSuchDirectory = errors.New("no such directory or file found")

// Selector is a file selector split into the directory to search and the
// glob matched against file names inside it.
type Selector struct {
	Dir  string
	Glob string
}

// ParseSelector splits a selector into directory and glob.
//
//	"." or "*"         every file in workDir
//	"*.txt"            glob matched in workDir
//	`logs\*.txt`       glob matched in workDir/logs
//	"logs/*.txt"       same, with a forward slash
//
// Relative directories are resolved against workDir.
func ParseSelector(selector, workDir string) (Selector, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return Selector{}, fmt.Errorf("empty file selector")
	}

	if selector == "." || selector == "*" {
		return Selector{Dir: workDir, Glob: "*"}, nil
	}

	idx := strings.LastIndexAny(selector, `\/`)
	if idx == -1 {
		return Selector{Dir: workDir, Glob: selector}, nil
	}

	dir := selector[:idx]
	glob := selector[idx+1:]
	if dir == "" {
		dir = string(filepath.Separator)
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(workDir, dir)
	}
	if glob == "" {
		glob = "*"
	}

	return Selector{Dir: filepath.Clean(dir), Glob: glob}, nil
}

// ResolveOptions configures selector resolution.
type ResolveOptions struct {
	// WorkDir anchors relative selectors; empty means the process working directory
	WorkDir     string
	Recursive   bool
	ExcludeDirs []string
	SkipHidden  bool
}

// ResolveResult is the outcome of resolving one or more selectors.
type ResolveResult struct {
	// Files is the ordered list of regular files to search
	Files []File
	// Directories lists matched entries skipped because they are directories
	Directories []string
	// Errors lists traversal failures. When non-empty, Files is empty.
	Errors []error
}

// Resolve turns a selector into the ordered list of files to search.
//
// A selector whose directory part is a regular file resolves to that file.
// A missing directory fails with ErrNoSuchDirectory. Traversal errors below
// the directory do not fail the call; they are returned in Errors and the
// file list is dropped so that nothing is searched.
func Resolve(selector string, opts ResolveOptions) (*ResolveResult, error) {
	workDir, err := workingDir(opts.WorkDir)
	if err != nil {
		return nil, err
	}

	sel, err := ParseSelector(selector, workDir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(sel.Dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchDirectory, sel.Dir)
	}

	if !info.IsDir() {
		return &ResolveResult{
			Files: []File{{Path: sel.Dir, Name: filepath.Base(sel.Dir)}},
		}, nil
	}

	scanned, err := ScanDirectory(sel.Dir, ScanOptions{
		Glob:        sel.Glob,
		Recursive:   opts.Recursive,
		ExcludeDirs: opts.ExcludeDirs,
		SkipHidden:  opts.SkipHidden,
	})
	if err != nil {
		return nil, err
	}

	result := &ResolveResult{
		Files:       scanned.Files,
		Directories: scanned.Directories,
		Errors:      scanned.Errors,
	}
	if len(result.Errors) > 0 {
		result.Files = []File{}
	}
	return result, nil
}

// ResolveAll resolves several selectors in order and concatenates their
// files, dropping files already selected by an earlier selector.
func ResolveAll(selectors []string, opts ResolveOptions) (*ResolveResult, error) {
	if len(selectors) == 0 {
		return nil, fmt.Errorf("no file selector given")
	}

	combined := &ResolveResult{
		Files:       make([]File, 0),
		Directories: make([]string, 0),
		Errors:      make([]error, 0),
	}
	seen := make(map[string]bool)

	for _, selector := range selectors {
		res, err := Resolve(selector, opts)
		if err != nil {
			return nil, err
		}
		combined.Directories = append(combined.Directories, res.Directories...)
		combined.Errors = append(combined.Errors, res.Errors...)
		for _, f := range res.Files {
			if seen[f.Path] {
				continue
			}
			seen[f.Path] = true
			combined.Files = append(combined.Files, f)
		}
	}

	if len(combined.Errors) > 0 {
		combined.Files = []File{}
	}
	return combined, nil
}

// SplitSelectors splits a ";"-separated selector list, dropping empty entries.
func SplitSelectors(raw string) []string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func workingDir(dir string) (string, error) {
	if dir != "" {
		return filepath.Abs(dir)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine working directory: %w", err)
	}
	return wd, nil
}
