package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrBadGlob is returned when the glob part of a selector is malformed.
var ErrBadGlob = errors.New("invalid file pattern")

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Glob is matched against the base name of every entry
	Glob string
	// Recursive enables recursive directory scanning
	Recursive bool
	// ExcludeDirs is a list of directory names never descended into (e.g., ".git")
	ExcludeDirs []string
	// SkipHidden prunes directories whose name starts with "."
	SkipHidden bool
}

// File is a regular file selected for searching.
type File struct {
	// Path is the absolute path of the file
	Path string
	// Name is the path relative to the scanned directory
	Name string
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files contains the matched regular files, sorted by path
	Files []File
	// Directories contains the matched entries that were directories
	Directories []string
	// Errors contains any errors encountered during scanning
	Errors []error
}

// ScanDirectory walks dir and collects the entries whose base name matches
// opts.Glob. Without Recursive only the immediate children are visited.
// Symbolic links are followed when they point at regular files.
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	glob := opts.Glob
	if glob == "" {
		glob = "*"
	}
	if _, err := filepath.Match(glob, ""); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadGlob, glob, err)
	}

	excludeMap := make(map[string]bool)
	for _, name := range opts.ExcludeDirs {
		excludeMap[name] = true
	}

	result := &ScanResult{
		Files:       make([]File, 0),
		Directories: make([]string, 0),
		Errors:      make([]error, 0),
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			if d != nil && d.IsDir() && path != dir {
				return filepath.SkipDir
			}
			return nil
		}

		if path == dir {
			return nil
		}

		name := d.Name()
		matched, _ := filepath.Match(glob, name)

		isDir := d.IsDir()
		if d.Type()&fs.ModeSymlink != 0 {
			if target, statErr := os.Stat(path); statErr == nil {
				isDir = target.IsDir()
			}
		}

		if isDir {
			if matched {
				result.Directories = append(result.Directories, name)
			}
			if !d.IsDir() {
				// Linked directories are reported but not entered.
				return nil
			}
			if !opts.Recursive || excludeMap[name] || (opts.SkipHidden && strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}

		if !matched {
			return nil
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to resolve path %s: %w", path, err))
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = name
		}

		result.Files = append(result.Files, File{Path: absPath, Name: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})

	return result, nil
}
