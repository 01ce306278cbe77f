// Package fileutil turns file selectors into the ordered list of files to search.
//
// # Selectors
//
// A selector names a directory and a glob matched against file names in it:
//
//	.  or  *        every file in the working directory
//	*.log           files in the working directory matching *.log
//	logs\*.log      files in ./logs matching *.log
//	logs/*.log      same, with a forward slash
//
// Several selectors may be joined with ";" and resolved together with
// ResolveAll; files selected twice are searched once.
//
// # Scanning
//
// ScanDirectory visits the immediate children of the directory, or the whole
// tree when Recursive is set. The glob is matched against the base name of
// each entry with filepath.Match. Matching entries that are directories are
// not searched; they are returned in Directories so the caller can report
// them. Excluded and (optionally) hidden directories are never descended into.
//
// Output is sorted by path so runs are deterministic.
//
// # Errors
//
// Only a missing directory (ErrNoSuchDirectory) or a malformed glob
// (ErrBadGlob) fail resolution outright. Failures while walking the tree,
// such as a permission error on a subdirectory, are collected in Errors;
// the file list is then empty, so the caller reports the problems and skips
// searching instead of aborting.
//
// Usage:
//
//	res, err := fileutil.Resolve(`src\*.go`, fileutil.ResolveOptions{Recursive: true})
//	if err != nil {
//	    return err
//	}
//	for _, f := range res.Files {
//	    fmt.Println(f.Name)
//	}
package fileutil
