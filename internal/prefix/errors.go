package prefix

import (
	"fmt"
	"path/filepath"

	"github.com/adrianmusante/sequential-datetime-prefix/internal/fs"
)

// Op identifies the directory operation that failed.
type Op string

const (
	OpCreate Op = "create"
	OpList   Op = "list"
)

// DirectoryAccessError reports that the primary directory could not be
// created or listed. It is fatal for the invocation.
type DirectoryAccessError struct {
	Op   Op
	Path string // absolute, except when the working directory cannot be resolved
	Err  error
}

func (e *DirectoryAccessError) Error() string {
	name := filepath.Base(e.Path)
	switch {
	case e.Op == OpCreate:
		return fmt.Sprintf("could not create folder %q.\n"+
			"Please check that you have permission to create folders in this location:\n  %s\n"+
			"Cause: %v", name, e.Path, e.Err)
	case fs.IsPermissionError(e.Err):
		return fmt.Sprintf("permission denied: cannot access folder %q.\n"+
			"Please check that you have permission to read this folder:\n  %s", name, e.Path)
	case fs.IsNotDirError(e.Err):
		return fmt.Sprintf("%q is not a folder.\n"+
			"Please pass a directory path (or a path that does not exist yet):\n  %s", name, e.Path)
	default:
		return fmt.Sprintf("failed to access folder %q.\nError: %v\nPath: %s", name, e.Err, e.Path)
	}
}

func (e *DirectoryAccessError) Unwrap() error { return e.Err }

// NoAvailableLetterError reports that every letter a-z is already used for
// DatePrefix across the scanned directories.
type NoAvailableLetterError struct {
	DatePrefix string
	Dir        string // absolute target directory
}

func (e *NoAvailableLetterError) Error() string {
	return fmt.Sprintf("no available prefixes for today (%s) in folder %q.\n"+
		"Path: %s\n"+
		"All letters a-z have been used. Consider:\n"+
		"  1. Using a different date format with --format\n"+
		"  2. Moving some files to an archive folder\n"+
		"  3. Waiting until tomorrow to create more files", e.DatePrefix, filepath.Base(e.Dir), e.Dir)
}
