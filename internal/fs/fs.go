package fs

import (
	"errors"
	iofs "io/fs"
	"os"
)

// DirPerm is the mode used for directories created on demand.
const DirPerm = 0o755

// ListNames returns the entry names of dir, in directory order.
// Only names are read; file contents are never touched.
func ListNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, DirPerm)
}

// IsNotExist reports whether err means the path does not exist.
func IsNotExist(err error) bool {
	return errors.Is(err, iofs.ErrNotExist)
}

// CreateError wraps the failure to create a directory that did not exist.
type CreateError struct {
	Err error
}

func (e *CreateError) Error() string { return "create directory: " + e.Err.Error() }

func (e *CreateError) Unwrap() error { return e.Err }

// ListOrCreate lists dir, creating it first when it does not exist.
//
// created is true when the directory was missing and has been created; the
// returned listing is then empty. A failed creation is reported as
// *CreateError; any other failure is returned as-is so the caller can decide
// how fatal it is.
func ListOrCreate(dir string) (names []string, created bool, err error) {
	names, err = ListNames(dir)
	if err == nil {
		return names, false, nil
	}
	if !IsNotExist(err) {
		return nil, false, err
	}
	if err := EnsureDir(dir); err != nil {
		return nil, false, &CreateError{Err: err}
	}
	return nil, true, nil
}
