//go:build windows

package fs

import (
	"errors"
	iofs "io/fs"

	"golang.org/x/sys/windows"
)

func IsPermissionError(err error) bool {
	return errors.Is(err, iofs.ErrPermission) ||
		errors.Is(err, windows.ERROR_ACCESS_DENIED) ||
		errors.Is(err, windows.ERROR_SHARING_VIOLATION) ||
		errors.Is(err, windows.ERROR_WRITE_PROTECT)
}

func IsNotDirError(err error) bool {
	return errors.Is(err, windows.ERROR_DIRECTORY)
}
