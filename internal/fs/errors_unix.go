//go:build !windows

package fs

import (
	"errors"
	iofs "io/fs"

	"golang.org/x/sys/unix"
)

// IsPermissionError reports whether err is an access failure the user can fix
// by changing permissions or mount options (EACCES, EPERM, EROFS).
func IsPermissionError(err error) bool {
	return errors.Is(err, iofs.ErrPermission) || errors.Is(err, unix.EROFS)
}

// IsNotDirError reports whether err was caused by a path component that is
// not a directory.
func IsNotDirError(err error) bool {
	return errors.Is(err, unix.ENOTDIR)
}
