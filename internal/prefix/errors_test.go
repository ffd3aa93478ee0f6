package prefix

import (
	"errors"
	"os"
	"runtime"
	"strings"
	"syscall"
	"testing"

	"github.com/adrianmusante/sequential-datetime-prefix/internal/fs"
)

func TestDirectoryAccessError_Messages(t *testing.T) {
	t.Parallel()

	const path = "/srv/docs/planning"
	cases := []struct {
		name string
		err  *DirectoryAccessError
		want []string
	}{
		{
			name: "create",
			err:  &DirectoryAccessError{Op: OpCreate, Path: path, Err: os.ErrPermission},
			want: []string{`could not create folder "planning"`, path},
		},
		{
			name: "permission",
			err:  &DirectoryAccessError{Op: OpList, Path: path, Err: &os.PathError{Op: "open", Path: path, Err: os.ErrPermission}},
			want: []string{`permission denied: cannot access folder "planning"`, "permission to read", path},
		},
		{
			name: "not_a_dir",
			err:  &DirectoryAccessError{Op: OpList, Path: path, Err: &os.PathError{Op: "readdirent", Path: path, Err: syscall.ENOTDIR}},
			want: []string{`"planning" is not a folder`, path},
		},
		{
			name: "other",
			err:  &DirectoryAccessError{Op: OpList, Path: path, Err: errors.New("input/output error")},
			want: []string{`failed to access folder "planning"`, "input/output error", "Path: " + path},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.name == "not_a_dir" && runtime.GOOS == "windows" {
				t.Skip("ENOTDIR is reported as ERROR_DIRECTORY on Windows")
			}
			msg := tc.err.Error()
			for _, w := range tc.want {
				if !strings.Contains(msg, w) {
					t.Fatalf("expected %q in %q", w, msg)
				}
			}
			if !errors.Is(tc.err, tc.err.Err) {
				t.Fatalf("expected Unwrap to expose the cause")
			}
		})
	}
}

func TestNoAvailableLetterError_Message(t *testing.T) {
	t.Parallel()

	err := &NoAvailableLetterError{DatePrefix: "251015", Dir: "/srv/docs/full"}
	msg := err.Error()
	for _, w := range []string{"(251015)", `"full"`, "/srv/docs/full", "--format", "archive", "tomorrow"} {
		if !strings.Contains(msg, w) {
			t.Fatalf("expected %q in %q", w, msg)
		}
	}
}

func TestAuxFailureReason(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"create", &fs.CreateError{Err: os.ErrPermission}, "could not create additional folder"},
		{"permission", &os.PathError{Op: "open", Path: "/x", Err: os.ErrPermission}, "permission denied for additional folder"},
		{"other", errors.New("boom"), "failed to access additional folder"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := auxFailureReason(tc.err); got != tc.want {
				t.Fatalf("auxFailureReason() = %q, want %q", got, tc.want)
			}
		})
	}
}
