package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
)

func TestListNames_ReturnsEntryNames(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"251015a_notes.md", "readme.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "251015b_sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := ListNames(dir)
	if err != nil {
		t.Fatalf("ListNames: %v", err)
	}
	sort.Strings(got)
	want := []string{"251015a_notes.md", "251015b_sub", "readme.txt"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestListOrCreate_CreatesMissingDirWithParents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	names, created, err := ListOrCreate(dir)
	if err != nil {
		t.Fatalf("ListOrCreate: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true")
	}
	if len(names) != 0 {
		t.Fatalf("expected empty listing, got %v", names)
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		t.Fatalf("expected directory to exist: %v", err)
	}
}

func TestListOrCreate_ExistingDirIsNotCreated(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "x"), nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	names, created, err := ListOrCreate(dir)
	if err != nil {
		t.Fatalf("ListOrCreate: %v", err)
	}
	if created || len(names) != 1 {
		t.Fatalf("created=%v names=%v", created, names)
	}
}

func TestListOrCreate_FileInsteadOfDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(p, []byte("hi"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, _, err := ListOrCreate(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if IsNotExist(err) {
		t.Fatalf("a regular file must not be reported as missing: %v", err)
	}
	if runtime.GOOS != "windows" && !IsNotDirError(err) {
		t.Fatalf("expected not-a-directory error, got %v", err)
	}
}

func TestListOrCreate_PermissionDenied(t *testing.T) {
	// This test can be flaky if executed with elevated privileges (e.g. root).
	if os.Geteuid() == 0 {
		t.Skip("running as root; directory permissions won't prevent reads")
	}
	if runtime.GOOS == "windows" {
		t.Skip("directory permissions are not POSIX on Windows")
	}

	dir := filepath.Join(t.TempDir(), "noread")
	if err := os.Mkdir(dir, 0o000); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	_, _, err := ListOrCreate(dir)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsPermissionError(err) {
		t.Fatalf("expected permission error, got %v", err)
	}
}
