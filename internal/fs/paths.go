package fs

import (
	"os"
	"path/filepath"
)

// ResolveAbsPath returns a cleaned absolute path.
//
// Symlinks are resolved on the deepest existing ancestor so that a directory
// which does not exist yet (and will be created on demand) compares equal to
// the same directory once it exists, e.g. /var -> /private/var on macOS.
func ResolveAbsPath(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	abs, err := filepath.Abs(filepath.Clean(p))
	if err != nil {
		return "", err
	}

	existing := abs
	var rest []string
	for {
		if _, err := os.Lstat(existing); err == nil {
			break
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return abs, nil
		}
		rest = append([]string{filepath.Base(existing)}, rest...)
		existing = parent
	}

	resolved, err := filepath.EvalSymlinks(existing)
	if err != nil {
		return abs, nil
	}
	return filepath.Join(append([]string{resolved}, rest...)...), nil
}

// ResolveRelativeTo resolves p against base when p is relative, then
// normalizes it like ResolveAbsPath.
func ResolveRelativeTo(base, p string) (string, error) {
	if p != "" && !filepath.IsAbs(p) && base != "" {
		p = filepath.Join(base, p)
	}
	return ResolveAbsPath(p)
}

// UniquePaths resolves every path to its absolute form and drops empty
// entries, duplicates and anything listed in exclude. Order is preserved.
func UniquePaths(paths []string, exclude ...string) ([]string, error) {
	seen := make(map[string]struct{}, len(paths)+len(exclude))
	for _, e := range exclude {
		abs, err := ResolveAbsPath(e)
		if err != nil {
			return nil, err
		}
		seen[abs] = struct{}{}
	}

	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := ResolveAbsPath(p)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[abs]; dup {
			continue
		}
		seen[abs] = struct{}{}
		out = append(out, abs)
	}
	return out, nil
}
