package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/adrianmusante/sequential-datetime-prefix/internal/datefmt"
	"github.com/adrianmusante/sequential-datetime-prefix/internal/fs"
)

// Template returns a commented JSONC config file holding cfg's format and
// auxiliary directories.
func Template(cfg Config) string {
	var b strings.Builder
	b.WriteString("// " + AppName + " configuration (JSON with comments).\n")
	b.WriteString("{\n")
	b.WriteString("  // Date format: " + strings.Join(datefmt.Selectors(), ", ") + ",\n")
	b.WriteString("  // or any other string, used verbatim as the prefix.\n")
	fmt.Fprintf(&b, "  %q: %q,\n", "format", cfg.Format)
	b.WriteString("  // Extra folders scanned for conflicts (never written to).\n")
	b.WriteString("  // Relative paths are resolved against this file's folder.\n")
	fmt.Fprintf(&b, "  %q: [", "also")
	for i, dir := range cfg.Also {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "\n    %q", dir)
	}
	if len(cfg.Also) > 0 {
		b.WriteString(",\n  ")
	}
	b.WriteString("],\n")
	b.WriteString("}\n")
	return b.String()
}

// Init writes Template(cfg) to path atomically. An existing file is only
// replaced when force is set. Missing parent directories are created.
func Init(path string, cfg Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
		} else if !fs.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}
	if err := fs.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create config folder: %w", err)
	}
	if err := atomic.WriteFile(path, strings.NewReader(Template(cfg))); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
