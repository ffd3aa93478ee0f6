// Package config builds the validated configuration for a prefix run:
// defaults, global and project JSONC files, then environment and flag
// overrides applied by the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/adrianmusante/sequential-datetime-prefix/internal/datefmt"
	"github.com/adrianmusante/sequential-datetime-prefix/internal/fs"
)

// AppName names the global config directory.
const AppName = "sequential-datetime-prefix"

// ProjectFileName is looked up in the working directory.
const ProjectFileName = ".seqprefix.json"

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigRead     = errors.New("cannot read config file")
	ErrConfigInvalid  = errors.New("invalid config file")
	ErrConfigExists   = errors.New("config file already exists")
	ErrFormatEmpty    = errors.New("format cannot be empty")
	ErrDirEmpty       = errors.New("target directory is required")
)

type Config struct {
	Directory string   `json:"-"`
	Also      []string `json:"also"`
	Format    string   `json:"format"`
	Verbose   bool     `json:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string `json:"global,omitempty"`
	Project string `json:"project,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Also:   []string{},
		Format: datefmt.Default,
	}
}

type LoadOptions struct {
	// WorkDir is where the project file is looked up and what an explicit
	// relative ConfigPath is resolved against.
	WorkDir string
	// ConfigPath names an explicit config file. It must exist.
	ConfigPath string
	// Env overrides the process environment for XDG_CONFIG_HOME lookups.
	Env []string
}

// Load merges, lowest precedence first: defaults, the global config file,
// then the project (or explicit) config file. Environment and flags are
// applied by the caller on top of the result.
func Load(opts LoadOptions) (Config, Sources, error) {
	cfg := Default()
	var sources Sources

	if p := GlobalPath(opts.Env); p != "" {
		fileCfg, loaded, err := loadFile(p, false)
		if err != nil {
			return Config{}, Sources{}, err
		}
		if loaded {
			sources.Global = p
			cfg = merge(cfg, fileCfg)
		}
	}

	projectPath, mustExist := ProjectPath(opts.WorkDir), false
	if opts.ConfigPath != "" {
		projectPath, mustExist = opts.ConfigPath, true
		if !filepath.IsAbs(projectPath) {
			projectPath = filepath.Join(opts.WorkDir, projectPath)
		}
	}
	fileCfg, loaded, err := loadFile(projectPath, mustExist)
	if err != nil {
		return Config{}, Sources{}, err
	}
	if loaded {
		sources.Project = projectPath
		cfg = merge(cfg, fileCfg)
	}

	return cfg, sources, nil
}

// GlobalPath returns $XDG_CONFIG_HOME/<app>/config.json, falling back to
// ~/.config/<app>/config.json. It is empty when no home can be determined.
func GlobalPath(env []string) string {
	for _, e := range env {
		if after, ok := strings.CutPrefix(e, "XDG_CONFIG_HOME="); ok && after != "" {
			return filepath.Join(after, AppName, "config.json")
		}
	}
	if env == nil {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName, "config.json")
		}
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", AppName, "config.json")
}

// ProjectPath returns the project config location for workDir.
func ProjectPath(workDir string) string {
	return filepath.Join(workDir, ProjectFileName)
}

func loadFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if !mustExist {
			return Config{}, false, nil
		}
		if fs.IsNotExist(err) {
			return Config{}, false, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigRead, path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	// Relative auxiliary directories belong to the file that names them.
	base := filepath.Dir(path)
	for i, dir := range cfg.Also {
		abs, err := fs.ResolveRelativeTo(base, dir)
		if err != nil {
			return Config{}, false, fmt.Errorf("%w %s: also[%d]: %w", ErrConfigInvalid, path, i, err)
		}
		cfg.Also[i] = abs
	}
	return cfg, true, nil
}

func parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var raw struct {
		Format *string  `json:"format"`
		Also   []string `json:"also"`
	}
	if err := json.Unmarshal(standardized, &raw); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	var cfg Config
	if raw.Format != nil {
		if *raw.Format == "" {
			return Config{}, ErrFormatEmpty
		}
		cfg.Format = *raw.Format
	}
	for _, dir := range raw.Also {
		if strings.TrimSpace(dir) != "" {
			cfg.Also = append(cfg.Also, dir)
		}
	}
	return cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.Format != "" {
		base.Format = overlay.Format
	}
	if len(overlay.Also) > 0 {
		base.Also = append(append([]string{}, base.Also...), overlay.Also...)
	}
	return base
}

// Finalize resolves the target directory, normalizes the auxiliary list
// (absolute, deduplicated, without the target itself) and validates the
// result.
func Finalize(cfg Config) (Config, error) {
	if strings.TrimSpace(cfg.Directory) == "" {
		return Config{}, ErrDirEmpty
	}
	if cfg.Format == "" {
		return Config{}, ErrFormatEmpty
	}

	dir, err := fs.ResolveAbsPath(cfg.Directory)
	if err != nil {
		return Config{}, fmt.Errorf("resolve %s: %w", cfg.Directory, err)
	}
	also, err := fs.UniquePaths(cfg.Also, dir)
	if err != nil {
		return Config{}, fmt.Errorf("resolve additional folders: %w", err)
	}

	return Config{
		Directory: dir,
		Also:      also,
		Format:    cfg.Format,
		Verbose:   cfg.Verbose,
	}, nil
}

// FormatJSON returns cfg and the loaded sources as indented JSON.
func FormatJSON(cfg Config, sources Sources) (string, error) {
	data, err := json.MarshalIndent(struct {
		Config
		Sources Sources `json:"sources"`
	}{cfg, sources}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format config: %w", err)
	}
	return string(data), nil
}
