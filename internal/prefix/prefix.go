// Package prefix resolves the next free sequential prefix (date + letter + "_")
// for a directory, also taking auxiliary directories into account.
package prefix

import (
	"context"
	"errors"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/adrianmusante/sequential-datetime-prefix/internal/fs"
	"github.com/adrianmusante/sequential-datetime-prefix/internal/logging"
)

type Options struct {
	// Dir is the target directory. It is created when missing.
	Dir string
	// Also lists directories scanned only for conflicts. Missing ones are
	// created; any failure on them is skipped.
	Also []string
	// DatePrefix is the already formatted date part.
	DatePrefix string
	// Verbose enables warnings for skipped auxiliary directories.
	Verbose bool
}

type Result struct {
	Prefix  string
	Used    []string // letters already taken, sorted
	Dir     string   // absolute target directory
	Created []string // directories created during this run
}

// listing is the outcome of scanning one directory.
type listing struct {
	path    string
	names   []string
	created bool
}

// Run lists the target and auxiliary directories and returns the first free
// prefix for opts.DatePrefix.
//
// The target is scanned first: when it fails, the run stops with a
// *DirectoryAccessError before any auxiliary directory is touched. When all
// 26 letters are taken the error is *NoAvailableLetterError.
func Run(ctx context.Context, opts Options) (Result, error) {
	log := logging.FromContext(ctx)

	dir, err := fs.ResolveAbsPath(opts.Dir)
	if err != nil {
		// Only reachable when the working directory is gone; the path stays
		// relative in that case.
		return Result{}, &DirectoryAccessError{Op: OpList, Path: filepath.Clean(opts.Dir), Err: err}
	}

	log.Debug("scanning", "dir", dir, "pattern", opts.DatePrefix+"[a-z]_*")

	target, err := scanTarget(dir)
	if err != nil {
		return Result{}, err
	}

	// Each task writes only its own slot, so no locking is needed before Wait.
	aux := make([]*listing, len(opts.Also))
	var g errgroup.Group
	for i, d := range opts.Also {
		i, d := i, d // per-iteration copies (Go < 1.22 loop semantics)
		g.Go(func() error {
			aux[i] = scanAux(ctx, d, opts.Verbose)
			return nil
		})
	}
	_ = g.Wait() // auxiliary scans never fail

	var names, created []string
	for _, l := range append([]*listing{target}, aux...) {
		if l == nil {
			continue
		}
		if l.created {
			created = append(created, l.path)
		}
		names = append(names, l.names...)
	}

	used := Collect(names, opts.DatePrefix)
	letter, ok := used.Next()
	if !ok {
		return Result{}, &NoAvailableLetterError{DatePrefix: opts.DatePrefix, Dir: dir}
	}

	res := Result{
		Prefix:  opts.DatePrefix + string(rune(letter)) + string(Delimiter),
		Used:    used.Sorted(),
		Dir:     dir,
		Created: created,
	}
	log.Debug("next available prefix", "prefix", res.Prefix)
	return res, nil
}

func scanTarget(dir string) (*listing, error) {
	names, created, err := fs.ListOrCreate(dir)
	if err == nil {
		return &listing{path: dir, names: names, created: created}, nil
	}
	var createErr *fs.CreateError
	if errors.As(err, &createErr) {
		return nil, &DirectoryAccessError{Op: OpCreate, Path: dir, Err: createErr.Err}
	}
	return nil, &DirectoryAccessError{Op: OpList, Path: dir, Err: err}
}

// scanAux never fails: a directory that cannot be read only narrows the set
// of names checked for conflicts.
func scanAux(ctx context.Context, dir string, verbose bool) *listing {
	log := logging.FromContext(ctx)

	abs, err := fs.ResolveAbsPath(dir)
	if err != nil {
		abs = dir
	}
	names, created, err := fs.ListOrCreate(abs)
	if err != nil {
		if verbose {
			log.Warn(auxFailureReason(err), "dir", abs, "err", err)
		}
		return nil
	}
	return &listing{path: abs, names: names, created: created}
}

func auxFailureReason(err error) string {
	var createErr *fs.CreateError
	switch {
	case errors.As(err, &createErr):
		return "could not create additional folder"
	case fs.IsPermissionError(err):
		return "permission denied for additional folder"
	default:
		return "failed to access additional folder"
	}
}
