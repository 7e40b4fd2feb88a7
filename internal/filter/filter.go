// Package filter expands file and directory arguments into the list of files
// to process, selecting directory contents with include/exclude globs.
package filter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNoFiles is returned when no argument yields a file.
var ErrNoFiles = errors.New("no files matched")

// Rules select files found while walking directories.
// With no includes every file is a candidate. Excludes always win.
type Rules struct {
	Include Patterns
	Exclude Patterns
}

// NewRules compiles include and exclude globs.
func NewRules(include, exclude []string) (Rules, error) {
	inc, err := CompileAll(include)
	if err != nil {
		return Rules{}, fmt.Errorf("include: %w", err)
	}

	exc, err := CompileAll(exclude)
	if err != nil {
		return Rules{}, fmt.Errorf("exclude: %w", err)
	}

	return Rules{Include: inc, Exclude: exc}, nil
}

// Allows reports whether a walked path is selected.
func (r Rules) Allows(path string) bool {
	if r.Exclude.Any(path) {
		return false
	}

	return len(r.Include) == 0 || r.Include.Any(path)
}

// Selection is the outcome of Resolve.
type Selection struct {
	// Files in argument order, then walk order, without duplicates.
	Files []string
	// Scanned counts every regular file considered.
	Scanned int
	// Skipped counts walked files rejected by the rules.
	Skipped int
}

// Resolve expands args. Files named explicitly are always kept.
// Directories are walked recursively and their files filtered by rules.
func Resolve(args []string, rules Rules) (Selection, error) {
	var sel Selection

	seen := make(map[string]struct{})
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		sel.Files = append(sel.Files, path)
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return Selection{}, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			sel.Scanned++
			add(arg)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !entry.Type().IsRegular() {
				return nil
			}

			sel.Scanned++

			if !rules.Allows(filepath.ToSlash(path)) {
				sel.Skipped++

				return nil
			}

			add(path)

			return nil
		})
		if err != nil {
			return Selection{}, fmt.Errorf("walking %q: %w", arg, err)
		}
	}

	if len(sel.Files) == 0 {
		return sel, fmt.Errorf("%w: %v", ErrNoFiles, args)
	}

	return sel, nil
}
