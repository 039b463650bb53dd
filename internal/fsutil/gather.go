package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// Matcher decides whether a file path belongs in a result set.
type Matcher interface {
	Matches(path string) bool
}

// MatcherFunc adapts a plain function to Matcher.
type MatcherFunc func(path string) bool

// Matches calls f(path).
func (f MatcherFunc) Matches(path string) bool {
	return f(path)
}

// GatherFilesThatMatchCriteria walks baseDir depth first and returns the
// absolute paths of all files whose path satisfies m, sorted.
//
// m receives baseDir joined with the file's relative path. Directories are
// never returned. A symlink is returned when it resolves to a regular file;
// symlinked directories are not entered. Any unreadable directory fails the
// whole call instead of yielding a partial result.
func GatherFilesThatMatchCriteria(baseDir string, m Matcher) ([]string, error) {
	info, err := os.Stat(baseDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: '%s'", ErrNotADirectoryOrMissing, baseDir)
	}

	// WalkDir does not descend into a symlinked root unless it ends in a separator
	root := baseDir
	if linfo, err := os.Lstat(baseDir); err == nil && linfo.Mode()&fs.ModeSymlink != 0 {
		root = baseDir + string(filepath.Separator)
	}

	var gathered []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		if !d.Type().IsRegular() {
			if d.Type()&fs.ModeSymlink == 0 {
				return nil
			}
			target, err := os.Stat(path)
			if err != nil || !target.Mode().IsRegular() {
				return nil
			}
		}

		if !m.Matches(path) {
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		gathered = append(gathered, abs)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to walk %s: %w", ErrReadFailed, baseDir, err)
	}

	slices.Sort(gathered)
	return slices.Compact(gathered), nil
}
