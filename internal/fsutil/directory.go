package fsutil

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DeleteDirectory removes the directory at path.
// Without recursive, only an empty directory is removed; a non-empty one
// fails with ErrDeleteFailed and is left untouched.
func DeleteDirectory(path string, recursive bool) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: '%s' is either a file or it does not exist", ErrNotADirectoryOrMissing, path)
	}

	if !recursive {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("%w: could not delete directory '%s', probably because it is not empty: %w", ErrDeleteFailed, path, err)
		}
		return nil
	}

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("%w: failed to remove directory tree %s: %w", ErrDeleteFailed, path, err)
	}
	return nil
}

// CopyDirectory copies every file and subdirectory of src into dst, creating
// dst and any intermediate directories. File modes and modification times are
// preserved and symlinks are recreated as symlinks.
//
// The copy is not atomic: on failure, whatever was copied so far stays in dst.
func CopyDirectory(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("%w: source %s: %w", ErrCopyFailed, src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: source %s is not a directory", ErrCopyFailed, src)
	}

	absSrc, err := filepath.Abs(src)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve %s: %w", ErrCopyFailed, src, err)
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve %s: %w", ErrCopyFailed, dst, err)
	}
	if absSrc == absDst {
		return fmt.Errorf("%w: source and destination are the same: %s", ErrCopyFailed, absSrc)
	}

	// A destination nested in the source must not be copied into itself
	nested := strings.HasPrefix(absDst, absSrc+string(filepath.Separator))

	err = filepath.WalkDir(absSrc, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if nested && path == absDst {
			return filepath.SkipDir
		}

		rel, err := filepath.Rel(absSrc, path)
		if err != nil {
			return err
		}
		target := filepath.Join(absDst, rel)

		switch {
		case d.IsDir():
			return copyDirEntry(path, target)
		case d.Type()&fs.ModeSymlink != 0:
			return copySymlink(path, target)
		default:
			return copyFile(path, target)
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %s to %s: %w", ErrCopyFailed, src, dst, err)
	}

	return nil
}

func copyDirEntry(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.MkdirAll(dst, info.Mode().Perm()|0700)
}

func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return err
	}
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.Symlink(target, dst)
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	if err = out.Chmod(info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
