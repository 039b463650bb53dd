// Package fsutil provides stateless filesystem helpers: directory delete and
// copy, temporary files, line reading and writing, content comparison,
// criteria based file discovery and line diffs between two files.
//
// Every failure wraps one of the sentinel kinds below so callers can branch
// with errors.Is. No operation retries or rolls back; a failed copy or write
// may leave partial results on disk.
package fsutil

import "errors"

var (
	// ErrNotADirectoryOrMissing is returned when a path that must be an
	// existing directory is missing or is something else.
	ErrNotADirectoryOrMissing = errors.New("not a directory or does not exist")

	// ErrDeleteFailed is returned when the OS refuses a delete, including a
	// non-recursive delete of a non-empty directory.
	ErrDeleteFailed = errors.New("delete failed")

	// ErrCopyFailed is returned on any I/O error during a directory copy.
	ErrCopyFailed = errors.New("copy failed")

	// ErrTempFileCreationFailed is returned when a temporary file cannot be created.
	ErrTempFileCreationFailed = errors.New("temporary file creation failed")

	// ErrReadFailed is returned when a file or directory cannot be read as text.
	ErrReadFailed = errors.New("read failed")

	// ErrWriteFailed is returned on any I/O error while writing a file.
	ErrWriteFailed = errors.New("write failed")

	// ErrConfiguration is returned for caller errors such as an invalid pattern.
	ErrConfiguration = errors.New("configuration error")

	// ErrPatchConflict is returned when a delta does not match the lines it is applied to.
	ErrPatchConflict = errors.New("patch conflict")
)
