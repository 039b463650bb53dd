package fsutil

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultTempFilePrefix is used when no prefix is given.
const DefaultTempFilePrefix = "tempFile"

// CreateDefaultTemporaryFile creates a temporary file named with DefaultTempFilePrefix.
func CreateDefaultTemporaryFile() (string, error) {
	return CreateTemporaryFile(DefaultTempFilePrefix)
}

// CreateTemporaryFile creates a new empty file in the system temp directory
// and returns its path. The name is the prefix, a random token and the
// current time in milliseconds. The file is created exclusively, so
// concurrent callers never receive the same path.
func CreateTemporaryFile(prefix string) (string, error) {
	if prefix == "" {
		prefix = DefaultTempFilePrefix
	}

	pattern := prefix + "*-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	file, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("%w: prefix %q: %w", ErrTempFileCreationFailed, prefix, err)
	}

	path := file.Name()
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("%w: failed to close %s: %w", ErrTempFileCreationFailed, path, err)
	}
	return path, nil
}
