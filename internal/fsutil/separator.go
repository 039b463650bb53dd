package fsutil

import (
	"fmt"
	"os"
	"regexp"
)

// ReplaceFileSeparator replaces every match of the regular expression
// pattern in path with replacement. Replacement may reference groups with $1.
// The path is treated as plain text; the filesystem is not touched.
func ReplaceFileSeparator(path, pattern, replacement string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("%w: invalid separator pattern %q: %w", ErrConfiguration, pattern, err)
	}
	return re.ReplaceAllString(path, replacement), nil
}

// platformSeparator matches the host path separator literally.
var platformSeparator = regexp.MustCompile(regexp.QuoteMeta(string(os.PathSeparator)))

// ReplacePlatformSeparator replaces every host path separator in path with replacement.
func ReplacePlatformSeparator(path, replacement string) string {
	return platformSeparator.ReplaceAllLiteralString(path, replacement)
}
