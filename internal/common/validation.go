// Package common holds argument validation shared by the fsutils commands.
package common

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ValidateTempPrefix validates a temporary file name prefix
func ValidateTempPrefix(prefix string) error {
	if prefix == "" {
		return nil // Empty selects the default prefix
	}
	if strings.ContainsAny(prefix, `/\`) || strings.ContainsRune(prefix, filepath.Separator) {
		return fmt.Errorf("prefix cannot contain path separators: %s", prefix)
	}
	if prefix == "." || prefix == ".." {
		return fmt.Errorf("prefix cannot be '.' or '..': %s", prefix)
	}
	return nil
}

// ValidateContextLines validates a unified diff context size
func ValidateContextLines(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid context line count: %s", value)
	}
	if n < 0 {
		return fmt.Errorf("context line count cannot be negative, got: %d", n)
	}
	return nil
}

// ValidateBool validates a boolean setting such as "true" or "0"
func ValidateBool(value string) error {
	if _, err := strconv.ParseBool(value); err != nil {
		return fmt.Errorf("invalid boolean value: %s", value)
	}
	return nil
}

// ValidateDistinctPaths validates that two paths do not name the same location
func ValidateDistinctPaths(a, b string) error {
	absA, err := filepath.Abs(a)
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", a, err)
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", b, err)
	}
	if absA == absB {
		return fmt.Errorf("paths must differ: %s", absA)
	}
	return nil
}
