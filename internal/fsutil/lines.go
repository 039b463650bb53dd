package fsutil

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode/utf8"
)

// ReadLines reads the file at path and returns its lines without terminators.
func ReadLines(path string) ([]string, error) {
	return ReadLinesWithOptions(path, false)
}

// ReadTrimmedLines reads the file at path, trims every line and drops the
// lines left empty. The result is meant for comparing content, not for
// reproducing the file.
func ReadTrimmedLines(path string) ([]string, error) {
	return ReadLinesWithOptions(path, true)
}

// ReadLinesWithOptions reads the file at path and splits it on "\n", "\r\n"
// or "\r". A terminator at the end of the file does not produce an empty
// last line. With trim set, leading and trailing whitespace is stripped and
// blank lines are removed.
func ReadLinesWithOptions(path string, trim bool) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8 text", ErrReadFailed, path)
	}

	lines := splitLines(string(data))
	if !trim {
		return lines, nil
	}

	trimmed := make([]string, 0, len(lines))
	for _, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	return trimmed, nil
}

func splitLines(content string) []string {
	lines := []string{}
	for len(content) > 0 {
		i := strings.IndexAny(content, "\r\n")
		if i < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:i])
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			i++
		}
		content = content[i+1:]
	}
	return lines
}

// WriteToFile writes content to path verbatim, replacing anything already there.
func WriteToFile(content, path string) error {
	return writeFile(path, func(f *os.File) error {
		_, err := f.WriteString(content)
		return err
	})
}

// WriteLinesToFile writes each entry of lines to path followed by a newline,
// including the last one. On failure a prefix of the lines may have been written.
func WriteLinesToFile(lines []string, path string) error {
	return writeFile(path, func(f *os.File) error {
		for _, line := range lines {
			if _, err := f.WriteString(line); err != nil {
				return err
			}
			if _, err := f.WriteString("\n"); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeFile opens path for writing and always closes it, reporting the close
// error when the write itself succeeded.
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	writeErr := write(f)
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrWriteFailed, path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: failed to close %s: %w", ErrWriteFailed, path, closeErr)
	}
	return nil
}

// SameContentIgnoringWhitespace reports whether the files at a and b hold the
// same lines once each is trimmed and blank lines are dropped.
func SameContentIgnoringWhitespace(a, b string) (bool, error) {
	linesA, err := ReadTrimmedLines(a)
	if err != nil {
		return false, err
	}
	linesB, err := ReadTrimmedLines(b)
	if err != nil {
		return false, err
	}
	return slices.Equal(linesA, linesB), nil
}
