package match

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/zoro11031/fsutils/internal/fsutil"
)

func TestGlob(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		path     string
		expected bool
	}{
		{"any depth go file", "**/*.go", "src/app/main.go", true},
		{"any depth other extension", "**/*.go", "src/app/README.md", false},
		{"single segment star", "src/*.go", "src/app/main.go", false},
		{"alternatives", "**/*.{yml,yaml}", "etc/app/config.yaml", true},
		{"directory anchor", "**/testdata/**", "repo/pkg/testdata/in.txt", true},
		{"relative path", "sub/**/*.txt", "sub/a/b/c.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Glob(tt.pattern)
			if err != nil {
				t.Fatalf("Glob() error = %v", err)
			}
			if got := m.Matches(tt.path); got != tt.expected {
				t.Errorf("Glob(%q).Matches(%q) = %v, want %v", tt.pattern, tt.path, got, tt.expected)
			}
		})
	}
}

func TestGlobInvalid(t *testing.T) {
	if _, err := Glob("[unclosed"); !errors.Is(err, fsutil.ErrConfiguration) {
		t.Errorf("Glob() error = %v, want ErrConfiguration", err)
	}
}

func TestRegex(t *testing.T) {
	m, err := Regex(`_test\.go$`)
	if err != nil {
		t.Fatalf("Regex() error = %v", err)
	}
	if !m.Matches("/a/b_test.go") {
		t.Error("Regex().Matches() = false for test file, want true")
	}
	if m.Matches("/a/b.go") {
		t.Error("Regex().Matches() = true for non-test file, want false")
	}

	if _, err := Regex("("); !errors.Is(err, fsutil.ErrConfiguration) {
		t.Errorf("Regex() error = %v, want ErrConfiguration", err)
	}
}

func TestRelative(t *testing.T) {
	m, err := Glob("*.go")
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	rel := Relative(filepath.Join("base", "dir"), m)

	tests := []struct {
		path     string
		expected bool
	}{
		{filepath.Join("base", "dir", "main.go"), true},
		{filepath.Join("base", "dir", "sub", "main.go"), false},
		{filepath.Join("other", "main.go"), false},
	}

	for _, tt := range tests {
		if got := rel.Matches(tt.path); got != tt.expected {
			t.Errorf("Relative().Matches(%q) = %v, want %v", tt.path, got, tt.expected)
		}
	}
}

func TestCombinators(t *testing.T) {
	goFiles := Suffix(".go")
	tests, _ := Regex(`_test\.go$`)

	cases := []struct {
		name     string
		matcher  fsutil.Matcher
		path     string
		expected bool
	}{
		{"always", Always(), "anything", true},
		{"suffix one of many", Suffix(".md", ".txt"), "notes.txt", true},
		{"suffix none", Suffix(".md", ".txt"), "main.go", false},
		{"suffix empty list", Suffix(), "main.go", false},
		{"all both", All(goFiles, tests), "x_test.go", true},
		{"all one", All(goFiles, tests), "x.go", false},
		{"all empty", All(), "x", true},
		{"any one", Any(Suffix(".md"), goFiles), "x.go", true},
		{"any none", Any(Suffix(".md"), goFiles), "x.txt", false},
		{"any empty", Any(), "x", false},
		{"not", All(goFiles, Not(tests)), "x_test.go", false},
		{"not keeps others", All(goFiles, Not(tests)), "x.go", true},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.matcher.Matches(tt.path); got != tt.expected {
				t.Errorf("Matches(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}
