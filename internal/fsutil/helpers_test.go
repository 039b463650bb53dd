package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTree creates files under root from a map of relative path to content.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", rel, err)
		}
	}
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func alwaysTrue(string) bool { return true }

// relativePaths converts absolute result paths back to paths relative to root.
func relativePaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	absRoot, err := filepath.Abs(root)
	if err != nil {
		t.Fatalf("Failed to resolve %s: %v", root, err)
	}
	rel := make([]string, len(paths))
	for i, p := range paths {
		r, err := filepath.Rel(absRoot, p)
		if err != nil {
			t.Fatalf("Failed to relativize %s: %v", p, err)
		}
		rel[i] = filepath.ToSlash(r)
	}
	return rel
}
