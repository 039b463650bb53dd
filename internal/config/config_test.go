package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestConfigLoadSave(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.conf")

	cfg := New(configPath)

	if err := cfg.Set(KeyTempPrefix, "scratch"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := cfg.Set(KeyTrimWhitespace, "true"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	// Load config in new instance
	cfg2 := New(configPath)
	if err := cfg2.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if val := cfg2.GetOrDefault(KeyTempPrefix, ""); val != "scratch" {
		t.Errorf("GetOrDefault() = %v, want %v", val, "scratch")
	}
	if !cfg2.GetBool(KeyTrimWhitespace, false) {
		t.Errorf("GetBool() = false, want true")
	}
}

func TestConfigFileFormat(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "test.conf")
	cfg := New(configPath)

	for _, kv := range [][2]string{{"B_KEY", "2"}, {"A_KEY", "1"}} {
		if err := cfg.Set(kv[0], kv[1]); err != nil {
			t.Fatalf("Set() failed: %v", err)
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	text := string(content)
	if !strings.HasPrefix(text, "# fsutils configuration\n") {
		t.Errorf("config header missing: %q", text)
	}
	if !strings.HasSuffix(text, "A_KEY=1\nB_KEY=2\n") {
		t.Errorf("config keys not sorted: %q", text)
	}

	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("Failed to stat config: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("config mode = %o, want %o", info.Mode().Perm(), 0600)
	}
}

func TestConfigLoadTolerant(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "hand-written.conf")
	content := "# comment\n\n  TEMP_PREFIX = spaced  \r\nnot a pair\nDIFF_CONTEXT=5\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg := New(configPath)
	if val := cfg.GetOrDefault(KeyTempPrefix, ""); val != "spaced" {
		t.Errorf("GetOrDefault() = %q, want %q", val, "spaced")
	}
	if val := cfg.GetInt(KeyDiffContext, 0); val != 5 {
		t.Errorf("GetInt() = %d, want 5", val)
	}
	if len(cfg.GetAll()) != 2 {
		t.Errorf("GetAll() = %v, want 2 entries", cfg.GetAll())
	}
}

func TestConfigGet(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New(filepath.Join(tmpDir, "test.conf"))

	cfg.Set("KEY1", "value1")

	val, err := cfg.Get("KEY1")
	if err != nil {
		t.Errorf("Get() error = %v, want nil", err)
	}
	if val != "value1" {
		t.Errorf("Get() = %v, want %v", val, "value1")
	}

	_, err = cfg.Get("NONEXISTENT")
	if err == nil {
		t.Error("Get() error = nil, want error for non-existent key")
	}
}

func TestConfigGetOrDefault(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New(filepath.Join(tmpDir, "test.conf"))

	tests := []struct {
		name     string
		key      string
		fallback string
		expected string
	}{
		{"unknown key uses fallback", "NONEXISTENT", "default_value", "default_value"},
		{"known key uses defaults table", KeyTempPrefix, "ignored", "tempFile"},
		{"glob default", KeyGlobPattern, "", "**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if val := cfg.GetOrDefault(tt.key, tt.fallback); val != tt.expected {
				t.Errorf("GetOrDefault() = %v, want %v", val, tt.expected)
			}
		})
	}

	cfg.Set("KEY1", "value1")
	if val := cfg.GetOrDefault("KEY1", "default"); val != "value1" {
		t.Errorf("GetOrDefault() = %v, want %v", val, "value1")
	}
}

func TestConfigTypedGetters(t *testing.T) {
	cfg := New(filepath.Join(t.TempDir(), "test.conf"))

	cfg.Set(KeyAssumeYes, "yes-please")
	if cfg.GetBool(KeyAssumeYes, true) != true {
		t.Error("GetBool() should fall back on unparsable value")
	}
	cfg.Set(KeyAssumeYes, "1")
	if !cfg.GetBool(KeyAssumeYes, false) {
		t.Error("GetBool() = false, want true for \"1\"")
	}

	if got := cfg.GetInt(KeyDiffContext, 9); got != 3 {
		t.Errorf("GetInt() = %d, want table default 3", got)
	}
	cfg.Set(KeyDiffContext, "many")
	if got := cfg.GetInt(KeyDiffContext, 9); got != 9 {
		t.Errorf("GetInt() = %d, want fallback 9", got)
	}
}

func TestConfigExists(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New(filepath.Join(tmpDir, "test.conf"))

	if cfg.Exists("NONEXISTENT") {
		t.Error("Exists() = true, want false for non-existent key")
	}

	cfg.Set("KEY1", "value1")
	if !cfg.Exists("KEY1") {
		t.Error("Exists() = false, want true for existing key")
	}
}

func TestConfigDelete(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New(filepath.Join(tmpDir, "test.conf"))

	cfg.Set("KEY1", "value1")
	if !cfg.Exists("KEY1") {
		t.Error("Key should exist after Set()")
	}

	cfg.Delete("KEY1")
	if cfg.Exists("KEY1") {
		t.Error("Key should not exist after Delete()")
	}
}

func TestConfigConcurrentSet(t *testing.T) {
	cfg := New(filepath.Join(t.TempDir(), "test.conf"))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := "KEY_" + string(rune('A'+n))
			if err := cfg.Set(key, "v"); err != nil {
				t.Errorf("Set() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	reloaded := New(cfg.FilePath())
	if got := len(reloaded.GetAll()); got != 10 {
		t.Errorf("GetAll() after concurrent Set() has %d keys, want 10", got)
	}
}

func TestConfigLoadNonExistent(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New(filepath.Join(tmpDir, "nonexistent.conf"))

	err := cfg.Load()
	if err != nil {
		t.Errorf("Load() on non-existent file error = %v, want nil", err)
	}
}

func TestConfigFilePath(t *testing.T) {
	expectedPath := "/tmp/test.conf"
	cfg := New(expectedPath)

	if cfg.FilePath() != expectedPath {
		t.Errorf("FilePath() = %v, want %v", cfg.FilePath(), expectedPath)
	}

	t.Setenv("HOME", "/home/tester")
	if got := New("").FilePath(); got != filepath.Join("/home/tester", DefaultFileName) {
		t.Errorf("FilePath() = %v, want default under home", got)
	}
}

func TestKnown(t *testing.T) {
	if !Known(KeyGlobPattern) {
		t.Error("Known() = false for GLOB_PATTERN")
	}
	if Known("UNKNOWN") {
		t.Error("Known() = true for unknown key")
	}
}
