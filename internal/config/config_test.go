package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	// Save original values
	originalDir := os.Getenv("DOWNLOADS_DIR")
	originalRules := os.Getenv("DOWNLOADS_ORGANIZER_RULES")
	defer func() {
		os.Setenv("DOWNLOADS_DIR", originalDir)
		os.Setenv("DOWNLOADS_ORGANIZER_RULES", originalRules)
	}()

	// Test with environment variables
	os.Setenv("DOWNLOADS_DIR", "/data/incoming")
	os.Setenv("DOWNLOADS_ORGANIZER_RULES", "/etc/organizer/rules.yaml")

	cfg := New()

	if cfg.SourceDir != "/data/incoming" {
		t.Errorf("Expected source dir '/data/incoming', got '%s'", cfg.SourceDir)
	}
	if cfg.RulesFile != "/etc/organizer/rules.yaml" {
		t.Errorf("Expected rules file '/etc/organizer/rules.yaml', got '%s'", cfg.RulesFile)
	}
	if cfg.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("Expected max file size %d, got %d", int64(DefaultMaxFileSize), cfg.MaxFileSize)
	}

	// Test with no environment variables (defaults)
	os.Unsetenv("DOWNLOADS_DIR")
	os.Unsetenv("DOWNLOADS_ORGANIZER_RULES")

	cfg = New()
	if cfg.SourceDir != "" {
		t.Errorf("Expected empty source dir, got '%s'", cfg.SourceDir)
	}
	if cfg.RulesFile != "" {
		t.Errorf("Expected empty rules file, got '%s'", cfg.RulesFile)
	}
}

func TestDetectDownloadsDir(t *testing.T) {
	home := string(filepath.Separator) + "home" + string(filepath.Separator) + "user"
	existing := func(dirs ...string) func(string) bool {
		set := make(map[string]bool)
		for _, d := range dirs {
			set[d] = true
		}
		return func(path string) bool { return set[path] }
	}

	tests := []struct {
		name   string
		goos   string
		exists []string
		want   string
	}{
		{
			name:   "linux Downloads",
			goos:   "linux",
			exists: []string{filepath.Join(home, "Downloads")},
			want:   filepath.Join(home, "Downloads"),
		},
		{
			name:   "linux lowercase fallback",
			goos:   "linux",
			exists: []string{filepath.Join(home, "downloads")},
			want:   filepath.Join(home, "downloads"),
		},
		{
			name:   "darwin Desktop when no Downloads",
			goos:   "darwin",
			exists: []string{filepath.Join(home, "Desktop")},
			want:   filepath.Join(home, "Desktop"),
		},
		{
			name:   "probe order prefers Downloads",
			goos:   "linux",
			exists: []string{filepath.Join(home, "Downloads"), filepath.Join(home, "Desktop")},
			want:   filepath.Join(home, "Downloads"),
		},
		{
			name: "falls back to home",
			goos: "linux",
			want: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectDownloadsDir(tt.goos, home, existing(tt.exists...))
			if got != tt.want {
				t.Errorf("detectDownloadsDir = %q, want %q", got, tt.want)
			}
		})
	}
}
