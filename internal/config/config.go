package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultMaxFileSize is the per-file size limit: files larger than this
// are skipped because they may still be in use.
const DefaultMaxFileSize = 10 << 30 // 10 GiB

// Config holds the runtime configuration for an organize pass
type Config struct {
	SourceDir   string
	RulesFile   string
	LogFile     string
	MaxFileSize int64
}

// New creates a new Config with values from environment variables or defaults
func New() *Config {
	return &Config{
		SourceDir:   getenv("DOWNLOADS_DIR", ""),
		RulesFile:   getenv("DOWNLOADS_ORGANIZER_RULES", ""),
		MaxFileSize: DefaultMaxFileSize,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DetectDownloadsDir returns the platform downloads folder, probing a
// per-OS candidate list and falling back to the home directory.
func DetectDownloadsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return detectDownloadsDir(runtime.GOOS, home, isDir)
}

func detectDownloadsDir(goos, home string, isDir func(string) bool) string {
	var candidates []string
	switch goos {
	case "windows":
		candidates = []string{
			filepath.Join(home, "Downloads"),
			filepath.Join(home, "Desktop"),
		}
		if profile := os.Getenv("USERPROFILE"); profile != "" {
			candidates = append(candidates, filepath.Join(profile, "Downloads"))
		}
	case "darwin":
		candidates = []string{
			filepath.Join(home, "Downloads"),
			filepath.Join(home, "Desktop"),
		}
	default:
		candidates = []string{
			filepath.Join(home, "Downloads"),
			filepath.Join(home, "downloads"),
			filepath.Join(home, "Desktop"),
		}
	}

	for _, candidate := range candidates {
		if isDir(candidate) {
			return candidate
		}
	}
	return home
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
