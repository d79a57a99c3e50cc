package util

import (
	"os"
	"strings"
)

// IsATTY checks if stdout is a terminal
func IsATTY() bool {
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// SplitExt splits a filename into stem and extension, where the
// extension runs from the last dot to the end. A name without a dot,
// or a pure dotfile like ".gitignore", has no extension.
func SplitExt(name string) (stem, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}

// NormalizeExt lowercases ext and ensures a leading dot. An empty
// string stays empty.
func NormalizeExt(ext string) string {
	if ext == "" {
		return ""
	}
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
