package util

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GlobSet is a comma-separated list of exclude patterns. A leading '!'
// negates a pattern, re-including names an earlier pattern excluded
// (e.g. "*.iso,!ubuntu-*.iso").
type GlobSet struct {
	patterns []string
	negated  []string
}

func ParseGlobSet(spec string) *GlobSet {
	gs := &GlobSet{}

	if spec == "" {
		return gs
	}

	for _, pattern := range strings.Split(spec, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if strings.HasPrefix(pattern, "!") {
			gs.negated = append(gs.negated, strings.TrimPrefix(pattern, "!"))
		} else {
			gs.patterns = append(gs.patterns, pattern)
		}
	}

	return gs
}

// Empty reports whether the set contains no patterns at all.
func (gs *GlobSet) Empty() bool {
	return len(gs.patterns) == 0 && len(gs.negated) == 0
}

// Match reports whether name is excluded by the set: it matches at
// least one pattern and no negated pattern.
func (gs *GlobSet) Match(name string) (bool, error) {
	name = filepath.ToSlash(name)

	excluded := false
	for _, pattern := range gs.patterns {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid glob pattern '%s': %w", pattern, err)
		}
		if matched {
			excluded = true
			break
		}
	}

	if !excluded {
		return false, nil
	}

	for _, pattern := range gs.negated {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid glob pattern '%s': %w", pattern, err)
		}
		if matched {
			return false, nil
		}
	}

	return true, nil
}
