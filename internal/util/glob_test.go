package util

import (
	"testing"
)

func TestParseGlobSet(t *testing.T) {
	tests := []struct {
		name        string
		spec        string
		wantEmpty   bool
		wantCount   int
		wantNegated int
	}{
		{
			name:      "empty spec",
			spec:      "",
			wantEmpty: true,
		},
		{
			name:      "single pattern",
			spec:      "*.iso",
			wantCount: 1,
		},
		{
			name:        "pattern with negation",
			spec:        "*.iso,!ubuntu-*.iso",
			wantCount:   1,
			wantNegated: 1,
		},
		{
			name:      "patterns with spaces",
			spec:      "*.iso, *.img",
			wantCount: 2,
		},
		{
			name:      "trailing comma ignored",
			spec:      "*.iso,",
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := ParseGlobSet(tt.spec)
			if gs.Empty() != tt.wantEmpty {
				t.Errorf("Empty() = %v, want %v", gs.Empty(), tt.wantEmpty)
			}
			if len(gs.patterns) != tt.wantCount {
				t.Errorf("patterns = %d, want %d", len(gs.patterns), tt.wantCount)
			}
			if len(gs.negated) != tt.wantNegated {
				t.Errorf("negated = %d, want %d", len(gs.negated), tt.wantNegated)
			}
		})
	}
}

func TestGlobSetMatch(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		path    string
		want    bool
		wantErr bool
	}{
		{
			name: "no patterns excludes nothing",
			spec: "",
			path: "movie.mkv",
			want: false,
		},
		{
			name: "matching pattern excludes",
			spec: "*.iso",
			path: "debian.iso",
			want: true,
		},
		{
			name: "non-matching pattern keeps file",
			spec: "*.iso",
			path: "report.pdf",
			want: false,
		},
		{
			name: "negation re-includes",
			spec: "*.iso,!ubuntu-*.iso",
			path: "ubuntu-24.04.iso",
			want: false,
		},
		{
			name: "negation leaves others excluded",
			spec: "*.iso,!ubuntu-*.iso",
			path: "fedora-41.iso",
			want: true,
		},
		{
			name: "multiple patterns",
			spec: "*.iso,*.img",
			path: "backup.img",
			want: true,
		},
		{
			name:    "invalid pattern",
			spec:    "[invalid",
			path:    "anything",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := ParseGlobSet(tt.spec)
			got, err := gs.Match(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Match failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
