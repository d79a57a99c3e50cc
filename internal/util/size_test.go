package util

import (
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{
			name:  "bare bytes",
			input: "1024",
			want:  1024,
		},
		{
			name:  "zero disables",
			input: "0",
			want:  0,
		},
		{
			name:  "kilobytes",
			input: "4KB",
			want:  4 * 1024,
		},
		{
			name:  "megabytes lowercase",
			input: "512mb",
			want:  512 * 1024 * 1024,
		},
		{
			name:  "gigabytes with space",
			input: "10 GB",
			want:  10 * 1024 * 1024 * 1024,
		},
		{
			name:  "fractional",
			input: "1.5GB",
			want:  int64(1.5 * float64(1<<30)),
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "lots",
			wantErr: true,
		},
		{
			name:    "negative",
			input:   "-1GB",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSize(%q) expected error, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSize(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSize(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
