package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	t.Cleanup(func() {
		Version, Commit, Date = origVersion, origCommit, origDate
	})

	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    []string
	}{
		{
			name:    "dev build",
			version: "dev",
			commit:  "unknown",
			date:    "unknown",
			want:    []string{"tonal version dev"},
		},
		{
			name:    "release build",
			version: "1.2.3",
			commit:  "0123456789abcdef",
			date:    "2026-01-02T03:04:05Z",
			want:    []string{"tonal version 1.2.3", "commit: 01234567", "built: 2026-01-02T03:04:05Z"},
		},
		{
			name:    "short commit",
			version: "1.0.0",
			commit:  "abc",
			date:    "2026-01-02T03:04:05Z",
			want:    []string{"commit: abc,"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, Date = tt.version, tt.commit, tt.date
			got := String()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("String() = %q, want it to contain %q", got, w)
				}
			}
		})
	}
}

func TestShort(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "9.9.9"
	if got := Short(); got != "9.9.9" {
		t.Errorf("Short() = %q, want %q", got, "9.9.9")
	}
}
