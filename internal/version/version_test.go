package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	t.Run("unknown commit", func(t *testing.T) {
		origCommit := Commit
		defer func() { Commit = origCommit }()

		Commit = "unknown"
		if got := Info(); got != Version {
			t.Errorf("Info() = %q, want %q", got, Version)
		}
	})

	t.Run("known commit is truncated", func(t *testing.T) {
		origCommit := Commit
		defer func() { Commit = origCommit }()

		Commit = "abcdef1234567890"
		got := Info()
		if !strings.Contains(got, "abcdef1") {
			t.Errorf("Info() = %q, want short commit abcdef1", got)
		}
		if strings.Contains(got, "abcdef12") {
			t.Errorf("Info() = %q, commit should be truncated to 7 chars", got)
		}
	})
}

func TestFull(t *testing.T) {
	got := Full()
	if !strings.Contains(got, "leadsweep version") {
		t.Errorf("Full() = %q, want it to contain %q", got, "leadsweep version")
	}
	if !strings.Contains(got, Version) {
		t.Errorf("Full() = %q, want it to contain version %q", got, Version)
	}
}
