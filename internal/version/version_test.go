package version

import (
	"strings"
	"testing"
)

func TestVersionString(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	s := String()
	if !strings.HasPrefix(s, Version) {
		t.Errorf("expected %q to start with %q", s, Version)
	}
	if !strings.Contains(s, GitCommit) {
		t.Errorf("expected %q to contain commit %q", s, GitCommit)
	}
}
