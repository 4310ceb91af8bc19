package errors

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"missing field", MissingRequiredField("name"), 2},
		{"config", ConfigError("bad config").Build(), 7},
		{"archive", ArchiveEncodingFailure("index.html"), 11},
		{"internal", InternalError("boom").Build(), 10},
		{"unclassified", errors.New("unknown"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, slog.Default())
	verbose := NewCLIErrorAdapter(true, slog.Default())

	missing := MissingRequiredField("phone")
	if got := quiet.FormatError(missing); got != "Error: missing required field: phone" {
		t.Errorf("unexpected message %q", got)
	}
	if got := quiet.FormatError(InternalError("nil map").Build()); !strings.Contains(got, "use -v") {
		t.Errorf("expected hint for internal errors, got %q", got)
	}
	if got := verbose.FormatError(missing); !strings.Contains(got, "[validation:error]") {
		t.Errorf("expected full error in verbose mode, got %q", got)
	}
	if got := quiet.FormatError(nil); got != "" {
		t.Errorf("expected empty string for nil, got %q", got)
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var logBuf, outBuf bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logBuf, nil)))
	adapter.out = &outBuf
	code := -1
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(MissingRequiredField("name", "phone"))

	if code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(outBuf.String(), "name, phone") {
		t.Errorf("expected user message on stderr, got %q", outBuf.String())
	}
	if !strings.Contains(logBuf.String(), "category=validation") {
		t.Errorf("expected category in log, got %q", logBuf.String())
	}
}
