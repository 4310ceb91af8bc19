package errors

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPErrorAdapter_StatusCodeFor(t *testing.T) {
	adapter := NewHTTPErrorAdapter(slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, http.StatusOK},
		{"validation", MissingRequiredField("name"), http.StatusBadRequest},
		{"not found", NotFoundError("no such route").Build(), http.StatusNotFound},
		{"archive", ArchiveEncodingFailure("terms.html"), http.StatusUnprocessableEntity},
		{"runtime", RuntimeError("shutting down").Build(), http.StatusServiceUnavailable},
		{"unclassified", errors.New("unknown"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.StatusCodeFor(tt.err); got != tt.expected {
				t.Errorf("StatusCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHTTPErrorAdapter_WriteErrorResponse(t *testing.T) {
	adapter := NewHTTPErrorAdapter(slog.Default())
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/sites", nil)

	adapter.WriteErrorResponse(w, r, MissingRequiredField("name", "phone"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected content type %q", ct)
	}
	var payload HTTPErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Code != "validation" {
		t.Errorf("expected code validation, got %q", payload.Code)
	}
	if _, ok := payload.Details["fields"]; !ok {
		t.Errorf("expected fields detail, got %v", payload.Details)
	}
}

func TestHTTPErrorAdapter_HidesUnclassifiedDetails(t *testing.T) {
	adapter := NewHTTPErrorAdapter(slog.Default())
	resp := adapter.FormatErrorResponse(errors.New("open /etc/secret: permission denied"))
	if resp.Error != "internal error" {
		t.Errorf("expected generic message, got %q", resp.Error)
	}
}
