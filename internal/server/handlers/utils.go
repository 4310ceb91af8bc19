// Package handlers implements the HTTP handlers of the site download service.
package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"git.home.luguber.info/inful/localsite/internal/foundation/errors"
	"git.home.luguber.info/inful/localsite/internal/logfields"
	"git.home.luguber.info/inful/localsite/internal/profile"
)

// writeJSON serializes the provided value to JSON and writes it with the given
// status code. Encoding is performed into an intermediate buffer so that we
// don't send partial responses if serialization fails.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(v); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("failed writing JSON response body", logfields.Error(err))
		return err
	}
	return nil
}

// readFields decodes a request body holding a JSON object of field values.
// The body is capped at limit bytes.
func readFields(w http.ResponseWriter, r *http.Request, limit int64) (profile.Fields, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryValidation, "request body too large or unreadable").
			WithContext("limit_bytes", limit).
			Build()
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errors.ValidationError("request body must be a JSON object of fields").Build()
	}
	fields, err := profile.ParseFields(body)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryValidation, "request body must be a JSON object of fields").Build()
	}
	return fields, nil
}
