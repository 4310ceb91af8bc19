package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeySite         = "site"
	KeyPage         = "page"
	KeyFile         = "file"
	KeyPath         = "path"
	KeyStage        = "stage"
	KeyDurationMS   = "duration_ms"
	KeyGenerationID = "generation_id"
	KeyRequestID    = "request_id"
	KeySkippedLines = "skipped_lines"
	KeyBytes        = "bytes"
	KeyFiles        = "files"
	KeyOutcome      = "outcome"
	KeyMethod       = "method"
	KeyStatus       = "status"
	KeyRemoteAddr   = "remote_addr"
	KeyUserAgent    = "user_agent"
	KeyError        = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Site(name string) slog.Attr       { return slog.String(KeySite, name) }
func Page(name string) slog.Attr       { return slog.String(KeyPage, name) }
func File(name string) slog.Attr       { return slog.String(KeyFile, name) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func GenerationID(id string) slog.Attr { return slog.String(KeyGenerationID, id) }
func RequestID(id string) slog.Attr    { return slog.String(KeyRequestID, id) }
func SkippedLines(n int) slog.Attr     { return slog.Int(KeySkippedLines, n) }
func Bytes(n int) slog.Attr            { return slog.Int(KeyBytes, n) }
func Files(n int) slog.Attr            { return slog.Int(KeyFiles, n) }
func Outcome(o string) slog.Attr       { return slog.String(KeyOutcome, o) }
func Method(m string) slog.Attr        { return slog.String(KeyMethod, m) }
func Status(code int) slog.Attr        { return slog.Int(KeyStatus, code) }
func RemoteAddr(addr string) slog.Attr { return slog.String(KeyRemoteAddr, addr) }
func UserAgent(ua string) slog.Attr    { return slog.String(KeyUserAgent, ua) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
