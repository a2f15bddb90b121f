package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath    = "path"
	KeyFormat  = "format"
	KeyField   = "field"
	KeyLocale  = "locale"
	KeyPreset  = "preset"
	KeyTarget  = "target"
	KeyPolicy  = "policy"
	KeyRemote  = "remote"
	KeyYear    = "year"
	KeyBytes   = "bytes"
	KeyWarning = "warning"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr    { return slog.String(KeyPath, p) }
func Format(f string) slog.Attr  { return slog.String(KeyFormat, f) }
func Field(f string) slog.Attr   { return slog.String(KeyField, f) }
func Locale(l string) slog.Attr  { return slog.String(KeyLocale, l) }
func Preset(p string) slog.Attr  { return slog.String(KeyPreset, p) }
func Target(t string) slog.Attr  { return slog.String(KeyTarget, t) }
func Policy(p string) slog.Attr  { return slog.String(KeyPolicy, p) }
func Remote(r string) slog.Attr  { return slog.String(KeyRemote, r) }
func Year(y int) slog.Attr       { return slog.Int(KeyYear, y) }
func Bytes(n int) slog.Attr      { return slog.Int(KeyBytes, n) }
func Warning(w string) slog.Attr { return slog.String(KeyWarning, w) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
