package core

import "time"

// defaultFormatter backs the package-level convenience functions: generic
// MySQL-like dialect, UTC timestamps, no logging. It is never mutated, so
// there is no process-wide dialect state.
var defaultFormatter = NewFormatter()

// EscapeValue renders v with the generic dialect and UTC timestamps.
func EscapeValue(v any) string {
	return defaultFormatter.EscapeValue(v)
}

// FormatList renders items as a generic-dialect value list.
func FormatList(items []any, field *FieldHint) string {
	return defaultFormatter.FormatList(items, field)
}

// FormatPositional substitutes ? markers using the generic dialect.
func FormatPositional(tmpl string, params []any) string {
	return defaultFormatter.FormatPositional(tmpl, params)
}

// FormatNamed substitutes :name markers using the generic dialect.
func FormatNamed(tmpl string, params map[string]any) (string, error) {
	return defaultFormatter.FormatNamed(tmpl, params)
}

// FormatTimestamp renders t as a generic-dialect timestamp literal in UTC.
func FormatTimestamp(t time.Time) string {
	return defaultFormatter.FormatTimestamp(t)
}

// FormatBinary renders p as a generic-dialect hex literal.
func FormatBinary(p []byte) string {
	return defaultFormatter.FormatBinary(p)
}
