// Package dialects provides database-specific literal syntax for the
// MySQL-like (generic), PostgreSQL, and SQLite dialect families, covering
// string, boolean, timestamp, binary, and array/list literals.
package dialects

import "time"

// Dialect defines database-specific literal formatting behaviors.
type Dialect interface {
	// Name returns the canonical dialect name.
	Name() string
	// QuoteString escapes s and wraps it in single quotes.
	QuoteString(s string) string
	// BoolLiteral renders a boolean literal.
	BoolLiteral(v bool) string
	// BinaryLiteral renders a byte slice as a hex literal.
	BinaryLiteral(p []byte) string
	// TimestampLiteral renders t as a quoted timestamp, adjusted per tz.
	TimestampLiteral(t time.Time, tz Timezone) string
	// SupportsArrays reports whether the dialect has a native array literal
	// syntax. Dialects without one render sequences as plain value lists.
	SupportsArrays() bool
	// ArrayLiteral assembles already-escaped elements into a list or array
	// literal. cast is the declared column type for dialects that emit an
	// explicit type cast; others ignore it.
	ArrayLiteral(elems []string, cast string) string
	// KeepsTypeCasts reports whether '::' tokens in templates are type casts
	// that must not be treated as named parameter markers.
	KeepsTypeCasts() bool
}

var dialects = make(map[string]Dialect)

// RegisterDialect registers a dialect by name.
func RegisterDialect(name string, d Dialect) {
	dialects[name] = d
}

// GetDialect retrieves a registered dialect by name. Unrecognized names fall
// back to the generic MySQL-like dialect.
func GetDialect(name string) Dialect {
	if d, ok := dialects[name]; ok {
		return d
	}
	return Default()
}

// Default returns the generic MySQL-like dialect.
func Default() Dialect {
	return dialects["mysql"]
}

// shiftedTimestamp applies the timezone adjustment shared by the non-Postgres
// dialects: the local sentinel keeps the local wall clock, anything else is
// normalized to UTC and shifted by the parsed numeric offset when one parses.
func shiftedTimestamp(t time.Time, tz Timezone) time.Time {
	if tz.IsLocal() {
		return t.Local()
	}
	t = t.UTC()
	if min, ok := tz.OffsetMinutes(); ok && min != 0 {
		t = t.Add(time.Duration(min) * time.Minute)
	}
	return t
}
