package dialects

import (
	"encoding/hex"
	"strings"
	"time"
)

// SQLiteDialect implements SQLite-specific literal syntax.
type SQLiteDialect struct{}

func init() {
	RegisterDialect("sqlite", &SQLiteDialect{})
	RegisterDialect("sqlite3", &SQLiteDialect{})
}

// Name returns "sqlite".
func (d *SQLiteDialect) Name() string { return "sqlite" }

// QuoteString doubles embedded single quotes and wraps the result in single
// quotes. SQLite does not interpret backslash escapes.
func (d *SQLiteDialect) QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// BoolLiteral returns 1 or 0; SQLite has no boolean keywords.
func (d *SQLiteDialect) BoolLiteral(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// BinaryLiteral returns a standard SQL hex literal X'...'.
func (d *SQLiteDialect) BinaryLiteral(p []byte) string {
	return "X'" + hex.EncodeToString(p) + "'"
}

// TimestampLiteral formats t with second precision, shifted per tz.
func (d *SQLiteDialect) TimestampLiteral(t time.Time, tz Timezone) string {
	return "'" + shiftedTimestamp(t, tz).Format("2006-01-02 15:04:05") + "'"
}

// SupportsArrays returns false; SQLite has no array literal syntax.
func (d *SQLiteDialect) SupportsArrays() bool { return false }

// ArrayLiteral joins escaped elements with ", ".
func (d *SQLiteDialect) ArrayLiteral(elems []string, _ string) string {
	return strings.Join(elems, ", ")
}

// KeepsTypeCasts returns false.
func (d *SQLiteDialect) KeepsTypeCasts() bool { return false }
