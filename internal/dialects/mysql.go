package dialects

import (
	"encoding/hex"
	"strings"
	"time"
)

// MySQLDialect implements the generic MySQL-like literal syntax.
// It is also the fallback used for unrecognized dialect names.
type MySQLDialect struct{}

func init() {
	RegisterDialect("mysql", &MySQLDialect{})
	RegisterDialect("generic", &MySQLDialect{})
}

// Name returns "mysql".
func (d *MySQLDialect) Name() string { return "mysql" }

// QuoteString backslash-escapes control and quote characters and wraps the
// result in single quotes.
func (d *MySQLDialect) QuoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case 0:
			b.WriteString(`\0`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\x1a':
			b.WriteString(`\Z`)
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// BoolLiteral returns the true/false keywords.
func (d *MySQLDialect) BoolLiteral(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// BinaryLiteral returns a standard SQL hex literal X'...'.
func (d *MySQLDialect) BinaryLiteral(p []byte) string {
	return "X'" + hex.EncodeToString(p) + "'"
}

// TimestampLiteral formats t with second precision, shifted per tz.
func (d *MySQLDialect) TimestampLiteral(t time.Time, tz Timezone) string {
	return "'" + shiftedTimestamp(t, tz).Format("2006-01-02 15:04:05") + "'"
}

// SupportsArrays returns false; MySQL has no array literal syntax.
func (d *MySQLDialect) SupportsArrays() bool { return false }

// ArrayLiteral joins escaped elements with ", ".
func (d *MySQLDialect) ArrayLiteral(elems []string, _ string) string {
	return strings.Join(elems, ", ")
}

// KeepsTypeCasts returns false; MySQL has no '::' cast syntax.
func (d *MySQLDialect) KeepsTypeCasts() bool { return false }
