package dialects

import (
	"encoding/hex"
	"regexp"
	"strings"
	"time"
)

// PostgresDialect implements PostgreSQL-specific literal syntax.
type PostgresDialect struct{}

func init() {
	RegisterDialect("postgres", &PostgresDialect{})
	RegisterDialect("postgresql", &PostgresDialect{})
}

// typeSizeRegex strips parenthesized size suffixes from declared column
// types, e.g. VARCHAR(255) -> VARCHAR.
var typeSizeRegex = regexp.MustCompile(`\(.+\)`)

// Name returns "postgres".
func (d *PostgresDialect) Name() string { return "postgres" }

// QuoteString doubles embedded single quotes and wraps the result in single
// quotes.
func (d *PostgresDialect) QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// BoolLiteral returns the true/false keywords.
func (d *PostgresDialect) BoolLiteral(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// BinaryLiteral returns a bytea hex-escape literal E'\\x...'.
func (d *PostgresDialect) BinaryLiteral(p []byte) string {
	return `E'\\x` + hex.EncodeToString(p) + `'`
}

// TimestampLiteral always normalizes to UTC with millisecond precision and an
// explicit offset suffix, regardless of tz.
func (d *PostgresDialect) TimestampLiteral(t time.Time, _ Timezone) string {
	return "'" + t.UTC().Format("2006-01-02 15:04:05.000") + " +00:00'"
}

// SupportsArrays returns true; PostgreSQL has native array literals.
func (d *PostgresDialect) SupportsArrays() bool { return true }

// ArrayLiteral renders ARRAY[...] with a trailing type cast when a declared
// column type is known. Any parenthesized size suffix is stripped from the
// cast.
func (d *PostgresDialect) ArrayLiteral(elems []string, cast string) string {
	lit := "ARRAY[" + strings.Join(elems, ",") + "]"
	if cast != "" {
		lit += "::" + typeSizeRegex.ReplaceAllString(cast, "")
	}
	return lit
}

// KeepsTypeCasts returns true; '::' in a template is a type cast.
func (d *PostgresDialect) KeepsTypeCasts() bool { return true }
