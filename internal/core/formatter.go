// Package core implements the literal escaping and template formatting
// engine shared by all dialects: value escaping, identifier escaping,
// list/array and assignment-list formatting, and positional/named
// placeholder substitution.
package core

import (
	"time"

	"github.com/coregx/sqlescape/internal/dialects"
	"github.com/coregx/sqlescape/internal/logger"
)

// Timezone selects how timestamps are adjusted before formatting.
type Timezone = dialects.Timezone

// Timezone sentinels.
const (
	// TimezoneUTC formats timestamps in UTC.
	TimezoneUTC = dialects.TimezoneUTC
	// TimezoneLocal formats timestamps using the local system offset.
	TimezoneLocal = dialects.TimezoneLocal
)

// FieldHint carries optional column metadata for a value. The declared type
// is consumed by the PostgreSQL array formatter to emit an explicit cast;
// other dialects ignore it.
type FieldHint struct {
	// Type is the declared SQL column type, e.g. "VARCHAR(255)".
	Type string
}

// Formatter renders values as SQL literals and substitutes template
// placeholders for a fixed dialect and timezone. The zero configuration uses
// the generic MySQL-like dialect and UTC timestamps.
//
// A Formatter is immutable after construction and safe for concurrent use.
type Formatter struct {
	dialect   dialects.Dialect
	tz        Timezone
	logger    logger.Logger
	sanitizer *logger.Sanitizer
	hook      FormatHook
}

// Option is a functional option for configuring a Formatter.
type Option func(*Formatter)

// WithDialect selects the dialect by name ("mysql", "postgres", "sqlite").
// Unrecognized names fall back to the generic MySQL-like dialect.
func WithDialect(name string) Option {
	return func(f *Formatter) {
		f.dialect = dialects.GetDialect(name)
	}
}

// WithTimezone sets the timezone used for timestamp literals.
func WithTimezone(tz Timezone) Option {
	return func(f *Formatter) {
		f.tz = tz
	}
}

// WithLogger sets the logger used for debug output. Defaults to a no-op
// logger.
func WithLogger(l logger.Logger) Option {
	return func(f *Formatter) {
		f.logger = l
	}
}

// WithFormatHook sets a callback invoked after each template formatting
// call. Use it for logging, metrics, or debugging.
func WithFormatHook(h FormatHook) Option {
	return func(f *Formatter) {
		f.hook = h
	}
}

// NewFormatter creates a Formatter with the given options.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		dialect:   dialects.Default(),
		tz:        TimezoneUTC,
		logger:    &logger.NoopLogger{},
		sanitizer: logger.NewSanitizer(nil),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Dialect returns the name of the configured dialect.
func (f *Formatter) Dialect() string {
	return f.dialect.Name()
}

// Timezone returns the configured timezone.
func (f *Formatter) Timezone() Timezone {
	return f.tz
}

// FormatTimestamp renders t as a quoted dialect-specific timestamp literal,
// ready for direct interpolation.
func (f *Formatter) FormatTimestamp(t time.Time) string {
	return f.dialect.TimestampLiteral(t, f.tz)
}

// FormatBinary renders p as a dialect-specific hex literal.
func (f *Formatter) FormatBinary(p []byte) string {
	return f.dialect.BinaryLiteral(p)
}
