// Package sqlescape renders Go values as textual SQL literals safe for
// direct interpolation and substitutes positional (?) and named (:name)
// template placeholders, with dialect-specific rules for MySQL-like
// (generic), PostgreSQL, and SQLite engines.
package sqlescape

import (
	"github.com/coregx/sqlescape/internal/core"
	"github.com/coregx/sqlescape/internal/logger"
)

type (
	// Formatter renders values as SQL literals and substitutes template
	// placeholders for a fixed dialect and timezone.
	Formatter = core.Formatter
	// Option is a functional option for configuring a Formatter.
	Option = core.Option
	// FieldHint carries optional declared-type metadata for a value.
	FieldHint = core.FieldHint
	// Timezone selects how timestamps are adjusted before formatting.
	Timezone = core.Timezone
	// FormatEvent describes a completed template formatting call.
	FormatEvent = core.FormatEvent
	// FormatHook is a callback invoked after each template formatting call.
	FormatHook = core.FormatHook

	// Logger is the structured logging interface accepted by WithLogger.
	Logger = logger.Logger
	// NoopLogger is a Logger that does nothing.
	NoopLogger = logger.NoopLogger
	// SlogAdapter adapts a log/slog.Logger to the Logger interface.
	SlogAdapter = logger.SlogAdapter
)

// Timezone sentinels.
const (
	// TimezoneUTC formats timestamps in UTC (the default).
	TimezoneUTC = core.TimezoneUTC
	// TimezoneLocal formats timestamps using the local system offset.
	TimezoneLocal = core.TimezoneLocal
)

// Re-export core functions.
var (
	NewFormatter   = core.NewFormatter
	WithDialect    = core.WithDialect
	WithTimezone   = core.WithTimezone
	WithLogger     = core.WithLogger
	WithFormatHook = core.WithFormatHook
	NewSlogAdapter = logger.NewSlogAdapter

	// Identifier escaping (dialect-independent)
	EscapeIdentifier = core.EscapeIdentifier

	// Generic-dialect convenience functions
	EscapeValue      = core.EscapeValue
	FormatList       = core.FormatList
	FormatPositional = core.FormatPositional
	FormatNamed      = core.FormatNamed
	FormatTimestamp  = core.FormatTimestamp
	FormatBinary     = core.FormatBinary

	// DetectOperation reports the SQL operation type of a statement.
	DetectOperation = core.DetectOperation
)

// Predefined errors.
var (
	// ErrMissingParameter is returned by FormatNamed when a marker has no
	// corresponding key in the parameter map.
	ErrMissingParameter = core.ErrMissingParameter
)
