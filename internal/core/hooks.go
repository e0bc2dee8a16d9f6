package core

import (
	"strings"
	"time"
)

// FormatEvent contains information about a completed template formatting
// call. It is passed to FormatHook callbacks for logging, metrics, or
// debugging.
type FormatEvent struct {
	// Template is the template string as passed by the caller.
	Template string
	// SQL is the formatted statement, empty when formatting failed.
	SQL string
	// Params is the number of parameters supplied.
	Params int
	// Operation is the SQL operation type (SELECT, INSERT, UPDATE, DELETE,
	// UNKNOWN).
	Operation string
	// Duration is how long formatting took.
	Duration time.Duration
	// Error is any error that occurred (nil on success).
	Error error
}

// FormatHook is a callback function invoked after each template formatting
// call.
//
// Example:
//
//	f := sqlescape.NewFormatter(
//	    sqlescape.WithFormatHook(func(e sqlescape.FormatEvent) {
//	        slog.Debug("formatted", "op", e.Operation, "duration", e.Duration)
//	    }))
type FormatHook func(event FormatEvent)

// DetectOperation attempts to detect the SQL operation type from the query
// string. Returns one of: SELECT, INSERT, UPDATE, DELETE, or UNKNOWN.
func DetectOperation(sql string) string {
	sql = strings.TrimSpace(strings.ToUpper(sql))
	if strings.HasPrefix(sql, "SELECT") || strings.HasPrefix(sql, "WITH") {
		return "SELECT"
	}
	if strings.HasPrefix(sql, "INSERT") {
		return "INSERT"
	}
	if strings.HasPrefix(sql, "UPDATE") {
		return "UPDATE"
	}
	if strings.HasPrefix(sql, "DELETE") {
		return "DELETE"
	}
	return "UNKNOWN"
}
