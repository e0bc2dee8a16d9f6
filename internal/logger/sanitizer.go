package logger

import (
	"regexp"
	"strings"
)

// Sanitizer masks sensitive data in formatted SQL before it reaches logs.
// Because the formatter interpolates values directly into the statement
// text, a statement touching a sensitive-looking column carries the secret
// itself; the sanitizer blanks all quoted literals in such statements.
type Sanitizer struct {
	sensitiveFields []string
	maskValue       string
	// Compiled patterns for faster matching
	patterns []*regexp.Regexp
}

// quotedLiteralRegex matches single-quoted SQL string literals, including
// doubled-quote and backslash escapes produced by the dialects.
var quotedLiteralRegex = regexp.MustCompile(`'(?:[^'\\]|\\.|'')*'`)

// NewSanitizer creates a new sanitizer with the specified sensitive field
// names. If no fields are provided, a default set of common sensitive field
// names is used.
func NewSanitizer(sensitiveFields []string) *Sanitizer {
	if len(sensitiveFields) == 0 {
		// Default sensitive field names (common patterns)
		sensitiveFields = []string{
			"password", "passwd", "pwd",
			"token", "api_key", "apikey", "api_token",
			"secret", "auth", "authorization",
			"credit_card", "card_number", "cvv", "cvc",
			"ssn", "social_security",
			"private_key", "priv_key",
		}
	}

	// Compile patterns for efficient matching
	patterns := make([]*regexp.Regexp, 0, len(sensitiveFields))
	for _, field := range sensitiveFields {
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(field) + `\b`)
		patterns = append(patterns, pattern)
	}

	return &Sanitizer{
		sensitiveFields: sensitiveFields,
		maskValue:       "***REDACTED***",
		patterns:        patterns,
	}
}

// MaskSQL replaces every quoted string literal in sql with the mask value
// when the statement references a sensitive-looking field name. Statements
// without sensitive references are returned unchanged.
func (s *Sanitizer) MaskSQL(sql string) string {
	if !s.containsSensitivePattern(strings.ToLower(sql)) {
		return sql
	}
	return quotedLiteralRegex.ReplaceAllString(sql, "'"+s.maskValue+"'")
}

// containsSensitivePattern checks if sql contains any sensitive field
// patterns.
func (s *Sanitizer) containsSensitivePattern(sql string) bool {
	for _, pattern := range s.patterns {
		if pattern.MatchString(sql) {
			return true
		}
	}
	return false
}
