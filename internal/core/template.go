package core

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// namedMarkerRegex matches named parameter markers :name (and '::' cast
// tokens, which need special handling). The character after the colon must
// not be a digit, so time literals like '12:30' are never mistaken for
// markers.
var namedMarkerRegex = regexp.MustCompile(`::?[A-Za-z_]\w*`)

// FormatPositional substitutes each ? marker in tmpl with the next escaped
// parameter, consumed front to back. Markers beyond the last parameter are
// left in place; running out of parameters is not an error.
func (f *Formatter) FormatPositional(tmpl string, params []any) string {
	start := time.Now()

	var b strings.Builder
	b.Grow(len(tmpl))
	next := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] == '?' && next < len(params) {
			b.WriteString(f.escapeValue(params[next], false, nil))
			next++
			continue
		}
		b.WriteByte(tmpl[i])
	}

	sql := b.String()
	f.finish(tmpl, sql, len(params), start, nil)
	return sql
}

// FormatNamed substitutes :name markers in tmpl with escaped values from
// params. A marker whose name is absent from params aborts formatting with
// ErrMissingParameter. Under the PostgreSQL dialect, '::' tokens are type
// casts and pass through untouched.
func (f *Formatter) FormatNamed(tmpl string, params map[string]any) (string, error) {
	start := time.Now()

	var missing string
	sql := namedMarkerRegex.ReplaceAllStringFunc(tmpl, func(marker string) string {
		if strings.HasPrefix(marker, "::") && f.dialect.KeepsTypeCasts() {
			return marker
		}
		name := strings.TrimLeft(marker, ":")
		v, ok := params[name]
		if !ok {
			if missing == "" {
				missing = marker
			}
			return marker
		}
		return f.escapeValue(v, false, nil)
	})

	if missing != "" {
		err := fmt.Errorf("%w: %s", ErrMissingParameter, missing)
		f.finish(tmpl, "", len(params), start, err)
		return "", err
	}
	f.finish(tmpl, sql, len(params), start, nil)
	return sql, nil
}

// finish logs the outcome of a template formatting call and invokes the
// format hook if one is configured. Formatted SQL passes through the
// sanitizer before reaching the log so secrets are not emitted verbatim.
func (f *Formatter) finish(tmpl, sql string, params int, start time.Time, err error) {
	if err != nil {
		f.logger.Error("template formatting failed",
			"template", tmpl, "error", err)
	} else {
		f.logger.Debug("template formatted",
			"sql", f.sanitizer.MaskSQL(sql), "params", params)
	}

	if f.hook != nil {
		f.hook(FormatEvent{
			Template:  tmpl,
			SQL:       sql,
			Params:    params,
			Operation: DetectOperation(tmpl),
			Duration:  time.Since(start),
			Error:     err,
		})
	}
}
