package core

import (
	"strconv"
	"strings"
	"time"
)

// EscapeIdentifier wraps a table or column name in backtick delimiters,
// doubling any embedded backtick. Unless forbidQualified is set, dots split
// the name into independently quoted segments: a.b -> `a`.`b`. The dot
// replacement happens after the doubling step, so an embedded backtick can
// never smuggle in a segment separator.
func EscapeIdentifier(name string, forbidQualified bool) string {
	s := strings.ReplaceAll(name, "`", "``")
	if !forbidQualified {
		s = strings.ReplaceAll(s, ".", "`.`")
	}
	return "`" + s + "`"
}

// EscapeValue renders v as its literal SQL representation.
//
// Supported shapes: nil (NULL), booleans, all numeric widths, strings,
// time.Time, []byte, slices/arrays, and string-keyed maps. Pointers are
// dereferenced first; typed nils render as NULL. Values outside these shapes
// are stringified with fmt.Sprint and escaped as text (best effort, never
// silently truncated or altered beyond quoting).
//
// Note that string-keyed maps render as an assignment list (`k` = v, ...)
// rather than a single scalar literal; see FormatAssignments.
func (f *Formatter) EscapeValue(v any) string {
	return f.escapeValue(v, false, nil)
}

// escapeValue is the central dispatch. When stringifyObjects is true,
// map-shaped values are stringified and escaped as text instead of being
// rendered as assignment lists; list and template formatting rely on that.
func (f *Formatter) escapeValue(v any, stringifyObjects bool, field *FieldHint) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case bool:
		return f.dialect.BoolLiteral(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return f.dialect.QuoteString(val)
	case time.Time:
		return f.dialect.TimestampLiteral(val, f.tz)
	case []byte:
		return f.dialect.BinaryLiteral(val)
	case []any:
		return f.formatList(val, field)
	case map[string]any:
		if stringifyObjects {
			return f.dialect.QuoteString(stringifyMap(val))
		}
		return f.FormatAssignments(val)
	default:
		return f.escapeReflect(val, stringifyObjects, field)
	}
}
