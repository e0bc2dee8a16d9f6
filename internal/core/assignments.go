package core

import (
	"reflect"
	"sort"
	"strings"

	"github.com/coregx/sqlescape/internal/dialects"
)

// FormatAssignments renders obj as a comma-separated list of `key` = value
// assignments suitable for UPDATE ... SET clauses. Keys are sorted for
// deterministic output and func-valued entries are silently skipped, since
// functions have no SQL representation.
//
// Values are always rendered with the generic dialect; only the formatter's
// timezone carries through. The result is an assignment list, not a single
// scalar literal.
func (f *Formatter) FormatAssignments(obj map[string]any) string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	gf := f
	if f.dialect != dialects.Default() {
		clone := *f
		clone.dialect = dialects.Default()
		gf = &clone
	}

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := obj[k]
		if v != nil && reflect.TypeOf(v).Kind() == reflect.Func {
			continue
		}
		parts = append(parts, EscapeIdentifier(k, false)+" = "+gf.escapeValue(v, true, nil))
	}
	return strings.Join(parts, ", ")
}
