package core

import (
	"fmt"
	"reflect"
	"strconv"
)

// escapeReflect classifies values that fall outside the direct type switch:
// named basic types, pointer indirection, typed nils, arbitrary slices, and
// string-keyed maps. Anything else is stringified with fmt.Sprint and
// escaped as text.
func (f *Formatter) escapeReflect(v any, stringifyObjects bool, field *FieldHint) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "NULL"
		}
		return f.escapeValue(rv.Elem().Interface(), stringifyObjects, field)
	case reflect.Bool:
		return f.dialect.BoolLiteral(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.String:
		return f.dialect.QuoteString(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return f.dialect.BinaryLiteral(rv.Bytes())
		}
		return f.formatList(sliceElems(rv), field)
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			p := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(p), rv)
			return f.dialect.BinaryLiteral(p)
		}
		return f.formatList(sliceElems(rv), field)
	case reflect.Map:
		if obj, ok := stringKeyedMap(rv); ok {
			if stringifyObjects {
				return f.dialect.QuoteString(stringifyMap(obj))
			}
			return f.FormatAssignments(obj)
		}
	}
	return f.dialect.QuoteString(fmt.Sprint(v))
}

// asList reports whether v is a sequence and returns its elements.
// Byte slices are binary values, not sequences.
func asList(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	switch val := v.(type) {
	case []any:
		return val, true
	case []byte, string:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	return sliceElems(rv), true
}

func sliceElems(rv reflect.Value) []any {
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items
}

// stringKeyedMap converts a reflected map with string-kinded keys into a
// map[string]any. Maps with non-string keys report ok=false.
func stringKeyedMap(rv reflect.Value) (map[string]any, bool) {
	if rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	obj := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		obj[iter.Key().String()] = iter.Value().Interface()
	}
	return obj, true
}

// stringifyMap produces the canonical text representation used when a map
// value appears where a scalar literal is required. fmt sorts map keys, so
// the output is deterministic.
func stringifyMap(obj map[string]any) string {
	return fmt.Sprint(obj)
}
