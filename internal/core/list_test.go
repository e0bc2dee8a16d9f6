package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatList_Postgres(t *testing.T) {
	f := NewFormatter(WithDialect("postgres"))

	tests := []struct {
		name  string
		items []any
		field *FieldHint
		want  string
	}{
		{"numbers", []any{1, 2, 3}, nil, "ARRAY[1,2,3]"},
		{"strings", []any{"a", "b"}, nil, "ARRAY['a','b']"},
		{"empty", nil, nil, "ARRAY[]"},
		{"empty with cast", nil, &FieldHint{Type: "TEXT"}, "ARRAY[]::TEXT"},
		{"cast strips size", []any{"a"}, &FieldHint{Type: "VARCHAR(255)"}, "ARRAY['a']::VARCHAR"},
		{"nested arrays", []any{[]any{1, 2}, []any{3}}, nil, "ARRAY[ARRAY[1,2],ARRAY[3]]"},
		{"mixed", []any{1, "x", nil, true}, nil, "ARRAY[1,'x',NULL,true]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatList(tt.items, tt.field))
		})
	}
}

func TestFormatList_Generic(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		name  string
		items []any
		want  string
	}{
		{"numbers", []any{1, 2, 3}, "1, 2, 3"},
		{"empty", nil, ""},
		{"nested tuple", []any{[]any{1, 2}, 3}, "(1, 2), 3"},
		{"double nesting", []any{[]any{[]any{1}, 2}}, "((1), 2)"},
		{"typed nested slice", []any{[]int{1, 2}, 3}, "(1, 2), 3"},
		{"strings escaped", []any{"it's"}, `'it\'s'`},
		{"byte slices stay binary", []any{[]byte{0x41}, 1}, "X'41', 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatList(tt.items, nil))
		})
	}
}

func TestFormatList_StringifiesMaps(t *testing.T) {
	// Inside a list, a map is not an assignment target; it is stringified
	// and escaped as text.
	f := NewFormatter()
	got := f.FormatList([]any{map[string]any{"a": 1}}, nil)
	assert.Equal(t, "'map[a:1]'", got)
}

func TestFormatList_SqliteBooleans(t *testing.T) {
	f := NewFormatter(WithDialect("sqlite"))
	assert.Equal(t, "1, 0", f.FormatList([]any{true, false}, nil))
}
