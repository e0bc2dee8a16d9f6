package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPositional(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		name   string
		tmpl   string
		params []any
		want   string
	}{
		{
			name:   "single marker",
			tmpl:   "SELECT * FROM t WHERE id = ?",
			params: []any{42},
			want:   "SELECT * FROM t WHERE id = 42",
		},
		{
			name:   "multiple markers",
			tmpl:   "INSERT INTO t (a, b) VALUES (?, ?)",
			params: []any{1, "x"},
			want:   "INSERT INTO t (a, b) VALUES (1, 'x')",
		},
		{
			name:   "exhausted params leave marker",
			tmpl:   "? ?",
			params: []any{1},
			want:   "1 ?",
		},
		{
			name:   "no params leaves all markers",
			tmpl:   "a = ? AND b = ?",
			params: nil,
			want:   "a = ? AND b = ?",
		},
		{
			name:   "surplus params ignored",
			tmpl:   "id = ?",
			params: []any{1, 2, 3},
			want:   "id = 1",
		},
		{
			name:   "string escaping applies",
			tmpl:   "name = ?",
			params: []any{"it's"},
			want:   `name = 'it\'s'`,
		},
		{
			name:   "nil renders NULL",
			tmpl:   "deleted_at = ?",
			params: []any{nil},
			want:   "deleted_at = NULL",
		},
		{
			name:   "no markers",
			tmpl:   "SELECT 1",
			params: []any{1},
			want:   "SELECT 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatPositional(tt.tmpl, tt.params))
		})
	}
}

func TestFormatNamed(t *testing.T) {
	f := NewFormatter()

	t.Run("single marker", func(t *testing.T) {
		got, err := f.FormatNamed("WHERE id = :id", map[string]any{"id": 5})
		require.NoError(t, err)
		assert.Equal(t, "WHERE id = 5", got)
	})

	t.Run("repeated marker", func(t *testing.T) {
		got, err := f.FormatNamed("id = :id OR parent = :id", map[string]any{"id": 5})
		require.NoError(t, err)
		assert.Equal(t, "id = 5 OR parent = 5", got)
	})

	t.Run("multiple markers with escaping", func(t *testing.T) {
		got, err := f.FormatNamed("a = :a AND b = :b", map[string]any{"a": 1, "b": "it's"})
		require.NoError(t, err)
		assert.Equal(t, `a = 1 AND b = 'it\'s'`, got)
	})

	t.Run("missing parameter fails", func(t *testing.T) {
		got, err := f.FormatNamed("WHERE id = :missing", map[string]any{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingParameter))
		assert.Contains(t, err.Error(), ":missing")
		assert.Empty(t, got)
	})

	t.Run("digit after colon is not a marker", func(t *testing.T) {
		got, err := f.FormatNamed("WHERE t = '12:30'", map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, "WHERE t = '12:30'", got)
	})

	t.Run("no markers", func(t *testing.T) {
		got, err := f.FormatNamed("SELECT 1", nil)
		require.NoError(t, err)
		assert.Equal(t, "SELECT 1", got)
	})
}

func TestFormatNamed_TypeCasts(t *testing.T) {
	t.Run("postgres passes casts through", func(t *testing.T) {
		f := NewFormatter(WithDialect("postgres"))
		got, err := f.FormatNamed("SELECT :id::int", map[string]any{"id": 5})
		require.NoError(t, err)
		assert.Equal(t, "SELECT 5::int", got)
	})

	t.Run("postgres bare cast untouched", func(t *testing.T) {
		f := NewFormatter(WithDialect("postgres"))
		got, err := f.FormatNamed("SELECT '5'::int", nil)
		require.NoError(t, err)
		assert.Equal(t, "SELECT '5'::int", got)
	})

	t.Run("mysql treats cast token as marker", func(t *testing.T) {
		// Without cast syntax the '::int' token resolves like any other
		// marker and fails when unbound.
		f := NewFormatter()
		_, err := f.FormatNamed("SELECT :id::int", map[string]any{"id": 5})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingParameter))
		assert.Contains(t, err.Error(), "::int")
	})
}
