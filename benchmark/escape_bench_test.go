package benchmark

import (
	"testing"
	"time"

	"github.com/coregx/sqlescape"
)

func BenchmarkEscapeValue(b *testing.B) {
	f := sqlescape.NewFormatter()
	instant := time.Date(2024, 3, 5, 10, 30, 45, 0, time.UTC)

	b.Run("String", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = f.EscapeValue("a moderately long string with 'quotes' and \\slashes")
		}
	})

	b.Run("Int", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = f.EscapeValue(1234567)
		}
	})

	b.Run("Timestamp", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = f.EscapeValue(instant)
		}
	})

	b.Run("Binary", func(b *testing.B) {
		data := []byte{0xde, 0xad, 0xbe, 0xef, 0xca, 0xfe}
		for i := 0; i < b.N; i++ {
			_ = f.FormatBinary(data)
		}
	})
}

func BenchmarkFormatList(b *testing.B) {
	items := []any{1, "two", 3.0, true, nil, []any{4, 5}}

	b.Run("Generic", func(b *testing.B) {
		f := sqlescape.NewFormatter()
		for i := 0; i < b.N; i++ {
			_ = f.FormatList(items, nil)
		}
	})

	b.Run("PostgresArray", func(b *testing.B) {
		f := sqlescape.NewFormatter(sqlescape.WithDialect("postgres"))
		for i := 0; i < b.N; i++ {
			_ = f.FormatList(items, nil)
		}
	})
}

func BenchmarkFormatPositional(b *testing.B) {
	f := sqlescape.NewFormatter()
	params := []any{42, "active", time.Now()}
	for i := 0; i < b.N; i++ {
		_ = f.FormatPositional("SELECT * FROM users WHERE id = ? AND status = ? AND created_at < ?", params)
	}
}

func BenchmarkFormatNamed(b *testing.B) {
	f := sqlescape.NewFormatter()
	params := map[string]any{"id": 42, "status": "active"}
	for i := 0; i < b.N; i++ {
		_, _ = f.FormatNamed("SELECT * FROM users WHERE id = :id AND status = :status", params)
	}
}
