package core

// FormatList renders items as a dialect-specific list or array literal.
//
// Under PostgreSQL the result is ARRAY[v1,v2,...], with an explicit type
// cast appended when field carries a declared column type. Other dialects
// join the escaped elements with ", ", wrapping nested sequences in
// parentheses to form tuple literals like (a, b). An empty sequence yields
// ARRAY[] under PostgreSQL and the empty string elsewhere.
func (f *Formatter) FormatList(items []any, field *FieldHint) string {
	return f.formatList(items, field)
}

func (f *Formatter) formatList(items []any, field *FieldHint) string {
	cast := ""
	if field != nil {
		cast = field.Type
	}

	elems := make([]string, 0, len(items))
	if f.dialect.SupportsArrays() {
		for _, item := range items {
			elems = append(elems, f.escapeValue(item, true, field))
		}
		return f.dialect.ArrayLiteral(elems, cast)
	}

	for _, item := range items {
		if nested, ok := asList(item); ok {
			elems = append(elems, "("+f.formatList(nested, field)+")")
			continue
		}
		elems = append(elems, f.escapeValue(item, true, field))
	}
	return f.dialect.ArrayLiteral(elems, cast)
}
