package sqlkind

import "strings"

// The renderers write kw, the keyword of the kind being built, so that a kind
// embedding one of the markers renders its own keyword.

func renderSelect(kw string, f fragments) string {
	var b strings.Builder
	b.WriteString(kw)
	b.WriteByte(' ')
	if len(f.columns) == 0 {
		b.WriteString("*")
	} else {
		b.WriteString(strings.Join(f.columns, ", "))
	}
	b.WriteString(" FROM ")
	b.WriteString(f.table)
	writeWhere(&b, f)
	b.WriteByte(';')
	return b.String()
}

func renderDelete(kw string, f fragments) string {
	var b strings.Builder
	b.WriteString(kw)
	b.WriteString(" FROM ")
	b.WriteString(f.table)
	writeWhere(&b, f)
	b.WriteByte(';')
	return b.String()
}

// renderInsert does not compare the number of columns and values. A mismatch
// is rendered as is.
func renderInsert(kw string, f fragments) string {
	var b strings.Builder
	b.WriteString(kw)
	b.WriteString(" INTO ")
	b.WriteString(f.table)
	b.WriteString(" (")
	b.WriteString(strings.Join(f.columns, ", "))
	b.WriteString(") VALUES (")
	b.WriteString(strings.Join(f.values, ", "))
	b.WriteString(");")
	return b.String()
}

func renderUpdate(kw string, f fragments) string {
	if len(f.columns) == 0 {
		panic(newAssertionError(kw, "UPDATE requires at least one column"))
	}
	if len(f.columns) != len(f.values) {
		panic(newAssertionError(kw, "columns and values must have the same length"))
	}
	var b strings.Builder
	b.WriteString(kw)
	b.WriteByte(' ')
	b.WriteString(f.table)
	b.WriteString(" SET ")
	for i, col := range f.columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(col)
		b.WriteString(" = ")
		b.WriteString(f.values[i])
	}
	writeWhere(&b, f)
	b.WriteByte(';')
	return b.String()
}

func renderCreateTable(kw string, f fragments) string {
	if len(f.columns) == 0 {
		panic(newAssertionError(kw, "CREATE TABLE requires at least one column"))
	}
	var b strings.Builder
	b.WriteString(kw)
	b.WriteByte(' ')
	b.WriteString(f.table)
	b.WriteString(" (")
	b.WriteString(strings.Join(f.columns, ", "))
	b.WriteString(");")
	return b.String()
}

// writeWhere writes the WHERE clause, or nothing if no condition was set.
func writeWhere(b *strings.Builder, f fragments) {
	if !f.hasCond {
		return
	}
	b.WriteString(" WHERE ")
	b.WriteString(f.cond)
}
