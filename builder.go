package sqlkind

import "slices"

// fragments is the kind-agnostic state accumulated by a QueryBuilder.
// Only the fields used by a kind's renderer end up in its statement: values
// are ignored by SELECT, DELETE and CREATE TABLE, the condition by INSERT and
// CREATE TABLE.
type fragments struct {
	table   string
	columns []string
	cond    string
	hasCond bool
	values  []string
}

// QueryBuilder accumulates the fragments of a statement of kind K.
//
// Builders are values. Every method returns a new builder and leaves its
// receiver untouched, so intermediate builders can be kept and branched:
//
//	base := sqlkind.NewSelect().Table("users")
//	active := base.Where("active = 1").Build()
//	all := base.Build()
//
// Nothing is validated while building. Identifiers, expressions and value
// literals are copied into the statement verbatim.
type QueryBuilder[K Kind] struct {
	f fragments
}

// Table sets the table the statement operates on.
func (b QueryBuilder[K]) Table(name string) QueryBuilder[K] {
	b.f.table = name
	return b
}

// Column appends a column. For CREATE TABLE a column is a full column
// definition, e.g. "name TEXT NOT NULL".
func (b QueryBuilder[K]) Column(name string) QueryBuilder[K] {
	b.f.columns = append(slices.Clip(b.f.columns), name)
	return b
}

// Columns replaces the column list.
func (b QueryBuilder[K]) Columns(names ...string) QueryBuilder[K] {
	b.f.columns = slices.Clone(names)
	return b
}

// Values replaces the value list. Values are SQL literals formatted by the
// caller: strings must already carry their quotes.
func (b QueryBuilder[K]) Values(values ...string) QueryBuilder[K] {
	b.f.values = slices.Clone(values)
	return b
}

// Where sets the condition, discarding any previous one.
func (b QueryBuilder[K]) Where(expr string) QueryBuilder[K] {
	b.f.cond, b.f.hasCond = expr, true
	return b
}

// AndWhere joins expr to the condition with AND. Without a condition it
// behaves like Where.
func (b QueryBuilder[K]) AndWhere(expr string) QueryBuilder[K] {
	return b.join(" AND ", expr)
}

// OrWhere joins expr to the condition with OR. Without a condition it
// behaves like Where.
func (b QueryBuilder[K]) OrWhere(expr string) QueryBuilder[K] {
	return b.join(" OR ", expr)
}

func (b QueryBuilder[K]) join(op, expr string) QueryBuilder[K] {
	if !b.f.hasCond {
		return b.Where(expr)
	}
	b.f.cond += op + expr
	return b
}

// Build renders the statement with the renderer of K.
//
// Building an UPDATE without columns, or with a different number of columns
// and values, and building a CREATE TABLE without columns, are programming
// errors and panic with an *AssertionError.
func (b QueryBuilder[K]) Build() Query[K] {
	var k K
	return Query[K]{text: k.render(k.Keyword(), b.f)}
}
