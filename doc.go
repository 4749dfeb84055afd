// Package sqlkind builds SQL statements as text with a fluent API whose
// statement kind is a type parameter.
//
// # Kinds
//
// Each statement kind is a zero-size marker type:
//
//   - Select: SELECT <columns or *> FROM <table> [WHERE <condition>];
//   - Insert: INSERT INTO <table> (<columns>) VALUES (<values>);
//   - Update: UPDATE <table> SET <column = value, ...> [WHERE <condition>];
//   - Delete: DELETE FROM <table> [WHERE <condition>];
//   - CreateTable: CREATE TABLE <table> (<column definitions>);
//
// A builder is started with the constructor of its kind and finished with
// Build, which returns a Query tagged with the same kind:
//
//	var q sqlkind.Query[sqlkind.Select] = sqlkind.NewSelect().
//	    Table("users").
//	    Columns("id", "name").
//	    Where("age > 30").
//	    AndWhere("name = 'Alice'").
//	    Build()
//
//	q.Get() // SELECT id, name FROM users WHERE age > 30 AND name = 'Alice';
//
// A function that accepts a Query[sqlkind.Insert] cannot be handed a SELECT,
// and the Kind constraint has an unexported method, so a builder can only be
// instantiated for a kind that has a renderer: a marker, or a type embedding
// one that renders its own keyword.
//
// # No validation
//
// sqlkind assembles text. It does not quote identifiers, escape or
// parameterize values, or check that the statement makes sense: the caller
// formats literals, and mismatched INSERT columns and values are rendered as
// given. The only checks are two assertions on programming errors: an UPDATE
// needs at least one column and as many values as columns, and a CREATE
// TABLE needs at least one column. Build panics with an *AssertionError when
// they fail.
//
// The dialect/sql package can check the produced text against a database,
// and dialect/sql/sqlsyntax against a grammar of the statements this package
// emits.
//
// # Code generation
//
// The kind markers, their keywords and constructors live in kinds_gen.go,
// generated from kinds.yaml by compiler/kindgen. Adding a kind means adding
// it to kinds.yaml, running go generate and writing its render function.
package sqlkind
