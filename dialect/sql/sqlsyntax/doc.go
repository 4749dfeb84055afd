// Package sqlsyntax parses the statements built by sqlkind.
//
// The grammar covers the SELECT, INSERT, UPDATE, DELETE and CREATE TABLE
// shapes rendered by the builders, with conditions made of AND, OR, NOT,
// comparisons, LIKE, IN, IS [NOT] NULL, BETWEEN, arithmetic, function calls
// and literals. Column definitions of CREATE TABLE are free-form.
//
//	s, err := sqlsyntax.Parse("SELECT id FROM users WHERE age > 30;")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(s.Kind(), s.Table()) // SELECT users
//
// Grammar is a dialect.Checker, so it can be used wherever a database
// validator is, e.g. wrapped by a sql.StatsChecker.
package sqlsyntax
