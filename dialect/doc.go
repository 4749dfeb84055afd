// Package dialect defines the dialect names and the Checker contract used
// to validate the statements built by sqlkind.
//
// # Supported Dialects
//
//   - Postgres: PostgreSQL database
//   - MySQL: MySQL/MariaDB database
//   - SQLite: SQLite database
//
// Each dialect is identified by a constant string:
//
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// # Checker Interface
//
// A Checker reports whether a statement is well-formed:
//
//	type Checker interface {
//	    Check(ctx context.Context, stmt string) error
//	}
//
// It is implemented by the database-backed validator of dialect/sql and by
// the grammar of dialect/sql/sqlsyntax:
//
//	v, err := sql.OpenScratch(ctx, schema.Get())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer v.Close()
//	err = v.Check(ctx, query.Get())
//
// # Sub-packages
//
//   - dialect/sql: validation against a database through database/sql
//   - dialect/sql/sqlsyntax: validation against a grammar, without a database
package dialect
