// Package sql checks statements built by sqlkind against a database.
//
// A Validator hands each statement to the database to be compiled and
// reports a rejected statement as a *CheckError. Nothing is executed: Postgres
// and MySQL statements are prepared server-side, SQLite statements are
// compiled with EXPLAIN. SQLite input holding several statements is rejected
// with ErrMultipleStatements, since EXPLAIN would run all but the first.
//
// # Opening
//
//	import "github.com/syssam/sqlkind/dialect"
//
//	// Any database reachable through database/sql
//	v, err := sql.Open(dialect.Postgres, "postgres://...")
//
//	// A private in-memory SQLite database holding the given schema
//	users := sqlkind.NewCreateTable().
//	    Table("users").
//	    Columns("id INTEGER PRIMARY KEY", "name TEXT").
//	    Build()
//	v, err := sql.OpenScratch(ctx, users.Get())
//
// # Checking
//
//	q := sqlkind.NewSelect().Table("users").Columns("id").Build()
//	err := sql.CheckQuery(ctx, v, q)
//
//	// Several statements at once
//	err = v.CheckAll(ctx, stmts...)
//
// # Errors
//
// IsSyntaxError and IsUndefinedError classify rejections of the supported
// drivers: a statement that does not parse, and a statement that parses but
// references a missing table or column.
//
// # Statistics
//
// StatsChecker and DebugChecker wrap any dialect.Checker:
//
//	c := sql.NewStatsChecker(v, sql.WithFailureLog())
//	_ = c.Check(ctx, q.Get())
//	fmt.Println(c.CheckStats().Stats())
package sql
