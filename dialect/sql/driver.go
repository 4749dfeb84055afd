package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/sqlkind"
	"github.com/syssam/sqlkind/dialect"

	// Database drivers, registered under the dialect names.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Conn is the part of *sql.DB, *sql.Conn and *sql.Tx used by the Validator.
type Conn interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// Validator is a dialect.Checker that hands statements to a database to be
// compiled, without running them. Postgres and MySQL statements are
// prepared server-side. SQLite statements are compiled with EXPLAIN, since
// the SQLite driver prepares lazily. EXPLAIN covers only the first statement
// of its input, so SQLite input holding more than one statement is rejected
// with ErrMultipleStatements before it reaches the database.
//
// Statements that reference tables are only accepted if the tables exist,
// see OpenScratch for a disposable SQLite database with a given schema.
type Validator struct {
	conn    Conn
	dialect string
	limit   int
	closer  func() error
}

// CheckOption configures the Validator.
type CheckOption func(*Validator)

// WithConcurrency sets the number of statements CheckAll checks at once.
// Default is GOMAXPROCS.
func WithConcurrency(n int) CheckOption {
	return func(v *Validator) {
		if n > 0 {
			v.limit = n
		}
	}
}

// NewValidator creates a Validator over the given Conn. The caller keeps
// ownership of the connection: Close is a no-op.
func NewValidator(dialect string, c Conn, opts ...CheckOption) *Validator {
	v := &Validator{
		conn:    c,
		dialect: dialect,
		limit:   runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Open opens a database with the driver registered for the dialect and
// returns a Validator owning it.
func Open(dialect, source string, opts ...CheckOption) (*Validator, error) {
	db, err := sql.Open(dialect, source)
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: open %s: %w", dialect, err)
	}
	return OpenDB(dialect, db, opts...), nil
}

// OpenDB wraps the given database/sql.DB with a Validator. Closing the
// Validator closes db.
func OpenDB(dialect string, db *sql.DB, opts ...CheckOption) *Validator {
	v := NewValidator(dialect, db, opts...)
	v.closer = db.Close
	return v
}

// OpenScratch opens a private in-memory SQLite database, runs the schema
// statements on it, and returns a Validator owning it.
//
//	users := sqlkind.NewCreateTable().Table("users").Column("id INTEGER").Build()
//	v, err := sql.OpenScratch(ctx, users.Get())
func OpenScratch(ctx context.Context, schema ...string) (*Validator, error) {
	dsn := fmt.Sprintf("file:sqlkind-%s?mode=memory&cache=shared", uuid.NewString())
	db, err := sql.Open(dialect.SQLite, dsn)
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: open scratch: %w", err)
	}
	// The database lives as long as its single connection.
	db.SetMaxOpenConns(1)
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, errors.Join(fmt.Errorf("dialect/sql: scratch schema: %w", err), db.Close())
		}
	}
	return OpenDB(dialect.SQLite, db), nil
}

// Dialect returns the dialect of the validated statements.
func (v *Validator) Dialect() string {
	return v.dialect
}

// Close releases the database opened by Open, OpenDB or OpenScratch.
func (v *Validator) Close() error {
	if v.closer == nil {
		return nil
	}
	return v.closer()
}

// Check compiles stmt. A statement the database rejects is reported as a
// *CheckError.
func (v *Validator) Check(ctx context.Context, stmt string) error {
	var err error
	switch v.dialect {
	case dialect.SQLite:
		err = v.explain(ctx, stmt)
	default:
		err = v.prepare(ctx, stmt)
	}
	if err != nil {
		return &CheckError{Dialect: v.dialect, Stmt: stmt, Err: err}
	}
	return nil
}

// CheckAll checks the statements concurrently and returns the first failure.
// Statements not started when a check fails are skipped.
func (v *Validator) CheckAll(ctx context.Context, stmts ...string) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(v.limit)
	for _, stmt := range stmts {
		stmt := stmt
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return v.Check(ctx, stmt)
			}
		})
	}
	return eg.Wait()
}

func (v *Validator) prepare(ctx context.Context, stmt string) error {
	s, err := v.conn.PrepareContext(ctx, stmt)
	if err != nil {
		return err
	}
	return s.Close()
}

func (v *Validator) explain(ctx context.Context, stmt string) error {
	n, err := countStatements(stmt)
	if err != nil {
		return err
	}
	if n > 1 {
		return ErrMultipleStatements
	}
	rows, err := v.conn.QueryContext(ctx, "EXPLAIN "+stmt)
	if err != nil {
		return err
	}
	// Compilation errors may surface while stepping.
	for rows.Next() {
	}
	return errors.Join(rows.Err(), rows.Close())
}

// CheckQuery checks the text of a built query.
func CheckQuery[K sqlkind.Kind](ctx context.Context, c dialect.Checker, q sqlkind.Query[K]) error {
	return c.Check(ctx, q.Get())
}

var _ dialect.Checker = (*Validator)(nil)
