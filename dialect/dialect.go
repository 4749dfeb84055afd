package dialect

import "context"

// Dialect names.
const (
	MySQL    = "mysql"
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// Checker checks that a statement is well-formed SQL.
type Checker interface {
	Check(ctx context.Context, stmt string) error
}

// CheckFunc adapts an ordinary function to the Checker interface.
type CheckFunc func(ctx context.Context, stmt string) error

// Check calls f(ctx, stmt).
func (f CheckFunc) Check(ctx context.Context, stmt string) error {
	return f(ctx, stmt)
}
