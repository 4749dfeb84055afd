package sqlsyntax

import (
	"context"
	"errors"
	"fmt"

	"github.com/syssam/sqlkind"
	"github.com/syssam/sqlkind/dialect"
)

// ErrValueCount is returned for an INSERT statement whose column and value
// lists differ in length.
var ErrValueCount = errors.New("sqlsyntax: column and value counts differ")

// SyntaxError is returned by Parse for a statement outside the grammar.
type SyntaxError struct {
	Stmt string // Rejected statement
	Err  error  // Parser error with position
}

// Error returns the error string.
func (e *SyntaxError) Error() string {
	return "sqlsyntax: syntax error: " + e.Err.Error()
}

// Unwrap returns the parser error.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// IsSyntaxError returns true if the error is a SyntaxError.
func IsSyntaxError(err error) bool {
	var e *SyntaxError
	return errors.As(err, &e)
}

// Parse parses a single statement.
func Parse(stmt string) (*Statement, error) {
	s, err := parser.ParseString("", stmt)
	if err != nil {
		return nil, &SyntaxError{Stmt: stmt, Err: err}
	}
	if ins := s.Insert; ins != nil && len(ins.Columns) != len(ins.Values) {
		return nil, fmt.Errorf("%w: %d columns, %d values", ErrValueCount, len(ins.Columns), len(ins.Values))
	}
	return s, nil
}

// Kind returns the keyword of the statement kind, e.g. sqlkind.SelectKeyword.
func (s *Statement) Kind() string {
	switch {
	case s.Select != nil:
		return sqlkind.SelectKeyword
	case s.Insert != nil:
		return sqlkind.InsertKeyword
	case s.Update != nil:
		return sqlkind.UpdateKeyword
	case s.Delete != nil:
		return sqlkind.DeleteKeyword
	case s.CreateTable != nil:
		return sqlkind.CreateTableKeyword
	default:
		return ""
	}
}

// Table returns the name of the table the statement operates on.
func (s *Statement) Table() string {
	var n *Name
	switch {
	case s.Select != nil:
		n = s.Select.Table
	case s.Insert != nil:
		n = s.Insert.Table
	case s.Update != nil:
		n = s.Update.Table
	case s.Delete != nil:
		n = s.Delete.Table
	case s.CreateTable != nil:
		n = s.CreateTable.Table
	}
	if n == nil {
		return ""
	}
	return n.String()
}

// Grammar is a dialect.Checker that checks statements against the grammar,
// without a database. Table and column names are not resolved.
type Grammar struct{}

// Check parses stmt.
func (Grammar) Check(ctx context.Context, stmt string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := Parse(stmt)
	return err
}

// ParseQuery parses a built query and checks that its statement is of kind K.
func ParseQuery[K sqlkind.Kind](q sqlkind.Query[K]) (*Statement, error) {
	s, err := Parse(q.Get())
	if err != nil {
		return nil, err
	}
	if kind := s.Kind(); kind != q.Keyword() {
		return nil, &sqlkind.KindMismatchError{Want: q.Keyword(), Got: kind}
	}
	return s, nil
}

var _ dialect.Checker = Grammar{}
