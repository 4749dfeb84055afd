package sql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"modernc.org/sqlite"
)

// CheckError is returned by the Validator for a statement the database
// rejected.
type CheckError struct {
	Dialect string // Dialect of the database
	Stmt    string // Rejected statement
	Err     error  // Driver error
}

// Error returns the error string.
func (e *CheckError) Error() string {
	return fmt.Sprintf("dialect/sql: %s rejected %q: %v", e.Dialect, e.Stmt, e.Err)
}

// Unwrap returns the underlying driver error.
func (e *CheckError) Unwrap() error {
	return e.Err
}

// IsCheckError returns true if the error is a CheckError.
func IsCheckError(err error) bool {
	if err == nil {
		return false
	}
	var e *CheckError
	return errors.As(err, &e)
}

// sqlStateError is an interface for errors that provide SQLSTATE codes.
// Implemented by pgx and some MySQL drivers.
type sqlStateError interface {
	SQLState() string
}

// PostgreSQL SQLSTATE codes (Class 42, syntax error or access rule violation).
const (
	pgSyntaxError     = "42601"
	pgUndefinedColumn = "42703"
	pgUndefinedTable  = "42P01"
)

// MySQL error numbers.
const (
	mysqlParseError  = 1064
	mysqlBadField    = 1054
	mysqlNoSuchTable = 1146
)

// IsSyntaxError reports if the error resulted from a statement the database
// could not parse.
func IsSyntaxError(err error) bool {
	if err == nil {
		return false
	}
	err = driverError(err)
	if errors.Is(err, ErrMultipleStatements) {
		return true
	}

	// Check for PostgreSQL pq.Error code
	if e, ok := asError[*pq.Error](err); ok {
		return e.Code == pgSyntaxError
	}

	// Check for MySQL error number
	if e, ok := asError[*mysql.MySQLError](err); ok {
		return e.Number == mysqlParseError
	}

	// Check for SQLSTATE code (pgx)
	if e, ok := asError[sqlStateError](err); ok {
		return e.SQLState() == pgSyntaxError
	}

	// SQLite only reports the failure in the message
	if e, ok := asError[*sqlite.Error](err); ok {
		return containsAny(e.Error(), "syntax error", "incomplete input", "unrecognized token")
	}

	// Fallback to string matching for drivers that don't expose codes
	return containsAny(err.Error(),
		"Error 1064",   // MySQL
		"syntax error", // Postgres, SQLite
	)
}

// IsUndefinedError reports if the error resulted from a statement that
// parsed but references a table or column that does not exist.
func IsUndefinedError(err error) bool {
	if err == nil {
		return false
	}
	err = driverError(err)

	// Check for PostgreSQL pq.Error code
	if e, ok := asError[*pq.Error](err); ok {
		return e.Code == pgUndefinedTable || e.Code == pgUndefinedColumn
	}

	// Check for MySQL error number
	if e, ok := asError[*mysql.MySQLError](err); ok {
		return e.Number == mysqlNoSuchTable || e.Number == mysqlBadField
	}

	// Check for SQLSTATE code (pgx)
	if e, ok := asError[sqlStateError](err); ok {
		code := e.SQLState()
		return code == pgUndefinedTable || code == pgUndefinedColumn
	}

	// Fallback to string matching for drivers that don't expose codes
	return containsAny(err.Error(),
		"Error 1146", "Error 1054",        // MySQL
		"does not exist",                  // Postgres
		"no such table", "no such column", // SQLite
	)
}

// driverError strips the CheckError wrapper, so the statement text does not
// take part in the string fallbacks.
func driverError(err error) error {
	if e, ok := asError[*CheckError](err); ok && e.Err != nil {
		return e.Err
	}
	return err
}

// asError attempts to extract an error of type T from the error chain.
func asError[T any](err error) (T, bool) {
	var target T
	for err != nil {
		if e, ok := err.(T); ok {
			return e, true
		}
		err = errors.Unwrap(err)
	}
	return target, false
}

// containsAny returns true if s contains any of the substrings.
func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
