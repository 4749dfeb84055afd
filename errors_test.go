package sqlkind_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqlkind"
)

func TestAssertionError(t *testing.T) {
	t.Run("Panic", func(t *testing.T) {
		var recovered any
		func() {
			defer func() { recovered = recover() }()
			sqlkind.NewCreateTable().Table("users").Build()
		}()
		err, ok := recovered.(*sqlkind.AssertionError)
		require.True(t, ok, "panic value should be *AssertionError, got %T", recovered)
		assert.Equal(t, "sqlkind: CREATE TABLE requires at least one column", err.Error())
		assert.Equal(t, sqlkind.CreateTableKeyword, err.Kind())
	})

	t.Run("Is", func(t *testing.T) {
		var recovered any
		func() {
			defer func() { recovered = recover() }()
			sqlkind.NewUpdate().Table("users").Column("a").Build()
		}()
		err, ok := recovered.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, sqlkind.ErrAssertion))
		assert.True(t, errors.Is(fmt.Errorf("wrapper: %w", err), sqlkind.ErrAssertion))
		assert.False(t, errors.Is(err, sqlkind.ErrKindMismatch))
	})
}

func TestKindMismatchError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := &sqlkind.KindMismatchError{Want: "SELECT", Got: "DELETE"}
		assert.Equal(t, "sqlkind: query kind mismatch (want SELECT, got DELETE)", err.Error())
	})

	t.Run("IsKindMismatch", func(t *testing.T) {
		err := &sqlkind.KindMismatchError{Want: "INSERT", Got: "UPDATE"}
		assert.True(t, sqlkind.IsKindMismatch(err))

		// Wrapped error
		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, sqlkind.IsKindMismatch(wrapped))

		// Sentinel error
		assert.True(t, sqlkind.IsKindMismatch(sqlkind.ErrKindMismatch))

		// Non-matching error
		assert.False(t, sqlkind.IsKindMismatch(errors.New("other error")))
		assert.False(t, sqlkind.IsKindMismatch(nil))
	})
}
