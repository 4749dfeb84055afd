package sqlkind_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/sqlkind"
)

func TestQueryDisplay(t *testing.T) {
	t.Parallel()

	q := sqlkind.NewDelete().Table("users").Where("id = 1").Build()
	want := "DELETE FROM users WHERE id = 1;"

	for i := 0; i < 3; i++ {
		assert.Equal(t, want, q.String())
		assert.Equal(t, want, fmt.Sprint(q))
		assert.Equal(t, want, fmt.Sprintf("%s", q))
	}
	assert.Equal(t, want, q.Get())
	assert.Equal(t, "DELETE", q.Keyword())
}

func TestQueryZeroValue(t *testing.T) {
	t.Parallel()

	var q sqlkind.Query[sqlkind.Insert]
	assert.Empty(t, q.Get())
	assert.Equal(t, "INSERT", q.Keyword())
}

// insertOnly only accepts INSERT queries; passing any other kind does not compile.
func insertOnly(q sqlkind.Query[sqlkind.Insert]) string {
	return q.Get()
}

func TestQueryKindTag(t *testing.T) {
	t.Parallel()

	q := sqlkind.NewInsert().Table("t").Column("a").Values("1").Build()
	assert.Equal(t, "INSERT INTO t (a) VALUES (1);", insertOnly(q))
}

func TestQueryMsgpack(t *testing.T) {
	t.Parallel()

	t.Run("RoundTrip", func(t *testing.T) {
		q := sqlkind.NewSelect().Table("users").Columns("id").Where("id > 1").Build()
		b, err := msgpack.Marshal(q)
		require.NoError(t, err)

		var got sqlkind.Query[sqlkind.Select]
		require.NoError(t, msgpack.Unmarshal(b, &got))
		assert.Equal(t, q.Get(), got.Get())
		assert.Equal(t, q, got)
	})

	t.Run("Layout", func(t *testing.T) {
		q := sqlkind.NewCreateTable().Table("t").Column("id INTEGER").Build()
		b, err := msgpack.Marshal(q)
		require.NoError(t, err)

		var raw []string
		require.NoError(t, msgpack.Unmarshal(b, &raw))
		assert.Equal(t, []string{"CREATE TABLE", "CREATE TABLE t (id INTEGER);"}, raw)
	})

	t.Run("KindMismatch", func(t *testing.T) {
		q := sqlkind.NewDelete().Table("users").Build()
		b, err := msgpack.Marshal(q)
		require.NoError(t, err)

		var got sqlkind.Query[sqlkind.Select]
		err = msgpack.Unmarshal(b, &got)
		require.Error(t, err)
		assert.True(t, errors.Is(err, sqlkind.ErrKindMismatch))
		assert.True(t, sqlkind.IsKindMismatch(err))
		assert.Empty(t, got.Get())

		var mismatch *sqlkind.KindMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, "SELECT", mismatch.Want)
		assert.Equal(t, "DELETE", mismatch.Got)
	})

	t.Run("Malformed", func(t *testing.T) {
		b, err := msgpack.Marshal([]string{"SELECT"})
		require.NoError(t, err)

		var got sqlkind.Query[sqlkind.Select]
		err = msgpack.Unmarshal(b, &got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expect 2 elements")
		assert.False(t, sqlkind.IsKindMismatch(err))

		b, err = msgpack.Marshal("SELECT * FROM t;")
		require.NoError(t, err)
		require.Error(t, msgpack.Unmarshal(b, &got))
	})
}

// distinct reuses the SELECT renderer under its own keyword.
type distinct struct{ sqlkind.Select }

func (distinct) Keyword() string { return "SELECT DISTINCT" }

type archive struct{ sqlkind.Delete }

func (archive) Keyword() string { return "ARCHIVE" }

func TestEmbeddedKind(t *testing.T) {
	t.Parallel()

	q := sqlkind.QueryBuilder[distinct]{}.Table("users").Column("name").Build()
	assert.Equal(t, "SELECT DISTINCT name FROM users;", q.Get())
	assert.Equal(t, "SELECT DISTINCT", q.Keyword())

	a := sqlkind.QueryBuilder[archive]{}.Table("t").Build()
	assert.Equal(t, "ARCHIVE FROM t;", a.Get())
	assert.Equal(t, "ARCHIVE", sqlkind.Base(sqlkind.QueryBuilder[archive]{}))

	b, err := msgpack.Marshal(q)
	require.NoError(t, err)
	var raw []string
	require.NoError(t, msgpack.Unmarshal(b, &raw))
	assert.Equal(t, []string{"SELECT DISTINCT", "SELECT DISTINCT name FROM users;"}, raw)

	var sel sqlkind.Query[sqlkind.Select]
	err = msgpack.Unmarshal(b, &sel)
	assert.True(t, sqlkind.IsKindMismatch(err))

	var got sqlkind.Query[distinct]
	require.NoError(t, msgpack.Unmarshal(b, &got))
	assert.Equal(t, q, got)
}
