package sql

import (
	"context"
	"testing"

	"github.com/syssam/sqlkind"
	"github.com/syssam/sqlkind/dialect"
)

func benchScratch(b *testing.B) *Validator {
	b.Helper()
	users := sqlkind.NewCreateTable().
		Table("users").
		Columns("id INTEGER PRIMARY KEY", "name TEXT", "age INTEGER").
		Build()
	v, err := OpenScratch(context.Background(), users.Get())
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { v.Close() })
	return v
}

func BenchmarkValidator_Select(b *testing.B) {
	v := benchScratch(b)
	ctx := context.Background()
	q := sqlkind.NewSelect().
		Table("users").
		Columns("id", "name").
		Where(sqlkind.GT("age", "30")).
		AndWhere(sqlkind.Like("name", "'J%'")).
		Build()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := CheckQuery(ctx, v, q); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidator_CheckAll(b *testing.B) {
	v := benchScratch(b)
	ctx := context.Background()
	stmts := []string{
		sqlkind.NewSelect().Table("users").Build().Get(),
		sqlkind.NewInsert().Table("users").Columns("name", "age").Values("'John'", "30").Build().Get(),
		sqlkind.NewUpdate().Table("users").Column("age").Values("31").Where("name = 'John'").Build().Get(),
		sqlkind.NewDelete().Table("users").Where("age < 18").Build().Get(),
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := v.CheckAll(ctx, stmts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStatsChecker(b *testing.B) {
	ctx := context.Background()
	c := NewStatsChecker(dialect.CheckFunc(func(context.Context, string) error { return nil }))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = c.Check(ctx, "SELECT * FROM users;")
	}
}
