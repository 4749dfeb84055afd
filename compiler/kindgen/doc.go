// Package kindgen generates the statement-kind declarations of sqlkind.
//
// Each kind listed in the configuration becomes a marker type, a keyword
// constant, the Keyword and render methods, and a constructor returning an
// empty builder:
//
//	// CreateTable marks builders and queries of CREATE TABLE statements.
//	type CreateTable struct{}
//
//	// CreateTableKeyword is the SQL keyword of the CreateTable kind.
//	const CreateTableKeyword = "CREATE TABLE"
//
//	func (CreateTable) Keyword() string { return CreateTableKeyword }
//	func (CreateTable) render(kw string, f fragments) string { return renderCreateTable(kw, f) }
//	func NewCreateTable() QueryBuilder[CreateTable] { return QueryBuilder[CreateTable]{} }
//
// The renderers are written by hand. A kind without one does not compile.
//
// # Configuration
//
// The configuration is read from YAML:
//
//	package: sqlkind
//	output: kinds_gen.go
//	kinds:
//	  - name: Select
//	  - name: CreateTable
//	  - name: Upsert
//	    keyword: INSERT OR REPLACE
//
// or built with options:
//
//	cfg, err := kindgen.NewConfig(
//	    kindgen.WithPackage("sqlkind"),
//	    kindgen.WithKinds(kindgen.KindSpec{Name: "Select"}),
//	)
//	src, err := kindgen.Generate(cfg)
//
// Errors:
//   - ConfigError: invalid or missing configuration
//   - KindError: invalid kind definition
package kindgen
