package sqlsyntax

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Statement is one of the statement shapes built by sqlkind, terminated by a
// semicolon.
type Statement struct {
	Select      *SelectStmt      `parser:"  @@"`
	Insert      *InsertStmt      `parser:"| @@"`
	Update      *UpdateStmt      `parser:"| @@"`
	Delete      *DeleteStmt      `parser:"| @@"`
	CreateTable *CreateTableStmt `parser:"| @@"`
}

// SelectStmt parses: SELECT (* | expr, ...) FROM table [WHERE cond];
type SelectStmt struct {
	All     bool    `parser:"'SELECT' ( @'*'"`
	Columns []*Expr `parser:"        | @@ ( ',' @@ )* )"`
	Table   *Name   `parser:"'FROM' @@"`
	Where   *Expr   `parser:"( 'WHERE' @@ )? ';'"`
}

// InsertStmt parses: INSERT INTO table (col, ...) VALUES (expr, ...);
type InsertStmt struct {
	Table   *Name   `parser:"'INSERT' 'INTO' @@"`
	Columns []*Name `parser:"'(' @@ ( ',' @@ )* ')'"`
	Values  []*Expr `parser:"'VALUES' '(' @@ ( ',' @@ )* ')' ';'"`
}

// UpdateStmt parses: UPDATE table SET col = expr, ... [WHERE cond];
type UpdateStmt struct {
	Table *Name         `parser:"'UPDATE' @@"`
	Set   []*Assignment `parser:"'SET' @@ ( ',' @@ )*"`
	Where *Expr         `parser:"( 'WHERE' @@ )? ';'"`
}

// Assignment parses: col = expr
type Assignment struct {
	Column *Name `parser:"@@ '='"`
	Value  *Expr `parser:"@@"`
}

// DeleteStmt parses: DELETE FROM table [WHERE cond];
type DeleteStmt struct {
	Table *Name `parser:"'DELETE' 'FROM' @@"`
	Where *Expr `parser:"( 'WHERE' @@ )? ';'"`
}

// CreateTableStmt parses: CREATE TABLE table (def, ...);
type CreateTableStmt struct {
	Table   *Name        `parser:"'CREATE' 'TABLE' @@"`
	Columns []*ColumnDef `parser:"'(' @@ ( ',' @@ )* ')' ';'"`
}

// ColumnDef is a column name followed by free-form type and constraint
// tokens, e.g. "age INTEGER NOT NULL DEFAULT 0".
type ColumnDef struct {
	Name *Name       `parser:"@@"`
	Spec []*DefToken `parser:"@@*"`
}

// DefToken is a token of a column definition. Parenthesized groups may hold
// commas, e.g. "NUMERIC(10, 2)".
type DefToken struct {
	Group *DefGroup `parser:"  @@"`
	Word  string    `parser:"| @(Ident | QuotedIdent | Keyword | String | Number | Operator | '.')"`
}

// DefGroup parses: ( token ... )
type DefGroup struct {
	Tokens []*GroupToken `parser:"'(' @@* ')'"`
}

// GroupToken is a token inside a DefGroup.
type GroupToken struct {
	Group *DefGroup `parser:"  @@"`
	Word  string    `parser:"| @(Ident | QuotedIdent | Keyword | String | Number | Operator | '.' | ',')"`
}

// Name is a possibly qualified identifier, e.g. users.id or "order"."id".
type Name struct {
	Parts []string `parser:"@(Ident | QuotedIdent) ( '.' @(Ident | QuotedIdent) )*"`
}

func (n *Name) String() string {
	return strings.Join(n.Parts, ".")
}

// Expr is a disjunction of conjunctions.
type Expr struct {
	Or []*AndExpr `parser:"@@ ( 'OR' @@ )*"`
}

// AndExpr is a conjunction.
type AndExpr struct {
	And []*NotExpr `parser:"@@ ( 'AND' @@ )*"`
}

// NotExpr is a possibly negated predicate.
type NotExpr struct {
	Not       *NotExpr   `parser:"  'NOT' @@"`
	Predicate *Predicate `parser:"| @@"`
}

// Predicate is an operand followed by an optional comparison.
type Predicate struct {
	Left *Sum           `parser:"@@"`
	Tail *PredicateTail `parser:"@@?"`
}

// PredicateTail is the right-hand side of a predicate.
type PredicateTail struct {
	Compare *Compare `parser:"  @@"`
	Is      *Is      `parser:"| @@"`
	Match   *Match   `parser:"| @@"`
}

// Compare parses: op operand
type Compare struct {
	Op    string `parser:"@( '=' | '<>' | '!=' | '<=' | '>=' | '<' | '>' )"`
	Right *Sum   `parser:"@@"`
}

// Is parses: IS [NOT] NULL
type Is struct {
	Not bool `parser:"'IS' @'NOT'? 'NULL'"`
}

// Match parses: [NOT] (LIKE operand | IN (expr, ...) | BETWEEN low AND high)
type Match struct {
	Not     bool     `parser:"@'NOT'?"`
	Like    *Sum     `parser:"(  'LIKE' @@"`
	In      []*Expr  `parser:" | 'IN' '(' @@ ( ',' @@ )* ')'"`
	Between *Between `parser:" | @@ )"`
}

// Between parses: BETWEEN low AND high
type Between struct {
	Low  *Sum `parser:"'BETWEEN' @@"`
	High *Sum `parser:"'AND' @@"`
}

// Sum is an additive expression.
type Sum struct {
	Left *Term    `parser:"@@"`
	Ops  []*SumOp `parser:"@@*"`
}

// SumOp parses: (+ | - | ||) term
type SumOp struct {
	Op    string `parser:"@( '+' | '-' | '||' )"`
	Right *Term  `parser:"@@"`
}

// Term is a multiplicative expression.
type Term struct {
	Left *Factor   `parser:"@@"`
	Ops  []*TermOp `parser:"@@*"`
}

// TermOp parses: (* | / | %) factor
type TermOp struct {
	Op    string  `parser:"@( '*' | '/' | '%' )"`
	Right *Factor `parser:"@@"`
}

// Factor is a possibly signed primary.
type Factor struct {
	Sign    string   `parser:"@( '-' | '+' )?"`
	Primary *Primary `parser:"@@"`
}

// Primary is a literal, a column or function reference, or a parenthesized
// expression.
type Primary struct {
	Null   bool   `parser:"  @'NULL'"`
	Bool   string `parser:"| @( 'TRUE' | 'FALSE' )"`
	Number string `parser:"| @Number"`
	String string `parser:"| @String"`
	Ref    *Ref   `parser:"| @@"`
	Group  *Expr  `parser:"| '(' @@ ')'"`
}

// Ref is a column, or a function call when followed by arguments.
type Ref struct {
	Name *Name `parser:"@@"`
	Call *Call `parser:"@@?"`
}

// Call parses: ( [* | expr, ...] )
type Call struct {
	Star bool    `parser:"'(' ( @'*'"`
	Args []*Expr `parser:"    | @@ ( ',' @@ )* )? ')'"`
}

var sqlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `--[^\n]*|/\*(?:[^*]|\*[^/])*\*/`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Keyword", Pattern: `(?i)\b(SELECT|FROM|WHERE|INSERT|INTO|VALUES|UPDATE|SET|DELETE|CREATE|TABLE|AND|OR|NOT|LIKE|IN|IS|NULL|BETWEEN|TRUE|FALSE)\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "QuotedIdent", Pattern: "\"(?:[^\"]|\"\")*\"|`[^`]*`"},
	{Name: "String", Pattern: `'(?:[^']|'')*'`},
	{Name: "Number", Pattern: `\d+(?:\.\d+)?(?:[eE][-+]?\d+)?|\.\d+(?:[eE][-+]?\d+)?`},
	{Name: "Operator", Pattern: `<>|!=|<=|>=|\|\||[-+*/%=<>]`},
	{Name: "Punct", Pattern: `[(),.;]`},
})

var parser = participle.MustBuild[Statement](
	participle.Lexer(sqlLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.CaseInsensitive("Keyword"),
	participle.UseLookahead(4),
)
