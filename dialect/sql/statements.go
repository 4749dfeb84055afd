package sql

import (
	"errors"

	"github.com/alecthomas/participle/v2/lexer"
)

// ErrMultipleStatements is reported by the Validator for input holding more
// than one statement. SQLite compiles only the first statement under EXPLAIN
// and would run the others.
var ErrMultipleStatements = errors.New("dialect/sql: syntax error: more than one statement")

// stmtLexer splits input on the semicolons that are outside of literals,
// quoted identifiers and comments. The last rule matches any character, so
// lexing never fails.
var stmtLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `--[^\n]*|/\*[\s\S]*?\*/`},
	{Name: "String", Pattern: `'(?:[^']|'')*'`},
	{Name: "QuotedIdent", Pattern: "\"(?:[^\"]|\"\")*\"|`[^`]*`|\\[[^\\]]*\\]"},
	{Name: "Semicolon", Pattern: `;`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Text", Pattern: "[^;'\"`\\[\\s/-]+|(?s:.)"},
})

var (
	semicolon = stmtLexer.Symbols()["Semicolon"]
	comment   = stmtLexer.Symbols()["Comment"]
	space     = stmtLexer.Symbols()["Whitespace"]
)

// countStatements returns the number of non-empty statements in src. A
// trailing statement without a semicolon is counted.
func countStatements(src string) (int, error) {
	lex, err := stmtLexer.LexString("", src)
	if err != nil {
		return 0, err
	}
	var n int
	var open bool
	for {
		tok, err := lex.Next()
		if err != nil {
			return 0, err
		}
		switch {
		case tok.EOF():
			if open {
				n++
			}
			return n, nil
		case tok.Type == semicolon:
			if open {
				n++
				open = false
			}
		case tok.Type != comment && tok.Type != space:
			open = true
		}
	}
}
