package sqlkind

import "strings"

// The helpers below format condition expressions for Where, AndWhere and
// OrWhere. Like the builder they copy their operands verbatim: string
// literals must be quoted by the caller and nothing is escaped.
//
//	sqlkind.NewDelete().
//	    Table("sessions").
//	    Where(sqlkind.Or(sqlkind.LT("expires_at", "CURRENT_TIMESTAMP"), sqlkind.IsNull("user_id")))

// EQ returns the expression "col = v".
func EQ(col, v string) string { return binary(col, "=", v) }

// NEQ returns the expression "col <> v".
func NEQ(col, v string) string { return binary(col, "<>", v) }

// GT returns the expression "col > v".
func GT(col, v string) string { return binary(col, ">", v) }

// GTE returns the expression "col >= v".
func GTE(col, v string) string { return binary(col, ">=", v) }

// LT returns the expression "col < v".
func LT(col, v string) string { return binary(col, "<", v) }

// LTE returns the expression "col <= v".
func LTE(col, v string) string { return binary(col, "<=", v) }

// Like returns the expression "col LIKE pattern".
func Like(col, pattern string) string { return binary(col, "LIKE", pattern) }

// In returns the expression "col IN (v1, v2, ...)".
func In(col string, vs ...string) string {
	return col + " IN (" + strings.Join(vs, ", ") + ")"
}

// NotIn returns the expression "col NOT IN (v1, v2, ...)".
func NotIn(col string, vs ...string) string {
	return col + " NOT IN (" + strings.Join(vs, ", ") + ")"
}

// IsNull returns the expression "col IS NULL".
func IsNull(col string) string { return col + " IS NULL" }

// NotNull returns the expression "col IS NOT NULL".
func NotNull(col string) string { return col + " IS NOT NULL" }

// Not returns the expression "NOT (expr)".
func Not(expr string) string { return "NOT (" + expr + ")" }

// And joins the expressions with AND. The result is parenthesized when more
// than one expression is given, so it can be nested in Or.
func And(exprs ...string) string { return group(" AND ", exprs) }

// Or joins the expressions with OR. The result is parenthesized when more
// than one expression is given, so it can be nested in And.
func Or(exprs ...string) string { return group(" OR ", exprs) }

func binary(col, op, v string) string {
	return col + " " + op + " " + v
}

func group(op string, exprs []string) string {
	switch len(exprs) {
	case 0:
		return ""
	case 1:
		return exprs[0]
	}
	return "(" + strings.Join(exprs, op) + ")"
}
