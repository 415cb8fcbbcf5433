package format

import (
	"github.com/siddontang/tidbparser/pkg/core"
	"github.com/siddontang/tidbparser/pkg/dialect"
)

// Statement renders a statement as a single line of SQL that parses back to
// an equal AST under the same dialect.
func Statement(stmt core.Stmt, d *dialect.Dialect) string {
	p := newPrinter(d, false)
	p.formatStmt(stmt)
	return p.String()
}

// Expr renders an expression as a single line of SQL.
func Expr(e core.Expr, d *dialect.Dialect) string {
	p := newPrinter(d, false)
	p.formatExpr(e)
	return p.String()
}

// Pretty renders a statement with one clause per line and indented lists.
func Pretty(stmt core.Stmt, d *dialect.Dialect) string {
	p := newPrinter(d, true)
	p.formatStmt(stmt)
	return p.String()
}
