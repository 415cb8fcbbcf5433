package format

import (
	"github.com/siddontang/tidbparser/pkg/core"
	"github.com/siddontang/tidbparser/pkg/token"
)

func (p *Printer) formatStmt(stmt core.Stmt) {
	switch s := stmt.(type) {
	case *core.SelectStmt:
		p.formatSelectStmt(s)
	case *core.InsertStmt:
		p.formatInsert(s)
	case *core.UpdateStmt:
		p.formatUpdate(s)
	case *core.DeleteStmt:
		p.formatDelete(s)
	case *core.CreateTableStmt:
		p.formatCreateTable(s)
	case *core.DropTableStmt:
		p.formatDropTable(s)
	case *core.UseStmt:
		p.kw(token.USE)
		p.space()
		p.ident(s.Database)
	case *core.ShowStmt:
		p.formatShow(s)
	}
}

// ---------- SELECT ----------

func (p *Printer) formatSelectStmt(stmt *core.SelectStmt) {
	if stmt == nil {
		return
	}
	p.formatSelectBody(stmt.Body)
}

func (p *Printer) formatSelectBody(body *core.SelectBody) {
	if body == nil {
		return
	}

	p.formatSelectCore(body.Left)

	if body.Op == core.SetOpUnion {
		p.sep()
		p.kw(token.UNION)
		if body.All {
			p.space()
			p.kw(token.ALL)
		}
		p.sep()
		p.formatSelectBody(body.Right)
	}
}

func (p *Printer) formatSelectCore(sc *core.SelectCore) {
	if sc == nil {
		return
	}

	p.kw(token.SELECT)
	if sc.Distinct {
		p.space()
		p.kw(token.DISTINCT)
	}
	p.block(func() {
		p.clauseList(len(sc.Columns), func(i int) { p.formatSelectItem(sc.Columns[i]) })
	})

	if sc.From != nil {
		p.clause("FROM")
		p.space()
		p.formatFromClause(sc.From)
	}

	if sc.Where != nil {
		p.clause("WHERE")
		p.block(func() { p.formatExpr(sc.Where) })
	}

	if len(sc.GroupBy) > 0 {
		p.clause("GROUP BY")
		p.block(func() {
			p.clauseList(len(sc.GroupBy), func(i int) { p.formatExpr(sc.GroupBy[i]) })
		})
	}

	if sc.Having != nil {
		p.clause("HAVING")
		p.block(func() { p.formatExpr(sc.Having) })
	}

	p.formatOrderLimit(sc.OrderBy, sc.Limit, sc.Offset)
}

// formatOrderLimit prints the ORDER BY / LIMIT tail shared by SELECT,
// UPDATE and DELETE.
func (p *Printer) formatOrderLimit(orderBy []core.OrderByItem, limit, offset core.Expr) {
	if len(orderBy) > 0 {
		p.clause("ORDER BY")
		p.block(func() {
			p.clauseList(len(orderBy), func(i int) { p.formatOrderByItem(orderBy[i]) })
		})
	}

	if limit != nil {
		p.clause("LIMIT")
		p.space()
		p.formatExpr(limit)
		if offset != nil {
			p.space()
			p.kw(token.OFFSET)
			p.space()
			p.formatExpr(offset)
		}
	}
}

func (p *Printer) formatSelectItem(item core.SelectItem) {
	switch {
	case item.Star:
		p.write("*")
	case item.TableStar != "":
		p.ident(item.TableStar)
		p.write(".*")
	default:
		p.formatExpr(item.Expr)
		p.formatAlias(item.Alias)
	}
}

func (p *Printer) formatAlias(alias string) {
	if alias == "" {
		return
	}
	p.space()
	p.kw(token.AS)
	p.space()
	p.ident(alias)
}

func (p *Printer) formatOrderByItem(item core.OrderByItem) {
	p.formatExpr(item.Expr)
	if item.Desc {
		p.space()
		p.kw(token.DESC)
	}
}

// ---------- FROM ----------

func (p *Printer) formatFromClause(from *core.FromClause) {
	p.formatTableRef(from.Source)

	for _, join := range from.Joins {
		p.formatJoin(join)
	}
}

func (p *Printer) formatTableRef(ref core.TableRef) {
	switch t := ref.(type) {
	case *core.TableName:
		p.formatTableName(t)
		p.formatAlias(t.Alias)
	case *core.DerivedTable:
		p.nested(func() { p.formatSelectStmt(t.Select) })
		p.formatAlias(t.Alias)
	}
}

func (p *Printer) formatTableName(t *core.TableName) {
	if t == nil {
		return
	}
	if t.Schema != "" {
		p.ident(t.Schema)
		p.write(".")
	}
	p.ident(t.Name)
}

func (p *Printer) formatJoin(join *core.Join) {
	if join.Type == core.JoinComma {
		p.write(", ")
		p.formatTableRef(join.Right)
		return
	}

	p.sep()
	switch join.Type {
	case core.JoinInner:
		p.kw(token.JOIN)
	case core.JoinLeft:
		p.kw(token.LEFT, token.JOIN)
	case core.JoinRight:
		p.kw(token.RIGHT, token.JOIN)
	case core.JoinCross:
		p.kw(token.CROSS, token.JOIN)
	default:
		p.keyword(string(join.Type))
	}
	p.space()
	p.formatTableRef(join.Right)

	switch {
	case join.Condition != nil:
		p.space()
		p.kw(token.ON)
		p.space()
		p.formatExpr(join.Condition)
	case len(join.Using) > 0:
		p.space()
		p.kw(token.USING)
		p.space()
		p.identList(join.Using)
	}
}

// ---------- DML ----------

func (p *Printer) formatInsert(stmt *core.InsertStmt) {
	p.kw(token.INSERT, token.INTO)
	p.space()
	p.formatTableName(stmt.Table)
	if len(stmt.Columns) > 0 {
		p.space()
		p.identList(stmt.Columns)
	}

	if stmt.Select != nil {
		p.sep()
		p.formatSelectStmt(stmt.Select)
		return
	}

	p.clause("VALUES")
	p.block(func() {
		p.clauseList(len(stmt.Rows), func(i int) {
			row := stmt.Rows[i]
			p.write("(")
			p.formatList(len(row), func(j int) { p.formatExpr(row[j]) }, ", ", false)
			p.write(")")
		})
	})
}

func (p *Printer) formatUpdate(stmt *core.UpdateStmt) {
	p.kw(token.UPDATE)
	p.space()
	p.formatTableName(stmt.Table)
	if stmt.Table != nil {
		p.formatAlias(stmt.Table.Alias)
	}

	p.clause("SET")
	p.block(func() {
		p.clauseList(len(stmt.Set), func(i int) {
			a := stmt.Set[i]
			p.formatColumnRef(a.Column)
			p.write(" = ")
			p.formatExpr(a.Value)
		})
	})

	if stmt.Where != nil {
		p.clause("WHERE")
		p.block(func() { p.formatExpr(stmt.Where) })
	}
	p.formatOrderLimit(stmt.OrderBy, stmt.Limit, nil)
}

func (p *Printer) formatDelete(stmt *core.DeleteStmt) {
	p.kw(token.DELETE, token.FROM)
	p.space()
	p.formatTableName(stmt.Table)

	if stmt.Where != nil {
		p.clause("WHERE")
		p.block(func() { p.formatExpr(stmt.Where) })
	}
	p.formatOrderLimit(stmt.OrderBy, stmt.Limit, nil)
}

// ---------- DDL ----------

func (p *Printer) formatCreateTable(stmt *core.CreateTableStmt) {
	p.kw(token.CREATE, token.TABLE)
	if stmt.IfNotExists {
		p.space()
		p.kw(token.IF, token.NOT, token.EXISTS)
	}
	p.space()
	p.formatTableName(stmt.Table)
	p.space()

	count := len(stmt.Columns)
	if len(stmt.PrimaryKey) > 0 {
		count++
	}
	p.nested(func() {
		p.clauseList(count, func(i int) {
			if i < len(stmt.Columns) {
				p.formatColumnDef(stmt.Columns[i])
				return
			}
			p.kw(token.PRIMARY, token.KEY)
			p.space()
			p.identList(stmt.PrimaryKey)
		})
	})
}

func (p *Printer) formatColumnDef(col *core.ColumnDef) {
	p.ident(col.Name)
	p.space()
	p.formatDataType(col.Type)

	if col.NotNull {
		p.space()
		p.kw(token.NOT, token.NULL)
	}
	if col.Null {
		p.space()
		p.kw(token.NULL)
	}
	if col.Default != nil {
		p.space()
		p.kw(token.DEFAULT)
		p.space()
		p.formatExpr(col.Default)
	}
	if col.PrimaryKey {
		p.space()
		p.kw(token.PRIMARY, token.KEY)
	}
	if col.AutoIncrement {
		p.write(" AUTO_INCREMENT")
	}
	if col.Comment != "" {
		p.write(" COMMENT ")
		p.write(p.quoteString(col.Comment))
	}
}

func (p *Printer) formatDropTable(stmt *core.DropTableStmt) {
	p.kw(token.DROP, token.TABLE)
	if stmt.IfExists {
		p.space()
		p.kw(token.IF, token.EXISTS)
	}
	p.space()
	p.formatList(len(stmt.Tables), func(i int) { p.formatTableName(stmt.Tables[i]) }, ", ", false)
}

func (p *Printer) formatShow(stmt *core.ShowStmt) {
	p.kw(token.SHOW)
	p.space()
	p.keyword(string(stmt.Kind))

	switch stmt.Kind {
	case core.ShowTables:
		if stmt.Database != "" {
			p.space()
			p.kw(token.FROM)
			p.space()
			p.ident(stmt.Database)
		}
	case core.ShowColumns:
		p.space()
		p.kw(token.FROM)
		p.space()
		p.formatTableName(stmt.Table)
	}

	switch {
	case stmt.Like != nil:
		p.space()
		p.kw(token.LIKE)
		p.space()
		p.formatLiteral(stmt.Like)
	case stmt.Where != nil:
		p.space()
		p.kw(token.WHERE)
		p.space()
		p.formatExpr(stmt.Where)
	}
}
