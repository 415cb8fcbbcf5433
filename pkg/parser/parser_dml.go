package parser

import (
	"github.com/siddontang/tidbparser/pkg/core"
	"github.com/siddontang/tidbparser/pkg/spi"
	"github.com/siddontang/tidbparser/pkg/token"
)

// DML parsing: INSERT, UPDATE, DELETE.
//
// Grammar:
//
//	insert_stmt   → INSERT [INTO] table_name ["(" ident_list ")"]
//	                (VALUES row ("," row)* | select_stmt)
//	row           → "(" [expr_list] ")"
//	update_stmt   → UPDATE table_ref SET assignment ("," assignment)*
//	                [WHERE expr] [ORDER BY order_list] [LIMIT expr]
//	assignment    → column_ref "=" expr
//	delete_stmt   → DELETE FROM table_name [WHERE expr] [ORDER BY order_list] [LIMIT expr]

// parseInsert parses an INSERT statement.
func (p *Parser) parseInsert() core.Stmt {
	p.expect(token.INSERT)
	p.match(token.INTO)

	stmt := &core.InsertStmt{Table: p.parseTableName()}

	if p.check(token.LPAREN) && !p.checkPeek(token.SELECT) {
		stmt.Columns = p.parseIdentList()
	}

	switch {
	case p.match(token.VALUES):
		for !p.failed() {
			stmt.Rows = append(stmt.Rows, p.parseRow())
			if !p.match(token.COMMA) {
				break
			}
		}
	case p.check(token.SELECT):
		stmt.Select = p.parseSelectStmt()
	case p.check(token.LPAREN) && p.checkPeek(token.SELECT):
		p.nextToken()
		stmt.Select = p.parseSelectStmt()
		p.expect(token.RPAREN)
	default:
		p.addErr(NewUnexpectedToken(p.token, "in INSERT", "VALUES", "SELECT"))
	}

	return stmt
}

// parseRow parses a parenthesized VALUES row.
func (p *Parser) parseRow() []core.Expr {
	p.expect(token.LPAREN)
	var row []core.Expr
	if !p.check(token.RPAREN) {
		row = p.parseExpressionList()
	}
	p.expect(token.RPAREN)
	return row
}

// parseUpdate parses a single-table UPDATE statement.
func (p *Parser) parseUpdate() core.Stmt {
	p.expect(token.UPDATE)

	stmt := &core.UpdateStmt{Table: p.parseTableName()}
	if stmt.Table != nil {
		stmt.Table.Alias = p.parseAlias(false)
	}

	p.expect(token.SET)
	for !p.failed() {
		stmt.Set = append(stmt.Set, p.parseAssignment())
		if !p.match(token.COMMA) {
			break
		}
	}

	p.parseDMLTail(&stmt.Where, &stmt.OrderBy, &stmt.Limit)
	return stmt
}

// parseAssignment parses `column = expr`.
func (p *Parser) parseAssignment() core.Assignment {
	if !p.check(token.IDENT) {
		p.addErr(NewUnexpectedToken(p.token, "in SET", "column name"))
		return core.Assignment{}
	}
	col, ok := p.parseIdentifierExpr().(*core.ColumnRef)
	if !ok {
		if !p.failed() {
			p.addError("expected column reference in SET")
		}
		return core.Assignment{}
	}
	p.expect(token.EQ)
	return core.Assignment{Column: col, Value: p.parseOperand(spi.PrecedenceNone + 1)}
}

// parseDelete parses a single-table DELETE statement.
func (p *Parser) parseDelete() core.Stmt {
	p.expect(token.DELETE)
	p.expect(token.FROM)

	stmt := &core.DeleteStmt{Table: p.parseTableName()}
	p.parseDMLTail(&stmt.Where, &stmt.OrderBy, &stmt.Limit)
	return stmt
}

// parseDMLTail parses the optional WHERE / ORDER BY / LIMIT shared by UPDATE and DELETE.
func (p *Parser) parseDMLTail(where *core.Expr, orderBy *[]core.OrderByItem, limit *core.Expr) {
	if p.match(token.WHERE) {
		*where = p.parseOperand(spi.PrecedenceNone + 1)
	}
	if p.match(token.ORDER) {
		p.expect(token.BY)
		*orderBy = p.parseOrderByList()
	}
	if p.match(token.LIMIT) {
		*limit = p.parseOperand(spi.PrecedenceNone + 1)
	}
}
