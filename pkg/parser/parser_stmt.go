package parser

import (
	"github.com/siddontang/tidbparser/pkg/core"
	"github.com/siddontang/tidbparser/pkg/spi"
	"github.com/siddontang/tidbparser/pkg/token"
)

// Statement parsing: dispatch, SELECT body, SELECT list, ORDER BY, LIMIT.
//
// Grammar:
//
//	select_stmt   → select_core [UNION [ALL|DISTINCT] select_stmt]
//	select_core   → SELECT [DISTINCT|ALL] select_list
//	                [FROM from_clause]
//	                [WHERE expr]
//	                [GROUP BY expr_list]
//	                [HAVING expr]
//	                [ORDER BY order_list]
//	                [LIMIT limit]
//	select_list   → select_item ("," select_item)*
//	select_item   → "*" | table "." "*" | expr [[AS] alias]
//	order_list    → order_item ("," order_item)*
//	order_item    → expr [ASC|DESC]
//	limit         → expr [OFFSET expr] | expr "," expr

// parseStatement parses one complete SQL statement.
func (p *Parser) parseStatement() core.Stmt {
	switch p.token.Type {
	case token.SELECT:
		return p.parseSelectStmt()
	case token.INSERT:
		return p.parseInsert()
	case token.UPDATE:
		return p.parseUpdate()
	case token.DELETE:
		return p.parseDelete()
	case token.CREATE:
		return p.parseCreate()
	case token.DROP:
		return p.parseDrop()
	case token.USE:
		return p.parseUse()
	case token.SHOW:
		return p.parseShow()
	}

	p.addErr(NewUnexpectedToken(p.token, "", "statement"))
	return nil
}

// parseSelectStmt parses a complete SELECT statement.
func (p *Parser) parseSelectStmt() *core.SelectStmt {
	return &core.SelectStmt{Body: p.parseSelectBody()}
}

// parseSelectBody parses a SELECT body with possible set operations.
func (p *Parser) parseSelectBody() *core.SelectBody {
	body := &core.SelectBody{Left: p.parseSelectCore()}

	if p.match(token.UNION) {
		body.Op = core.SetOpUnion
		if p.match(token.ALL) {
			body.All = true
		} else {
			p.match(token.DISTINCT) // optional
		}
		// Parse the right side (recursively for chained operations)
		body.Right = p.parseSelectBody()
	}

	return body
}

// parseSelectCore parses a single SELECT clause.
func (p *Parser) parseSelectCore() *core.SelectCore {
	p.expect(token.SELECT)
	sc := &core.SelectCore{}

	if p.match(token.DISTINCT) {
		sc.Distinct = true
	} else {
		p.match(token.ALL)
	}

	sc.Columns = p.parseSelectList()

	if p.match(token.FROM) {
		sc.From = p.parseFromClause()
	}
	if p.match(token.WHERE) {
		sc.Where = p.parseOperand(spi.PrecedenceNone + 1)
	}
	if p.match(token.GROUP) {
		p.expect(token.BY)
		sc.GroupBy = p.parseExpressionList()
	}
	if p.match(token.HAVING) {
		sc.Having = p.parseOperand(spi.PrecedenceNone + 1)
	}
	if p.match(token.ORDER) {
		p.expect(token.BY)
		sc.OrderBy = p.parseOrderByList()
	}
	if p.match(token.LIMIT) {
		sc.Limit, sc.Offset = p.parseLimit()
	}

	return sc
}

// parseSelectList parses the SELECT list.
func (p *Parser) parseSelectList() []core.SelectItem {
	var items []core.SelectItem
	for {
		items = append(items, p.parseSelectItem())
		if p.failed() || !p.match(token.COMMA) {
			return items
		}
	}
}

// parseSelectItem parses a single SELECT item.
func (p *Parser) parseSelectItem() core.SelectItem {
	if p.match(token.STAR) {
		return core.SelectItem{Star: true}
	}

	expr := p.parseOperand(spi.PrecedenceNone + 1)
	if star, ok := expr.(*core.StarExpr); ok && star.Table != "" {
		return core.SelectItem{TableStar: star.Table}
	}

	return core.SelectItem{Expr: expr, Alias: p.parseAlias(true)}
}

// parseAlias parses an optional [AS] alias. Select items may use a string
// literal as alias after AS.
func (p *Parser) parseAlias(allowString bool) string {
	if p.match(token.AS) {
		if allowString && p.check(token.STRING) {
			alias := p.token.Literal
			p.nextToken()
			return alias
		}
		return p.parseIdent("alias")
	}
	if isIdentifier(p.token) && !p.isClauseWord(p.token) {
		alias := p.token.Literal
		p.nextToken()
		return alias
	}
	return ""
}

// isClauseWord returns true for soft words that start a clause after a
// table reference and therefore cannot be implicit aliases.
func (p *Parser) isClauseWord(tok token.Token) bool {
	return tok.IsWord(SoftKeywordStraightJoin)
}

// parseOrderByList parses an ORDER BY list.
func (p *Parser) parseOrderByList() []core.OrderByItem {
	var items []core.OrderByItem
	for {
		item := core.OrderByItem{Expr: p.parseOperand(spi.PrecedenceNone + 1)}
		if p.match(token.DESC) {
			item.Desc = true
		} else {
			p.match(token.ASC)
		}
		items = append(items, item)
		if p.failed() || !p.match(token.COMMA) {
			return items
		}
	}
}

// parseLimit parses the body of a LIMIT clause and returns (limit, offset).
// The LIMIT keyword has already been consumed.
func (p *Parser) parseLimit() (core.Expr, core.Expr) {
	first := p.parseOperand(spi.PrecedenceNone + 1)
	switch {
	case p.match(token.COMMA):
		// LIMIT offset, count
		return p.parseOperand(spi.PrecedenceNone + 1), first
	case p.match(token.OFFSET):
		return first, p.parseOperand(spi.PrecedenceNone + 1)
	}
	return first, nil
}
