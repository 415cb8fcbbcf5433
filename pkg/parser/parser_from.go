package parser

import (
	"github.com/siddontang/tidbparser/pkg/core"
	"github.com/siddontang/tidbparser/pkg/spi"
	"github.com/siddontang/tidbparser/pkg/token"
)

// FROM clause parsing: table references, derived tables, JOINs.
//
// Grammar:
//
//	from_clause   → table_ref (join)*
//	table_ref     → table_name | derived_table
//	table_name    → [schema "."] identifier [[AS] identifier]
//	derived_table → "(" select_stmt ")" [AS] identifier
//	join          → join_type table_ref [ON expr | USING "(" ident_list ")"] | "," table_ref
//	join_type     → [INNER|CROSS] JOIN | LEFT [OUTER] JOIN | RIGHT [OUTER] JOIN | STRAIGHT_JOIN

// parseFromClause parses the FROM clause.
func (p *Parser) parseFromClause() *core.FromClause {
	from := &core.FromClause{Source: p.parseTableRef()}

	for !p.failed() {
		join := p.parseJoin()
		if join == nil {
			break
		}
		from.Joins = append(from.Joins, join)
	}

	return from
}

// parseTableRef parses a table reference.
func (p *Parser) parseTableRef() core.TableRef {
	if p.check(token.LPAREN) {
		return p.parseDerivedTable()
	}
	table := p.parseTableName()
	if table == nil {
		return nil
	}
	table.Alias = p.parseAlias(false)
	return table
}

// parseTableName parses a table name with optional schema (no alias).
func (p *Parser) parseTableName() *core.TableName {
	name := p.parseIdent("table name")
	if p.failed() {
		return nil
	}

	table := &core.TableName{Name: name}
	if p.match(token.DOT) {
		if !isWord(p.token) {
			p.addErr(NewUnexpectedToken(p.token, "after .", "table name"))
			return nil
		}
		table.Schema, table.Name = name, p.token.Literal
		p.nextToken()
	}
	return table
}

// parseDerivedTable parses a subquery in FROM.
func (p *Parser) parseDerivedTable() core.TableRef {
	p.expect(token.LPAREN)
	derived := &core.DerivedTable{Select: p.parseSelectStmt()}
	p.expect(token.RPAREN)
	derived.Alias = p.parseAlias(false)
	return derived
}

// parseJoin parses a JOIN clause. Returns nil when no join follows.
func (p *Parser) parseJoin() *core.Join {
	join := &core.Join{}

	switch {
	case p.match(token.COMMA):
		join.Type = core.JoinComma
		join.Right = p.parseTableRef()
		return join
	case p.match(token.JOIN):
		join.Type = core.JoinInner
	case p.match(token.INNER):
		join.Type = core.JoinInner
		p.expect(token.JOIN)
	case p.match(token.CROSS):
		join.Type = core.JoinCross
		p.expect(token.JOIN)
	case p.match(token.LEFT):
		join.Type = core.JoinLeft
		p.match(token.OUTER)
		p.expect(token.JOIN)
	case p.match(token.RIGHT):
		join.Type = core.JoinRight
		p.match(token.OUTER)
		p.expect(token.JOIN)
	case p.matchWord(SoftKeywordStraightJoin):
		join.Type = core.JoinStraight
	default:
		return nil
	}

	join.Right = p.parseTableRef()

	switch {
	case p.match(token.ON):
		join.Condition = p.parseOperand(spi.PrecedenceNone + 1)
	case p.match(token.USING):
		join.Using = p.parseIdentList()
	}

	return join
}

// parseIdentList parses "(" ident ("," ident)* ")".
func (p *Parser) parseIdentList() []string {
	p.expect(token.LPAREN)
	var names []string
	for !p.failed() {
		names = append(names, p.parseIdent("column name"))
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return names
}
