package parser

import (
	"fmt"
	"strings"

	"github.com/siddontang/tidbparser/pkg/core"
	"github.com/siddontang/tidbparser/pkg/token"
)

// Primary expression parsing: literals, column refs, function calls.
//
// Grammar:
//
//	primary       → literal | column_ref | func_call | paren_expr | subquery
//	              | case_expr | cast_expr | exists_expr | "*"
//	literal       → NUMBER | STRING+ | HEXNUM | BITNUM | TRUE | FALSE | NULL
//	column_ref    → [[schema "."] table "."] column | table "." "*"
//	func_call     → name "(" [DISTINCT] [expr_list | "*"] ")"
//	cast_expr     → CAST "(" expr AS data_type ")"
//	exists_expr   → EXISTS "(" select_stmt ")"

// parsePrimary parses primary expressions.
func (p *Parser) parsePrimary() core.Expr {
	switch p.token.Type {
	case token.NUMBER:
		lit := core.NumberLit(p.token.Literal)
		p.nextToken()
		return lit

	case token.STRING:
		value := p.token.Literal
		p.nextToken()
		for p.dialect.StringConcatenation() && p.check(token.STRING) {
			value += p.token.Literal
			p.nextToken()
		}
		return core.StringLit(value)

	case token.HEXNUM:
		lit := &core.Literal{Type: core.LiteralHex, Value: p.token.Literal}
		p.nextToken()
		return lit

	case token.BITNUM:
		lit := &core.Literal{Type: core.LiteralBit, Value: p.token.Literal}
		p.nextToken()
		return lit

	case token.TRUE:
		p.nextToken()
		return &core.Literal{Type: core.LiteralBool, Value: "TRUE"}

	case token.FALSE:
		p.nextToken()
		return &core.Literal{Type: core.LiteralBool, Value: "FALSE"}

	case token.NULL:
		p.nextToken()
		return &core.Literal{Type: core.LiteralNull, Value: "NULL"}

	case token.CASE:
		return p.parseCaseExpr()

	case token.CAST:
		return p.parseCastExpr()

	case token.EXISTS:
		p.nextToken()
		p.expect(token.LPAREN)
		sel := p.parseSelectStmt()
		p.expect(token.RPAREN)
		return &core.ExistsExpr{Select: sel}

	case token.IDENT:
		return p.parseIdentifierExpr()

	case token.LPAREN:
		return p.parseParenExpr()

	case token.STAR:
		p.nextToken()
		return &core.StarExpr{}
	}

	// Keywords that double as function names: LEFT(s, n), IF(c, a, b), ...
	if isFunctionKeyword(p.token.Type) && p.checkPeek(token.LPAREN) {
		name := p.token.Literal
		p.nextToken()
		return p.parseFuncCall(name)
	}

	p.expectedExpression()
	return nil
}

// isFunctionKeyword reports whether a reserved word may be called as a function.
func isFunctionKeyword(t token.TokenType) bool {
	switch t {
	case token.LEFT, token.RIGHT, token.IF, token.INSERT, token.DEFAULT, token.VALUES:
		return true
	}
	return false
}

// parseIdentifierExpr parses an identifier which could be a column ref or function call.
func (p *Parser) parseIdentifierExpr() core.Expr {
	name := p.token.Literal
	quoted := p.token.Quote != 0
	p.nextToken()

	if p.check(token.LPAREN) && !quoted {
		return p.parseFuncCall(name)
	}

	if p.check(token.DOT) {
		return p.parseQualifiedColumnRef(name)
	}

	return &core.ColumnRef{Column: name}
}

// parseQualifiedColumnRef parses a qualified column reference.
func (p *Parser) parseQualifiedColumnRef(first string) core.Expr {
	parts := []string{first}

	for p.match(token.DOT) {
		if p.match(token.STAR) {
			if len(parts) > 1 {
				p.addError(fmt.Sprintf("unsupported qualified star %s.*", strings.Join(parts, ".")))
				return nil
			}
			return &core.StarExpr{Table: first}
		}

		// Any word may follow a dot: t.order, t.`select`
		if !isWord(p.token) {
			p.addErr(NewUnexpectedToken(p.token, "after .", "identifier"))
			return nil
		}
		parts = append(parts, p.token.Literal)
		p.nextToken()
	}

	switch len(parts) {
	case 2:
		return &core.ColumnRef{Table: parts[0], Column: parts[1]}
	case 3:
		return &core.ColumnRef{Schema: parts[0], Table: parts[1], Column: parts[2]}
	default:
		p.addError(fmt.Sprintf("too many name parts in %s", strings.Join(parts, ".")))
		return nil
	}
}

// isWord returns true for identifiers and keywords.
func isWord(tok token.Token) bool {
	return tok.Type == token.IDENT || token.IsKeyword(tok.Type) || token.IsDynamic(tok.Type)
}

// parseFuncCall parses a function call.
func (p *Parser) parseFuncCall(name string) core.Expr {
	fn := &core.FuncCall{Name: strings.ToUpper(name)}

	p.expect(token.LPAREN)

	switch {
	case p.match(token.STAR):
		fn.Star = true
	case !p.check(token.RPAREN):
		if p.match(token.DISTINCT) {
			fn.Distinct = true
		}
		fn.Args = p.parseExpressionList()
	}

	p.expect(token.RPAREN)
	return fn
}

// parseParenExpr parses a parenthesized expression or a scalar subquery.
func (p *Parser) parseParenExpr() core.Expr {
	p.expect(token.LPAREN)

	if p.check(token.SELECT) {
		sel := p.parseSelectStmt()
		p.expect(token.RPAREN)
		return &core.SubqueryExpr{Select: sel}
	}

	expr := p.parseOperand(1)
	p.expect(token.RPAREN)
	return &core.ParenExpr{Expr: expr}
}

// parseCaseExpr parses CASE [operand] WHEN ... THEN ... [ELSE ...] END.
func (p *Parser) parseCaseExpr() core.Expr {
	p.expect(token.CASE)
	c := &core.CaseExpr{}

	if !p.check(token.WHEN) {
		c.Operand = p.parseOperand(1)
	}

	for p.match(token.WHEN) {
		when := core.WhenClause{Condition: p.parseOperand(1)}
		p.expect(token.THEN)
		when.Result = p.parseOperand(1)
		c.Whens = append(c.Whens, when)
	}
	if len(c.Whens) == 0 && !p.failed() {
		p.addErr(NewUnexpectedToken(p.token, "in CASE", "WHEN"))
		return nil
	}

	if p.match(token.ELSE) {
		c.Else = p.parseOperand(1)
	}

	p.expect(token.END)
	return c
}

// parseCastExpr parses CAST(expr AS type).
func (p *Parser) parseCastExpr() core.Expr {
	p.expect(token.CAST)
	p.expect(token.LPAREN)
	cast := &core.CastExpr{Expr: p.parseOperand(1)}
	p.expect(token.AS)
	cast.Type = p.parseDataType()
	p.expect(token.RPAREN)
	return cast
}

// parseDataType parses a column type: name ["(" n ["," m] ")"] [UNSIGNED].
func (p *Parser) parseDataType() *core.DataType {
	if !isWord(p.token) || p.token.Quote != 0 {
		p.addErr(NewUnexpectedToken(p.token, "", "data type"))
		return nil
	}
	dt := &core.DataType{Name: strings.ToUpper(p.token.Literal)}
	p.nextToken()

	if p.match(token.LPAREN) {
		for {
			switch {
			case p.check(token.NUMBER), p.check(token.STRING):
				dt.Args = append(dt.Args, p.token.String())
				p.nextToken()
			default:
				p.addErr(NewUnexpectedToken(p.token, "in type arguments", "number"))
				return dt
			}
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.RPAREN)
	}

	if p.matchWord(SoftKeywordUnsigned) {
		dt.Unsigned = true
	}
	return dt
}
