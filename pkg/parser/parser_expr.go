package parser

import (
	"github.com/siddontang/tidbparser/pkg/core"
	"github.com/siddontang/tidbparser/pkg/spi"
	"github.com/siddontang/tidbparser/pkg/token"
)

// Expression precedence parsing using Pratt parser with dialect-aware precedence.
//
// Precedence levels (from spi package):
//
//	PrecedenceNone       = 0
//	PrecedenceOr         = 1  (OR)
//	PrecedenceXor        = 2  (XOR)
//	PrecedenceAnd        = 3  (AND)
//	PrecedenceNot        = 4  (prefix NOT)
//	PrecedenceComparison = 5  (=, <=>, !=, <, >, <=, >=, IS, IN, BETWEEN, LIKE, REGEXP)
//	PrecedenceAddition   = 6  (+, -, ||)
//	PrecedenceMultiply   = 7  (*, /, DIV, %)
//	PrecedenceUnary      = 8  (-, +, !)
//	PrecedencePostfix    = 9  (COLLATE)
//
// The parser uses dialect.Precedence() to look up operator precedence, so
// dialects decide which infix operators exist at all.

// parseExpression parses an expression using precedence climbing.
func (p *Parser) parseExpression() core.Expr {
	return p.parseExpressionWithPrecedence(spi.PrecedenceNone + 1)
}

// parseExpressionWithPrecedence implements Pratt parsing with dialect-aware precedence.
func (p *Parser) parseExpressionWithPrecedence(minPrecedence int) core.Expr {
	left := p.parsePrefixExpr()
	if left == nil {
		return nil
	}

	for !p.failed() {
		prec := p.dialect.Precedence(p.token.Type)
		if prec == spi.PrecedenceNone || prec < minPrecedence {
			break
		}
		left = p.parseInfixExpr(left, prec)
	}

	return left
}

// parsePrefixExpr parses prefix expressions (unary operators and primary expressions).
func (p *Parser) parsePrefixExpr() core.Expr {
	switch p.token.Type {
	case token.NOT:
		p.nextToken()
		return &core.UnaryExpr{Op: token.NOT, Expr: p.parseOperand(spi.PrecedenceNot)}

	case token.BANG, token.MINUS, token.PLUS:
		op := p.token.Type
		p.nextToken()
		return &core.UnaryExpr{Op: op, Expr: p.parseOperand(spi.PrecedenceUnary)}

	default:
		return p.parsePrimary()
	}
}

// parseOperand parses an operand and reports a missing one.
func (p *Parser) parseOperand(prec int) core.Expr {
	expr := p.parseExpressionWithPrecedence(prec)
	if expr == nil && !p.failed() {
		p.expectedExpression()
	}
	return expr
}

// parseInfixExpr parses an infix expression given the left operand and current precedence.
func (p *Parser) parseInfixExpr(left core.Expr, prec int) core.Expr {
	switch p.token.Type {
	case token.NOT:
		return p.parseNotInfixExpr(left)

	case token.IS:
		return p.parseIsExpr(left)

	case token.IN:
		p.nextToken()
		return p.parseInExpr(left, false)

	case token.BETWEEN:
		p.nextToken()
		return p.parseBetweenExpr(left, false)
	}

	if p.dialect.IsLikeOperator(p.token.Type) {
		op := p.token.Type
		p.nextToken()
		return p.parseLikeExpr(left, false, op)
	}

	// Custom infix handler (dialect-specific operators like COLLATE)
	if handler := p.dialect.InfixHandler(p.token.Type); handler != nil {
		p.nextToken()
		result, err := handler(p, left)
		if err != nil {
			p.addErr(err)
			return left
		}
		return result
	}

	// Standard binary operators, left-associative
	op := p.token.Type
	p.nextToken()
	right := p.parseOperand(prec + 1)
	return &core.BinaryExpr{Left: left, Op: op, Right: right}
}

// parseNotInfixExpr handles NOT as an infix modifier (NOT IN, NOT BETWEEN, NOT LIKE).
func (p *Parser) parseNotInfixExpr(left core.Expr) core.Expr {
	p.nextToken() // consume NOT

	switch {
	case p.match(token.IN):
		return p.parseInExpr(left, true)

	case p.match(token.BETWEEN):
		return p.parseBetweenExpr(left, true)

	case p.dialect.IsLikeOperator(p.token.Type):
		op := p.token.Type
		p.nextToken()
		return p.parseLikeExpr(left, true, op)

	default:
		p.addErr(NewUnexpectedToken(p.token, "after NOT", "IN", "BETWEEN", "LIKE"))
		return left
	}
}

// parseIsExpr parses IS [NOT] NULL / IS [NOT] TRUE / IS [NOT] FALSE.
func (p *Parser) parseIsExpr(left core.Expr) core.Expr {
	p.nextToken() // consume IS

	isNot := p.match(token.NOT)

	switch {
	case p.match(token.NULL):
		return &core.IsNullExpr{Expr: left, Not: isNot}

	case p.match(token.TRUE):
		return &core.IsBoolExpr{Expr: left, Not: isNot, Value: true}

	case p.match(token.FALSE):
		return &core.IsBoolExpr{Expr: left, Not: isNot, Value: false}

	default:
		p.addErr(NewUnexpectedToken(p.token, "after IS", "NULL", "TRUE", "FALSE"))
		return left
	}
}

// parseInExpr parses an IN expression.
func (p *Parser) parseInExpr(left core.Expr, not bool) core.Expr {
	p.expect(token.LPAREN)
	in := &core.InExpr{Expr: left, Not: not}

	if p.check(token.SELECT) {
		in.Query = p.parseSelectStmt()
	} else {
		in.Values = p.parseExpressionList()
	}

	p.expect(token.RPAREN)
	return in
}

// parseBetweenExpr parses a BETWEEN expression.
func (p *Parser) parseBetweenExpr(left core.Expr, not bool) core.Expr {
	between := &core.BetweenExpr{Expr: left, Not: not}
	// Bounds are parsed above AND so the separator is not swallowed.
	between.Low = p.parseOperand(spi.PrecedenceAddition)
	p.expect(token.AND)
	between.High = p.parseOperand(spi.PrecedenceAddition)
	return between
}

// parseLikeExpr parses a LIKE/REGEXP/RLIKE expression.
func (p *Parser) parseLikeExpr(left core.Expr, not bool, op token.TokenType) core.Expr {
	like := &core.LikeExpr{Expr: left, Not: not, Op: op}
	like.Pattern = p.parseOperand(spi.PrecedenceAddition)
	return like
}

// parseExpressionList parses a comma-separated list of expressions.
func (p *Parser) parseExpressionList() []core.Expr {
	var exprs []core.Expr
	for {
		exprs = append(exprs, p.parseOperand(spi.PrecedenceNone+1))
		if p.failed() || !p.match(token.COMMA) {
			return exprs
		}
	}
}
