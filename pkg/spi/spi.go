// Package spi provides Service Provider Interface types for dialect
// extensions and vendor statement parsers to drive the parser's token
// cursor without circular dependencies.
package spi

import (
	"github.com/siddontang/tidbparser/pkg/core"
	"github.com/siddontang/tidbparser/pkg/token"
)

// ParserOps exposes the parser's token cursor and sub-parsers.
// Vendor grammars (such as the TiDB ADMIN statements) and dialect infix
// handlers are written against this interface.
type ParserOps interface {
	// Token access
	Token() token.Token
	Peek() token.Token
	AtEnd() bool

	// Consumption
	Check(t token.TokenType) bool
	CheckWord(word string) bool
	Match(t token.TokenType) bool
	MatchWord(word string) bool
	Expect(t token.TokenType) error
	NextToken()

	// Sub-parsers
	ParseStatement() (core.Stmt, error)
	ParseExpression() (core.Expr, error)
	ParseNumber() (*core.Literal, error)
	ParseIdentifier() (string, error)

	// Error handling
	Position() token.Position
}

// InfixHandler parses a dialect-specific infix operator.
// Called AFTER the operator has been consumed.
// left is the already-parsed left operand.
type InfixHandler func(p ParserOps, left core.Expr) (core.Expr, error)

// Precedence constants for operator precedence parsing (MySQL order).
const (
	PrecedenceNone       = 0
	PrecedenceOr         = 1 // OR
	PrecedenceXor        = 2 // XOR
	PrecedenceAnd        = 3 // AND
	PrecedenceNot        = 4 // NOT
	PrecedenceComparison = 5 // =, <=>, <>, <, >, <=, >=, IS, LIKE, REGEXP, IN, BETWEEN
	PrecedenceAddition   = 6 // +, -, ||
	PrecedenceMultiply   = 7 // *, /, DIV, %, MOD
	PrecedenceUnary      = 8 // -, +, !
	PrecedencePostfix    = 9 // ()
)
