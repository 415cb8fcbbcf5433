// Package parser provides dialect-aware SQL parsing.
//
// # Usage
//
//	stmt, err := parser.ParseWithDialect("SELECT a, b FROM t", mysql.MySQL)
//	if err != nil {
//	    // handle error
//	}
//
// The input is tokenized up front; the Parser is a cursor over that token
// slice and implements spi.ParserOps so vendor grammars (pkg/tidb) can drive
// it directly.
//
// # Grammar Overview
//
//	statement     → select_stmt | insert_stmt | update_stmt | delete_stmt
//	              | create_table | drop_table | use_stmt | show_stmt
//	select_stmt   → select_core [UNION [ALL|DISTINCT] select_stmt]
//	select_core   → SELECT [DISTINCT|ALL] select_list [FROM from_clause]
//	                [WHERE expr] [GROUP BY expr_list] [HAVING expr]
//	                [ORDER BY order_list] [LIMIT expr [OFFSET expr] | LIMIT expr "," expr]
//
// See each file for detailed grammar rules for that section. A statement
// never consumes its trailing ";".
package parser

import (
	"fmt"

	"github.com/siddontang/tidbparser/pkg/core"
	"github.com/siddontang/tidbparser/pkg/dialect"
	"github.com/siddontang/tidbparser/pkg/spi"
	"github.com/siddontang/tidbparser/pkg/token"
)

// Parser parses SQL into an AST.
type Parser struct {
	tokens  []token.Token // always ends with EOF
	pos     int
	token   token.Token // current token
	peek    token.Token // lookahead token
	errors  []error
	dialect *dialect.Dialect // required
}

var _ spi.ParserOps = (*Parser)(nil)

// NewParser tokenizes sql and creates a parser positioned on the first token.
func NewParser(sql string, d *dialect.Dialect) (*Parser, error) {
	tokens, err := Tokenize(sql, d)
	if err != nil {
		return nil, err
	}
	return NewParserFromTokens(tokens, d), nil
}

// NewParserFromTokens creates a parser over an already tokenized input.
// A missing trailing EOF token is added.
func NewParserFromTokens(tokens []token.Token, d *dialect.Dialect) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].Type != token.EOF {
		var pos token.Position
		if n > 0 {
			pos = tokens[n-1].Pos
		}
		tokens = append(tokens[:n:n], token.Token{Type: token.EOF, Pos: pos})
	}
	p := &Parser{tokens: tokens, dialect: d}
	p.seek(0)
	return p
}

// ParseWithDialect parses exactly one statement. A single trailing ";" is allowed.
func ParseWithDialect(sql string, d *dialect.Dialect) (core.Stmt, error) {
	p, err := NewParser(sql, d)
	if err != nil {
		return nil, err
	}
	stmt := p.parseStatement()
	p.match(token.SEMICOLON)
	if len(p.errors) == 0 && !p.check(token.EOF) {
		p.errors = append(p.errors, NewUnexpectedEndOfStatement(p.token))
	}
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return stmt, nil
}

// Dialect returns the parser's dialect.
func (p *Parser) Dialect() *dialect.Dialect {
	return p.dialect
}

// Err returns the first error recorded by the parser.
func (p *Parser) Err() error {
	if len(p.errors) == 0 {
		return nil
	}
	return p.errors[0]
}

// ---------- Token Helpers ----------

func (p *Parser) seek(i int) {
	last := len(p.tokens) - 1
	p.pos = min(i, last)
	p.token = p.tokens[p.pos]
	p.peek = p.tokens[min(p.pos+1, last)]
}

// nextToken advances to the next token. The cursor never moves past EOF.
func (p *Parser) nextToken() {
	p.seek(p.pos + 1)
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.token.Type == t
}

// checkPeek returns true if the peek token is of the given type.
func (p *Parser) checkPeek(t token.TokenType) bool {
	return p.peek.Type == t
}

// checkWord returns true if the current token is the bare word w.
func (p *Parser) checkWord(w string) bool {
	return p.token.IsWord(w)
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// matchWord consumes the current token if it is the bare word w.
func (p *Parser) matchWord(w string) bool {
	if p.checkWord(w) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise adds an error.
func (p *Parser) expect(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	p.addErr(NewUnexpectedToken(p.token, "", t.String()))
	return false
}

// expectWord consumes the bare word w, otherwise adds an error.
func (p *Parser) expectWord(w string) bool {
	if p.matchWord(w) {
		return true
	}
	p.addErr(NewUnexpectedToken(p.token, "", w))
	return false
}

// addError adds a syntax error at the current token.
func (p *Parser) addError(msg string) {
	p.addErr(&ParseError{Kind: KindSyntax, Pos: p.token.Pos, Message: msg, Found: p.token})
}

// addErr records err and fast-forwards to EOF so every caller unwinds.
func (p *Parser) addErr(err error) {
	p.errors = append(p.errors, err)
	p.seek(len(p.tokens) - 1)
}

// failed reports whether an error has been recorded.
func (p *Parser) failed() bool {
	return len(p.errors) > 0
}

// ---------- Keyword Helpers ----------

// isIdentifier returns true if tok can name a table, column or alias.
func isIdentifier(tok token.Token) bool {
	return tok.Type == token.IDENT
}

// parseIdent parses an identifier and returns its name.
func (p *Parser) parseIdent(what string) string {
	if !isIdentifier(p.token) {
		p.addErr(NewUnexpectedToken(p.token, "", what))
		return ""
	}
	name := p.token.Literal
	p.nextToken()
	return name
}

// ---------- spi.ParserOps Implementation ----------

// Token returns the current token (implements spi.ParserOps).
func (p *Parser) Token() token.Token {
	return p.token
}

// Peek returns the lookahead token (implements spi.ParserOps).
func (p *Parser) Peek() token.Token {
	return p.peek
}

// AtEnd reports whether the cursor sits on EOF (implements spi.ParserOps).
func (p *Parser) AtEnd() bool {
	return p.check(token.EOF)
}

// Check returns true if the current token is of the given type (implements spi.ParserOps).
func (p *Parser) Check(t token.TokenType) bool {
	return p.check(t)
}

// CheckWord returns true if the current token is the bare word w (implements spi.ParserOps).
func (p *Parser) CheckWord(w string) bool {
	return p.checkWord(w)
}

// Match consumes the current token if it matches (implements spi.ParserOps).
func (p *Parser) Match(t token.TokenType) bool {
	return p.match(t)
}

// MatchWord consumes the current token if it is the bare word w (implements spi.ParserOps).
func (p *Parser) MatchWord(w string) bool {
	return p.matchWord(w)
}

// Expect consumes the current token if it matches, otherwise returns an error (implements spi.ParserOps).
func (p *Parser) Expect(t token.TokenType) error {
	if p.match(t) {
		return nil
	}
	return NewUnexpectedToken(p.token, "", t.String())
}

// NextToken advances to the next token (implements spi.ParserOps).
func (p *Parser) NextToken() {
	p.nextToken()
}

// ParseStatement parses one generic statement without its delimiter (implements spi.ParserOps).
func (p *Parser) ParseStatement() (core.Stmt, error) {
	return parseWith(p, p.parseStatement)
}

// ParseExpression parses an expression (implements spi.ParserOps).
func (p *Parser) ParseExpression() (core.Expr, error) {
	return parseWith(p, p.parseExpression)
}

// ParseNumber parses a NUMBER token into a numeric literal (implements spi.ParserOps).
func (p *Parser) ParseNumber() (*core.Literal, error) {
	if !p.check(token.NUMBER) {
		return nil, NewUnexpectedToken(p.token, "", "number")
	}
	lit := core.NumberLit(p.token.Literal)
	p.nextToken()
	return lit, nil
}

// ParseIdentifier parses an identifier (implements spi.ParserOps).
func (p *Parser) ParseIdentifier() (string, error) {
	if !isIdentifier(p.token) {
		return "", NewUnexpectedToken(p.token, "", "identifier")
	}
	name := p.token.Literal
	p.nextToken()
	return name, nil
}

// Position returns the current token's position (implements spi.ParserOps).
func (p *Parser) Position() token.Position {
	return p.token.Pos
}

// parseWith runs an internal sub-parser and hands the first error it raised
// back to the spi caller instead of keeping it on the parser.
func parseWith[T any](p *Parser, fn func() T) (T, error) {
	before := len(p.errors)
	result := fn()
	if len(p.errors) > before {
		err := p.errors[before]
		p.errors = p.errors[:before]
		var zero T
		return zero, err
	}
	return result, nil
}

// expectedExpression reports a missing expression at the current token.
func (p *Parser) expectedExpression() {
	p.addError(fmt.Sprintf(MsgExpectedExpression, p.token))
}
