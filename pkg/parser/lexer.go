package parser

import (
	"fmt"
	"strings"

	"github.com/siddontang/tidbparser/pkg/dialect"
	"github.com/siddontang/tidbparser/pkg/token"
)

// Lexer tokenizes SQL input according to a dialect's lexical rules.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // line of ch (1-based)
	col     int  // column of ch (1-based)

	dialect *dialect.Dialect
	err     *LexError

	// Comments collected during lexing
	Comments []*token.Comment
}

// NewLexer creates a new dialect-aware Lexer for the given input.
func NewLexer(input string, d *dialect.Dialect) *Lexer {
	l := &Lexer{
		input:   input,
		line:    1,
		dialect: d,
	}
	l.readChar()
	return l
}

// Err returns the first lexical error, if any.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// atEOF reports whether the whole input has been consumed.
func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

func (l *Lexer) fail(pos token.Position, msg string) token.Token {
	if l.err == nil {
		l.err = &LexError{Pos: pos, Message: msg}
	}
	// Jump to the end so the caller stops.
	l.pos = len(l.input)
	l.readPos = len(l.input) + 1
	l.ch = 0
	return token.Token{Type: token.ILLEGAL, Pos: pos}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()
	if l.err != nil {
		return token.Token{Type: token.ILLEGAL, Pos: l.err.Pos}
	}

	pos := l.currentPos()
	if l.atEOF() {
		return token.Token{Type: token.EOF, Pos: pos}
	}

	switch {
	case l.dialect.IsStringQuote(l.ch):
		return l.readString(pos)
	case l.dialect.IsIdentQuote(l.ch):
		return l.readQuotedIdentifier(pos)
	case isDigit(l.ch), l.ch == '.' && isDigit(l.peekChar()):
		return l.readNumeric(pos)
	case l.dialect.BitLiterals() && l.peekChar() == '\'' && (l.ch == 'x' || l.ch == 'X'):
		return l.readQuotedBits(pos, token.HEXNUM, isHexDigit, MsgInvalidHexLiteral)
	case l.dialect.BitLiterals() && l.peekChar() == '\'' && (l.ch == 'b' || l.ch == 'B'):
		return l.readQuotedBits(pos, token.BITNUM, isBitDigit, MsgInvalidBitLiteral)
	case isIdentStart(l.ch):
		return l.readWord(pos)
	}

	var tok token.Token
	switch l.ch {
	case '+':
		tok = l.symbol(token.PLUS, 1)
	case '-':
		tok = l.symbol(token.MINUS, 1)
	case '*':
		tok = l.symbol(token.STAR, 1)
	case '/':
		tok = l.symbol(token.SLASH, 1)
	case '%':
		tok = l.symbol(token.PERCENT, 1)
	case '=':
		tok = l.symbol(token.EQ, 1)
	case '<':
		switch {
		case strings.HasPrefix(l.input[l.pos:], "<=>"):
			tok = l.symbol(token.NSEQ, 3)
		case l.peekChar() == '=':
			tok = l.symbol(token.LE, 2)
		case l.peekChar() == '>':
			tok = l.symbol(token.NE, 2)
		default:
			tok = l.symbol(token.LT, 1)
		}
	case '>':
		if l.peekChar() == '=' {
			tok = l.symbol(token.GE, 2)
		} else {
			tok = l.symbol(token.GT, 1)
		}
	case '!':
		if l.peekChar() == '=' {
			tok = l.symbol(token.NE, 2)
		} else {
			tok = l.symbol(token.BANG, 1)
		}
	case '|':
		if l.peekChar() != '|' {
			return l.fail(pos, fmt.Sprintf(MsgIllegalCharacter, l.ch))
		}
		tok = l.symbol(token.DPIPE, 2)
	case '.':
		tok = l.symbol(token.DOT, 1)
	case ',':
		tok = l.symbol(token.COMMA, 1)
	case '(':
		tok = l.symbol(token.LPAREN, 1)
	case ')':
		tok = l.symbol(token.RPAREN, 1)
	case ';':
		tok = l.symbol(token.SEMICOLON, 1)
	default:
		return l.fail(pos, fmt.Sprintf(MsgIllegalCharacter, l.ch))
	}
	tok.Pos = pos
	return tok
}

// symbol consumes an n-byte operator.
func (l *Lexer) symbol(t token.TokenType, n int) token.Token {
	lit := l.input[l.pos : l.pos+n]
	for range n {
		l.readChar()
	}
	return token.Token{Type: t, Literal: lit}
}

// skipWhitespaceAndComments skips whitespace and collects comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEOF() {
		switch {
		case isSpace(l.ch):
			l.readChar()
		case l.ch == '-' && l.peekChar() == '-' && l.isDashComment():
			l.collectLineComment()
		case l.ch == '#' && l.dialect.HashComments():
			l.collectLineComment()
		case l.ch == '/' && l.peekChar() == '*':
			l.collectBlockComment()
		default:
			return
		}
	}
}

// isDashComment reports whether the "--" under the cursor starts a comment.
// MySQL requires whitespace (or end of input) after the dashes.
func (l *Lexer) isDashComment() bool {
	if !l.dialect.HashComments() {
		return true
	}
	next := l.readPos + 1
	return next >= len(l.input) || isSpace(l.input[next])
}

// collectLineComment collects a line comment.
func (l *Lexer) collectLineComment() {
	startPos := l.currentPos()
	startOffset := l.pos

	for l.ch != '\n' && !l.atEOF() {
		l.readChar()
	}

	l.Comments = append(l.Comments, &token.Comment{
		Kind: token.LineComment,
		Text: l.input[startOffset:l.pos],
		Span: token.Span{Start: startPos, End: l.currentPos()},
	})
}

// collectBlockComment collects a block comment.
func (l *Lexer) collectBlockComment() {
	startPos := l.currentPos()
	startOffset := l.pos

	l.readChar() // skip '/'
	l.readChar() // skip '*'

	for {
		if l.atEOF() {
			l.fail(startPos, MsgUnterminatedComment)
			return
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			break
		}
		l.readChar()
	}

	l.Comments = append(l.Comments, &token.Comment{
		Kind: token.BlockComment,
		Text: l.input[startOffset:l.pos],
		Span: token.Span{Start: startPos, End: l.currentPos()},
	})
}

// readString reads a quoted string literal. A doubled quote is an escaped
// quote; backslash escapes apply when the dialect enables them.
func (l *Lexer) readString(pos token.Position) token.Token {
	quote := l.ch
	l.readChar() // skip opening quote

	var sb strings.Builder
	for {
		if l.atEOF() {
			return l.fail(pos, MsgUnterminatedString)
		}
		switch {
		case l.ch == quote && l.peekChar() == quote:
			sb.WriteByte(quote)
			l.readChar()
			l.readChar()
		case l.ch == quote:
			l.readChar()
			return token.Token{Type: token.STRING, Literal: sb.String(), Pos: pos, Quote: quote}
		case l.ch == '\\' && l.dialect.BackslashEscapes():
			l.readChar()
			if l.atEOF() {
				return l.fail(pos, MsgUnterminatedString)
			}
			sb.WriteString(unescape(l.ch))
			l.readChar()
		default:
			sb.WriteByte(l.ch)
			l.readChar()
		}
	}
}

// unescape maps a MySQL backslash escape to its value.
// \% and \_ keep the backslash so LIKE patterns stay intact.
func unescape(ch byte) string {
	switch ch {
	case '0':
		return "\x00"
	case 'b':
		return "\b"
	case 'n':
		return "\n"
	case 'r':
		return "\r"
	case 't':
		return "\t"
	case 'Z':
		return "\x1a"
	case '%', '_':
		return "\\" + string(ch)
	default:
		return string(ch)
	}
}

// readQuotedIdentifier reads a delimited identifier.
// A doubled delimiter escapes itself: `a``b` -> a`b
func (l *Lexer) readQuotedIdentifier(pos token.Position) token.Token {
	quote := l.ch
	l.readChar() // skip opening quote

	var sb strings.Builder
	for {
		if l.atEOF() {
			return l.fail(pos, MsgUnterminatedIdentifier)
		}
		if l.ch == quote {
			if l.peekChar() != quote {
				l.readChar()
				return token.Token{Type: token.IDENT, Literal: sb.String(), Pos: pos, Quote: quote}
			}
			l.readChar()
		}
		sb.WriteByte(l.ch)
		l.readChar()
	}
}

// readWord reads an unquoted identifier or keyword.
func (l *Lexer) readWord(pos token.Position) token.Token {
	start := l.pos
	for isIdentStart(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	word := l.input[start:l.pos]

	t := token.LookupIdent(word)
	if t == token.IDENT {
		if dyn, ok := l.dialect.LookupKeyword(word); ok {
			t = dyn
		}
	}
	return token.Token{Type: t, Literal: word, Pos: pos}
}

// readNumeric reads a number, a 0x/0b literal, or an identifier that begins
// with digits.
func (l *Lexer) readNumeric(pos token.Position) token.Token {
	start := l.pos
	if l.dialect.BitLiterals() && l.ch == '0' {
		switch l.peekChar() {
		case 'x':
			if tok, ok := l.readPrefixedBits(pos, token.HEXNUM, isHexDigit); ok {
				return tok
			}
		case 'b':
			if tok, ok := l.readPrefixedBits(pos, token.BITNUM, isBitDigit); ok {
				return tok
			}
		}
	}

	lit := l.readNumber()
	if l.dialect.DigitIdentifiers() && isIdentStart(l.ch) && !strings.Contains(lit, ".") {
		for isIdentStart(l.ch) || isDigit(l.ch) {
			l.readChar()
		}
		return token.Token{Type: token.IDENT, Literal: l.input[start:l.pos], Pos: pos}
	}
	return token.Token{Type: token.NUMBER, Literal: lit, Pos: pos}
}

// readPrefixedBits reads 0x1F or 0b101. It consumes nothing and reports false
// when there are no digits or the digits run into identifier characters
// (0x, 0x1G), which then lex as identifiers.
func (l *Lexer) readPrefixedBits(pos token.Position, t token.TokenType, valid func(byte) bool) (token.Token, bool) {
	end := l.pos + 2
	for end < len(l.input) && valid(l.input[end]) {
		end++
	}
	if end == l.pos+2 || end < len(l.input) && (isIdentStart(l.input[end]) || isDigit(l.input[end])) {
		return token.Token{}, false
	}
	lit := l.input[l.pos:end]
	for l.pos < end {
		l.readChar()
	}
	return token.Token{Type: t, Literal: lit, Pos: pos}, true
}

// readQuotedBits reads X'1F' or b'101'. The literal keeps its spelling.
// Hex digits must come in pairs.
func (l *Lexer) readQuotedBits(pos token.Position, t token.TokenType, valid func(byte) bool, invalid string) token.Token {
	start := l.pos
	l.readChar() // skip prefix
	l.readChar() // skip opening quote

	digits := 0
	for l.ch != '\'' {
		if l.atEOF() {
			return l.fail(pos, MsgUnterminatedString)
		}
		if !valid(l.ch) {
			return l.fail(pos, invalid)
		}
		digits++
		l.readChar()
	}
	if t == token.HEXNUM && digits%2 != 0 {
		return l.fail(pos, invalid)
	}
	l.readChar() // skip closing quote
	return token.Token{Type: t, Literal: l.input[start:l.pos], Pos: pos}
}

// readNumber reads a numeric literal (integer, decimal, or scientific).
func (l *Lexer) readNumber() string {
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && (isDigit(l.peekChar()) || l.pos > start) {
		l.readChar() // skip '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	// Exponent only when digits follow, so "1e" is not a number.
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) || ((next == '+' || next == '-') && l.readPos+1 < len(l.input) && isDigit(l.input[l.readPos+1])) {
			l.readChar() // skip 'e' or 'E'
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}

	return l.input[start:l.pos]
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

// isIdentStart accepts ASCII letters, '_', '$' and any byte of a multi-byte
// UTF-8 sequence.
func isIdentStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_' || ch == '$' || ch >= 0x80
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'
}

func isBitDigit(ch byte) bool {
	return ch == '0' || ch == '1'
}

// Tokenize returns all tokens from the input, ending with EOF.
func Tokenize(input string, d *dialect.Dialect) ([]token.Token, error) {
	if d == nil {
		return nil, dialect.ErrDialectRequired
	}
	l := NewLexer(input, d)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		if err := l.Err(); err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}
