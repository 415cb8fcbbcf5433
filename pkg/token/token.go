// Package token defines the token types for SQL parsing.
//
// ANSI and MySQL core tokens are defined as constants (IDs 0-999) for switch
// performance. Dialect-specific tokens are registered dynamically via Register().
package token

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // identifier
	NUMBER // 123, 45.67, 1e10
	STRING // 'hello'
	HEXNUM // 0x1F, X'1F'
	BITNUM // 0b101, b'101'

	// Operators
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	PERCENT   // %
	DPIPE     // ||
	EQ        // =
	NE        // != or <>
	LT        // <
	GT        // >
	LE        // <=
	GE        // >=
	NSEQ      // <=>
	BANG      // !
	DOT       // .
	COMMA     // ,
	LPAREN    // (
	RPAREN    // )
	SEMICOLON // ;

	// Keywords (alphabetical)
	ALL
	AND
	AS
	ASC
	BETWEEN
	BY
	CASE
	CAST
	CREATE
	CROSS
	DEFAULT
	DELETE
	DESC
	DISTINCT
	DROP
	ELSE
	END
	EXISTS
	FALSE
	FROM
	GROUP
	HAVING
	IF
	IN
	INNER
	INSERT
	INTO
	IS
	JOIN
	KEY
	LEFT
	LIKE
	LIMIT
	NOT
	NULL
	OFFSET
	ON
	OR
	ORDER
	OUTER
	PRIMARY
	RIGHT
	SELECT
	SET
	SHOW
	TABLE
	THEN
	TRUE
	UNION
	UPDATE
	USE
	USING
	VALUES
	WHEN
	WHERE

	// Sentinel - dynamic tokens start after this
	maxBuiltin TokenType = 999
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := getDynamicName(t); ok {
		return name
	}
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps builtin token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",
	HEXNUM: "HEXNUM",
	BITNUM: "BITNUM",

	PLUS:      "+",
	MINUS:     "-",
	STAR:      "*",
	SLASH:     "/",
	PERCENT:   "%",
	DPIPE:     "||",
	EQ:        "=",
	NE:        "!=",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	NSEQ:      "<=>",
	BANG:      "!",
	DOT:       ".",
	COMMA:     ",",
	LPAREN:    "(",
	RPAREN:    ")",
	SEMICOLON: ";",

	ALL:      "ALL",
	AND:      "AND",
	AS:       "AS",
	ASC:      "ASC",
	BETWEEN:  "BETWEEN",
	BY:       "BY",
	CASE:     "CASE",
	CAST:     "CAST",
	CREATE:   "CREATE",
	CROSS:    "CROSS",
	DEFAULT:  "DEFAULT",
	DELETE:   "DELETE",
	DESC:     "DESC",
	DISTINCT: "DISTINCT",
	DROP:     "DROP",
	ELSE:     "ELSE",
	END:      "END",
	EXISTS:   "EXISTS",
	FALSE:    "FALSE",
	FROM:     "FROM",
	GROUP:    "GROUP",
	HAVING:   "HAVING",
	IF:       "IF",
	IN:       "IN",
	INNER:    "INNER",
	INSERT:   "INSERT",
	INTO:     "INTO",
	IS:       "IS",
	JOIN:     "JOIN",
	KEY:      "KEY",
	LEFT:     "LEFT",
	LIKE:     "LIKE",
	LIMIT:    "LIMIT",
	NOT:      "NOT",
	NULL:     "NULL",
	OFFSET:   "OFFSET",
	ON:       "ON",
	OR:       "OR",
	ORDER:    "ORDER",
	OUTER:    "OUTER",
	PRIMARY:  "PRIMARY",
	RIGHT:    "RIGHT",
	SELECT:   "SELECT",
	SET:      "SET",
	SHOW:     "SHOW",
	TABLE:    "TABLE",
	THEN:     "THEN",
	TRUE:     "TRUE",
	UNION:    "UNION",
	UPDATE:   "UPDATE",
	USE:      "USE",
	USING:    "USING",
	VALUES:   "VALUES",
	WHEN:     "WHEN",
	WHERE:    "WHERE",
}

// keywords maps lowercase keyword strings to their token types.
var keywords = map[string]TokenType{
	"all":      ALL,
	"and":      AND,
	"as":       AS,
	"asc":      ASC,
	"between":  BETWEEN,
	"by":       BY,
	"case":     CASE,
	"cast":     CAST,
	"create":   CREATE,
	"cross":    CROSS,
	"default":  DEFAULT,
	"delete":   DELETE,
	"desc":     DESC,
	"distinct": DISTINCT,
	"drop":     DROP,
	"else":     ELSE,
	"end":      END,
	"exists":   EXISTS,
	"false":    FALSE,
	"from":     FROM,
	"group":    GROUP,
	"having":   HAVING,
	"if":       IF,
	"in":       IN,
	"inner":    INNER,
	"insert":   INSERT,
	"into":     INTO,
	"is":       IS,
	"join":     JOIN,
	"key":      KEY,
	"left":     LEFT,
	"like":     LIKE,
	"limit":    LIMIT,
	"not":      NOT,
	"null":     NULL,
	"offset":   OFFSET,
	"on":       ON,
	"or":       OR,
	"order":    ORDER,
	"outer":    OUTER,
	"primary":  PRIMARY,
	"right":    RIGHT,
	"select":   SELECT,
	"set":      SET,
	"show":     SHOW,
	"table":    TABLE,
	"then":     THEN,
	"true":     TRUE,
	"union":    UNION,
	"update":   UPDATE,
	"use":      USE,
	"using":    USING,
	"values":   VALUES,
	"when":     WHEN,
	"where":    WHERE,
}

// LookupIdent returns the token type for the given identifier.
// Lookup is case-insensitive. Identifiers that are not builtin keywords
// return IDENT; use LookupDynamicKeyword for dialect keywords.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToLower(ident)]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a builtin keyword.
func IsKeyword(t TokenType) bool {
	return t >= ALL && t <= WHERE
}

// IsOperator returns true if the token type is an operator.
func IsOperator(t TokenType) bool {
	return t >= PLUS && t <= SEMICOLON
}

// IsReserved reports whether word is a builtin keyword.
func IsReserved(word string) bool {
	_, ok := keywords[strings.ToLower(word)]
	return ok
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
	Quote   byte // opening quote for delimited identifiers and strings, 0 otherwise
}

// IsWord reports whether the token is a bare word (keyword or unquoted
// identifier) spelled like word, ignoring case.
func (t Token) IsWord(word string) bool {
	if t.Quote != 0 {
		return false
	}
	if t.Type != IDENT && !IsKeyword(t.Type) && !IsDynamic(t.Type) {
		return false
	}
	return strings.EqualFold(t.Literal, word)
}

// String renders the token the way it appeared in the source.
func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "EOF"
	case STRING:
		q := string(t.Quote)
		if t.Quote == 0 {
			q = "'"
		}
		return q + strings.ReplaceAll(t.Literal, q, q+q) + q
	case IDENT:
		if t.Quote != 0 {
			closing := string(t.Quote)
			return closing + strings.ReplaceAll(t.Literal, closing, closing+closing) + closing
		}
		return t.Literal
	}
	if t.Literal != "" {
		return t.Literal
	}
	return t.Type.String()
}
