package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/siddontang/tidbparser/pkg/token"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

// Error kinds.
const (
	// KindSyntax is any other grammar violation.
	KindSyntax ErrorKind = iota
	// KindUnexpectedToken means the cursor met a token the grammar cannot accept here.
	KindUnexpectedToken
	// KindUnexpectedEndOfStatement means a statement was not followed by a delimiter.
	KindUnexpectedEndOfStatement
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindUnexpectedToken:
		return "unexpected token"
	case KindUnexpectedEndOfStatement:
		return "unexpected end of statement"
	default:
		return "syntax error"
	}
}

// Sentinels for errors.Is.
var (
	ErrUnexpectedToken          = errors.New("unexpected token")
	ErrUnexpectedEndOfStatement = errors.New("unexpected end of statement")
)

// ParseError represents a parsing error with position information.
type ParseError struct {
	Kind     ErrorKind
	Pos      token.Position
	Message  string
	Found    token.Token // offending token, when known
	Expected []string    // what the grammar would have accepted
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Is matches the ErrUnexpectedToken and ErrUnexpectedEndOfStatement sentinels.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrUnexpectedToken:
		return e.Kind == KindUnexpectedToken
	case ErrUnexpectedEndOfStatement:
		return e.Kind == KindUnexpectedEndOfStatement
	}
	return false
}

// NewUnexpectedToken builds a KindUnexpectedToken error. context names the
// grammar position (for example "after ADMIN") and may be empty.
func NewUnexpectedToken(found token.Token, context string, expected ...string) *ParseError {
	msg := "unexpected token " + found.String()
	if context != "" {
		msg += " " + context
	}
	if len(expected) > 0 {
		msg += ", expected " + joinExpected(expected)
	}
	return &ParseError{
		Kind:     KindUnexpectedToken,
		Pos:      found.Pos,
		Message:  msg,
		Found:    found,
		Expected: expected,
	}
}

// NewUnexpectedEndOfStatement builds the error raised when a statement is
// directly followed by another token instead of a delimiter.
func NewUnexpectedEndOfStatement(found token.Token) *ParseError {
	return &ParseError{
		Kind:     KindUnexpectedEndOfStatement,
		Pos:      found.Pos,
		Message:  fmt.Sprintf(MsgExpectedEndOfStatement, found),
		Found:    found,
		Expected: []string{"end of statement"},
	}
}

func joinExpected(expected []string) string {
	switch len(expected) {
	case 1:
		return expected[0]
	case 2:
		return expected[0] + " or " + expected[1]
	}
	return strings.Join(expected[:len(expected)-1], ", ") + " or " + expected[len(expected)-1]
}

// LexError represents a lexical analysis error.
type LexError struct {
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	MsgExpectedEndOfStatement = "expected end of statement, found: %s"
	MsgUnterminatedString     = "unterminated string literal"
	MsgUnterminatedIdentifier = "unterminated quoted identifier"
	MsgUnterminatedComment    = "unterminated block comment"
	MsgInvalidHexLiteral      = "invalid hexadecimal literal"
	MsgInvalidBitLiteral      = "invalid bit literal"
	MsgIllegalCharacter       = "illegal character %q"
	MsgExpectedExpression     = "expected expression, found: %s"
	MsgExpectedStatement      = "expected statement, found: %s"
)
