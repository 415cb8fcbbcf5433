package parser_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/siddontang/tidbparser/pkg/parser"
	"github.com/siddontang/tidbparser/pkg/token"
	"github.com/stretchr/testify/assert"
)

func TestNewUnexpectedToken(t *testing.T) {
	found := token.Token{Type: token.IDENT, Literal: "FOO", Pos: token.Position{Line: 2, Column: 4}}

	tests := []struct {
		name     string
		context  string
		expected []string
		message  string
	}{
		{"bare", "", nil, "unexpected token FOO"},
		{"context", "after ADMIN", nil, "unexpected token FOO after ADMIN"},
		{"one expected", "after ADMIN", []string{"SHOW"}, "unexpected token FOO after ADMIN, expected SHOW"},
		{"two expected", "", []string{"a", "b"}, "unexpected token FOO, expected a or b"},
		{"many expected", "", []string{"a", "b", "c"}, "unexpected token FOO, expected a, b or c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.NewUnexpectedToken(found, tt.context, tt.expected...)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, "parse error at line 2, column 4: "+tt.message, err.Error())
			assert.Equal(t, parser.KindUnexpectedToken, err.Kind)
			assert.Equal(t, found, err.Found)
		})
	}
}

func TestParseError_Is(t *testing.T) {
	eos := parser.NewUnexpectedEndOfStatement(token.Token{Type: token.SELECT, Literal: "SELECT"})
	unexpected := parser.NewUnexpectedToken(token.Token{Type: token.EOF}, "")
	syntax := &parser.ParseError{Kind: parser.KindSyntax, Message: "x"}

	assert.ErrorIs(t, eos, parser.ErrUnexpectedEndOfStatement)
	assert.NotErrorIs(t, eos, parser.ErrUnexpectedToken)
	assert.ErrorIs(t, unexpected, parser.ErrUnexpectedToken)
	assert.False(t, errors.Is(syntax, parser.ErrUnexpectedToken))
	assert.False(t, errors.Is(syntax, parser.ErrUnexpectedEndOfStatement))

	wrapped := fmt.Errorf("query.sql: %w", eos)
	assert.ErrorIs(t, wrapped, parser.ErrUnexpectedEndOfStatement)
	assert.Equal(t, "expected end of statement, found: SELECT", eos.Message)
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "syntax error", parser.KindSyntax.String())
	assert.Equal(t, "unexpected token", parser.KindUnexpectedToken.String())
	assert.Equal(t, "unexpected end of statement", parser.KindUnexpectedEndOfStatement.String())
}

func TestLexError(t *testing.T) {
	err := &parser.LexError{Pos: token.Position{Line: 3, Column: 9}, Message: parser.MsgUnterminatedString}
	assert.Equal(t, "lexer error at line 3, column 9: unterminated string literal", err.Error())
}
