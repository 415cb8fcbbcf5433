package mysql_test

import (
	"testing"

	"github.com/siddontang/tidbparser/pkg/dialect"
	"github.com/siddontang/tidbparser/pkg/dialects/mysql"
	"github.com/siddontang/tidbparser/pkg/spi"
	"github.com/siddontang/tidbparser/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLDialect_Registered(t *testing.T) {
	d, ok := dialect.Get("MySQL")
	require.True(t, ok)
	assert.Same(t, mysql.MySQL, d)
	assert.Contains(t, dialect.List(), "ansi")
}

func TestMySQLDialect_Lexical(t *testing.T) {
	d := mysql.MySQL
	assert.True(t, d.IsIdentQuote('`'))
	assert.False(t, d.IsIdentQuote('"'))
	assert.True(t, d.IsStringQuote('\''))
	assert.True(t, d.IsStringQuote('"'))
	assert.True(t, d.BackslashEscapes())
	assert.True(t, d.HashComments())
	assert.True(t, d.BitLiterals())
	assert.True(t, d.DigitIdentifiers())
	assert.True(t, d.StringConcatenation())
}

func TestMySQLDialect_Operators(t *testing.T) {
	d := mysql.MySQL
	tests := []struct {
		name string
		tok  token.TokenType
		prec int
	}{
		{"or", token.OR, spi.PrecedenceOr},
		{"xor", mysql.TokenXor, spi.PrecedenceXor},
		{"and", token.AND, spi.PrecedenceAnd},
		{"null safe equal", token.NSEQ, spi.PrecedenceComparison},
		{"regexp", mysql.TokenRegexp, spi.PrecedenceComparison},
		{"div", mysql.TokenDiv, spi.PrecedenceMultiply},
		{"collate", mysql.TokenCollate, spi.PrecedencePostfix},
		{"straight join is not an operator", mysql.TokenStraightJoin, spi.PrecedenceNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.prec, d.Precedence(tt.tok))
		})
	}

	assert.True(t, d.IsLikeOperator(token.LIKE))
	assert.True(t, d.IsLikeOperator(mysql.TokenRlike))
	assert.NotNil(t, d.InfixHandler(mysql.TokenCollate))
}

func TestMySQLDialect_Keywords(t *testing.T) {
	d := mysql.MySQL

	tok, ok := d.LookupKeyword("regexp")
	assert.True(t, ok)
	assert.Equal(t, mysql.TokenRegexp, tok)

	_, ok = d.LookupKeyword("admin")
	assert.False(t, ok)

	assert.Equal(t, "`div`", d.QuoteIdentifierIfNeeded("div"))
	assert.Equal(t, "`select`", d.QuoteIdentifierIfNeeded("select"))
	assert.Equal(t, "admin", d.QuoteIdentifierIfNeeded("admin"))
	assert.Equal(t, "`a``b`", d.QuoteIdentifierIfNeeded("a`b"))
}

func TestMySQLDialect_Types(t *testing.T) {
	d := mysql.MySQL
	assert.True(t, d.IsDataType("int"))
	assert.True(t, d.IsDataType("MEDIUMTEXT"))
	assert.True(t, d.IsAggregate("group_concat"))
	assert.True(t, d.IsAggregate("COUNT"))
}
