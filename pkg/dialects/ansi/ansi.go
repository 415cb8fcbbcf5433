// Package ansi provides the base ANSI SQL dialect with standard operator
// precedence and lexical rules.
//
// This dialect serves as the foundation for other SQL dialects. Dialects like
// MySQL extend ANSI and add/override specific behaviors.
package ansi

import (
	"github.com/siddontang/tidbparser/pkg/dialect"
	"github.com/siddontang/tidbparser/pkg/spi"
	"github.com/siddontang/tidbparser/pkg/token"
)

func init() {
	dialect.Register(ANSI)
}

// ANSI is the base ANSI SQL dialect.
var ANSI = dialect.NewDialect("ansi").
	Identifiers('"', dialect.NormCaseInsensitive).
	StringQuotes("'").
	// Standard operator precedence
	AddInfix(token.OR, spi.PrecedenceOr).
	AddInfix(token.AND, spi.PrecedenceAnd).
	AddInfix(token.EQ, spi.PrecedenceComparison).
	AddInfix(token.NE, spi.PrecedenceComparison).
	AddInfix(token.LT, spi.PrecedenceComparison).
	AddInfix(token.GT, spi.PrecedenceComparison).
	AddInfix(token.LE, spi.PrecedenceComparison).
	AddInfix(token.GE, spi.PrecedenceComparison).
	AddLikeOperator(token.LIKE).
	AddInfix(token.IN, spi.PrecedenceComparison).
	AddInfix(token.BETWEEN, spi.PrecedenceComparison).
	AddInfix(token.IS, spi.PrecedenceComparison).
	AddInfix(token.NOT, spi.PrecedenceComparison). // NOT IN / NOT LIKE / NOT BETWEEN
	AddInfix(token.PLUS, spi.PrecedenceAddition).
	AddInfix(token.MINUS, spi.PrecedenceAddition).
	AddInfix(token.DPIPE, spi.PrecedenceAddition).
	AddInfix(token.STAR, spi.PrecedenceMultiply).
	AddInfix(token.SLASH, spi.PrecedenceMultiply).
	AddInfix(token.PERCENT, spi.PrecedenceMultiply).
	Aggregates("SUM", "COUNT", "AVG", "MIN", "MAX").
	DataTypes(
		"INT", "INTEGER", "SMALLINT", "BIGINT", "DECIMAL", "NUMERIC",
		"REAL", "FLOAT", "DOUBLE", "CHAR", "VARCHAR", "TEXT",
		"DATE", "TIME", "TIMESTAMP", "BOOLEAN",
	).
	Build()
