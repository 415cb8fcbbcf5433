// Package mysql provides the MySQL dialect used for TiDB-compatible parsing.
// It extends ANSI with backtick identifiers, double-quoted strings,
// backslash escapes, # comments, hex and bit literals, identifiers that
// begin with a digit and the MySQL-only operators.
package mysql

import (
	"github.com/siddontang/tidbparser/pkg/core"
	"github.com/siddontang/tidbparser/pkg/dialect"
	"github.com/siddontang/tidbparser/pkg/dialects/ansi"
	"github.com/siddontang/tidbparser/pkg/spi"
	"github.com/siddontang/tidbparser/pkg/token"
)

func init() {
	dialect.Register(MySQL)
}

// MySQL-only tokens.
var (
	TokenDiv          = token.Register("DIV")
	TokenXor          = token.Register("XOR")
	TokenRegexp       = token.Register("REGEXP")
	TokenRlike        = token.Register("RLIKE")
	TokenCollate      = token.Register("COLLATE")
	TokenStraightJoin = token.Register("STRAIGHT_JOIN")
)

// MySQL is the MySQL dialect.
var MySQL = dialect.NewDialect("mysql").
	Extends(ansi.ANSI).
	Identifiers('`', dialect.NormCaseInsensitive).
	StringQuotes(`'"`).
	BackslashEscapes().
	HashComments().
	BitLiterals().
	DigitIdentifiers().
	StringConcatenation().
	AddKeyword("DIV").
	AddKeyword("XOR").
	AddKeyword("REGEXP").
	AddKeyword("RLIKE").
	AddKeyword("COLLATE").
	AddKeyword("STRAIGHT_JOIN").
	AddInfix(token.NSEQ, spi.PrecedenceComparison).
	AddInfix(TokenXor, spi.PrecedenceXor).
	AddInfix(TokenDiv, spi.PrecedenceMultiply).
	AddLikeOperator(TokenRegexp).
	AddLikeOperator(TokenRlike).
	AddInfixWithHandler(TokenCollate, spi.PrecedencePostfix, parseCollate).
	Aggregates("GROUP_CONCAT", "BIT_AND", "BIT_OR", "BIT_XOR", "STD", "STDDEV", "VARIANCE", "JSON_ARRAYAGG").
	DataTypes(
		"TINYINT", "MEDIUMINT", "DATETIME", "YEAR", "BIT", "BINARY", "VARBINARY",
		"BLOB", "TINYTEXT", "MEDIUMTEXT", "LONGTEXT", "JSON", "ENUM", "SET",
	).
	Build()

// parseCollate parses `expr COLLATE name`.
// The COLLATE keyword has already been consumed.
func parseCollate(p spi.ParserOps, left core.Expr) (core.Expr, error) {
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	return &core.CollateExpr{Expr: left, Collation: name}, nil
}
