package tidb

import (
	"github.com/siddontang/tidbparser/pkg/parser"
	"github.com/siddontang/tidbparser/pkg/spi"
	"github.com/siddontang/tidbparser/pkg/token"
)

// Vendor keywords. They lex as plain identifiers and are matched by word,
// so they stay usable as column and table names in the generic grammar.
const (
	KeywordAdmin = "ADMIN"
	KeywordShow  = "SHOW"
	KeywordDDL   = "DDL"
	KeywordJobs  = "JOBS"
)

// parseAdmin parses the rest of an ADMIN statement. ADMIN has already been
// consumed.
//
// Grammar:
//
//	admin_stmt → ADMIN SHOW DDL [JOBS jobs_clause*]
//	jobs_clause → NUMBER | WHERE expr
//
// The jobs clauses may come in any order and a later NUMBER replaces an
// earlier one. The statement ends at ";" or end of input.
func parseAdmin(p spi.ParserOps) (AdminStatement, error) {
	if !p.MatchWord(KeywordShow) {
		return nil, parser.NewUnexpectedToken(p.Token(), "after ADMIN", KeywordShow)
	}
	if !p.MatchWord(KeywordDDL) {
		return nil, parser.NewUnexpectedToken(p.Token(), "after ADMIN SHOW", KeywordDDL)
	}
	if !p.MatchWord(KeywordJobs) {
		return &ShowDDL{}, nil
	}

	jobs := &ShowDDLJobs{}
	for {
		tok := p.Token()
		switch tok.Type {
		case token.SEMICOLON, token.EOF:
			return jobs, nil

		case token.NUMBER:
			num, err := p.ParseNumber()
			if err != nil {
				return nil, err
			}
			jobs.Num = num

		case token.WHERE:
			p.NextToken()
			where, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			jobs.Where = where

		default:
			return nil, parser.NewUnexpectedToken(tok, "after ADMIN SHOW DDL JOBS", "number", "WHERE", "end of statement")
		}
	}
}
