package tidb

import (
	"github.com/siddontang/tidbparser/pkg/dialects/mysql"
	"github.com/siddontang/tidbparser/pkg/parser"
	"github.com/siddontang/tidbparser/pkg/token"
)

// Parser parses TiDB statements from one tokenized input.
// A Parser is not safe for concurrent use; create one per input.
type Parser struct {
	p *parser.Parser
}

// NewParser tokenizes sql with the MySQL dialect.
// Tokenizer failures are returned as *parser.LexError.
func NewParser(sql string) (*Parser, error) {
	p, err := parser.NewParser(sql, mysql.MySQL)
	if err != nil {
		return nil, err
	}
	return &Parser{p: p}, nil
}

// ParseStatement parses one statement at the cursor. The trailing
// delimiter is left for the caller.
func (tp *Parser) ParseStatement() (Statement, error) {
	if tp.p.MatchWord(KeywordAdmin) {
		return parseAdmin(tp.p)
	}

	stmt, err := tp.p.ParseStatement()
	if err != nil {
		return nil, err
	}
	return &SQLStatement{Stmt: stmt}, nil
}

// ParseStatements parses the rest of the input as a script of
// ";"-separated statements. Empty statements are skipped. Two statements
// without a delimiter between them fail with
// parser.ErrUnexpectedEndOfStatement.
func (tp *Parser) ParseStatements() ([]Statement, error) {
	var stmts []Statement
	expectingDelimiter := false

	for {
		for tp.p.Match(token.SEMICOLON) {
			expectingDelimiter = false
		}

		if tp.p.AtEnd() {
			return stmts, nil
		}

		if expectingDelimiter {
			return nil, parser.NewUnexpectedEndOfStatement(tp.p.Token())
		}

		stmt, err := tp.ParseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		expectingDelimiter = true
	}
}

// ParseSQL parses a whole script. On error no statements are returned.
func ParseSQL(sql string) ([]Statement, error) {
	tp, err := NewParser(sql)
	if err != nil {
		return nil, err
	}
	return tp.ParseStatements()
}

// ParseOne parses exactly one statement. Trailing delimiters are allowed;
// anything else after the statement is an error.
func ParseOne(sql string) (Statement, error) {
	tp, err := NewParser(sql)
	if err != nil {
		return nil, err
	}

	stmt, err := tp.ParseStatement()
	if err != nil {
		return nil, err
	}

	for tp.p.Match(token.SEMICOLON) {
	}
	if !tp.p.AtEnd() {
		return nil, parser.NewUnexpectedEndOfStatement(tp.p.Token())
	}
	return stmt, nil
}
