package parser

import (
	"github.com/siddontang/tidbparser/pkg/core"
	"github.com/siddontang/tidbparser/pkg/spi"
	"github.com/siddontang/tidbparser/pkg/token"
)

// DDL and utility statements: CREATE TABLE, DROP TABLE, USE, SHOW.
//
// Grammar:
//
//	create_table  → CREATE TABLE [IF NOT EXISTS] table_name "(" table_elem ("," table_elem)* ")"
//	table_elem    → PRIMARY KEY "(" ident_list ")" | column_def
//	column_def    → identifier data_type (column_opt)*
//	column_opt    → NOT NULL | NULL | DEFAULT expr | PRIMARY KEY | AUTO_INCREMENT | COMMENT STRING
//	drop_table    → DROP TABLE [IF EXISTS] table_name ("," table_name)*
//	use_stmt      → USE identifier
//	show_stmt     → SHOW (DATABASES | SCHEMAS) [show_filter]
//	              | SHOW TABLES [(FROM | IN) identifier] [show_filter]
//	              | SHOW (COLUMNS | FIELDS) (FROM | IN) table_name [(FROM | IN) identifier] [show_filter]
//	show_filter   → LIKE STRING | WHERE expr

// parseCreate parses CREATE TABLE.
func (p *Parser) parseCreate() core.Stmt {
	p.expect(token.CREATE)
	p.expect(token.TABLE)

	stmt := &core.CreateTableStmt{}
	if p.match(token.IF) {
		p.expect(token.NOT)
		p.expect(token.EXISTS)
		stmt.IfNotExists = true
	}
	stmt.Table = p.parseTableName()

	p.expect(token.LPAREN)
	for !p.failed() {
		if p.match(token.PRIMARY) {
			p.expect(token.KEY)
			stmt.PrimaryKey = p.parseIdentList()
		} else {
			stmt.Columns = append(stmt.Columns, p.parseColumnDef())
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)

	return stmt
}

// parseColumnDef parses a column definition inside CREATE TABLE.
func (p *Parser) parseColumnDef() *core.ColumnDef {
	col := &core.ColumnDef{Name: p.parseIdent("column name")}
	col.Type = p.parseDataType()

	for !p.failed() {
		switch {
		case p.match(token.NOT):
			p.expect(token.NULL)
			col.NotNull = true
		case p.match(token.NULL):
			col.Null = true
		case p.match(token.DEFAULT):
			// Unary level keeps "DEFAULT 0 NOT NULL" from reading NOT as infix.
			col.Default = p.parseOperand(spi.PrecedenceUnary)
		case p.match(token.PRIMARY):
			p.expect(token.KEY)
			col.PrimaryKey = true
		case p.matchWord(SoftKeywordAutoIncrement):
			col.AutoIncrement = true
		case p.matchWord(SoftKeywordComment):
			if !p.check(token.STRING) {
				p.addErr(NewUnexpectedToken(p.token, "after COMMENT", "string"))
				return col
			}
			col.Comment = p.token.Literal
			p.nextToken()
		default:
			return col
		}
	}
	return col
}

// parseDrop parses DROP TABLE.
func (p *Parser) parseDrop() core.Stmt {
	p.expect(token.DROP)
	p.expect(token.TABLE)

	stmt := &core.DropTableStmt{}
	if p.match(token.IF) {
		p.expect(token.EXISTS)
		stmt.IfExists = true
	}
	for !p.failed() {
		stmt.Tables = append(stmt.Tables, p.parseTableName())
		if !p.match(token.COMMA) {
			break
		}
	}
	return stmt
}

// parseUse parses USE db.
func (p *Parser) parseUse() core.Stmt {
	p.expect(token.USE)
	return &core.UseStmt{Database: p.parseIdent("database name")}
}

// parseShow parses the generic SHOW statements.
func (p *Parser) parseShow() core.Stmt {
	p.expect(token.SHOW)
	stmt := &core.ShowStmt{}

	switch {
	case p.matchWord(SoftKeywordDatabases), p.matchWord(SoftKeywordSchemas):
		stmt.Kind = core.ShowDatabases
	case p.matchWord(SoftKeywordTables):
		stmt.Kind = core.ShowTables
		if p.match(token.FROM) || p.match(token.IN) {
			stmt.Database = p.parseIdent("database name")
		}
	case p.matchWord(SoftKeywordColumns), p.matchWord(SoftKeywordFields):
		stmt.Kind = core.ShowColumns
		if !p.match(token.FROM) && !p.match(token.IN) {
			p.addErr(NewUnexpectedToken(p.token, "in SHOW COLUMNS", "FROM"))
			return nil
		}
		stmt.Table = p.parseTableName()
		if (p.match(token.FROM) || p.match(token.IN)) && stmt.Table != nil {
			stmt.Table.Schema = p.parseIdent("database name")
		}
	default:
		p.addErr(NewUnexpectedToken(p.token, "after SHOW", SoftKeywordDatabases, SoftKeywordTables, SoftKeywordColumns))
		return nil
	}

	switch {
	case p.match(token.LIKE):
		if !p.check(token.STRING) {
			p.addErr(NewUnexpectedToken(p.token, "after LIKE", "string"))
			return nil
		}
		stmt.Like = core.StringLit(p.token.Literal)
		p.nextToken()
	case p.match(token.WHERE):
		stmt.Where = p.parseOperand(spi.PrecedenceNone + 1)
	}

	return stmt
}
