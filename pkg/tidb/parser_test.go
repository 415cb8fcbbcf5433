package tidb_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/siddontang/tidbparser/pkg/core"
	"github.com/siddontang/tidbparser/pkg/parser"
	"github.com/siddontang/tidbparser/pkg/tidb"
	"github.com/siddontang/tidbparser/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSQL_StatementCount(t *testing.T) {
	tests := []struct {
		name  string
		sql   string
		kinds []tidb.Kind
	}{
		{"empty", "", nil},
		{"only delimiters", ";;;", nil},
		{"whitespace and comments", "  -- nothing\n/* here */ ", nil},
		{"one", "SELECT 1", []tidb.Kind{tidb.KindSQL}},
		{"trailing delimiter", "SELECT 1;", []tidb.Kind{tidb.KindSQL}},
		{"empty statements between", ";SELECT 1;;;ADMIN SHOW DDL;;", []tidb.Kind{tidb.KindSQL, tidb.KindAdmin}},
		{
			name: "mixed script",
			sql: `CREATE TABLE t (id INT);
				INSERT INTO t VALUES (1);
				ADMIN SHOW DDL JOBS 5;
				SELECT * FROM t WHERE id = 1;
				admin show ddl`,
			kinds: []tidb.Kind{tidb.KindSQL, tidb.KindSQL, tidb.KindAdmin, tidb.KindSQL, tidb.KindAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := tidb.ParseSQL(tt.sql)
			require.NoError(t, err)
			require.Len(t, stmts, len(tt.kinds))
			for i, s := range stmts {
				assert.Equal(t, tt.kinds[i], s.Kind(), "statement %d", i)
			}
		})
	}
}

func TestParseSQL_PreservesOrder(t *testing.T) {
	stmts, err := tidb.ParseSQL("SELECT 1; SELECT 2; ADMIN SHOW DDL; SELECT 3")
	require.NoError(t, err)

	var got []string
	for _, s := range stmts {
		got = append(got, s.String())
	}
	assert.Equal(t, []string{"SELECT 1", "SELECT 2", "ADMIN SHOW DDL", "SELECT 3"}, got)
}

func TestParseOne_Admin(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected tidb.Statement
		rendered string
	}{
		{
			name:     "show ddl",
			sql:      "ADMIN SHOW DDL",
			expected: &tidb.ShowDDL{},
			rendered: "ADMIN SHOW DDL",
		},
		{
			name:     "case insensitive",
			sql:      "admin Show ddl;",
			expected: &tidb.ShowDDL{},
			rendered: "ADMIN SHOW DDL",
		},
		{
			name:     "show ddl jobs",
			sql:      "ADMIN SHOW DDL JOBS",
			expected: &tidb.ShowDDLJobs{},
			rendered: "ADMIN SHOW DDL JOBS",
		},
		{
			name: "jobs with count and predicate",
			sql:  "ADMIN SHOW DDL JOBS 20 WHERE id = 0",
			expected: &tidb.ShowDDLJobs{
				Num: core.NumberLit("20"),
				Where: &core.BinaryExpr{
					Left:  &core.ColumnRef{Column: "id"},
					Op:    token.EQ,
					Right: core.NumberLit("0"),
				},
			},
			rendered: "ADMIN SHOW DDL JOBS 20 WHERE id = 0",
		},
		{
			name: "jobs with predicate only",
			sql:  "ADMIN SHOW DDL JOBS WHERE id > 0",
			expected: &tidb.ShowDDLJobs{
				Where: &core.BinaryExpr{
					Left:  &core.ColumnRef{Column: "id"},
					Op:    token.GT,
					Right: core.NumberLit("0"),
				},
			},
			rendered: "ADMIN SHOW DDL JOBS WHERE id > 0",
		},
		{
			name: "predicate before count is normalized",
			sql:  "ADMIN SHOW DDL JOBS WHERE state = 'done' 3",
			expected: &tidb.ShowDDLJobs{
				Num: core.NumberLit("3"),
				Where: &core.BinaryExpr{
					Left:  &core.ColumnRef{Column: "state"},
					Op:    token.EQ,
					Right: core.StringLit("done"),
				},
			},
			rendered: "ADMIN SHOW DDL JOBS 3 WHERE state = 'done'",
		},
		{
			name:     "later count overwrites",
			sql:      "ADMIN SHOW DDL JOBS 5 10",
			expected: &tidb.ShowDDLJobs{Num: core.NumberLit("10")},
			rendered: "ADMIN SHOW DDL JOBS 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := tidb.ParseOne(tt.sql)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stmt)
			assert.Equal(t, tidb.KindAdmin, stmt.Kind())
			assert.Equal(t, tt.rendered, stmt.String())

			again, err := tidb.ParseOne(stmt.String())
			require.NoError(t, err)
			assert.Equal(t, stmt, again)
		})
	}
}

func TestParseOne_Generic(t *testing.T) {
	stmt, err := tidb.ParseOne("select a from t where b = 1")
	require.NoError(t, err)

	sqlStmt, ok := stmt.(*tidb.SQLStatement)
	require.True(t, ok)
	assert.IsType(t, &core.SelectStmt{}, sqlStmt.Stmt)
	assert.Equal(t, tidb.KindSQL, stmt.Kind())
	assert.Equal(t, "SELECT a FROM t WHERE b = 1", stmt.String())
}

func TestParseOne_MySQLLiterals(t *testing.T) {
	tests := []struct {
		sql      string
		rendered string
	}{
		{"SELECT 0x1F", "SELECT 0x1F"},
		{"SELECT X'1F', b'101', 0b11", "SELECT X'1F', b'101', 0b11"},
		{"SELECT 0x1F AS h FROM t WHERE flags = b'1'", "SELECT 0x1F AS h FROM t WHERE flags = b'1'"},
		{"SELECT 1abc FROM t", "SELECT `1abc` FROM t"},
		{"SELECT 1e FROM t", "SELECT `1e` FROM t"},
		{"SELECT 1e3", "SELECT 1e3"},
		{"SELECT 'a' 'b' \"c\"", "SELECT 'abc'"},
		{"SELECT 'a' 'b' AS ab", "SELECT 'ab' AS ab"},
		{"ADMIN SHOW DDL JOBS 3 WHERE job_type = 0x1F", "ADMIN SHOW DDL JOBS 3 WHERE job_type = 0x1F"},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			stmt, err := tidb.ParseOne(tt.sql)
			require.NoError(t, err)
			assert.Equal(t, tt.rendered, stmt.String())

			again, err := tidb.ParseOne(stmt.String())
			require.NoError(t, err)
			assert.Equal(t, stmt, again)
		})
	}
}

func TestParseOne_HexLiteralNode(t *testing.T) {
	stmt, err := tidb.ParseOne("SELECT 0x1F")
	require.NoError(t, err)

	sel := stmt.(*tidb.SQLStatement).Stmt.(*core.SelectStmt)
	cols := sel.Body.Left.Columns
	require.Len(t, cols, 1)
	assert.Equal(t, &core.Literal{Type: core.LiteralHex, Value: "0x1F"}, cols[0].Expr)
}

func TestVendorWordsStayIdentifiers(t *testing.T) {
	stmt, err := tidb.ParseOne("SELECT admin, ddl, jobs FROM admin")
	require.NoError(t, err)
	assert.Equal(t, "SELECT admin, ddl, jobs FROM admin", stmt.String())

	// A quoted ADMIN is an identifier, not the vendor keyword.
	_, err = tidb.ParseOne("`ADMIN` SHOW DDL")
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrUnexpectedToken)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		script  bool
		target  error
		message string
	}{
		{
			name:    "missing delimiter between admin statements",
			sql:     "ADMIN SHOW DDL ADMIN SHOW DDL",
			script:  true,
			target:  parser.ErrUnexpectedEndOfStatement,
			message: "expected end of statement, found: ADMIN",
		},
		{
			name:    "missing delimiter between generic statements",
			sql:     "SELECT 1 SELECT 2",
			script:  true,
			target:  parser.ErrUnexpectedEndOfStatement,
			message: "expected end of statement, found: SELECT",
		},
		{
			name:    "unknown admin command",
			sql:     "ADMIN FOO",
			target:  parser.ErrUnexpectedToken,
			message: "unexpected token FOO after ADMIN, expected SHOW",
		},
		{
			name:    "admin at end of input",
			sql:     "ADMIN",
			target:  parser.ErrUnexpectedToken,
			message: "unexpected token EOF after ADMIN, expected SHOW",
		},
		{
			name:    "admin show without ddl",
			sql:     "ADMIN SHOW TABLES",
			target:  parser.ErrUnexpectedToken,
			message: "unexpected token TABLES after ADMIN SHOW, expected DDL",
		},
		{
			name:    "garbage in jobs clause",
			sql:     "ADMIN SHOW DDL JOBS LIMIT 5",
			target:  parser.ErrUnexpectedToken,
			message: "unexpected token LIMIT after ADMIN SHOW DDL JOBS, expected number, WHERE or end of statement",
		},
		{
			name:    "string in jobs clause",
			sql:     "ADMIN SHOW DDL JOBS 'x'",
			target:  parser.ErrUnexpectedToken,
			message: "unexpected token 'x' after ADMIN SHOW DDL JOBS",
		},
		{
			name:    "hex literal in jobs clause",
			sql:     "ADMIN SHOW DDL JOBS 0x1F",
			target:  parser.ErrUnexpectedToken,
			message: "unexpected token 0x1F after ADMIN SHOW DDL JOBS",
		},
		{
			name:    "trailing token after show ddl",
			sql:     "ADMIN SHOW DDL JOBZ",
			target:  parser.ErrUnexpectedEndOfStatement,
			message: "found: JOBZ",
		},
		{
			name:    "missing where expression",
			sql:     "ADMIN SHOW DDL JOBS WHERE",
			message: "expected expression, found: EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.script {
				var stmts []tidb.Statement
				stmts, err = tidb.ParseSQL(tt.sql)
				assert.Nil(t, stmts)
			} else {
				_, err = tidb.ParseOne(tt.sql)
			}
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			assert.Contains(t, err.Error(), tt.message)

			var perr *parser.ParseError
			require.True(t, errors.As(err, &perr))
		})
	}
}

func TestParseErrors_FoundToken(t *testing.T) {
	_, err := tidb.ParseOne("ADMIN FOO")
	require.Error(t, err)

	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.KindUnexpectedToken, perr.Kind)
	assert.Equal(t, "FOO", perr.Found.Literal)
	assert.Equal(t, []string{"SHOW"}, perr.Expected)
	assert.Equal(t, 1, perr.Pos.Line)
	assert.Equal(t, 7, perr.Pos.Column)
}

func TestParseSQL_LexError(t *testing.T) {
	stmts, err := tidb.ParseSQL("SELECT 'unterminated")
	require.Error(t, err)
	assert.Nil(t, stmts)

	var lerr *parser.LexError
	assert.ErrorAs(t, err, &lerr)
}

func TestParseSQL_Concurrent(t *testing.T) {
	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stmts, err := tidb.ParseSQL("ADMIN SHOW DDL JOBS 3 WHERE a = 1; SELECT 1")
			if err == nil && len(stmts) != 2 {
				err = errors.New("unexpected statement count")
			}
			errs[i] = err
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestParser_Incremental(t *testing.T) {
	tp, err := tidb.NewParser("ADMIN SHOW DDL JOBS; SELECT 1")
	require.NoError(t, err)

	first, err := tp.ParseStatement()
	require.NoError(t, err)
	assert.Equal(t, &tidb.ShowDDLJobs{}, first)

	rest, err := tp.ParseStatements()
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "SELECT 1", rest[0].String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "sql", tidb.KindSQL.String())
	assert.Equal(t, "admin", tidb.KindAdmin.String())
	assert.Equal(t, "Kind(7)", tidb.Kind(7).String())
}
