package format_test

import (
	"testing"

	"github.com/siddontang/tidbparser/pkg/core"
	"github.com/siddontang/tidbparser/pkg/dialects/ansi"
	"github.com/siddontang/tidbparser/pkg/dialects/mysql"
	"github.com/siddontang/tidbparser/pkg/format"
	"github.com/siddontang/tidbparser/pkg/parser"
	"github.com/siddontang/tidbparser/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatement_Canonical(t *testing.T) {
	d := mysql.MySQL
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple select", "select a, b from t", "SELECT a, b FROM t"},
		{"star", "SELECT * FROM t", "SELECT * FROM t"},
		{"table star", "SELECT t.* FROM t", "SELECT t.* FROM t"},
		{"implicit alias", "SELECT a x FROM t y", "SELECT a AS x FROM t AS y"},
		{"string alias", "SELECT 1 AS 'one'", "SELECT 1 AS one"},
		{"distinct", "SELECT DISTINCT a FROM t", "SELECT DISTINCT a FROM t"},
		{"where", "SELECT a FROM t WHERE x=1 AND y<>2", "SELECT a FROM t WHERE x = 1 AND y != 2"},
		{"group having", "SELECT a, count(*) FROM t GROUP BY a HAVING count(*)>1",
			"SELECT a, COUNT(*) FROM t GROUP BY a HAVING COUNT(*) > 1"},
		{"order limit", "SELECT a FROM t ORDER BY a DESC, b ASC LIMIT 10 OFFSET 5",
			"SELECT a FROM t ORDER BY a DESC, b LIMIT 10 OFFSET 5"},
		{"mysql limit", "SELECT a FROM t LIMIT 5, 10", "SELECT a FROM t LIMIT 10 OFFSET 5"},
		{"union all", "SELECT a FROM t UNION ALL SELECT b FROM u", "SELECT a FROM t UNION ALL SELECT b FROM u"},
		{"joins", "SELECT * FROM a INNER JOIN b ON a.id=b.id LEFT OUTER JOIN c USING (id), d",
			"SELECT * FROM a JOIN b ON a.id = b.id LEFT JOIN c USING (id), d"},
		{"straight join", "SELECT * FROM a STRAIGHT_JOIN b ON a.x = b.x", "SELECT * FROM a STRAIGHT_JOIN b ON a.x = b.x"},
		{"derived table", "SELECT x FROM (SELECT 1 AS x) s", "SELECT x FROM (SELECT 1 AS x) AS s"},
		{"reserved identifier", "SELECT `select`, `a b` FROM `order`", "SELECT `select`, `a b` FROM `order`"},
		{"qualified column", "SELECT db.t.c FROM db.t", "SELECT db.t.c FROM db.t"},
		{"string escapes", `SELECT 'it''s', "a\\b"`, `SELECT 'it''s', 'a\\b'`},
		{"in list", "SELECT 1 FROM t WHERE a NOT IN (1,2)", "SELECT 1 FROM t WHERE a NOT IN (1, 2)"},
		{"in subquery", "SELECT 1 FROM t WHERE a IN (SELECT b FROM u)", "SELECT 1 FROM t WHERE a IN (SELECT b FROM u)"},
		{"between", "SELECT 1 FROM t WHERE a BETWEEN 1 AND 2", "SELECT 1 FROM t WHERE a BETWEEN 1 AND 2"},
		{"is null", "SELECT 1 FROM t WHERE a IS NOT NULL", "SELECT 1 FROM t WHERE a IS NOT NULL"},
		{"is true", "SELECT a IS FALSE", "SELECT a IS FALSE"},
		{"like", "SELECT 1 FROM t WHERE a LIKE 'x%'", "SELECT 1 FROM t WHERE a LIKE 'x%'"},
		{"regexp", "SELECT 1 FROM t WHERE a NOT REGEXP '^x'", "SELECT 1 FROM t WHERE a NOT REGEXP '^x'"},
		{"case", "SELECT CASE WHEN a THEN 1 ELSE 0 END", "SELECT CASE WHEN a THEN 1 ELSE 0 END"},
		{"cast", "SELECT CAST(a AS decimal(10,2))", "SELECT CAST(a AS DECIMAL(10, 2))"},
		{"exists", "SELECT NOT EXISTS (SELECT 1)", "SELECT NOT EXISTS (SELECT 1)"},
		{"unary", "SELECT - -1, !a", "SELECT - -1, !a"},
		{"paren", "SELECT (a+b)*c", "SELECT (a + b) * c"},
		{"mysql operators", "SELECT a DIV 2, a XOR b, a <=> b", "SELECT a DIV 2, a XOR b, a <=> b"},
		{"collate", "SELECT a COLLATE utf8mb4_bin", "SELECT a COLLATE utf8mb4_bin"},
		{"insert", "insert into t (a, b) values (1, 'x'), (2, 'y')", "INSERT INTO t (a, b) VALUES (1, 'x'), (2, 'y')"},
		{"insert select", "INSERT t SELECT * FROM u", "INSERT INTO t SELECT * FROM u"},
		{"update", "UPDATE t SET a=1, t.b=b+1 WHERE id=3 ORDER BY id LIMIT 1",
			"UPDATE t SET a = 1, t.b = b + 1 WHERE id = 3 ORDER BY id LIMIT 1"},
		{"delete", "DELETE FROM t WHERE a = 1", "DELETE FROM t WHERE a = 1"},
		{"create table", "create table if not exists t (id bigint unsigned not null auto_increment, name varchar(64) default '' comment 'n', primary key (id))",
			"CREATE TABLE IF NOT EXISTS t (id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT, name VARCHAR(64) DEFAULT '' COMMENT 'n', PRIMARY KEY (id))"},
		{"drop table", "DROP TABLE IF EXISTS a, db.b", "DROP TABLE IF EXISTS a, db.b"},
		{"use", "use test", "USE test"},
		{"show databases", "SHOW SCHEMAS LIKE 'x%'", "SHOW DATABASES LIKE 'x%'"},
		{"show tables", "SHOW TABLES IN db WHERE 1", "SHOW TABLES FROM db WHERE 1"},
		{"show columns", "SHOW FIELDS FROM t FROM db", "SHOW COLUMNS FROM db.t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := parser.ParseWithDialect(tt.input, d)
			require.NoError(t, err)

			out := format.Statement(stmt, d)
			assert.Equal(t, tt.expected, out)

			again, err := parser.ParseWithDialect(out, d)
			require.NoError(t, err, "rendered SQL must parse: %s", out)
			assert.Equal(t, stmt, again)
		})
	}
}

func TestStatement_ANSIQuoting(t *testing.T) {
	d := ansi.ANSI
	stmt, err := parser.ParseWithDialect(`SELECT "from", 'a\b' FROM t`, d)
	require.NoError(t, err)
	assert.Equal(t, `SELECT "from", 'a\b' FROM t`, format.Statement(stmt, d))
}

func TestExpr(t *testing.T) {
	d := mysql.MySQL
	tests := []struct {
		name     string
		expr     core.Expr
		expected string
	}{
		{"number", core.NumberLit("42"), "42"},
		{"string", core.StringLit("o'k"), "'o''k'"},
		{"null", &core.Literal{Type: core.LiteralNull, Value: "NULL"}, "NULL"},
		{
			name: "comparison",
			expr: &core.BinaryExpr{
				Left:  &core.ColumnRef{Column: "state"},
				Op:    token.EQ,
				Right: core.StringLit("done"),
			},
			expected: "state = 'done'",
		},
		{"keyword column", &core.ColumnRef{Table: "t", Column: "key"}, "t.`key`"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, format.Expr(tt.expr, d))
		})
	}
}

func TestPretty(t *testing.T) {
	d := mysql.MySQL
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "select",
			input: "SELECT a, b FROM t JOIN u ON t.id = u.id WHERE x = 1 ORDER BY a LIMIT 5",
			expected: `SELECT
  a,
  b
FROM t
JOIN u ON t.id = u.id
WHERE
  x = 1
ORDER BY
  a
LIMIT 5`,
		},
		{
			name:  "create table",
			input: "CREATE TABLE t (a INT, b TEXT)",
			expected: `CREATE TABLE t (
  a INT,
  b TEXT
)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := parser.ParseWithDialect(tt.input, d)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format.Pretty(stmt, d))
		})
	}
}
