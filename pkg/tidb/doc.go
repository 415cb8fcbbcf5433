// Package tidb parses TiDB SQL scripts.
//
// TiDB accepts the MySQL grammar plus a family of vendor statements that
// start with the ADMIN keyword. The dispatcher peeks the first token of each
// statement: ADMIN selects the vendor grammar in this package, anything else
// goes to the generic MySQL grammar in pkg/parser. Both produce a Statement.
//
//	stmts, err := tidb.ParseSQL("SELECT 1; ADMIN SHOW DDL JOBS 10 WHERE state = 'done'")
//	if err != nil {
//	    // *parser.ParseError or *parser.LexError
//	}
//	for _, s := range stmts {
//	    fmt.Println(s) // canonical SQL
//	}
//
// Parsing is a pure function of its input; concurrent calls do not share
// state.
package tidb
