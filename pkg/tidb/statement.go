package tidb

import (
	"fmt"
	"strings"

	"github.com/siddontang/tidbparser/pkg/core"
	"github.com/siddontang/tidbparser/pkg/dialects/mysql"
	"github.com/siddontang/tidbparser/pkg/format"
)

// Kind tells the statement families apart.
type Kind int

// Statement kinds.
const (
	KindSQL Kind = iota
	KindAdmin
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSQL:
		return "sql"
	case KindAdmin:
		return "admin"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Statement is one parsed statement of a script: either a *SQLStatement or
// an AdminStatement. The set of implementations is closed.
type Statement interface {
	fmt.Stringer
	Kind() Kind
	statementNode()
}

// SQLStatement wraps a statement of the generic MySQL grammar.
type SQLStatement struct {
	Stmt core.Stmt
}

// Kind implements Statement.
func (*SQLStatement) Kind() Kind { return KindSQL }

func (*SQLStatement) statementNode() {}

// String renders the statement as canonical MySQL.
func (s *SQLStatement) String() string {
	return format.Statement(s.Stmt, mysql.MySQL)
}

// AdminStatement is a TiDB ADMIN statement.
type AdminStatement interface {
	Statement
	adminNode()
}

// ShowDDL is ADMIN SHOW DDL.
type ShowDDL struct{}

// Kind implements Statement.
func (*ShowDDL) Kind() Kind { return KindAdmin }

func (*ShowDDL) statementNode() {}
func (*ShowDDL) adminNode()     {}

func (*ShowDDL) String() string {
	return "ADMIN SHOW DDL"
}

// ShowDDLJobs is ADMIN SHOW DDL JOBS [n] [WHERE expr].
type ShowDDLJobs struct {
	Num   *core.Literal // job count; nil when absent
	Where core.Expr     // nil when absent
}

// Kind implements Statement.
func (*ShowDDLJobs) Kind() Kind { return KindAdmin }

func (*ShowDDLJobs) statementNode() {}
func (*ShowDDLJobs) adminNode()     {}

// String renders the count before the predicate whatever the source order was.
func (s *ShowDDLJobs) String() string {
	var sb strings.Builder
	sb.WriteString("ADMIN SHOW DDL JOBS")
	if s.Num != nil {
		sb.WriteString(" ")
		sb.WriteString(s.Num.Value)
	}
	if s.Where != nil {
		sb.WriteString(" WHERE ")
		sb.WriteString(format.Expr(s.Where, mysql.MySQL))
	}
	return sb.String()
}
