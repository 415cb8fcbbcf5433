package core

// ---------- Table Reference Types ----------

// TableName represents a table name reference.
type TableName struct {
	Schema string
	Name   string
	Alias  string
}

func (*TableName) tableRefNode() {}

// DerivedTable represents a subquery in FROM clause.
type DerivedTable struct {
	Select *SelectStmt
	Alias  string
}

func (*DerivedTable) tableRefNode() {}

// FromClause represents the FROM clause.
type FromClause struct {
	Source TableRef
	Joins  []*Join
}

// JoinType represents the type of join.
type JoinType string

// JoinType constants.
const (
	JoinComma    JoinType = ","
	JoinInner    JoinType = "INNER"
	JoinLeft     JoinType = "LEFT"
	JoinRight    JoinType = "RIGHT"
	JoinCross    JoinType = "CROSS"
	JoinStraight JoinType = "STRAIGHT_JOIN"
)

// Join represents a JOIN clause.
type Join struct {
	Type      JoinType
	Right     TableRef
	Condition Expr     // ON condition
	Using     []string // USING (a, b)
}
