package core

// ---------- Statement Types ----------

// SelectStmt represents a complete SELECT statement.
type SelectStmt struct {
	Body *SelectBody
}

func (*SelectStmt) stmtNode() {}

// SelectBody represents the body of a SELECT with possible set operations.
type SelectBody struct {
	Left  *SelectCore
	Op    SetOpType   // UNION or empty
	All   bool        // UNION ALL
	Right *SelectBody // For chained set operations
}

// SetOpType represents the type of set operation.
type SetOpType string

// SetOpType constants for set operations in queries.
const (
	SetOpNone  SetOpType = ""
	SetOpUnion SetOpType = "UNION"
)

// SelectCore represents the core SELECT clause.
type SelectCore struct {
	Distinct bool
	Columns  []SelectItem
	From     *FromClause
	Where    Expr
	GroupBy  []Expr
	Having   Expr
	OrderBy  []OrderByItem
	Limit    Expr
	Offset   Expr
}

// SelectItem represents an item in the SELECT list.
type SelectItem struct {
	Star      bool   // SELECT *
	TableStar string // SELECT t.*
	Expr      Expr
	Alias     string
}

// OrderByItem represents an item in ORDER BY clause.
type OrderByItem struct {
	Expr Expr
	Desc bool
}

// InsertStmt represents INSERT INTO ... VALUES / SELECT.
type InsertStmt struct {
	Table   *TableName
	Columns []string
	Rows    [][]Expr    // VALUES (...), (...)
	Select  *SelectStmt // INSERT ... SELECT
}

func (*InsertStmt) stmtNode() {}

// Assignment is a single `column = expr` item of an UPDATE SET list.
type Assignment struct {
	Column *ColumnRef
	Value  Expr
}

// UpdateStmt represents a single-table UPDATE.
type UpdateStmt struct {
	Table   *TableName
	Set     []Assignment
	Where   Expr
	OrderBy []OrderByItem
	Limit   Expr
}

func (*UpdateStmt) stmtNode() {}

// DeleteStmt represents a single-table DELETE.
type DeleteStmt struct {
	Table   *TableName
	Where   Expr
	OrderBy []OrderByItem
	Limit   Expr
}

func (*DeleteStmt) stmtNode() {}

// UseStmt represents USE db.
type UseStmt struct {
	Database string
}

func (*UseStmt) stmtNode() {}

// ShowKind is the object class a SHOW statement lists.
type ShowKind string

// ShowKind constants.
const (
	ShowDatabases ShowKind = "DATABASES"
	ShowTables    ShowKind = "TABLES"
	ShowColumns   ShowKind = "COLUMNS"
)

// ShowStmt represents SHOW DATABASES / TABLES / COLUMNS.
type ShowStmt struct {
	Kind     ShowKind
	Table    *TableName // SHOW COLUMNS FROM t
	Database string     // SHOW TABLES FROM db
	Like     *Literal
	Where    Expr
}

func (*ShowStmt) stmtNode() {}
