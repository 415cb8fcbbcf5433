package core

// ---------- DDL Types ----------

// DataType is a column type such as INT, VARCHAR(255) or DECIMAL(10,2).
type DataType struct {
	Name     string   // upper-cased type name
	Args     []string // numeric arguments, in order
	Unsigned bool
}

// ColumnDef is a column definition inside CREATE TABLE.
type ColumnDef struct {
	Name          string
	Type          *DataType
	NotNull       bool
	Null          bool // explicit NULL
	Default       Expr
	PrimaryKey    bool
	AutoIncrement bool
	Comment       string
}

// CreateTableStmt represents CREATE TABLE.
type CreateTableStmt struct {
	IfNotExists bool
	Table       *TableName
	Columns     []*ColumnDef
	PrimaryKey  []string // table-level PRIMARY KEY (a, b)
}

func (*CreateTableStmt) stmtNode() {}

// DropTableStmt represents DROP TABLE.
type DropTableStmt struct {
	IfExists bool
	Tables   []*TableName
}

func (*DropTableStmt) stmtNode() {}
