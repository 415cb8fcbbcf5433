package core

// Expr is a marker interface for expression nodes.
type Expr interface {
	exprNode() // Marker method to distinguish expressions
}

// Stmt is a marker interface for statement nodes.
type Stmt interface {
	stmtNode() // Marker method to distinguish statements
}

// TableRef is a marker interface for FROM clause items.
type TableRef interface {
	tableRefNode()
}
