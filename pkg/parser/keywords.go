package parser

// Soft keywords are identifiers that have special meaning in specific contexts.
// They are not reserved words and can be used as identifiers elsewhere.
// Example: "TABLES" is a soft keyword in "SHOW TABLES" but can still be used
// as a column name in "SELECT tables FROM stats".
const (
	SoftKeywordDatabases     = "DATABASES"
	SoftKeywordSchemas       = "SCHEMAS"
	SoftKeywordTables        = "TABLES"
	SoftKeywordColumns       = "COLUMNS"
	SoftKeywordFields        = "FIELDS"
	SoftKeywordUnsigned      = "UNSIGNED"
	SoftKeywordAutoIncrement = "AUTO_INCREMENT"
	SoftKeywordComment       = "COMMENT"
	SoftKeywordStraightJoin  = "STRAIGHT_JOIN"
)
