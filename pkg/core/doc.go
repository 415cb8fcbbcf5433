// Package core defines the shared AST of the tidbparser system.
//
// This package contains the generic MySQL statement and expression nodes
// produced by pkg/parser and consumed by pkg/format and pkg/tidb.
//
// The Golden Rule: pkg/core imports ONLY pkg/token and stdlib.
// All other packages depend on core, not the reverse.
package core
