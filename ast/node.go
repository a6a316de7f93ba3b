// Package ast defines the abstract syntax tree for the SQLite dialect:
// statements, expressions, clauses, schema pieces and trigger bodies, each a
// tagged variant carrying its own source span. The tree is immutable once
// returned by the parser — nodes own their children, there are no cycles and
// no shared ownership.
package ast

import "github.com/freeeve/sqlitelang/token"

// Node is the base interface implemented by every AST type.
type Node interface {
	Pos() token.Pos
	End() token.Pos
}

// Statement represents a top-level SQL statement.
type Statement interface {
	Node
	statementNode()
}

// Expr represents an expression.
type Expr interface {
	Node
	exprNode()
}

// TableExpr represents a table reference or join tree in a FROM clause.
type TableExpr interface {
	Node
	tableExprNode()
}

// SelectExpr represents one item of a SELECT result-column list.
type SelectExpr interface {
	Node
	selectExprNode()
}

// ColumnConstraint is a closed sum of the per-column constraint forms
// allowed in a CREATE TABLE column definition.
type ColumnConstraint interface {
	Node
	columnConstraintNode()
}

// TableConstraint is a closed sum of the table-level constraint forms
// allowed in a CREATE TABLE statement.
type TableConstraint interface {
	Node
	tableConstraintNode()
}

// AlterTableAction is a closed sum of the forms an ALTER TABLE statement
// may take after the table name.
type AlterTableAction interface {
	Node
	alterTableActionNode()
}

// UpsertAction is a closed sum of the two forms an ON CONFLICT clause's
// DO branch may take: DO NOTHING or DO UPDATE SET ...
type UpsertAction interface {
	Node
	upsertActionNode()
}
