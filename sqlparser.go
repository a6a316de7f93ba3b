// Package sqlitelang is a standalone parser for the SQLite dialect of SQL.
// Given source text containing one or more statements, it produces a typed
// AST with precise source-position information; it never executes queries,
// never validates schemas, and never opens files.
//
// Basic usage:
//
//	stmts, diags := sqlitelang.ParseAll(`SELECT * FROM users WHERE id = 1;`)
//	for _, d := range diags {
//	    fmt.Println(d.Error())
//	}
//
// Walking the AST:
//
//	sqlitelang.Walk(stmts[0], func(node ast.Node) bool {
//	    if col, ok := node.(*ast.ColName); ok {
//	        fmt.Println("column:", col.Name())
//	    }
//	    return true
//	})
package sqlitelang

import (
	"github.com/freeeve/sqlitelang/ast"
	"github.com/freeeve/sqlitelang/lexer"
	"github.com/freeeve/sqlitelang/parser"
	"github.com/freeeve/sqlitelang/token"
	"github.com/freeeve/sqlitelang/visitor"
)

// ParseAll parses every statement in source and returns the statements that
// parsed successfully alongside any diagnostics. A non-empty diagnostic list
// does not imply an empty statement list: failed statements are skipped, and
// parsing resumes at the next statement boundary.
func ParseAll(source string) ([]ast.Statement, []token.Diagnostic) {
	p := parser.New(source)
	stmts := p.ParseProgram()
	return stmts, p.Diagnostics
}

// Tokenize lexes source into its full token stream, including the
// terminating EOF token, for debugging and tooling use.
func Tokenize(source string) ([]token.Item, []token.Diagnostic) {
	return lexer.Tokenize(source)
}

// Walk traverses node and its descendants in depth-first, pre-order, calling
// fn for each. If fn returns false, that node's children are skipped.
func Walk(node ast.Node, fn func(ast.Node) bool) {
	visitor.WalkFunc(node, fn)
}

// Inspect is an alias for Walk kept for readability at call sites that only
// inspect the tree.
func Inspect(node ast.Node, fn func(ast.Node) bool) {
	visitor.Inspect(node, fn)
}

// Node is the base interface implemented by every AST type.
type Node = ast.Node

// Statement is the interface implemented by every top-level statement.
type Statement = ast.Statement

// Expr is the interface implemented by every expression node.
type Expr = ast.Expr

// Diagnostic is a located, severity-tagged parser or lexer error.
type Diagnostic = token.Diagnostic
