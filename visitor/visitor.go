// Package visitor provides read-only AST traversal utilities.
package visitor

import "github.com/freeeve/sqlitelang/ast"

// Visitor is the interface for AST traversal.
type Visitor interface {
	Visit(node ast.Node) Visitor
}

// Walk traverses an AST in depth-first order.
func Walk(v Visitor, node ast.Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}
	walkChildren(v, node)
}

func walkChildren(v Visitor, node ast.Node) {
	switch n := node.(type) {
	case *ast.SelectStmt:
		walkWith(v, n.With)
		Walk(v, n.Core)
		for _, arm := range n.Compound {
			Walk(v, arm.Core)
		}
		for _, ob := range n.OrderBy {
			Walk(v, ob.Expr)
		}
		walkLimit(v, n.Limit)

	case *ast.SelectBody:
		for _, col := range n.Columns {
			Walk(v, col)
		}
		if n.From != nil {
			Walk(v, n.From)
		}
		if n.Where != nil {
			Walk(v, n.Where)
		}
		for _, e := range n.GroupBy {
			Walk(v, e)
		}
		if n.Having != nil {
			Walk(v, n.Having)
		}
		for _, w := range n.Windows {
			walkWindowSpec(v, w.Spec)
		}

	case *ast.ValuesCore:
		for _, row := range n.Rows {
			for _, e := range row {
				Walk(v, e)
			}
		}

	case *ast.InsertStmt:
		walkWith(v, n.With)
		Walk(v, n.Table)
		for _, row := range n.Values {
			for _, e := range row {
				Walk(v, e)
			}
		}
		if n.Select != nil {
			Walk(v, n.Select)
		}
		for _, u := range n.Upserts {
			walkUpsert(v, u)
		}
		walkReturning(v, n.Returning)

	case *ast.UpdateStmt:
		walkWith(v, n.With)
		Walk(v, n.Table)
		for _, a := range n.Set {
			walkAssignment(v, a)
		}
		if n.From != nil {
			Walk(v, n.From)
		}
		if n.Where != nil {
			Walk(v, n.Where)
		}
		for _, ob := range n.OrderBy {
			Walk(v, ob.Expr)
		}
		walkLimit(v, n.Limit)
		walkReturning(v, n.Returning)

	case *ast.DeleteStmt:
		walkWith(v, n.With)
		Walk(v, n.Table)
		if n.Where != nil {
			Walk(v, n.Where)
		}
		for _, ob := range n.OrderBy {
			Walk(v, ob.Expr)
		}
		walkLimit(v, n.Limit)
		walkReturning(v, n.Returning)

	case *ast.CreateTableStmt:
		Walk(v, n.Table)
		if n.AsSelect != nil {
			Walk(v, n.AsSelect)
		}
		for _, col := range n.Columns {
			for _, c := range col.Constraints {
				walkColumnConstraintExprs(v, c)
			}
		}
		for _, tc := range n.TableConstraints {
			walkTableConstraintExprs(v, tc)
		}

	case *ast.CreateIndexStmt:
		Walk(v, n.Index)
		Walk(v, n.Table)
		for _, c := range n.Columns {
			Walk(v, c.Expr)
		}
		if n.Where != nil {
			Walk(v, n.Where)
		}

	case *ast.CreateViewStmt:
		Walk(v, n.View)
		if n.Select != nil {
			Walk(v, n.Select)
		}

	case *ast.CreateTriggerStmt:
		Walk(v, n.Trigger)
		Walk(v, n.Table)
		if n.When != nil {
			Walk(v, n.When)
		}
		for _, s := range n.Body {
			Walk(v, s)
		}

	case *ast.CreateVirtualTableStmt:
		Walk(v, n.Table)

	case *ast.AlterTableStmt:
		Walk(v, n.Table)
		if a, ok := n.Action.(*ast.AddColumnAction); ok {
			for _, c := range a.Column.Constraints {
				walkColumnConstraintExprs(v, c)
			}
		}

	case *ast.DropStmt:
		Walk(v, n.Name)

	case *ast.ExplainStmt:
		Walk(v, n.Stmt)

	case *ast.AttachStmt:
		Walk(v, n.Expr)

	case *ast.PragmaStmt:
		if n.Value != nil {
			Walk(v, n.Value)
		}

	case *ast.BinaryExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *ast.UnaryExpr:
		Walk(v, n.Operand)

	case *ast.ParenExpr:
		Walk(v, n.Expr)

	case *ast.RowExpr:
		for _, e := range n.Values {
			Walk(v, e)
		}

	case *ast.FuncExpr:
		for _, a := range n.Args {
			Walk(v, a)
		}
		for _, ob := range n.OrderBy {
			Walk(v, ob.Expr)
		}
		if n.Filter != nil {
			Walk(v, n.Filter)
		}
		if n.Over != nil {
			walkWindowSpec(v, n.Over.Def)
		}

	case *ast.CastExpr:
		Walk(v, n.Expr)

	case *ast.CaseExpr:
		if n.Operand != nil {
			Walk(v, n.Operand)
		}
		for _, w := range n.Whens {
			Walk(v, w.Cond)
			Walk(v, w.Result)
		}
		if n.Else != nil {
			Walk(v, n.Else)
		}

	case *ast.InExpr:
		Walk(v, n.Expr)
		for _, val := range n.Values {
			Walk(v, val)
		}
		if n.Select != nil {
			Walk(v, n.Select)
		}
		if n.Table != nil {
			Walk(v, n.Table)
		}

	case *ast.BetweenExpr:
		Walk(v, n.Expr)
		Walk(v, n.Low)
		Walk(v, n.High)

	case *ast.LikeExpr:
		Walk(v, n.Expr)
		Walk(v, n.Pattern)
		if n.Escape != nil {
			Walk(v, n.Escape)
		}

	case *ast.IsExpr:
		Walk(v, n.Expr)
		if n.Right != nil {
			Walk(v, n.Right)
		}

	case *ast.Subquery:
		Walk(v, n.Select)

	case *ast.ExistsExpr:
		Walk(v, n.Subquery)

	case *ast.CollateExpr:
		Walk(v, n.Expr)

	case *ast.AliasedExpr:
		Walk(v, n.Expr)

	case *ast.AliasedTableExpr:
		Walk(v, n.Expr)

	case *ast.TableValuedFunc:
		for _, a := range n.Args {
			Walk(v, a)
		}

	case *ast.ParenTableExpr:
		Walk(v, n.Expr)

	case *ast.JoinExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)
		if n.On != nil {
			Walk(v, n.On)
		}

	case *ast.ColName, *ast.Literal, *ast.Param, *ast.RaiseExpr, *ast.TableName, *ast.StarExpr:
		// leaves: no children to walk
	}
}

func walkWith(v Visitor, with *ast.WithClause) {
	if with == nil {
		return
	}
	for _, cte := range with.Ctes {
		Walk(v, cte.Query)
	}
}

func walkLimit(v Visitor, limit *ast.Limit) {
	if limit == nil {
		return
	}
	if limit.Count != nil {
		Walk(v, limit.Count)
	}
	if limit.Offset != nil {
		Walk(v, limit.Offset)
	}
}

func walkReturning(v Visitor, r *ast.ReturningClause) {
	if r == nil {
		return
	}
	for _, c := range r.Columns {
		Walk(v, c)
	}
}

func walkAssignment(v Visitor, a *ast.Assignment) {
	if a == nil {
		return
	}
	Walk(v, a.Expr)
}

func walkUpsert(v Visitor, u *ast.UpsertClause) {
	if u == nil {
		return
	}
	if u.TargetWhere != nil {
		Walk(v, u.TargetWhere)
	}
	if a, ok := u.Action.(*ast.DoUpdateAction); ok {
		for _, asg := range a.Assignments {
			walkAssignment(v, asg)
		}
		if a.Where != nil {
			Walk(v, a.Where)
		}
	}
}

func walkColumnConstraintExprs(v Visitor, c ast.ColumnConstraint) {
	switch cc := c.(type) {
	case *ast.CheckConstraint:
		Walk(v, cc.Expr)
	case *ast.DefaultConstraint:
		Walk(v, cc.Expr)
	case *ast.GeneratedConstraint:
		Walk(v, cc.Expr)
	}
}

func walkTableConstraintExprs(v Visitor, c ast.TableConstraint) {
	switch tc := c.(type) {
	case *ast.CheckConstraint:
		Walk(v, tc.Expr)
	case *ast.TablePrimaryKeyConstraint:
		for _, col := range tc.Columns {
			Walk(v, col.Expr)
		}
	case *ast.TableUniqueConstraint:
		for _, col := range tc.Columns {
			Walk(v, col.Expr)
		}
	}
}

func walkWindowSpec(v Visitor, w *ast.WindowSpec) {
	if w == nil {
		return
	}
	for _, e := range w.PartitionBy {
		Walk(v, e)
	}
	for _, ob := range w.OrderBy {
		Walk(v, ob.Expr)
	}
	if w.Frame == nil {
		return
	}
	if w.Frame.Start != nil && w.Frame.Start.Expr != nil {
		Walk(v, w.Frame.Start.Expr)
	}
	if w.Frame.End != nil && w.Frame.End.Expr != nil {
		Walk(v, w.Frame.End.Expr)
	}
}

// WalkFunc is a convenience wrapper that calls a function for each node.
func WalkFunc(node ast.Node, fn func(ast.Node) bool) {
	Walk(&funcVisitor{fn: fn}, node)
}

type funcVisitor struct {
	fn func(ast.Node) bool
}

func (v *funcVisitor) Visit(node ast.Node) Visitor {
	if v.fn(node) {
		return v
	}
	return nil
}

// Inspect calls f for each node in the AST.
// If f returns false, children are not visited.
func Inspect(node ast.Node, f func(ast.Node) bool) {
	WalkFunc(node, f)
}
