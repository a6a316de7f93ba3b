package parser

import (
	"github.com/freeeve/sqlitelang/ast"
	"github.com/freeeve/sqlitelang/token"
)

// parseSelect is the SELECT statement grammar entry point: a select-core,
// zero or more UNION/INTERSECT/EXCEPT arms, and the trailing ORDER BY/LIMIT
// that apply to the compound as a whole. with is the already-parsed WITH
// clause (nil if the statement had none).
func (p *Parser) parseSelect(with *ast.WithClause) ast.Statement {
	stmt := p.parseSelectBody(with)
	if stmt == nil {
		return nil
	}
	return stmt
}

// parseSelectBody is the shared implementation behind parseSelect and a
// CTE's parenthesized query body, which needs the identical grammar after
// the caller has already consumed the leading '('.
func (p *Parser) parseSelectBody(with *ast.WithClause) *ast.SelectStmt {
	start := p.cur.StartPos
	if with != nil {
		start = with.StartPos
	}
	core := p.parseSelectCore()
	if core == nil {
		return nil
	}
	stmt := &ast.SelectStmt{StartPos: start, With: with, Core: core}
	for {
		op, ok := p.tryCompoundOp()
		if !ok {
			break
		}
		arm := p.parseSelectCore()
		if arm == nil {
			break
		}
		stmt.Compound = append(stmt.Compound, &ast.CompoundArm{Op: op, Core: arm})
	}
	if p.curIs(token.ORDER) {
		stmt.OrderBy = p.parseOrderByList()
	}
	if p.curIs(token.LIMIT) {
		stmt.Limit = p.parseLimit()
	}
	stmt.EndPos = p.lastEnd
	return stmt
}

// parseParenSelect parses a select-core-or-compound appearing inside an
// already-consumed '(' — a scalar/EXISTS/IN subquery, or a parenthesized
// table reference. An optional leading WITH is allowed here too.
func (p *Parser) parseParenSelect() *ast.SelectStmt {
	var with *ast.WithClause
	if p.curIs(token.WITH) {
		with = p.parseWithClause()
		if with == nil {
			return nil
		}
	}
	return p.parseSelectBody(with)
}

func (p *Parser) tryCompoundOp() (ast.SetOp, bool) {
	switch p.cur.Type {
	case token.UNION:
		p.advance()
		if p.curIs(token.ALL) {
			p.advance()
			return ast.SetUnionAll, true
		}
		return ast.SetUnion, true
	case token.INTERSECT:
		p.advance()
		return ast.SetIntersect, true
	case token.EXCEPT:
		p.advance()
		return ast.SetExcept, true
	}
	return 0, false
}

// parseSelectCore parses one select-core: a SELECT body or a VALUES list.
func (p *Parser) parseSelectCore() ast.SelectCore {
	if p.curIs(token.VALUES) {
		return p.parseValuesCore()
	}
	start := p.cur.StartPos
	if !p.expect(token.SELECT) {
		return nil
	}
	body := &ast.SelectBody{StartPos: start}
	if p.curIs(token.DISTINCT) {
		body.Distinct = true
		p.advance()
	} else if p.curIs(token.ALL) {
		body.All = true
		p.advance()
	}
	body.Columns = p.parseSelectExprList()
	if p.curIs(token.FROM) {
		p.advance()
		body.From = p.parseFromClause()
	}
	if p.curIs(token.WHERE) {
		p.advance()
		body.Where = p.parseExpr(precNone)
	}
	if p.curIs(token.GROUP) {
		p.advance()
		p.expect(token.BY)
		body.GroupBy = p.parseExprList()
		if p.curIs(token.HAVING) {
			p.advance()
			body.Having = p.parseExpr(precNone)
		}
	}
	if p.curIs(token.WINDOW) {
		body.Windows = p.parseWindowClause()
	}
	body.EndPos = p.lastEnd
	return body
}

func (p *Parser) parseValuesCore() ast.SelectCore {
	start := p.cur.StartPos
	p.advance() // VALUES
	core := &ast.ValuesCore{StartPos: start}
	for {
		row := p.parseValuesRow()
		if row == nil {
			break
		}
		core.Rows = append(core.Rows, row)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	core.EndPos = p.lastEnd
	return core
}

func (p *Parser) parseValuesRow() []ast.Expr {
	if !p.expect(token.LPAREN) {
		return nil
	}
	var row []ast.Expr
	for {
		e := p.parseExpr(precNone)
		if e == nil {
			break
		}
		row = append(row, e)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return row
}

// parseSelectExprList parses a result-column list, shared by SELECT and
// RETURNING: "*", "table.*", or "expr [AS? alias]".
func (p *Parser) parseSelectExprList() []ast.SelectExpr {
	var exprs []ast.SelectExpr
	for {
		e := p.parseSelectExpr()
		if e == nil {
			break
		}
		exprs = append(exprs, e)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return exprs
}

func (p *Parser) parseSelectExpr() ast.SelectExpr {
	start := p.cur.StartPos
	if p.curIs(token.ASTERISK) {
		p.advance()
		return &ast.StarExpr{StartPos: start, EndPos: p.lastEnd}
	}
	if p.curIsIdent() && p.peekIs(token.DOT) && p.peekAt(2).Type == token.ASTERISK {
		table := p.curIdentValue()
		p.advance()
		p.advance()
		p.advance()
		return &ast.StarExpr{StartPos: start, EndPos: p.lastEnd, Table: table}
	}
	expr := p.parseExpr(precNone)
	if expr == nil {
		return nil
	}
	alias := ""
	if p.curIs(token.AS) {
		p.advance()
		if !p.curIsIdent() {
			p.errorf(p.cur.StartPos, p.cur.EndPos, "expected alias after AS, got %s", p.describeCur())
		} else {
			alias = p.curIdentValue()
			p.advance()
		}
	} else if p.curIsIdent() {
		alias = p.curIdentValue()
		p.advance()
	}
	return &ast.AliasedExpr{StartPos: start, EndPos: p.lastEnd, Expr: expr, Alias: alias}
}

// parseFromClause parses the comma-separated list of join trees, folding
// left-to-right: comma is just another join operator (a cross join) at the
// same level as the explicit JOIN forms.
func (p *Parser) parseFromClause() ast.TableExpr {
	left := p.parseTablePrimary()
	if left == nil {
		return nil
	}
	for {
		joinType, natural, ok := p.checkJoinKeyword()
		if !ok {
			break
		}
		j := &ast.JoinExpr{StartPos: left.Pos(), Left: left, Type: joinType, Natural: natural}
		p.consumeJoinKeywords()
		j.Right = p.parseTablePrimary()
		if joinType != ast.JoinCross && !natural {
			if p.curIs(token.ON) {
				p.advance()
				j.On = p.parseExpr(precNone)
			} else if p.curIs(token.USING) {
				j.Using = p.parseNameList()
			}
		}
		j.EndPos = p.lastEnd
		left = j
	}
	return left
}

func (p *Parser) checkJoinKeyword() (ast.JoinType, bool, bool) {
	if p.curIs(token.COMMA) {
		return ast.JoinCross, false, true
	}
	natural := p.curIs(token.NATURAL)
	t := p.cur.Type
	if natural {
		t = p.peek().Type
	}
	switch t {
	case token.JOIN, token.INNER:
		return ast.JoinInner, natural, true
	case token.CROSS:
		return ast.JoinCross, natural, true
	case token.LEFT:
		return ast.JoinLeft, natural, true
	case token.RIGHT:
		return ast.JoinRight, natural, true
	case token.FULL:
		return ast.JoinFull, natural, true
	}
	return 0, false, false
}

func (p *Parser) consumeJoinKeywords() {
	if p.curIs(token.COMMA) {
		p.advance()
		return
	}
	if p.curIs(token.NATURAL) {
		p.advance()
	}
	switch p.cur.Type {
	case token.CROSS, token.INNER:
		p.advance()
	case token.LEFT, token.RIGHT, token.FULL:
		p.advance()
		if p.curIs(token.OUTER) {
			p.advance()
		}
	}
	p.expect(token.JOIN)
}

// parseTablePrimary parses one table reference: a parenthesized join tree or
// subquery, a table-valued function, or [schema.]name, each with an optional
// alias and (for plain table names) an INDEXED BY/NOT INDEXED hint.
func (p *Parser) parseTablePrimary() ast.TableExpr {
	if p.curIs(token.LPAREN) {
		start := p.cur.StartPos
		p.advance()
		if p.curIs(token.SELECT) || p.curIs(token.VALUES) || p.curIs(token.WITH) {
			sel := p.parseParenSelect()
			p.expect(token.RPAREN)
			sub := &ast.Subquery{StartPos: start, EndPos: p.lastEnd, Select: sel}
			return p.parseTableAliasTail(sub)
		}
		inner := p.parseFromClause()
		p.expect(token.RPAREN)
		pt := &ast.ParenTableExpr{StartPos: start, EndPos: p.lastEnd, Expr: inner}
		return p.parseTableAliasTail(pt)
	}
	if !p.curIsIdent() {
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected table name or subquery, got %s", p.describeCur())
		return nil
	}
	start := p.cur.StartPos
	first := p.curIdentValue()
	p.advance()
	if p.curIs(token.DOT) {
		p.advance()
		if !p.curIsIdent() {
			p.errorf(p.cur.StartPos, p.cur.EndPos, "expected name after '.', got %s", p.describeCur())
			return nil
		}
		second := p.curIdentValue()
		p.advance()
		tn := &ast.TableName{StartPos: start, EndPos: p.lastEnd, Schema: first, Name: second}
		return p.parseTableAliasTail(tn)
	}
	if p.curIs(token.LPAREN) {
		p.advance()
		f := &ast.TableValuedFunc{StartPos: start, Name: first}
		if !p.curIs(token.RPAREN) {
			for {
				arg := p.parseExpr(precNone)
				if arg == nil {
					break
				}
				f.Args = append(f.Args, arg)
				if p.curIs(token.COMMA) {
					p.advance()
					continue
				}
				break
			}
		}
		p.expect(token.RPAREN)
		f.EndPos = p.lastEnd
		return p.parseTableAliasTail(f)
	}
	tn := &ast.TableName{StartPos: start, EndPos: p.lastEnd, Name: first}
	return p.parseTableAliasTail(tn)
}

func (p *Parser) parseTableAliasTail(expr ast.TableExpr) ast.TableExpr {
	alias := ""
	if p.curIs(token.AS) {
		p.advance()
		if !p.curIsIdent() {
			p.errorf(p.cur.StartPos, p.cur.EndPos, "expected alias after AS, got %s", p.describeCur())
		} else {
			alias = p.curIdentValue()
			p.advance()
		}
	} else if p.curIsIdent() {
		alias = p.curIdentValue()
		p.advance()
	}
	var indexed *ast.IndexedClause
	if p.curIs(token.INDEXED) {
		p.advance()
		p.expect(token.BY)
		name := ""
		if p.curIsIdent() {
			name = p.curIdentValue()
			p.advance()
		}
		indexed = &ast.IndexedClause{Name: name}
	} else if p.curIs(token.NOT) && p.peekIs(token.INDEXED) {
		p.advance()
		p.advance()
		indexed = &ast.IndexedClause{Not: true}
	}
	if alias == "" && indexed == nil {
		return expr
	}
	return &ast.AliasedTableExpr{StartPos: expr.Pos(), EndPos: p.lastEnd, Expr: expr, Alias: alias, Indexed: indexed}
}

// parseExprList parses a comma-separated list of plain expressions, used by
// GROUP BY and PARTITION BY.
func (p *Parser) parseExprList() []ast.Expr {
	var list []ast.Expr
	for {
		e := p.parseExpr(precNone)
		if e == nil {
			break
		}
		list = append(list, e)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return list
}

// parseOrderByList parses "ORDER BY term, term, ..."; the caller has only
// verified cur is ORDER, not consumed it.
func (p *Parser) parseOrderByList() []*ast.OrderByExpr {
	p.advance() // ORDER
	if !p.expect(token.BY) {
		return nil
	}
	var items []*ast.OrderByExpr
	for {
		item := p.parseOrderByTerm()
		if item == nil {
			break
		}
		items = append(items, item)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return items
}

func (p *Parser) parseOrderByTerm() *ast.OrderByExpr {
	start := p.cur.StartPos
	expr := p.parseExpr(precNone)
	if expr == nil {
		return nil
	}
	item := &ast.OrderByExpr{StartPos: start, Expr: expr}
	if p.curIs(token.ASC) {
		p.advance()
	} else if p.curIs(token.DESC) {
		item.Desc = true
		p.advance()
	}
	if p.curIs(token.NULLS) {
		p.advance()
		if p.curIs(token.FIRST) {
			t := true
			item.NullsFirst = &t
			p.advance()
		} else if p.curIs(token.LAST) {
			f := false
			item.NullsFirst = &f
			p.advance()
		}
	}
	item.EndPos = p.lastEnd
	return item
}

// parseLimit parses "LIMIT expr [(OFFSET|,) expr]"; the caller has only
// verified cur is LIMIT, not consumed it.
func (p *Parser) parseLimit() *ast.Limit {
	start := p.cur.StartPos
	p.advance() // LIMIT
	l := &ast.Limit{StartPos: start}
	l.Count = p.parseExpr(precNone)
	if p.curIs(token.OFFSET) {
		p.advance()
		l.Offset = p.parseExpr(precNone)
	} else if p.curIs(token.COMMA) {
		p.advance()
		l.Offset = l.Count
		l.Count = p.parseExpr(precNone)
	}
	l.EndPos = p.lastEnd
	return l
}

// parseWindowClause parses "WINDOW name AS (...), ...".
func (p *Parser) parseWindowClause() []*ast.WindowDef {
	p.advance() // WINDOW
	var defs []*ast.WindowDef
	for {
		if !p.curIsIdent() {
			break
		}
		start := p.cur.StartPos
		name := p.curIdentValue()
		p.advance()
		if !p.expect(token.AS) {
			break
		}
		if !p.expect(token.LPAREN) {
			break
		}
		spec := p.parseWindowSpecBody(start)
		p.expect(token.RPAREN)
		defs = append(defs, &ast.WindowDef{StartPos: start, EndPos: p.lastEnd, Name: name, Spec: spec})
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return defs
}

// parseWindowSpecBody parses a window-definition body after an already
// consumed '(': an optional base-window name, PARTITION BY, ORDER BY, and a
// frame spec, in that order.
func (p *Parser) parseWindowSpecBody(start token.Pos) *ast.WindowSpec {
	w := &ast.WindowSpec{StartPos: start}
	if p.curIsIdent() {
		w.BaseWindow = p.curIdentValue()
		p.advance()
	}
	if p.curIs(token.PARTITION) {
		p.advance()
		p.expect(token.BY)
		w.PartitionBy = p.parseExprList()
	}
	if p.curIs(token.ORDER) {
		w.OrderBy = p.parseOrderByList()
	}
	if p.curIs(token.ROWS) || p.curIs(token.RANGE) || p.curIs(token.GROUPS) {
		w.Frame = p.parseFrameSpec()
	}
	w.EndPos = p.lastEnd
	return w
}

func (p *Parser) parseFrameSpec() *ast.FrameSpec {
	start := p.cur.StartPos
	var unit ast.FrameUnit
	switch p.cur.Type {
	case token.ROWS:
		unit = ast.FrameRows
	case token.RANGE:
		unit = ast.FrameRange
	case token.GROUPS:
		unit = ast.FrameGroups
	}
	p.advance()
	f := &ast.FrameSpec{StartPos: start, Unit: unit}
	if p.curIs(token.BETWEEN) {
		p.advance()
		f.Start = p.parseFrameBound()
		p.expect(token.AND)
		f.End = p.parseFrameBound()
	} else {
		f.Start = p.parseFrameBound()
		f.End = &ast.FrameBound{Type: ast.BoundCurrentRow}
	}
	if f.Start != nil && f.Start.Type == ast.BoundUnboundedFollowing {
		p.errorf(f.Start.StartPos, f.Start.EndPos, "UNBOUNDED FOLLOWING is not a valid frame start")
	}
	if f.End != nil && f.End.Type == ast.BoundUnboundedPreceding {
		p.errorf(f.End.StartPos, f.End.EndPos, "UNBOUNDED PRECEDING is not a valid frame end")
	}
	if p.curIs(token.EXCLUDE) {
		p.advance()
		switch {
		case p.curIs(token.NO):
			p.advance()
			p.expect(token.OTHERS)
			f.Exclude = ast.ExcludeNoOthers
		case p.curIs(token.CURRENT):
			p.advance()
			p.expect(token.ROW)
			f.Exclude = ast.ExcludeCurrentRow
		case p.curIs(token.GROUP):
			p.advance()
			f.Exclude = ast.ExcludeGroup
		case p.curIs(token.TIES):
			p.advance()
			f.Exclude = ast.ExcludeTies
		default:
			p.errorf(p.cur.StartPos, p.cur.EndPos, "expected NO OTHERS, CURRENT ROW, GROUP or TIES, got %s", p.describeCur())
		}
	}
	f.EndPos = p.lastEnd
	return f
}

func (p *Parser) parseFrameBound() *ast.FrameBound {
	start := p.cur.StartPos
	if p.curIs(token.UNBOUNDED) {
		p.advance()
		if p.curIs(token.PRECEDING) {
			p.advance()
			return &ast.FrameBound{StartPos: start, EndPos: p.lastEnd, Type: ast.BoundUnboundedPreceding}
		}
		if p.curIs(token.FOLLOWING) {
			p.advance()
			return &ast.FrameBound{StartPos: start, EndPos: p.lastEnd, Type: ast.BoundUnboundedFollowing}
		}
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected PRECEDING or FOLLOWING, got %s", p.describeCur())
		return &ast.FrameBound{StartPos: start, EndPos: p.lastEnd, Type: ast.BoundUnboundedPreceding}
	}
	if p.curIs(token.CURRENT) {
		p.advance()
		p.expect(token.ROW)
		return &ast.FrameBound{StartPos: start, EndPos: p.lastEnd, Type: ast.BoundCurrentRow}
	}
	expr := p.parseExpr(precAdditive)
	if p.curIs(token.PRECEDING) {
		p.advance()
		return &ast.FrameBound{StartPos: start, EndPos: p.lastEnd, Type: ast.BoundPreceding, Expr: expr}
	}
	if p.curIs(token.FOLLOWING) {
		p.advance()
		return &ast.FrameBound{StartPos: start, EndPos: p.lastEnd, Type: ast.BoundFollowing, Expr: expr}
	}
	p.errorf(p.cur.StartPos, p.cur.EndPos, "expected PRECEDING or FOLLOWING, got %s", p.describeCur())
	return &ast.FrameBound{StartPos: start, EndPos: p.lastEnd, Type: ast.BoundPreceding, Expr: expr}
}
