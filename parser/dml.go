package parser

import (
	"github.com/freeeve/sqlitelang/ast"
	"github.com/freeeve/sqlitelang/token"
)

var conflictActionByToken = map[token.Token]ast.ConflictAction{
	token.ROLLBACK: ast.ConflictRollback,
	token.ABORT:    ast.ConflictAbort,
	token.FAIL:     ast.ConflictFail,
	token.IGNORE:   ast.ConflictIgnore,
	token.REPLACE:  ast.ConflictReplace,
}

// parseOrAction parses the optional "OR action" tail on INSERT/UPDATE.
func (p *Parser) parseOrAction() ast.ConflictAction {
	if !p.curIs(token.OR) {
		return ast.ConflictNone
	}
	p.advance()
	action, ok := conflictActionByToken[p.cur.Type]
	if !ok {
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected conflict action, got %s", p.describeCur())
		return ast.ConflictNone
	}
	p.advance()
	return action
}

// parseInsert parses "(INSERT [OR action] | REPLACE) INTO table [AS alias]
// [(cols)] (VALUES rows | select | DEFAULT VALUES) [upsert-clause]*
// [RETURNING cols]". with is the already-parsed WITH clause, if any.
func (p *Parser) parseInsert(with *ast.WithClause) ast.Statement {
	start := p.cur.StartPos
	if with != nil {
		start = with.StartPos
	}
	stmt := &ast.InsertStmt{StartPos: start, With: with}
	if p.curIs(token.REPLACE) {
		stmt.Replace = true
		p.advance()
	} else {
		p.advance() // INSERT
		stmt.OrAction = p.parseOrAction()
	}
	if !p.expect(token.INTO) {
		return nil
	}
	stmt.Table = p.parseTableName()
	if p.curIs(token.AS) {
		p.advance()
		if p.curIsIdent() {
			stmt.Alias = p.curIdentValue()
			p.advance()
		}
	} else if p.curIsIdent() {
		stmt.Alias = p.curIdentValue()
		p.advance()
	}
	if p.curIs(token.LPAREN) {
		stmt.Columns = p.parseNameList()
	}
	switch {
	case p.curIs(token.VALUES):
		p.advance()
		for {
			row := p.parseValuesRow()
			if row == nil {
				break
			}
			stmt.Values = append(stmt.Values, row)
			if p.curIs(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	case p.curIs(token.SELECT) || p.curIs(token.WITH):
		var selWith *ast.WithClause
		if p.curIs(token.WITH) {
			selWith = p.parseWithClause()
			if selWith == nil {
				return nil
			}
		}
		stmt.Select = p.parseSelectBody(selWith)
	case p.curIs(token.DEFAULT):
		p.advance()
		p.expect(token.VALUES)
		stmt.DefaultValues = true
	default:
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected VALUES, SELECT or DEFAULT VALUES, got %s", p.describeCur())
	}
	for p.curIs(token.ON) {
		up := p.parseUpsertClause()
		if up == nil {
			break
		}
		stmt.Upserts = append(stmt.Upserts, up)
	}
	if p.curIs(token.RETURNING) {
		stmt.Returning = p.parseReturningClause()
	}
	stmt.EndPos = p.lastEnd
	return stmt
}

// parseUpsertClause parses one "ON CONFLICT [(target-cols [WHERE expr])] DO
// (NOTHING | UPDATE SET assignments [WHERE expr])" clause. INSERT allows a
// repeatable, non-empty list of these.
func (p *Parser) parseUpsertClause() *ast.UpsertClause {
	start := p.cur.StartPos
	p.advance() // ON
	if !p.expect(token.CONFLICT) {
		return nil
	}
	u := &ast.UpsertClause{StartPos: start}
	if p.curIs(token.LPAREN) {
		u.TargetColumns = p.parseIndexedColumnNames()
		if p.curIs(token.WHERE) {
			p.advance()
			u.TargetWhere = p.parseExpr(precNone)
		}
	}
	if !p.expect(token.DO) {
		return nil
	}
	if p.curIs(token.NOTHING) {
		actionStart := p.cur.StartPos
		p.advance()
		u.Action = &ast.DoNothingAction{StartPos: actionStart, EndPos: p.lastEnd}
	} else if p.curIs(token.UPDATE) {
		actionStart := p.cur.StartPos
		p.advance()
		if !p.expect(token.SET) {
			return nil
		}
		action := &ast.DoUpdateAction{StartPos: actionStart}
		action.Assignments = p.parseAssignmentList()
		if p.curIs(token.WHERE) {
			p.advance()
			action.Where = p.parseExpr(precNone)
		}
		action.EndPos = p.lastEnd
		u.Action = action
	} else {
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected NOTHING or UPDATE, got %s", p.describeCur())
	}
	u.EndPos = p.lastEnd
	return u
}

// parseIndexedColumnNames parses "(name, ...)" — the target-column list of an
// ON CONFLICT clause, which is a plain name list (no COLLATE/ASC/DESC).
func (p *Parser) parseIndexedColumnNames() []string {
	return p.parseNameList()
}

// parseAssignmentList parses the comma-separated "col = expr" or "(col,
// ...) = expr" SET targets shared by UPSERT and UPDATE.
func (p *Parser) parseAssignmentList() []*ast.Assignment {
	var list []*ast.Assignment
	for {
		a := p.parseAssignment()
		if a == nil {
			break
		}
		list = append(list, a)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return list
}

func (p *Parser) parseAssignment() *ast.Assignment {
	start := p.cur.StartPos
	var cols []string
	if p.curIs(token.LPAREN) {
		cols = p.parseNameList()
	} else if p.curIsIdent() {
		cols = []string{p.curIdentValue()}
		p.advance()
	} else {
		return nil
	}
	if !p.expect(token.EQ) {
		return nil
	}
	expr := p.parseExpr(precNone)
	return &ast.Assignment{StartPos: start, EndPos: p.lastEnd, Columns: cols, Expr: expr}
}

// parseReturningClause parses "RETURNING cols", reusing the result-column
// grammar. The caller has only verified cur is RETURNING, not consumed it.
func (p *Parser) parseReturningClause() *ast.ReturningClause {
	start := p.cur.StartPos
	p.advance() // RETURNING
	r := &ast.ReturningClause{StartPos: start, Columns: p.parseSelectExprList()}
	r.EndPos = p.lastEnd
	return r
}

// parseUpdate parses "UPDATE [OR action] qualified-table SET assignments
// [FROM join-tree] [WHERE expr] [ORDER BY ...] [LIMIT ...] [RETURNING cols]".
func (p *Parser) parseUpdate(with *ast.WithClause) ast.Statement {
	start := p.cur.StartPos
	if with != nil {
		start = with.StartPos
	}
	p.advance() // UPDATE
	stmt := &ast.UpdateStmt{StartPos: start, With: with}
	stmt.OrAction = p.parseOrAction()
	table := p.parseTablePrimary()
	if table == nil {
		return nil
	}
	aliased, ok := table.(*ast.AliasedTableExpr)
	if !ok {
		aliased = &ast.AliasedTableExpr{StartPos: table.Pos(), EndPos: table.End(), Expr: table}
	}
	stmt.Table = aliased
	if !p.expect(token.SET) {
		return nil
	}
	stmt.Set = p.parseAssignmentList()
	if p.curIs(token.FROM) {
		p.advance()
		stmt.From = p.parseFromClause()
	}
	if p.curIs(token.WHERE) {
		p.advance()
		stmt.Where = p.parseExpr(precNone)
	}
	if p.curIs(token.ORDER) {
		stmt.OrderBy = p.parseOrderByList()
	}
	if p.curIs(token.LIMIT) {
		stmt.Limit = p.parseLimit()
	}
	if p.curIs(token.RETURNING) {
		stmt.Returning = p.parseReturningClause()
	}
	stmt.EndPos = p.lastEnd
	return stmt
}

// parseDelete parses "DELETE FROM qualified-table [WHERE expr] [ORDER BY ...]
// [LIMIT ...] [RETURNING cols]".
func (p *Parser) parseDelete(with *ast.WithClause) ast.Statement {
	start := p.cur.StartPos
	if with != nil {
		start = with.StartPos
	}
	p.advance() // DELETE
	if !p.expect(token.FROM) {
		return nil
	}
	stmt := &ast.DeleteStmt{StartPos: start, With: with}
	table := p.parseTablePrimary()
	if table == nil {
		return nil
	}
	aliased, ok := table.(*ast.AliasedTableExpr)
	if !ok {
		aliased = &ast.AliasedTableExpr{StartPos: table.Pos(), EndPos: table.End(), Expr: table}
	}
	stmt.Table = aliased
	if p.curIs(token.WHERE) {
		p.advance()
		stmt.Where = p.parseExpr(precNone)
	}
	if p.curIs(token.ORDER) {
		stmt.OrderBy = p.parseOrderByList()
	}
	if p.curIs(token.LIMIT) {
		stmt.Limit = p.parseLimit()
	}
	if p.curIs(token.RETURNING) {
		stmt.Returning = p.parseReturningClause()
	}
	stmt.EndPos = p.lastEnd
	return stmt
}
