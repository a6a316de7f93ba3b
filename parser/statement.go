package parser

import (
	"github.com/freeeve/sqlitelang/ast"
	"github.com/freeeve/sqlitelang/token"
)

// parseStatement dispatches on the current token to one of the top-level
// statement grammars. A nil return with no new diagnostic means the current
// token was ILLEGAL (already diagnosed by the lexer); the caller skips it.
func (p *Parser) parseStatement() ast.Statement {
	if p.curIs(token.ILLEGAL) {
		// The lexer already recorded a diagnostic for this token (e.g. an
		// unterminated string literal); raising a second one here would
		// double-report the same failure. Just consume it and move on.
		p.advance()
		return nil
	}
	if p.curIs(token.EXPLAIN) {
		return p.parseExplain()
	}
	if p.curIs(token.WITH) {
		with := p.parseWithClause()
		if with == nil {
			return nil
		}
		return p.parseDMLWithCTE(with)
	}
	switch p.cur.Type {
	case token.SELECT, token.VALUES:
		return p.parseSelect(nil)
	case token.INSERT, token.REPLACE:
		return p.parseInsert(nil)
	case token.UPDATE:
		return p.parseUpdate(nil)
	case token.DELETE:
		return p.parseDelete(nil)
	case token.CREATE:
		return p.parseCreate()
	case token.ALTER:
		return p.parseAlterTable()
	case token.DROP:
		return p.parseDrop()
	case token.BEGIN:
		return p.parseBegin()
	case token.COMMIT, token.END:
		return p.parseCommit()
	case token.ROLLBACK:
		return p.parseRollback()
	case token.SAVEPOINT:
		return p.parseSavepoint()
	case token.RELEASE:
		return p.parseRelease()
	case token.ATTACH:
		return p.parseAttach()
	case token.DETACH:
		return p.parseDetach()
	case token.ANALYZE:
		return p.parseAnalyze()
	case token.VACUUM:
		return p.parseVacuum()
	case token.REINDEX:
		return p.parseReindex()
	case token.PRAGMA:
		return p.parsePragma()
	default:
		p.errorf(p.cur.StartPos, p.cur.EndPos, "unexpected token %s", p.describeCur())
		return nil
	}
}

// parseDMLWithCTE dispatches the statement following a WITH clause to the
// one of SELECT, INSERT, UPDATE or DELETE that may carry one.
func (p *Parser) parseDMLWithCTE(with *ast.WithClause) ast.Statement {
	switch p.cur.Type {
	case token.SELECT, token.VALUES:
		return p.parseSelect(with)
	case token.INSERT, token.REPLACE:
		return p.parseInsert(with)
	case token.UPDATE:
		return p.parseUpdate(with)
	case token.DELETE:
		return p.parseDelete(with)
	default:
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected SELECT, INSERT, UPDATE or DELETE after WITH clause, got %s", p.describeCur())
		return nil
	}
}

func (p *Parser) parseExplain() ast.Statement {
	start := p.cur.StartPos
	p.advance() // EXPLAIN
	queryPlan := false
	if p.curIs(token.QUERY) {
		p.advance()
		if !p.expect(token.PLAN) {
			return nil
		}
		queryPlan = true
	}
	stmt := p.parseStatement()
	if stmt == nil {
		return nil
	}
	return &ast.ExplainStmt{StartPos: start, EndPos: stmt.End(), QueryPlan: queryPlan, Stmt: stmt}
}

// parseWithClause parses "WITH [RECURSIVE] name [(cols)] AS (select), ...".
func (p *Parser) parseWithClause() *ast.WithClause {
	start := p.cur.StartPos
	p.advance() // WITH
	recursive := false
	if p.curIs(token.RECURSIVE) {
		recursive = true
		p.advance()
	}
	w := &ast.WithClause{StartPos: start, Recursive: recursive}
	for {
		cte := p.parseCte()
		if cte == nil {
			return nil
		}
		w.Ctes = append(w.Ctes, cte)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	w.EndPos = p.lastEnd
	return w
}

func (p *Parser) parseCte() *ast.Cte {
	start := p.cur.StartPos
	if !p.curIsIdent() {
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected CTE name, got %s", p.describeCur())
		return nil
	}
	name := p.curIdentValue()
	p.advance()
	var cols []string
	if p.curIs(token.LPAREN) {
		cols = p.parseNameList()
	}
	if !p.expect(token.AS) {
		return nil
	}
	if p.curIs(token.MATERIALIZED) {
		p.advance()
	} else if p.curIs(token.NOT) && p.peekIs(token.MATERIALIZED) {
		p.advance()
		p.advance()
	}
	if !p.expect(token.LPAREN) {
		return nil
	}
	query := p.parseSelectBody(nil)
	if query == nil {
		return nil
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	return &ast.Cte{StartPos: start, EndPos: p.lastEnd, Name: name, Columns: cols, Query: query}
}

func (p *Parser) parseBegin() ast.Statement {
	start := p.cur.StartPos
	p.advance() // BEGIN
	mode := ast.BeginPlain
	switch p.cur.Type {
	case token.DEFERRED:
		mode = ast.BeginDeferred
		p.advance()
	case token.IMMEDIATE:
		mode = ast.BeginImmediate
		p.advance()
	case token.EXCLUSIVE:
		mode = ast.BeginExclusive
		p.advance()
	}
	if p.curIs(token.TRANSACTION) {
		p.advance()
	}
	return &ast.BeginStmt{StartPos: start, EndPos: p.lastEnd, Mode: mode}
}

func (p *Parser) parseCommit() ast.Statement {
	start := p.cur.StartPos
	p.advance() // COMMIT or END
	if p.curIs(token.TRANSACTION) {
		p.advance()
	}
	return &ast.CommitStmt{StartPos: start, EndPos: p.lastEnd}
}

func (p *Parser) parseRollback() ast.Statement {
	start := p.cur.StartPos
	p.advance() // ROLLBACK
	if p.curIs(token.TRANSACTION) {
		p.advance()
	}
	to := ""
	if p.curIs(token.TO) {
		p.advance()
		if p.curIs(token.SAVEPOINT) {
			p.advance()
		}
		if !p.curIsIdent() {
			p.errorf(p.cur.StartPos, p.cur.EndPos, "expected savepoint name, got %s", p.describeCur())
			return nil
		}
		to = p.curIdentValue()
		p.advance()
	}
	return &ast.RollbackStmt{StartPos: start, EndPos: p.lastEnd, To: to}
}

func (p *Parser) parseSavepoint() ast.Statement {
	start := p.cur.StartPos
	p.advance() // SAVEPOINT
	if !p.curIsIdent() {
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected savepoint name, got %s", p.describeCur())
		return nil
	}
	name := p.curIdentValue()
	p.advance()
	return &ast.SavepointStmt{StartPos: start, EndPos: p.lastEnd, Name: name}
}

func (p *Parser) parseRelease() ast.Statement {
	start := p.cur.StartPos
	p.advance() // RELEASE
	if p.curIs(token.SAVEPOINT) {
		p.advance()
	}
	if !p.curIsIdent() {
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected savepoint name, got %s", p.describeCur())
		return nil
	}
	name := p.curIdentValue()
	p.advance()
	return &ast.ReleaseStmt{StartPos: start, EndPos: p.lastEnd, Name: name}
}

func (p *Parser) parseAttach() ast.Statement {
	start := p.cur.StartPos
	p.advance() // ATTACH
	if p.curIs(token.DATABASE) {
		p.advance()
	}
	expr := p.parseExpr(precNone)
	if expr == nil {
		return nil
	}
	if !p.expect(token.AS) {
		return nil
	}
	if !p.curIsIdent() {
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected database name, got %s", p.describeCur())
		return nil
	}
	name := p.curIdentValue()
	p.advance()
	return &ast.AttachStmt{StartPos: start, EndPos: p.lastEnd, Expr: expr, Name: name}
}

func (p *Parser) parseDetach() ast.Statement {
	start := p.cur.StartPos
	p.advance() // DETACH
	if p.curIs(token.DATABASE) {
		p.advance()
	}
	if !p.curIsIdent() {
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected database name, got %s", p.describeCur())
		return nil
	}
	name := p.curIdentValue()
	p.advance()
	return &ast.DetachStmt{StartPos: start, EndPos: p.lastEnd, Name: name}
}

// parseSchemaQualifiedOptional parses an optional bare "name" or
// "schema.name" tail shared by ANALYZE and REINDEX.
func (p *Parser) parseSchemaQualifiedOptional() (schema, name string) {
	if !p.curIsIdent() {
		return "", ""
	}
	first := p.curIdentValue()
	p.advance()
	if p.curIs(token.DOT) {
		p.advance()
		if !p.curIsIdent() {
			p.errorf(p.cur.StartPos, p.cur.EndPos, "expected name after '.', got %s", p.describeCur())
			return "", ""
		}
		second := p.curIdentValue()
		p.advance()
		return first, second
	}
	return "", first
}

func (p *Parser) parseAnalyze() ast.Statement {
	start := p.cur.StartPos
	p.advance() // ANALYZE
	schema, name := p.parseSchemaQualifiedOptional()
	return &ast.AnalyzeStmt{StartPos: start, EndPos: p.lastEnd, Schema: schema, Name: name}
}

func (p *Parser) parseReindex() ast.Statement {
	start := p.cur.StartPos
	p.advance() // REINDEX
	schema, name := p.parseSchemaQualifiedOptional()
	return &ast.ReindexStmt{StartPos: start, EndPos: p.lastEnd, Schema: schema, Name: name}
}

func (p *Parser) parseVacuum() ast.Statement {
	start := p.cur.StartPos
	p.advance() // VACUUM
	name := ""
	if p.curIsIdent() {
		name = p.curIdentValue()
		p.advance()
	}
	into := ""
	if p.curIs(token.INTO) {
		p.advance()
		if !p.curIs(token.STRING) {
			p.errorf(p.cur.StartPos, p.cur.EndPos, "expected filename string, got %s", p.describeCur())
			return nil
		}
		into = p.cur.Value
		p.advance()
	}
	return &ast.VacuumStmt{StartPos: start, EndPos: p.lastEnd, Name: name, Into: into}
}

func (p *Parser) parsePragma() ast.Statement {
	start := p.cur.StartPos
	p.advance() // PRAGMA
	schema, name := p.parseSchemaQualifiedOptional()
	if name == "" {
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected pragma name, got %s", p.describeCur())
		return nil
	}
	stmt := &ast.PragmaStmt{StartPos: start, Schema: schema, Name: name}
	if p.curIs(token.LPAREN) {
		p.advance()
		stmt.Value = p.parseExpr(precNone)
		stmt.IsCall = true
		p.expect(token.RPAREN)
	} else if p.curIs(token.EQ) {
		p.advance()
		stmt.Value = p.parseExpr(precNone)
	}
	stmt.EndPos = p.lastEnd
	return stmt
}
