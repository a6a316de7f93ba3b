package parser

import (
	"strings"

	"github.com/freeeve/sqlitelang/ast"
	"github.com/freeeve/sqlitelang/token"
)

// parseCreate dispatches CREATE to one of its five object kinds once the
// optional TEMP/TEMPORARY or UNIQUE modifier (whichever the following
// keyword admits) has been consumed.
func (p *Parser) parseCreate() ast.Statement {
	start := p.cur.StartPos
	p.advance() // CREATE
	temp := false
	if p.curIs(token.TEMP) || p.curIs(token.TEMPORARY) {
		temp = true
		p.advance()
	}
	if p.curIs(token.UNIQUE) {
		p.advance()
		if !p.expect(token.INDEX) {
			return nil
		}
		return p.parseCreateIndexBody(start, true)
	}
	switch p.cur.Type {
	case token.TABLE:
		p.advance()
		return p.parseCreateTableBody(start, temp)
	case token.INDEX:
		p.advance()
		return p.parseCreateIndexBody(start, false)
	case token.VIEW:
		p.advance()
		return p.parseCreateViewBody(start, temp)
	case token.TRIGGER:
		p.advance()
		return p.parseCreateTriggerBody(start, temp)
	case token.VIRTUAL:
		p.advance()
		return p.parseCreateVirtualTableBody(start)
	default:
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected TABLE, INDEX, VIEW, TRIGGER or VIRTUAL TABLE, got %s", p.describeCur())
		return nil
	}
}

func (p *Parser) parseIfNotExists() bool {
	if !p.curIs(token.IF) {
		return false
	}
	p.advance()
	p.expect(token.NOT)
	p.expect(token.EXISTS)
	return true
}

// parseCreateTableBody parses everything after "CREATE [TEMP] TABLE": the
// "AS select" form or the column-list form, plus trailing table options.
func (p *Parser) parseCreateTableBody(start token.Pos, temp bool) ast.Statement {
	ifNotExists := p.parseIfNotExists()
	table := p.parseTableName()
	stmt := &ast.CreateTableStmt{StartPos: start, Temp: temp, IfNotExists: ifNotExists, Table: table}
	if p.curIs(token.AS) {
		p.advance()
		stmt.AsSelect = p.parseSelectBody(nil)
		stmt.EndPos = p.lastEnd
		return stmt
	}
	if !p.expect(token.LPAREN) {
		return nil
	}
	for {
		if p.curIs(token.CONSTRAINT) || p.curIs(token.PRIMARY) || p.curIs(token.UNIQUE) ||
			p.curIs(token.CHECK) || p.curIs(token.FOREIGN) {
			tc := p.parseTableConstraint()
			if tc != nil {
				stmt.TableConstraints = append(stmt.TableConstraints, tc)
			}
		} else if p.curIsIdent() {
			cd := p.parseColumnDef()
			if cd != nil {
				stmt.Columns = append(stmt.Columns, cd)
			}
		} else {
			p.errorf(p.cur.StartPos, p.cur.EndPos, "expected column or table constraint definition, got %s", p.describeCur())
			break
		}
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	stmt.Options = p.parseTableOptions()
	stmt.EndPos = p.lastEnd
	return stmt
}

// parseTableOptions parses the trailing comma-separated "WITHOUT ROWID,
// STRICT" option list. Neither keyword is among the 147 reserved words, so
// both are matched as case-insensitive identifiers except WITHOUT itself.
func (p *Parser) parseTableOptions() *ast.TableOptions {
	opts := &ast.TableOptions{}
	any := false
	for {
		switch {
		case p.curIs(token.WITHOUT):
			p.advance()
			if p.curIsIdent() && strings.EqualFold(p.curIdentValue(), "ROWID") {
				p.advance()
			} else {
				p.errorf(p.cur.StartPos, p.cur.EndPos, "expected ROWID, got %s", p.describeCur())
			}
			opts.WithoutRowid = true
			any = true
		case p.curIsIdent() && strings.EqualFold(p.curIdentValue(), "STRICT"):
			p.advance()
			opts.Strict = true
			any = true
		default:
			if !any {
				return nil
			}
			return opts
		}
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		return opts
	}
}

// parseColumnDef parses "name [typename] (column-constraint)*". The type
// name is scanned greedily as a word run; it is optional, so a bare "name
// constraint..." (no type) parses too.
func (p *Parser) parseColumnDef() *ast.ColumnDef {
	start := p.cur.StartPos
	name := p.curIdentValue()
	p.advance()
	cd := &ast.ColumnDef{StartPos: start, Name: name}
	if p.curIsIdent() {
		cd.Type = p.parseTypeName()
	}
	for {
		c := p.tryParseColumnConstraint()
		if c == nil {
			break
		}
		cd.Constraints = append(cd.Constraints, c)
	}
	cd.EndPos = p.lastEnd
	return cd
}

func (p *Parser) tryParseColumnConstraint() ast.ColumnConstraint {
	start := p.cur.StartPos
	name := ""
	if p.curIs(token.CONSTRAINT) {
		p.advance()
		if p.curIsIdent() {
			name = p.curIdentValue()
			p.advance()
		}
	}
	switch p.cur.Type {
	case token.PRIMARY:
		p.advance()
		p.expect(token.KEY)
		c := &ast.PrimaryKeyColumnConstraint{StartPos: start, Name: name}
		if p.curIs(token.ASC) {
			c.HasOrder = true
			p.advance()
		} else if p.curIs(token.DESC) {
			c.HasOrder = true
			c.Desc = true
			p.advance()
		}
		c.Conflict = p.tryParseConflictClause()
		if p.curIs(token.AUTOINCREMENT) {
			c.Autoincrement = true
			p.advance()
		}
		c.EndPos = p.lastEnd
		return c
	case token.NOT:
		p.advance()
		p.expect(token.NULL)
		c := &ast.NotNullConstraint{StartPos: start, Name: name}
		c.Conflict = p.tryParseConflictClause()
		c.EndPos = p.lastEnd
		return c
	case token.UNIQUE:
		p.advance()
		c := &ast.UniqueColumnConstraint{StartPos: start, Name: name}
		c.Conflict = p.tryParseConflictClause()
		c.EndPos = p.lastEnd
		return c
	case token.CHECK:
		p.advance()
		p.expect(token.LPAREN)
		expr := p.parseExpr(precNone)
		p.expect(token.RPAREN)
		return &ast.CheckConstraint{StartPos: start, EndPos: p.lastEnd, Name: name, Expr: expr}
	case token.DEFAULT:
		p.advance()
		var expr ast.Expr
		switch {
		case p.curIs(token.LPAREN):
			p.advance()
			expr = p.parseExpr(precNone)
			p.expect(token.RPAREN)
		case p.curIs(token.PLUS) || p.curIs(token.MINUS):
			expr = p.parseUnaryOperand()
		default:
			expr = p.parsePrimary()
		}
		return &ast.DefaultConstraint{StartPos: start, EndPos: p.lastEnd, Name: name, Expr: expr}
	case token.COLLATE:
		p.advance()
		coll := ""
		if p.curIsIdent() {
			coll = p.curIdentValue()
			p.advance()
		}
		return &ast.CollateConstraint{StartPos: start, EndPos: p.lastEnd, Name: name, Collation: coll}
	case token.REFERENCES:
		ref := p.parseForeignKeyClause()
		return &ast.ForeignKeyColumnConstraint{StartPos: start, EndPos: p.lastEnd, Name: name, Ref: ref}
	case token.GENERATED:
		p.advance()
		if p.curIs(token.ALWAYS) {
			p.advance()
		}
		return p.parseGeneratedTail(start, name)
	case token.AS:
		return p.parseGeneratedTail(start, name)
	}
	if name != "" {
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected a column constraint after CONSTRAINT %s, got %s", name, p.describeCur())
	}
	return nil
}

// parseGeneratedTail parses the shared "AS (expr) [STORED|VIRTUAL]" tail of
// both the "GENERATED ALWAYS? AS (...)" and bare "AS (...)" spellings.
func (p *Parser) parseGeneratedTail(start token.Pos, name string) ast.ColumnConstraint {
	p.expect(token.AS)
	p.expect(token.LPAREN)
	expr := p.parseExpr(precNone)
	p.expect(token.RPAREN)
	stored := false
	if p.curIsIdent() && strings.EqualFold(p.curIdentValue(), "STORED") {
		stored = true
		p.advance()
	} else if p.curIsIdent() && strings.EqualFold(p.curIdentValue(), "VIRTUAL") {
		p.advance()
	}
	return &ast.GeneratedConstraint{StartPos: start, EndPos: p.lastEnd, Name: name, Expr: expr, Stored: stored}
}

func (p *Parser) tryParseConflictClause() *ast.ConflictClause {
	if !p.curIs(token.ON) {
		return nil
	}
	start := p.cur.StartPos
	p.advance()
	if !p.expect(token.CONFLICT) {
		return nil
	}
	action, ok := conflictActionByToken[p.cur.Type]
	if !ok {
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected conflict action, got %s", p.describeCur())
		return nil
	}
	p.advance()
	return &ast.ConflictClause{StartPos: start, EndPos: p.lastEnd, Action: action}
}

// parseForeignKeyClause parses "REFERENCES name [(cols)] (ON ... | MATCH
// ...)* [[NOT] DEFERRABLE [INITIALLY ...]]", shared by column and table
// foreign-key constraints.
func (p *Parser) parseForeignKeyClause() *ast.ForeignKeyClause {
	start := p.cur.StartPos
	p.expect(token.REFERENCES)
	fk := &ast.ForeignKeyClause{StartPos: start}
	if p.curIsIdent() {
		fk.Table = p.curIdentValue()
		p.advance()
	}
	if p.curIs(token.LPAREN) {
		fk.Columns = p.parseNameList()
	}
	for {
		switch {
		case p.curIs(token.ON):
			p.advance()
			var isDelete bool
			switch {
			case p.curIs(token.DELETE):
				isDelete = true
				p.advance()
			case p.curIs(token.UPDATE):
				p.advance()
			default:
				p.errorf(p.cur.StartPos, p.cur.EndPos, "expected DELETE or UPDATE, got %s", p.describeCur())
				continue
			}
			action := p.parseRefAction()
			if isDelete {
				fk.OnDelete = &action
			} else {
				fk.OnUpdate = &action
			}
		case p.curIs(token.MATCH):
			p.advance()
			if p.curIsIdent() {
				fk.Match = p.curIdentValue()
				p.advance()
			}
		default:
			goto deferrable
		}
	}
deferrable:
	if p.curIs(token.NOT) && p.peekIs(token.DEFERRABLE) {
		p.advance()
		p.advance()
		fk.NotDeferrable = true
	} else if p.curIs(token.DEFERRABLE) {
		p.advance()
		fk.Deferrable = true
	}
	if (fk.Deferrable || fk.NotDeferrable) && p.curIs(token.INITIALLY) {
		p.advance()
		fk.HasInitially = true
		switch {
		case p.curIs(token.DEFERRED):
			fk.InitiallyDefer = true
			p.advance()
		case p.curIs(token.IMMEDIATE):
			p.advance()
		default:
			p.errorf(p.cur.StartPos, p.cur.EndPos, "expected DEFERRED or IMMEDIATE, got %s", p.describeCur())
		}
	}
	fk.EndPos = p.lastEnd
	return fk
}

func (p *Parser) parseRefAction() ast.RefAction {
	switch {
	case p.curIs(token.SET):
		p.advance()
		if p.curIs(token.NULL) {
			p.advance()
			return ast.RefActionSetNull
		}
		if p.curIs(token.DEFAULT) {
			p.advance()
			return ast.RefActionSetDefault
		}
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected NULL or DEFAULT, got %s", p.describeCur())
		return ast.RefActionSetNull
	case p.curIs(token.CASCADE):
		p.advance()
		return ast.RefActionCascade
	case p.curIs(token.RESTRICT):
		p.advance()
		return ast.RefActionRestrict
	case p.curIs(token.NO):
		p.advance()
		p.expect(token.ACTION)
		return ast.RefActionNoAction
	}
	p.errorf(p.cur.StartPos, p.cur.EndPos, "expected a foreign-key action, got %s", p.describeCur())
	return ast.RefActionNoAction
}

// parseTableConstraint parses one table-level constraint: PRIMARY KEY,
// UNIQUE, CHECK or FOREIGN KEY, each with an optional leading CONSTRAINT
// name.
func (p *Parser) parseTableConstraint() ast.TableConstraint {
	start := p.cur.StartPos
	name := ""
	if p.curIs(token.CONSTRAINT) {
		p.advance()
		if p.curIsIdent() {
			name = p.curIdentValue()
			p.advance()
		}
	}
	switch p.cur.Type {
	case token.PRIMARY:
		p.advance()
		p.expect(token.KEY)
		cols := p.parseIndexedColumnList()
		conflict := p.tryParseConflictClause()
		return &ast.TablePrimaryKeyConstraint{StartPos: start, EndPos: p.lastEnd, Name: name, Columns: cols, Conflict: conflict}
	case token.UNIQUE:
		p.advance()
		cols := p.parseIndexedColumnList()
		conflict := p.tryParseConflictClause()
		return &ast.TableUniqueConstraint{StartPos: start, EndPos: p.lastEnd, Name: name, Columns: cols, Conflict: conflict}
	case token.CHECK:
		p.advance()
		p.expect(token.LPAREN)
		expr := p.parseExpr(precNone)
		p.expect(token.RPAREN)
		return &ast.CheckConstraint{StartPos: start, EndPos: p.lastEnd, Name: name, Expr: expr}
	case token.FOREIGN:
		p.advance()
		p.expect(token.KEY)
		cols := p.parseNameList()
		ref := p.parseForeignKeyClause()
		return &ast.TableForeignKeyConstraint{StartPos: start, EndPos: p.lastEnd, Name: name, Columns: cols, Ref: ref}
	}
	p.errorf(p.cur.StartPos, p.cur.EndPos, "expected PRIMARY KEY, UNIQUE, CHECK or FOREIGN KEY, got %s", p.describeCur())
	return nil
}

// parseIndexedColumnList parses "(indexed-cols)" shared by CREATE INDEX and
// table-level PRIMARY KEY/UNIQUE constraints: each entry is an ordering term.
func (p *Parser) parseIndexedColumnList() []*ast.OrderByExpr {
	if !p.expect(token.LPAREN) {
		return nil
	}
	var cols []*ast.OrderByExpr
	for {
		item := p.parseOrderByTerm()
		if item == nil {
			break
		}
		cols = append(cols, item)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return cols
}

// parseCreateIndexBody parses everything after "CREATE [UNIQUE] INDEX".
func (p *Parser) parseCreateIndexBody(start token.Pos, unique bool) ast.Statement {
	ifNotExists := p.parseIfNotExists()
	idx := p.parseTableName()
	if !p.expect(token.ON) {
		return nil
	}
	table := p.parseTableName()
	cols := p.parseIndexedColumnList()
	stmt := &ast.CreateIndexStmt{StartPos: start, Unique: unique, IfNotExists: ifNotExists, Index: idx, Table: table, Columns: cols}
	if p.curIs(token.WHERE) {
		p.advance()
		stmt.Where = p.parseExpr(precNone)
	}
	stmt.EndPos = p.lastEnd
	return stmt
}

// parseCreateViewBody parses everything after "CREATE [TEMP] VIEW".
func (p *Parser) parseCreateViewBody(start token.Pos, temp bool) ast.Statement {
	ifNotExists := p.parseIfNotExists()
	name := p.parseTableName()
	stmt := &ast.CreateViewStmt{StartPos: start, Temp: temp, IfNotExists: ifNotExists, View: name}
	if p.curIs(token.LPAREN) {
		stmt.Columns = p.parseNameList()
	}
	if !p.expect(token.AS) {
		return nil
	}
	stmt.Select = p.parseSelectBody(nil)
	stmt.EndPos = p.lastEnd
	return stmt
}

// parseCreateTriggerBody parses everything after "CREATE [TEMP] TRIGGER".
func (p *Parser) parseCreateTriggerBody(start token.Pos, temp bool) ast.Statement {
	ifNotExists := p.parseIfNotExists()
	name := p.parseTableName()
	stmt := &ast.CreateTriggerStmt{StartPos: start, Temp: temp, IfNotExists: ifNotExists, Trigger: name}
	switch p.cur.Type {
	case token.BEFORE:
		stmt.Timing = ast.TriggerBefore
		p.advance()
	case token.AFTER:
		stmt.Timing = ast.TriggerAfter
		p.advance()
	case token.INSTEAD:
		p.advance()
		p.expect(token.OF)
		stmt.Timing = ast.TriggerInsteadOf
	}
	switch p.cur.Type {
	case token.DELETE:
		stmt.Event = ast.TriggerDelete
		p.advance()
	case token.INSERT:
		stmt.Event = ast.TriggerInsert
		p.advance()
	case token.UPDATE:
		stmt.Event = ast.TriggerUpdate
		p.advance()
		if p.curIs(token.OF) {
			p.advance()
			stmt.UpdateOfColumns = p.parseBareNameList()
		}
	default:
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected DELETE, INSERT or UPDATE, got %s", p.describeCur())
	}
	if !p.expect(token.ON) {
		return nil
	}
	stmt.Table = p.parseTableName()
	if p.curIs(token.FOR) {
		p.advance()
		p.expect(token.EACH)
		p.expect(token.ROW)
		stmt.ForEachRow = true
	}
	if p.curIs(token.WHEN) {
		p.advance()
		stmt.When = p.parseExpr(precNone)
	}
	if !p.expect(token.BEGIN) {
		return nil
	}
	for !p.curIs(token.END) && !p.curIs(token.EOF) {
		s := p.parseTriggerBodyStatement()
		if s != nil {
			stmt.Body = append(stmt.Body, s)
		}
		if !p.expect(token.SEMICOLON) {
			break
		}
	}
	p.expect(token.END)
	stmt.EndPos = p.lastEnd
	return stmt
}

// parseBareNameList parses "name, name, ..." with no enclosing parens, used
// by the trigger UPDATE OF column list.
func (p *Parser) parseBareNameList() []string {
	var names []string
	for {
		if !p.curIsIdent() {
			break
		}
		names = append(names, p.curIdentValue())
		p.advance()
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return names
}

// parseTriggerBodyStatement restricts a trigger body statement to the
// SELECT/INSERT/UPDATE/DELETE subset the data model requires.
func (p *Parser) parseTriggerBodyStatement() ast.Statement {
	var with *ast.WithClause
	if p.curIs(token.WITH) {
		with = p.parseWithClause()
		if with == nil {
			return nil
		}
	}
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
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected SELECT, INSERT, UPDATE or DELETE in trigger body, got %s", p.describeCur())
		return nil
	}
}

// parseCreateVirtualTableBody parses everything after "CREATE VIRTUAL".
func (p *Parser) parseCreateVirtualTableBody(start token.Pos) ast.Statement {
	if !p.expect(token.TABLE) {
		return nil
	}
	ifNotExists := p.parseIfNotExists()
	name := p.parseTableName()
	if !p.expect(token.USING) {
		return nil
	}
	if !p.curIsIdent() {
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected module name, got %s", p.describeCur())
		return nil
	}
	module := p.curIdentValue()
	p.advance()
	stmt := &ast.CreateVirtualTableStmt{StartPos: start, IfNotExists: ifNotExists, Table: name, Module: module}
	if p.curIs(token.LPAREN) {
		stmt.ModuleArgs = p.parseRawModuleArgs()
	}
	stmt.EndPos = p.lastEnd
	return stmt
}

// parseRawModuleArgs parses a flat, comma-separated list of module
// arguments, kept as raw source-text slices per the data model: each
// argument may itself contain balanced parens (e.g. a column type's size).
func (p *Parser) parseRawModuleArgs() []string {
	p.advance() // '('
	var args []string
	if p.curIs(token.RPAREN) {
		p.advance()
		return args
	}
	for {
		argStart := p.cur.StartPos
		depth := 0
		lastEnd := argStart
		for !p.curIs(token.EOF) {
			if depth == 0 && (p.curIs(token.COMMA) || p.curIs(token.RPAREN)) {
				break
			}
			if p.curIs(token.LPAREN) {
				depth++
			} else if p.curIs(token.RPAREN) {
				depth--
			}
			lastEnd = p.cur.EndPos
			p.advance()
		}
		args = append(args, strings.TrimSpace(p.source[argStart.Offset:lastEnd.Offset]))
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return args
}

// parseAlterTable parses "ALTER TABLE name (RENAME TO name | RENAME
// [COLUMN] name TO name | ADD [COLUMN] coldef | DROP [COLUMN] name)".
func (p *Parser) parseAlterTable() ast.Statement {
	start := p.cur.StartPos
	p.advance() // ALTER
	if !p.expect(token.TABLE) {
		return nil
	}
	name := p.parseTableName()
	stmt := &ast.AlterTableStmt{StartPos: start, Table: name}
	actionStart := p.cur.StartPos
	switch {
	case p.curIs(token.RENAME):
		p.advance()
		if p.curIs(token.TO) {
			p.advance()
			newName := ""
			if p.curIsIdent() {
				newName = p.curIdentValue()
				p.advance()
			}
			stmt.Action = &ast.RenameTableAction{StartPos: actionStart, EndPos: p.lastEnd, NewName: newName}
			break
		}
		if p.curIs(token.COLUMN) {
			p.advance()
		}
		old := ""
		if p.curIsIdent() {
			old = p.curIdentValue()
			p.advance()
		}
		p.expect(token.TO)
		newName := ""
		if p.curIsIdent() {
			newName = p.curIdentValue()
			p.advance()
		}
		stmt.Action = &ast.RenameColumnAction{StartPos: actionStart, EndPos: p.lastEnd, OldName: old, NewName: newName}
	case p.curIs(token.ADD):
		p.advance()
		if p.curIs(token.COLUMN) {
			p.advance()
		}
		cd := p.parseColumnDef()
		for _, c := range cd.Constraints {
			if g, ok := c.(*ast.GeneratedConstraint); ok && g.Stored {
				p.errorf(g.Pos(), g.End(), "a STORED generated column may not be added with ALTER TABLE ADD COLUMN")
			}
		}
		stmt.Action = &ast.AddColumnAction{StartPos: actionStart, EndPos: p.lastEnd, Column: cd}
	case p.curIs(token.DROP):
		p.advance()
		if p.curIs(token.COLUMN) {
			p.advance()
		}
		colName := ""
		if p.curIsIdent() {
			colName = p.curIdentValue()
			p.advance()
		}
		stmt.Action = &ast.DropColumnAction{StartPos: actionStart, EndPos: p.lastEnd, Name: colName}
	default:
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected RENAME, ADD or DROP, got %s", p.describeCur())
	}
	stmt.EndPos = p.lastEnd
	return stmt
}

// parseDrop parses "DROP (TABLE|INDEX|VIEW|TRIGGER) [IF EXISTS] name".
func (p *Parser) parseDrop() ast.Statement {
	start := p.cur.StartPos
	p.advance() // DROP
	var kind ast.DropKind
	switch p.cur.Type {
	case token.TABLE:
		kind = ast.DropTable
	case token.INDEX:
		kind = ast.DropIndex
	case token.VIEW:
		kind = ast.DropView
	case token.TRIGGER:
		kind = ast.DropTrigger
	default:
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected TABLE, INDEX, VIEW or TRIGGER, got %s", p.describeCur())
		return nil
	}
	p.advance()
	ifExists := false
	if p.curIs(token.IF) {
		p.advance()
		p.expect(token.EXISTS)
		ifExists = true
	}
	name := p.parseTableName()
	return &ast.DropStmt{StartPos: start, EndPos: p.lastEnd, Kind: kind, IfExists: ifExists, Name: name}
}
