package sqlitelang

import (
	"testing"

	"github.com/kr/pretty"

	"github.com/freeeve/sqlitelang/ast"
	"github.com/freeeve/sqlitelang/token"
	"github.com/freeeve/sqlitelang/visitor"
)

func TestParseAllBasicStatements(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"simple select", "SELECT * FROM users;"},
		{"select with where", "SELECT id, name FROM users WHERE status = 'active';"},
		{"select with join", "SELECT a.id, b.name FROM a JOIN b ON a.id = b.a_id;"},
		{"select with multiple joins", "SELECT * FROM a LEFT JOIN b ON a.id = b.a_id CROSS JOIN c;"},
		{"select with subquery", "SELECT * FROM users WHERE id IN (SELECT user_id FROM orders);"},
		{"insert", "INSERT INTO users (id, name) VALUES (1, 'test');"},
		{"update", "UPDATE users SET name = 'new' WHERE id = 1;"},
		{"delete", "DELETE FROM users WHERE id = 1;"},
		{"create table", "CREATE TABLE t (a INTEGER PRIMARY KEY, b TEXT NOT NULL);"},
		{"pragma", "PRAGMA foreign_keys = 1;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, diags := ParseAll(tt.input)
			if len(diags) != 0 {
				t.Fatalf("ParseAll(%q) diagnostics: %v", tt.input, diags)
			}
			if len(stmts) != 1 {
				t.Fatalf("ParseAll(%q) = %d statements, want 1", tt.input, len(stmts))
			}
		})
	}
}

// Scenario from the operator precedence ladder: multiplication binds tighter
// than addition, so 1 + 2 * 3 parses as 1 + (2 * 3).
func TestOperatorPrecedence(t *testing.T) {
	stmts, diags := ParseAll("SELECT 1 + 2 * 3;")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	sel := stmts[0].(*ast.SelectStmt)
	body := sel.Core.(*ast.SelectBody)
	col := body.Columns[0].(*ast.AliasedExpr)
	add, ok := col.Expr.(*ast.BinaryExpr)
	if !ok || add.Op != token.PLUS {
		t.Fatalf("top-level op = %#v, want PLUS BinaryExpr", col.Expr)
	}
	if _, ok := add.Left.(*ast.Literal); !ok {
		t.Errorf("left operand = %# v, want a Literal", pretty.Formatter(add.Left))
	}
	mul, ok := add.Right.(*ast.BinaryExpr)
	if !ok || mul.Op != token.ASTERISK {
		t.Fatalf("right operand = %#v, want ASTERISK BinaryExpr", add.Right)
	}
}

// BETWEEN binds tighter than AND, so "a BETWEEN 1 AND 2 AND b = 3" is
// (a BETWEEN 1 AND 2) AND (b = 3), not a BETWEEN (1 AND 2 AND b) = 3.
func TestBetweenBindsTighterThanAnd(t *testing.T) {
	stmts, diags := ParseAll("SELECT * FROM t WHERE a BETWEEN 1 AND 2 AND b = 3;")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	body := stmts[0].(*ast.SelectStmt).Core.(*ast.SelectBody)
	top, ok := body.Where.(*ast.BinaryExpr)
	if !ok || top.Op != token.AND {
		t.Fatalf("where = %#v, want top-level AND", body.Where)
	}
	between, ok := top.Left.(*ast.BetweenExpr)
	if !ok {
		t.Fatalf("left of AND = %#v, want BetweenExpr", top.Left)
	}
	if _, ok := between.Low.(*ast.Literal); !ok {
		t.Errorf("between.Low = %#v, want a Literal", between.Low)
	}
	eq, ok := top.Right.(*ast.BinaryExpr)
	if !ok || eq.Op != token.EQ {
		t.Fatalf("right of AND = %#v, want EQ BinaryExpr", top.Right)
	}
}

func TestRecursiveCte(t *testing.T) {
	input := "WITH RECURSIVE c(n) AS (SELECT 1 UNION ALL SELECT n+1 FROM c WHERE n < 10) SELECT * FROM c;"
	stmts, diags := ParseAll(input)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	sel := stmts[0].(*ast.SelectStmt)
	if sel.With == nil || !sel.With.Recursive {
		t.Fatalf("With = %#v, want a recursive WITH clause", sel.With)
	}
	if len(sel.With.Ctes) != 1 {
		t.Fatalf("got %d CTEs, want 1", len(sel.With.Ctes))
	}
	cte := sel.With.Ctes[0]
	if cte.Name != "c" || len(cte.Columns) != 1 || cte.Columns[0] != "n" {
		t.Fatalf("cte = %#v, want name c, columns [n]", cte)
	}
	if len(cte.Query.Compound) != 1 || cte.Query.Compound[0].Op != ast.SetUnionAll {
		t.Fatalf("cte.Query.Compound = %#v, want a single UNION ALL arm", cte.Query.Compound)
	}
}

func TestUpsertWithReturning(t *testing.T) {
	input := "INSERT INTO t (a, b) VALUES (1, 2) ON CONFLICT(a) DO UPDATE SET b = excluded.b WHERE excluded.b > t.b RETURNING *;"
	stmts, diags := ParseAll(input)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	ins := stmts[0].(*ast.InsertStmt)
	if len(ins.Upserts) != 1 {
		t.Fatalf("got %d upserts, want 1", len(ins.Upserts))
	}
	action, ok := ins.Upserts[0].Action.(*ast.DoUpdateAction)
	if !ok {
		t.Fatalf("action = %#v, want DoUpdateAction", ins.Upserts[0].Action)
	}
	if len(action.Assignments) != 1 || action.Assignments[0].Columns[0] != "b" {
		t.Fatalf("assignments = %#v, want a single b = ... target", action.Assignments)
	}
	if action.Where == nil {
		t.Fatal("action.Where is nil, want the excluded.b > t.b predicate")
	}
	if ins.Returning == nil || len(ins.Returning.Columns) != 1 {
		t.Fatalf("returning = %#v, want a single star column", ins.Returning)
	}
	if _, ok := ins.Returning.Columns[0].(*ast.StarExpr); !ok {
		t.Errorf("returning column = %#v, want StarExpr", ins.Returning.Columns[0])
	}
}

func TestWindowFunction(t *testing.T) {
	input := "SELECT row_number() OVER (PARTITION BY dept ORDER BY salary DESC ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW) FROM emp;"
	stmts, diags := ParseAll(input)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	body := stmts[0].(*ast.SelectStmt).Core.(*ast.SelectBody)
	col := body.Columns[0].(*ast.AliasedExpr)
	fn, ok := col.Expr.(*ast.FuncExpr)
	if !ok || fn.Name != "row_number" {
		t.Fatalf("column expr = %#v, want a row_number FuncExpr", col.Expr)
	}
	if fn.Over == nil || fn.Over.Def == nil {
		t.Fatalf("fn.Over = %#v, want an inline window definition", fn.Over)
	}
	spec := fn.Over.Def
	if len(spec.PartitionBy) != 1 || len(spec.OrderBy) != 1 {
		t.Fatalf("spec = %#v, want one partition expr and one order term", spec)
	}
	if spec.Frame == nil || spec.Frame.Unit != ast.FrameRows {
		t.Fatalf("spec.Frame = %#v, want a ROWS frame", spec.Frame)
	}
	if spec.Frame.Start.Type != ast.BoundUnboundedPreceding {
		t.Errorf("frame start = %#v, want BoundUnboundedPreceding", spec.Frame.Start)
	}
	if spec.Frame.End.Type != ast.BoundCurrentRow {
		t.Errorf("frame end = %#v, want BoundCurrentRow", spec.Frame.End)
	}
}

// A statement-boundary recovery test: a malformed first statement still
// lets the parser resume and successfully return the one after it.
func TestSynchronizeRecoversAtNextStatement(t *testing.T) {
	input := "SELEC * FROM t; SELECT 1;"
	stmts, diags := ParseAll(input)
	if len(diags) == 0 {
		t.Fatal("expected at least one diagnostic for the malformed first statement")
	}
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1 (the second, recovered statement)", len(stmts))
	}
	sel, ok := stmts[0].(*ast.SelectStmt)
	if !ok {
		t.Fatalf("recovered statement = %#v, want *ast.SelectStmt", stmts[0])
	}
	body := sel.Core.(*ast.SelectBody)
	lit, ok := body.Columns[0].(*ast.AliasedExpr).Expr.(*ast.Literal)
	if !ok || lit.Value != "1" {
		t.Errorf("recovered select column = %#v, want literal 1", body.Columns[0])
	}
}

func TestQualifiedIdentifierParts(t *testing.T) {
	stmts, diags := ParseAll("SELECT main.t.c FROM main.t;")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	body := stmts[0].(*ast.SelectStmt).Core.(*ast.SelectBody)
	col := body.Columns[0].(*ast.AliasedExpr).Expr.(*ast.ColName)
	if col.Schema() != "main" || col.Table() != "t" || col.Name() != "c" {
		t.Fatalf("col = %#v, want schema main, table t, name c", col)
	}
}

// A 4th dotted segment has nowhere to go: ColName.Name/Table/Schema index
// from the end of Parts, so anything beyond schema.table.column would be
// silently dropped rather than rejected if the parser didn't cap the loop.
func TestQualifiedIdentifierRejectsFourParts(t *testing.T) {
	_, diags := ParseAll("SELECT a.b.c.d;")
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for a qualified identifier with more than 3 parts")
	}
}

// spec.md's window-function invariant: a function call carrying a window
// reference must not also carry DISTINCT.
func TestWindowFunctionRejectsDistinct(t *testing.T) {
	_, diags := ParseAll("SELECT count(DISTINCT x) OVER (PARTITION BY y) FROM t;")
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic rejecting DISTINCT on a window function")
	}
}

func TestDDLCreateTable(t *testing.T) {
	input := `CREATE TABLE IF NOT EXISTS posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		author_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
		created_at TEXT DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (author_id) REFERENCES users(id)
	) WITHOUT ROWID;`
	stmts, diags := ParseAll(input)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	ct := stmts[0].(*ast.CreateTableStmt)
	if !ct.IfNotExists {
		t.Error("IfNotExists = false, want true")
	}
	if ct.Table.Name != "posts" {
		t.Errorf("table name = %q, want posts", ct.Table.Name)
	}
	if len(ct.Columns) != 4 {
		t.Fatalf("got %d columns, want 4", len(ct.Columns))
	}
	if len(ct.TableConstraints) != 1 {
		t.Fatalf("got %d table constraints, want 1", len(ct.TableConstraints))
	}
	if ct.Options == nil || !ct.Options.WithoutRowid {
		t.Errorf("options = %#v, want WithoutRowid", ct.Options)
	}
}

// The global invariant: GENERATED ALWAYS AS (...) STORED columns cannot be
// added after table creation; the column definition is parsed in full and
// then rejected with a diagnostic.
func TestAlterTableRejectsStoredGeneratedColumn(t *testing.T) {
	input := "ALTER TABLE t ADD COLUMN x INTEGER GENERATED ALWAYS AS (1) STORED;"
	_, diags := ParseAll(input)
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic rejecting a STORED generated column in ADD COLUMN")
	}
}

func TestCreateVirtualTableRawModuleArgs(t *testing.T) {
	input := "CREATE VIRTUAL TABLE docs USING fts5(title, body, tokenize = 'porter unicode61');"
	stmts, diags := ParseAll(input)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	vt := stmts[0].(*ast.CreateVirtualTableStmt)
	if vt.Module != "fts5" {
		t.Errorf("module = %q, want fts5", vt.Module)
	}
	want := []string{"title", "body", "tokenize = 'porter unicode61'"}
	if len(vt.ModuleArgs) != len(want) {
		t.Fatalf("module args = %#v, want %#v", vt.ModuleArgs, want)
	}
	for i := range want {
		if vt.ModuleArgs[i] != want[i] {
			t.Errorf("module arg %d = %q, want %q", i, vt.ModuleArgs[i], want[i])
		}
	}
}

func TestTrigger(t *testing.T) {
	input := `CREATE TRIGGER trg AFTER INSERT ON t FOR EACH ROW
		BEGIN
			UPDATE counters SET n = n + 1 WHERE name = 'rows';
		END;`
	stmts, diags := ParseAll(input)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	trg := stmts[0].(*ast.CreateTriggerStmt)
	if trg.Timing != ast.TriggerAfter || trg.Event != ast.TriggerInsert {
		t.Fatalf("trigger timing/event = %v/%v, want After/Insert", trg.Timing, trg.Event)
	}
	if len(trg.Body) != 1 {
		t.Fatalf("got %d body statements, want 1", len(trg.Body))
	}
	if _, ok := trg.Body[0].(*ast.UpdateStmt); !ok {
		t.Errorf("body statement = %#v, want *ast.UpdateStmt", trg.Body[0])
	}
}

// Every AST node's span must nest inside its parent's span (the recorded
// invariant that justifies keeping a read-only traversal utility at all).
func TestWalkSpansNestWithinParent(t *testing.T) {
	input := `SELECT a.id, (SELECT max(x) FROM y WHERE y.id = a.id) AS m
		FROM a JOIN b ON a.id = b.a_id
		WHERE a.status IN ('open', 'pending')
		ORDER BY a.id LIMIT 10;`
	stmts, diags := ParseAll(input)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	visitor.Walk(spanChecker{t: t}, stmts[0])
}

// spanChecker hands each node's children a checker carrying the node's full
// ancestor chain, so every span is compared only against the spans of the
// nodes that enclose it.
type spanChecker struct {
	t         *testing.T
	ancestors []ast.Node
}

func (c spanChecker) Visit(n ast.Node) visitor.Visitor {
	for _, a := range c.ancestors {
		if n.Pos().Offset < a.Pos().Offset || n.End().Offset > a.End().Offset {
			c.t.Errorf("span of %T [%d,%d) escapes parent %T [%d,%d)",
				n, n.Pos().Offset, n.End().Offset, a, a.Pos().Offset, a.End().Offset)
		}
	}
	chain := append(c.ancestors[:len(c.ancestors):len(c.ancestors)], n)
	return spanChecker{t: c.t, ancestors: chain}
}

func TestTokenizeIncludesTrailingEOF(t *testing.T) {
	items, diags := Tokenize("SELECT 1;")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if items[len(items)-1].Type != token.EOF {
		t.Fatalf("last token = %v, want EOF", items[len(items)-1])
	}
}

// An unterminated string must not be diagnosed twice: once by the lexer
// (which records it in Errors) and again by the parser falling through to
// its "unexpected token" branch on the resulting ILLEGAL token. Unlike
// lexer_test.go's TestLexerUnterminatedStringIsDiagnostic, this goes through
// ParseAll so it actually exercises the statement-dispatch path, not just
// Tokenize.
func TestUnterminatedStringIsSingleDiagnosticNoStatements(t *testing.T) {
	stmts, diags := ParseAll("'unterminated")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want exactly 1: %v", len(diags), diags)
	}
	if len(stmts) != 0 {
		t.Fatalf("got %d statements, want 0", len(stmts))
	}
}

// The same ILLEGAL-token case, but arising mid-expression rather than at
// statement dispatch, exercising parsePrimary's analogous guard.
func TestUnterminatedStringInExpressionIsSingleDiagnostic(t *testing.T) {
	_, diags := ParseAll("SELECT 'unterminated")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want exactly 1: %v", len(diags), diags)
	}
}
