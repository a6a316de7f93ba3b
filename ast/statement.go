package ast

import "github.com/freeeve/sqlitelang/token"

// SelectStmt is a full SELECT statement: an optional WITH clause, a leading
// select-core, zero or more UNION/INTERSECT/EXCEPT arms (the left-associative
// CompoundSelect of the data model), and the trailing ORDER BY/LIMIT that
// apply to the compound as a whole.
type SelectStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	With     *WithClause
	Core     SelectCore
	Compound []*CompoundArm
	OrderBy  []*OrderByExpr
	Limit    *Limit
}

func (*SelectStmt) statementNode()   {}
func (s *SelectStmt) Pos() token.Pos { return s.StartPos }
func (s *SelectStmt) End() token.Pos { return s.EndPos }

// DoNothingAction is the "DO NOTHING" branch of an upsert clause.
type DoNothingAction struct {
	StartPos token.Pos
	EndPos   token.Pos
}

func (*DoNothingAction) upsertActionNode() {}
func (d *DoNothingAction) Pos() token.Pos  { return d.StartPos }
func (d *DoNothingAction) End() token.Pos  { return d.EndPos }

// Assignment is one "col = expr" or "(col, ...) = expr" SET target.
type Assignment struct {
	StartPos token.Pos
	EndPos   token.Pos
	Columns  []string
	Expr     Expr
}

// DoUpdateAction is the "DO UPDATE SET assignments [WHERE expr]" branch of
// an upsert clause.
type DoUpdateAction struct {
	StartPos    token.Pos
	EndPos      token.Pos
	Assignments []*Assignment
	Where       Expr
}

func (*DoUpdateAction) upsertActionNode() {}
func (d *DoUpdateAction) Pos() token.Pos  { return d.StartPos }
func (d *DoUpdateAction) End() token.Pos  { return d.EndPos }

// UpsertClause is one "ON CONFLICT [(target-cols [WHERE expr])] DO ..."
// clause. INSERT allows a repeatable, non-empty list of these.
type UpsertClause struct {
	StartPos      token.Pos
	EndPos        token.Pos
	TargetColumns []string
	TargetWhere   Expr
	Action        UpsertAction
}

// InsertStmt is INSERT/REPLACE INTO ... with an optional upsert tail.
// Exactly one of Values, Select, DefaultValues is set.
type InsertStmt struct {
	StartPos      token.Pos
	EndPos        token.Pos
	With          *WithClause
	Replace       bool // REPLACE INTO, rather than INSERT [OR action] INTO
	OrAction      ConflictAction
	Table         *TableName
	Alias         string
	Columns       []string
	Values        [][]Expr
	Select        *SelectStmt
	DefaultValues bool
	Upserts       []*UpsertClause
	Returning     *ReturningClause
}

func (*InsertStmt) statementNode()   {}
func (i *InsertStmt) Pos() token.Pos { return i.StartPos }
func (i *InsertStmt) End() token.Pos { return i.EndPos }

// UpdateStmt is UPDATE ... SET ... [FROM ...] [WHERE ...] [RETURNING ...].
type UpdateStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	With     *WithClause
	OrAction ConflictAction
	Table    *AliasedTableExpr
	Set      []*Assignment
	From     TableExpr
	Where    Expr
	OrderBy  []*OrderByExpr
	Limit    *Limit
	Returning *ReturningClause
}

func (*UpdateStmt) statementNode()   {}
func (u *UpdateStmt) Pos() token.Pos { return u.StartPos }
func (u *UpdateStmt) End() token.Pos { return u.EndPos }

// DeleteStmt is DELETE FROM ... [WHERE ...] [RETURNING ...].
type DeleteStmt struct {
	StartPos  token.Pos
	EndPos    token.Pos
	With      *WithClause
	Table     *AliasedTableExpr
	Where     Expr
	OrderBy   []*OrderByExpr
	Limit     *Limit
	Returning *ReturningClause
}

func (*DeleteStmt) statementNode()   {}
func (d *DeleteStmt) Pos() token.Pos { return d.StartPos }
func (d *DeleteStmt) End() token.Pos { return d.EndPos }

// CreateTableStmt is CREATE TABLE, in either its column-list form or its
// "AS select" form (exactly one of Columns/AsSelect is set).
type CreateTableStmt struct {
	StartPos         token.Pos
	EndPos           token.Pos
	Temp             bool
	IfNotExists      bool
	Table            *TableName
	AsSelect         *SelectStmt
	Columns          []*ColumnDef
	TableConstraints []TableConstraint
	Options          *TableOptions
}

func (*CreateTableStmt) statementNode()   {}
func (c *CreateTableStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateTableStmt) End() token.Pos { return c.EndPos }

// CreateIndexStmt is CREATE [UNIQUE] INDEX ... ON table (cols) [WHERE ...].
type CreateIndexStmt struct {
	StartPos    token.Pos
	EndPos      token.Pos
	Unique      bool
	IfNotExists bool
	Index       *TableName
	Table       *TableName
	Columns     []*OrderByExpr
	Where       Expr
}

func (*CreateIndexStmt) statementNode()   {}
func (c *CreateIndexStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateIndexStmt) End() token.Pos { return c.EndPos }

// CreateViewStmt is CREATE [TEMP] VIEW ... [(cols)] AS select.
type CreateViewStmt struct {
	StartPos    token.Pos
	EndPos      token.Pos
	Temp        bool
	IfNotExists bool
	View        *TableName
	Columns     []string
	Select      *SelectStmt
}

func (*CreateViewStmt) statementNode()   {}
func (c *CreateViewStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateViewStmt) End() token.Pos { return c.EndPos }

// TriggerTiming is BEFORE/AFTER/INSTEAD OF.
type TriggerTiming int

const (
	TriggerTimingNone TriggerTiming = iota
	TriggerBefore
	TriggerAfter
	TriggerInsteadOf
)

// TriggerEvent is the DELETE/INSERT/UPDATE [OF cols] that fires a trigger.
type TriggerEvent int

const (
	TriggerDelete TriggerEvent = iota
	TriggerInsert
	TriggerUpdate
)

// CreateTriggerStmt is CREATE TRIGGER ...; Body is restricted to
// Select/Insert/Update/Delete statements.
type CreateTriggerStmt struct {
	StartPos        token.Pos
	EndPos          token.Pos
	Temp            bool
	IfNotExists     bool
	Trigger         *TableName
	Timing          TriggerTiming
	Event           TriggerEvent
	UpdateOfColumns []string
	Table           *TableName
	ForEachRow      bool
	When            Expr
	Body            []Statement
}

func (*CreateTriggerStmt) statementNode()   {}
func (c *CreateTriggerStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateTriggerStmt) End() token.Pos { return c.EndPos }

// CreateVirtualTableStmt is CREATE VIRTUAL TABLE ... USING module(args).
// Module args are kept as a flat, raw token-text slice, per the data model.
type CreateVirtualTableStmt struct {
	StartPos    token.Pos
	EndPos      token.Pos
	IfNotExists bool
	Table       *TableName
	Module      string
	ModuleArgs  []string
}

func (*CreateVirtualTableStmt) statementNode()   {}
func (c *CreateVirtualTableStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateVirtualTableStmt) End() token.Pos { return c.EndPos }

// RenameTableAction is "RENAME TO name".
type RenameTableAction struct {
	StartPos token.Pos
	EndPos   token.Pos
	NewName  string
}

func (*RenameTableAction) alterTableActionNode() {}
func (r *RenameTableAction) Pos() token.Pos      { return r.StartPos }
func (r *RenameTableAction) End() token.Pos      { return r.EndPos }

// RenameColumnAction is "RENAME [COLUMN] old TO new".
type RenameColumnAction struct {
	StartPos token.Pos
	EndPos   token.Pos
	OldName  string
	NewName  string
}

func (*RenameColumnAction) alterTableActionNode() {}
func (r *RenameColumnAction) Pos() token.Pos      { return r.StartPos }
func (r *RenameColumnAction) End() token.Pos      { return r.EndPos }

// AddColumnAction is "ADD [COLUMN] coldef".
type AddColumnAction struct {
	StartPos token.Pos
	EndPos   token.Pos
	Column   *ColumnDef
}

func (*AddColumnAction) alterTableActionNode() {}
func (a *AddColumnAction) Pos() token.Pos      { return a.StartPos }
func (a *AddColumnAction) End() token.Pos      { return a.EndPos }

// DropColumnAction is "DROP [COLUMN] name".
type DropColumnAction struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
}

func (*DropColumnAction) alterTableActionNode() {}
func (d *DropColumnAction) Pos() token.Pos      { return d.StartPos }
func (d *DropColumnAction) End() token.Pos      { return d.EndPos }

// AlterTableStmt is ALTER TABLE name <action>.
type AlterTableStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Table    *TableName
	Action   AlterTableAction
}

func (*AlterTableStmt) statementNode()   {}
func (a *AlterTableStmt) Pos() token.Pos { return a.StartPos }
func (a *AlterTableStmt) End() token.Pos { return a.EndPos }

// DropKind is the object kind named by a DROP statement.
type DropKind int

const (
	DropTable DropKind = iota
	DropIndex
	DropView
	DropTrigger
)

// DropStmt is DROP (TABLE|INDEX|VIEW|TRIGGER) [IF EXISTS] name.
type DropStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Kind     DropKind
	IfExists bool
	Name     *TableName
}

func (*DropStmt) statementNode()   {}
func (d *DropStmt) Pos() token.Pos { return d.StartPos }
func (d *DropStmt) End() token.Pos { return d.EndPos }

// BeginMode is the optional DEFERRED/IMMEDIATE/EXCLUSIVE modifier on BEGIN.
type BeginMode int

const (
	BeginPlain BeginMode = iota
	BeginDeferred
	BeginImmediate
	BeginExclusive
)

// BeginStmt is BEGIN [DEFERRED|IMMEDIATE|EXCLUSIVE] [TRANSACTION].
type BeginStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Mode     BeginMode
}

func (*BeginStmt) statementNode()   {}
func (b *BeginStmt) Pos() token.Pos { return b.StartPos }
func (b *BeginStmt) End() token.Pos { return b.EndPos }

// CommitStmt is COMMIT|END [TRANSACTION].
type CommitStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
}

func (*CommitStmt) statementNode()   {}
func (c *CommitStmt) Pos() token.Pos { return c.StartPos }
func (c *CommitStmt) End() token.Pos { return c.EndPos }

// RollbackStmt is ROLLBACK [TRANSACTION] [TO [SAVEPOINT] name].
type RollbackStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	To       string // "" if no TO clause
}

func (*RollbackStmt) statementNode()   {}
func (r *RollbackStmt) Pos() token.Pos { return r.StartPos }
func (r *RollbackStmt) End() token.Pos { return r.EndPos }

// SavepointStmt is SAVEPOINT name.
type SavepointStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
}

func (*SavepointStmt) statementNode()   {}
func (s *SavepointStmt) Pos() token.Pos { return s.StartPos }
func (s *SavepointStmt) End() token.Pos { return s.EndPos }

// ReleaseStmt is RELEASE [SAVEPOINT] name.
type ReleaseStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
}

func (*ReleaseStmt) statementNode()   {}
func (r *ReleaseStmt) Pos() token.Pos { return r.StartPos }
func (r *ReleaseStmt) End() token.Pos { return r.EndPos }

// AttachStmt is ATTACH [DATABASE] expr AS name.
type AttachStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
	Name     string
}

func (*AttachStmt) statementNode()   {}
func (a *AttachStmt) Pos() token.Pos { return a.StartPos }
func (a *AttachStmt) End() token.Pos { return a.EndPos }

// DetachStmt is DETACH [DATABASE] name.
type DetachStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
}

func (*DetachStmt) statementNode()   {}
func (d *DetachStmt) Pos() token.Pos { return d.StartPos }
func (d *DetachStmt) End() token.Pos { return d.EndPos }

// AnalyzeStmt is ANALYZE [schema[.name]].
type AnalyzeStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Schema   string
	Name     string
}

func (*AnalyzeStmt) statementNode()   {}
func (a *AnalyzeStmt) Pos() token.Pos { return a.StartPos }
func (a *AnalyzeStmt) End() token.Pos { return a.EndPos }

// VacuumStmt is VACUUM [name] [INTO string-literal].
type VacuumStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
	Into     string
}

func (*VacuumStmt) statementNode()   {}
func (v *VacuumStmt) Pos() token.Pos { return v.StartPos }
func (v *VacuumStmt) End() token.Pos { return v.EndPos }

// ReindexStmt is REINDEX [schema[.name]].
type ReindexStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Schema   string
	Name     string
}

func (*ReindexStmt) statementNode()   {}
func (r *ReindexStmt) Pos() token.Pos { return r.StartPos }
func (r *ReindexStmt) End() token.Pos { return r.EndPos }

// ExplainStmt is EXPLAIN [QUERY PLAN] stmt, wrapping any other statement.
type ExplainStmt struct {
	StartPos  token.Pos
	EndPos    token.Pos
	QueryPlan bool
	Stmt      Statement
}

func (*ExplainStmt) statementNode()   {}
func (e *ExplainStmt) Pos() token.Pos { return e.StartPos }
func (e *ExplainStmt) End() token.Pos { return e.EndPos }

// PragmaStmt is PRAGMA [schema.]name [(= expr) | (expr)]. IsCall records
// whether the key(value) spelling, rather than key=value, was used — both
// are accepted and only the spelling differs.
type PragmaStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Schema   string
	Name     string
	Value    Expr
	IsCall   bool
}

func (*PragmaStmt) statementNode()   {}
func (p *PragmaStmt) Pos() token.Pos { return p.StartPos }
func (p *PragmaStmt) End() token.Pos { return p.EndPos }
