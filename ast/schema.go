package ast

import "github.com/freeeve/sqlitelang/token"

// TypeName is a column type: one or more words (INTEGER, DOUBLE PRECISION,
// VARCHAR, ...) with an optional (n) or (n, m) size.
type TypeName struct {
	StartPos token.Pos
	EndPos   token.Pos
	Words    []string
	Size1    *int64
	Size2    *int64
}

func (t *TypeName) Pos() token.Pos { return t.StartPos }
func (t *TypeName) End() token.Pos { return t.EndPos }

// ConflictAction is the resolution named by a conflict-clause or by
// INSERT/UPDATE OR <action>.
type ConflictAction int

const (
	ConflictNone ConflictAction = iota
	ConflictRollback
	ConflictAbort
	ConflictFail
	ConflictIgnore
	ConflictReplace
)

// ConflictClause is "ON CONFLICT action", attached to a constraint.
type ConflictClause struct {
	StartPos token.Pos
	EndPos   token.Pos
	Action   ConflictAction
}

func (c *ConflictClause) Pos() token.Pos { return c.StartPos }
func (c *ConflictClause) End() token.Pos { return c.EndPos }

// RefAction is one ON DELETE/ON UPDATE action in a foreign-key clause.
type RefAction int

const (
	RefActionSetNull RefAction = iota
	RefActionSetDefault
	RefActionCascade
	RefActionRestrict
	RefActionNoAction
)

// ForeignKeyClause is "REFERENCES name [(cols)] (ON ... | MATCH ...)*
// [[NOT] DEFERRABLE [INITIALLY ...]]".
type ForeignKeyClause struct {
	StartPos        token.Pos
	EndPos          token.Pos
	Table           string
	Columns         []string
	OnDelete        *RefAction
	OnUpdate        *RefAction
	Match           string
	Deferrable      bool
	NotDeferrable   bool
	InitiallyDefer  bool // true: INITIALLY DEFERRED, false and one of the
	HasInitially    bool // above two set: INITIALLY IMMEDIATE
}

func (f *ForeignKeyClause) Pos() token.Pos { return f.StartPos }
func (f *ForeignKeyClause) End() token.Pos { return f.EndPos }

// --- Column constraints ---

// PrimaryKeyColumnConstraint is "[CONSTRAINT name] PRIMARY KEY [ASC|DESC]
// [conflict-clause] [AUTOINCREMENT]".
type PrimaryKeyColumnConstraint struct {
	StartPos      token.Pos
	EndPos        token.Pos
	Name          string
	Desc          bool
	HasOrder      bool
	Conflict      *ConflictClause
	Autoincrement bool
}

func (*PrimaryKeyColumnConstraint) columnConstraintNode() {}
func (p *PrimaryKeyColumnConstraint) Pos() token.Pos      { return p.StartPos }
func (p *PrimaryKeyColumnConstraint) End() token.Pos      { return p.EndPos }

// NotNullConstraint is "[CONSTRAINT name] NOT NULL [conflict-clause]".
type NotNullConstraint struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
	Conflict *ConflictClause
}

func (*NotNullConstraint) columnConstraintNode() {}
func (n *NotNullConstraint) Pos() token.Pos      { return n.StartPos }
func (n *NotNullConstraint) End() token.Pos      { return n.EndPos }

// UniqueColumnConstraint is "[CONSTRAINT name] UNIQUE [conflict-clause]".
type UniqueColumnConstraint struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
	Conflict *ConflictClause
}

func (*UniqueColumnConstraint) columnConstraintNode() {}
func (u *UniqueColumnConstraint) Pos() token.Pos      { return u.StartPos }
func (u *UniqueColumnConstraint) End() token.Pos      { return u.EndPos }

// CheckConstraint is "[CONSTRAINT name] CHECK (expr)", valid as both a
// column and a table constraint.
type CheckConstraint struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
	Expr     Expr
}

func (*CheckConstraint) columnConstraintNode() {}
func (*CheckConstraint) tableConstraintNode()  {}
func (c *CheckConstraint) Pos() token.Pos      { return c.StartPos }
func (c *CheckConstraint) End() token.Pos      { return c.EndPos }

// DefaultConstraint is "[CONSTRAINT name] DEFAULT (expr | literal |
// signed-number)".
type DefaultConstraint struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
	Expr     Expr
}

func (*DefaultConstraint) columnConstraintNode() {}
func (d *DefaultConstraint) Pos() token.Pos      { return d.StartPos }
func (d *DefaultConstraint) End() token.Pos      { return d.EndPos }

// CollateConstraint is "[CONSTRAINT name] COLLATE name" on a column def.
type CollateConstraint struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Name      string
	Collation string
}

func (*CollateConstraint) columnConstraintNode() {}
func (c *CollateConstraint) Pos() token.Pos      { return c.StartPos }
func (c *CollateConstraint) End() token.Pos      { return c.EndPos }

// ForeignKeyColumnConstraint wraps a foreign-key-clause as a column
// constraint (it names its own column implicitly: the enclosing ColumnDef).
type ForeignKeyColumnConstraint struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
	Ref      *ForeignKeyClause
}

func (*ForeignKeyColumnConstraint) columnConstraintNode() {}
func (f *ForeignKeyColumnConstraint) Pos() token.Pos      { return f.StartPos }
func (f *ForeignKeyColumnConstraint) End() token.Pos      { return f.EndPos }

// GeneratedConstraint is "[CONSTRAINT name] GENERATED ALWAYS? AS (expr)
// [STORED|VIRTUAL]". Stored is false for VIRTUAL (the default).
type GeneratedConstraint struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
	Expr     Expr
	Stored   bool
}

func (*GeneratedConstraint) columnConstraintNode() {}
func (g *GeneratedConstraint) Pos() token.Pos      { return g.StartPos }
func (g *GeneratedConstraint) End() token.Pos      { return g.EndPos }

// --- Table constraints ---

// TablePrimaryKeyConstraint is "[CONSTRAINT name] PRIMARY KEY
// (indexed-cols) [conflict-clause]".
type TablePrimaryKeyConstraint struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
	Columns  []*OrderByExpr
	Conflict *ConflictClause
}

func (*TablePrimaryKeyConstraint) tableConstraintNode() {}
func (t *TablePrimaryKeyConstraint) Pos() token.Pos      { return t.StartPos }
func (t *TablePrimaryKeyConstraint) End() token.Pos      { return t.EndPos }

// TableUniqueConstraint is "[CONSTRAINT name] UNIQUE (indexed-cols)
// [conflict-clause]".
type TableUniqueConstraint struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
	Columns  []*OrderByExpr
	Conflict *ConflictClause
}

func (*TableUniqueConstraint) tableConstraintNode() {}
func (t *TableUniqueConstraint) Pos() token.Pos      { return t.StartPos }
func (t *TableUniqueConstraint) End() token.Pos      { return t.EndPos }

// TableForeignKeyConstraint is "[CONSTRAINT name] FOREIGN KEY (cols)
// foreign-key-clause".
type TableForeignKeyConstraint struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
	Columns  []string
	Ref      *ForeignKeyClause
}

func (*TableForeignKeyConstraint) tableConstraintNode() {}
func (t *TableForeignKeyConstraint) Pos() token.Pos      { return t.StartPos }
func (t *TableForeignKeyConstraint) End() token.Pos      { return t.EndPos }

// ColumnDef is "name [typename] (column-constraint)*".
type ColumnDef struct {
	StartPos    token.Pos
	EndPos      token.Pos
	Name        string
	Type        *TypeName // nil if untyped
	Constraints []ColumnConstraint
}

func (c *ColumnDef) Pos() token.Pos { return c.StartPos }
func (c *ColumnDef) End() token.Pos { return c.EndPos }

// TableOptions is the trailing comma-separated option list on CREATE TABLE.
type TableOptions struct {
	WithoutRowid bool
	Strict       bool
}
