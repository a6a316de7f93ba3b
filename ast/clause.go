package ast

import "github.com/freeeve/sqlitelang/token"

// TableName is a possibly schema-qualified table/index/view/trigger name.
type TableName struct {
	StartPos token.Pos
	EndPos   token.Pos
	Schema   string // "" if unqualified
	Name     string
}

func (*TableName) tableExprNode()   {}
func (t *TableName) Pos() token.Pos { return t.StartPos }
func (t *TableName) End() token.Pos { return t.EndPos }

// IndexedClause is the "INDEXED BY name" / "NOT INDEXED" tail on a table
// reference in a FROM clause.
type IndexedClause struct {
	Not  bool
	Name string // empty when Not is true
}

// AliasedTableExpr wraps a table primary (a TableName, Subquery,
// TableValuedFunc or parenthesized join tree) with its optional alias and
// indexing hint.
type AliasedTableExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     TableExpr
	Alias    string
	Indexed  *IndexedClause
}

func (*AliasedTableExpr) tableExprNode()   {}
func (a *AliasedTableExpr) Pos() token.Pos { return a.StartPos }
func (a *AliasedTableExpr) End() token.Pos { return a.EndPos }

// TableValuedFunc is "name(args) [AS? alias]" used as a FROM-clause table
// primary.
type TableValuedFunc struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
	Args     []Expr
}

func (*TableValuedFunc) tableExprNode()   {}
func (f *TableValuedFunc) Pos() token.Pos { return f.StartPos }
func (f *TableValuedFunc) End() token.Pos { return f.EndPos }

// ParenTableExpr is a parenthesized join tree used as a table primary,
// distinct from Subquery (a parenthesized SELECT).
type ParenTableExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     TableExpr
}

func (*ParenTableExpr) tableExprNode()   {}
func (p *ParenTableExpr) Pos() token.Pos { return p.StartPos }
func (p *ParenTableExpr) End() token.Pos { return p.EndPos }

// JoinType enumerates the join kinds the FROM-clause join tree can fold,
// including the comma-join form (represented as JoinCross).
type JoinType int

const (
	JoinInner JoinType = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
)

// JoinExpr is one join step in a left-folded join tree: Left JoinType Right
// [ON expr | USING (cols)].
type JoinExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Left     TableExpr
	Right    TableExpr
	Type     JoinType
	Natural  bool
	On       Expr
	Using    []string
}

func (*JoinExpr) tableExprNode()   {}
func (j *JoinExpr) Pos() token.Pos { return j.StartPos }
func (j *JoinExpr) End() token.Pos { return j.EndPos }

// OrderByExpr is one ordering term: expr [COLLATE name] [ASC|DESC]
// [NULLS FIRST|NULLS LAST].
type OrderByExpr struct {
	StartPos   token.Pos
	EndPos     token.Pos
	Expr       Expr
	Collation  string
	Desc       bool
	NullsFirst *bool // nil when unspecified
}

func (o *OrderByExpr) Pos() token.Pos { return o.StartPos }
func (o *OrderByExpr) End() token.Pos { return o.EndPos }

// Limit is "LIMIT count [(OFFSET|,) offset]"; both forms are accepted.
type Limit struct {
	StartPos token.Pos
	EndPos   token.Pos
	Count    Expr
	Offset   Expr // nil if absent
}

func (l *Limit) Pos() token.Pos { return l.StartPos }
func (l *Limit) End() token.Pos { return l.EndPos }

// AliasedExpr is "expr [AS? alias]" in a result-column list.
type AliasedExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
	Alias    string
}

func (*AliasedExpr) selectExprNode()   {}
func (a *AliasedExpr) Pos() token.Pos { return a.StartPos }
func (a *AliasedExpr) End() token.Pos { return a.EndPos }

// StarExpr is "*" or "table.*".
type StarExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Table    string // "" for bare *
}

func (*StarExpr) selectExprNode()   {}
func (s *StarExpr) Pos() token.Pos { return s.StartPos }
func (s *StarExpr) End() token.Pos { return s.EndPos }

// FrameUnit is the ROWS/RANGE/GROUPS window-frame unit.
type FrameUnit int

const (
	FrameRows FrameUnit = iota
	FrameRange
	FrameGroups
)

// BoundType enumerates the five frame-bound forms.
type BoundType int

const (
	BoundUnboundedPreceding BoundType = iota
	BoundPreceding
	BoundCurrentRow
	BoundFollowing
	BoundUnboundedFollowing
)

// FrameBound is one end of a window frame: an UNBOUNDED/CURRENT ROW bound,
// or expr PRECEDING/FOLLOWING.
type FrameBound struct {
	StartPos token.Pos
	EndPos   token.Pos
	Type     BoundType
	Expr     Expr // non-nil only for Preceding/Following
}

func (b *FrameBound) Pos() token.Pos { return b.StartPos }
func (b *FrameBound) End() token.Pos { return b.EndPos }

// ExcludeType is the window frame's EXCLUDE clause.
type ExcludeType int

const (
	ExcludeNone ExcludeType = iota
	ExcludeNoOthers
	ExcludeCurrentRow
	ExcludeGroup
	ExcludeTies
)

// FrameSpec is a window frame: unit, bounds and optional EXCLUDE.
// When the BETWEEN form is absent, Start alone specifies the frame and End
// is implicitly CurrentRow, matching the window-definition grammar.
type FrameSpec struct {
	StartPos token.Pos
	EndPos   token.Pos
	Unit     FrameUnit
	Start    *FrameBound
	End      *FrameBound
	Exclude  ExcludeType
}

func (f *FrameSpec) Pos() token.Pos { return f.StartPos }

// WindowSpec is a window definition body: PARTITION BY ..., ORDER BY ...,
// and an optional frame. It is either named (via WindowDef, in a SELECT's
// WINDOW clause) or given inline in a FuncExpr's OverClause.
type WindowSpec struct {
	StartPos    token.Pos
	EndPos      token.Pos
	BaseWindow  string // "name AS (...)" extending another window, if given
	PartitionBy []Expr
	OrderBy     []*OrderByExpr
	Frame       *FrameSpec
}

func (w *WindowSpec) Pos() token.Pos { return w.StartPos }
func (w *WindowSpec) End() token.Pos { return w.EndPos }

// WindowDef is one entry of a SELECT's "WINDOW name AS (...), ..." clause.
type WindowDef struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
	Spec     *WindowSpec
}

func (w *WindowDef) Pos() token.Pos { return w.StartPos }
func (w *WindowDef) End() token.Pos { return w.EndPos }

// Cte is one entry of a WITH clause: name[(columns)] AS (query).
type Cte struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
	Columns  []string
	Query    *SelectStmt
}

func (c *Cte) Pos() token.Pos { return c.StartPos }
func (c *Cte) End() token.Pos { return c.EndPos }

// WithClause is "WITH [RECURSIVE] cte (, cte)*", prefixing SELECT, INSERT,
// UPDATE or DELETE.
type WithClause struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Recursive bool
	Ctes      []*Cte
}

func (w *WithClause) Pos() token.Pos { return w.StartPos }
func (w *WithClause) End() token.Pos { return w.EndPos }

// SetOp is the operator joining two select-cores in a compound SELECT.
type SetOp int

const (
	SetUnion SetOp = iota
	SetUnionAll
	SetIntersect
	SetExcept
)

// SelectCore is the closed sum of the two select-core forms: an ordinary
// SELECT body, or a VALUES list.
type SelectCore interface {
	Node
	selectCoreNode()
}

// SelectBody is the "SELECT [DISTINCT|ALL] columns [FROM ...] [WHERE ...]
// [GROUP BY ... [HAVING ...]] [WINDOW ...]" select-core.
type SelectBody struct {
	StartPos token.Pos
	EndPos   token.Pos
	Distinct bool
	All      bool
	Columns  []SelectExpr
	From     TableExpr
	Where    Expr
	GroupBy  []Expr
	Having   Expr
	Windows  []*WindowDef
}

func (*SelectBody) selectCoreNode()    {}
func (s *SelectBody) Pos() token.Pos { return s.StartPos }
func (s *SelectBody) End() token.Pos { return s.EndPos }

// ValuesCore is the "VALUES (...), (...), ..." select-core.
type ValuesCore struct {
	StartPos token.Pos
	EndPos   token.Pos
	Rows     [][]Expr
}

func (*ValuesCore) selectCoreNode()    {}
func (v *ValuesCore) Pos() token.Pos { return v.StartPos }
func (v *ValuesCore) End() token.Pos { return v.EndPos }

// CompoundArm is one "UNION [ALL] | INTERSECT | EXCEPT select-core" arm
// following the first select-core of a SelectStmt. The non-empty sequence
// of arms plus the leading Core together realize the left-associative
// CompoundSelect the data model describes.
type CompoundArm struct {
	Op   SetOp
	Core SelectCore
}

// ReturningClause is "RETURNING cols", reusing the result-column grammar.
type ReturningClause struct {
	StartPos token.Pos
	EndPos   token.Pos
	Columns  []SelectExpr
}

func (r *ReturningClause) Pos() token.Pos { return r.StartPos }
func (r *ReturningClause) End() token.Pos { return r.EndPos }
