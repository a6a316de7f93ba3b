package ast

import "github.com/freeeve/sqlitelang/token"

// ColName is an identifier reference, optionally qualified up to
// schema.table.column (spec: every QualifiedIdentifier has 2–3 parts; a bare
// Identifier is the 1-part case of the same node).
type ColName struct {
	StartPos token.Pos
	EndPos   token.Pos
	Parts    []string
}

func (*ColName) exprNode()        {}
func (c *ColName) Pos() token.Pos { return c.StartPos }
func (c *ColName) End() token.Pos { return c.EndPos }

// Name returns the column/identifier itself (the last part).
func (c *ColName) Name() string {
	if len(c.Parts) == 0 {
		return ""
	}
	return c.Parts[len(c.Parts)-1]
}

// Table returns the table qualifier, or "" if unqualified.
func (c *ColName) Table() string {
	if len(c.Parts) < 2 {
		return ""
	}
	return c.Parts[len(c.Parts)-2]
}

// Schema returns the schema qualifier, or "" if not given.
func (c *ColName) Schema() string {
	if len(c.Parts) < 3 {
		return ""
	}
	return c.Parts[len(c.Parts)-3]
}

// LiteralType distinguishes the literal forms listed in the data model:
// numbers, strings, blobs, NULL, booleans and the CURRENT_* time literals.
type LiteralType int

const (
	LiteralNull LiteralType = iota
	LiteralInt
	LiteralFloat
	LiteralString
	LiteralBlob
	LiteralBool
	LiteralCurrentDate
	LiteralCurrentTime
	LiteralCurrentTimestamp
)

// Literal is a constant value. Value holds the decoded text: for strings
// and blobs, quotes/escapes are already resolved; for numbers, the original
// numeral text is preserved verbatim (the lexer does not evaluate it).
type Literal struct {
	StartPos token.Pos
	EndPos   token.Pos
	Type     LiteralType
	Value    string
}

func (*Literal) exprNode()        {}
func (l *Literal) Pos() token.Pos { return l.StartPos }
func (l *Literal) End() token.Pos { return l.EndPos }

// ParamForm distinguishes SQLite's four bind-parameter spellings.
type ParamForm int

const (
	ParamQuestion ParamForm = iota // ?
	ParamIndexed                   // ?N
	ParamColon                     // :name
	ParamAt                        // @name
	ParamDollar                    // $name, with tcl-style suffixes
)

// Param is a bind parameter.
type Param struct {
	StartPos token.Pos
	EndPos   token.Pos
	Form     ParamForm
	Name     string // for :name, @name, $name (sigil stripped)
	Index    int    // for ?N; 0 for bare ?
	Raw      string // original lexeme, including sigil and any suffixes
}

func (*Param) exprNode()        {}
func (p *Param) Pos() token.Pos { return p.StartPos }
func (p *Param) End() token.Pos { return p.EndPos }

// BinaryExpr is a left-associative binary operation, built by the
// precedence-climbing expression parser.
type BinaryExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Op       token.Token
	Left     Expr
	Right    Expr
}

func (*BinaryExpr) exprNode()        {}
func (b *BinaryExpr) Pos() token.Pos { return b.StartPos }
func (b *BinaryExpr) End() token.Pos { return b.EndPos }

// UnaryExpr is a prefix operation: NOT, -, +, ~.
type UnaryExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Op       token.Token
	Operand  Expr
}

func (*UnaryExpr) exprNode()        {}
func (u *UnaryExpr) Pos() token.Pos { return u.StartPos }
func (u *UnaryExpr) End() token.Pos { return u.EndPos }

// ParenExpr is a parenthesized expression, kept as its own node (rather than
// collapsed away) so that spans stay faithful to the source.
type ParenExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
}

func (*ParenExpr) exprNode()        {}
func (p *ParenExpr) Pos() token.Pos { return p.StartPos }
func (p *ParenExpr) End() token.Pos { return p.EndPos }

// RowExpr is a parenthesized row value: (expr, expr, ...). It shows up on
// the left of a multi-assignment UPDATE SET target and in row-value IN
// comparisons.
type RowExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Values   []Expr
}

func (*RowExpr) exprNode()        {}
func (r *RowExpr) Pos() token.Pos { return r.StartPos }
func (r *RowExpr) End() token.Pos { return r.EndPos }

// OverClause is a window-function OVER reference: either a bare name
// pointing at a WINDOW clause definition, or an inline window definition.
type OverClause struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string      // non-empty for "OVER name"
	Def      *WindowSpec // non-nil for "OVER (...)"
}

func (o *OverClause) Pos() token.Pos { return o.StartPos }
func (o *OverClause) End() token.Pos { return o.EndPos }

// FuncExpr is a function call, optionally a window function (via Over) or
// an aggregate (via Distinct/Filter/OrderBy). Per the global invariant, a
// FuncExpr with Over set must not also have Distinct set.
type FuncExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
	Star     bool // count(*)
	Distinct bool
	Args     []Expr
	OrderBy  []*OrderByExpr
	Filter   Expr
	Over     *OverClause
}

func (*FuncExpr) exprNode()        {}
func (f *FuncExpr) Pos() token.Pos { return f.StartPos }
func (f *FuncExpr) End() token.Pos { return f.EndPos }

// CastExpr is CAST(expr AS typename).
type CastExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
	Type     *TypeName
}

func (*CastExpr) exprNode()        {}
func (c *CastExpr) Pos() token.Pos { return c.StartPos }
func (c *CastExpr) End() token.Pos { return c.EndPos }

// When is one WHEN ... THEN ... arm of a CaseExpr.
type When struct {
	Cond   Expr
	Result Expr
}

// CaseExpr is CASE [operand] WHEN ... THEN ... [ELSE ...] END.
type CaseExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Operand  Expr // nil for the searched form
	Whens    []*When
	Else     Expr
}

func (*CaseExpr) exprNode()        {}
func (c *CaseExpr) Pos() token.Pos { return c.StartPos }
func (c *CaseExpr) End() token.Pos { return c.EndPos }

// InExpr is [NOT] IN against a value list, a subquery, or a bare table name.
// Per the global invariant, exactly one of Values, Select or Table is set
// (Values may be a non-nil empty slice for "IN ()").
type InExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
	Not      bool
	Values   []Expr
	Select   *SelectStmt
	Table    *TableName
}

func (*InExpr) exprNode()        {}
func (i *InExpr) Pos() token.Pos { return i.StartPos }
func (i *InExpr) End() token.Pos { return i.EndPos }

// BetweenExpr is [NOT] BETWEEN low AND high. Low and High are parsed at a
// precedence tight enough that neither can itself contain a top-level AND.
type BetweenExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Expr     Expr
	Not      bool
	Low      Expr
	High     Expr
}

func (*BetweenExpr) exprNode()        {}
func (b *BetweenExpr) Pos() token.Pos { return b.StartPos }
func (b *BetweenExpr) End() token.Pos { return b.EndPos }

// MatchOp distinguishes the four pattern-matching operators that share a
// precedence level: LIKE, GLOB, MATCH, REGEXP.
type MatchOp int

const (
	MatchLike MatchOp = iota
	MatchGlob
	MatchMatch
	MatchRegexp
)

// LikeExpr is [NOT] LIKE/GLOB/MATCH/REGEXP, with an optional ESCAPE clause
// (meaningful only for LIKE, but stored uniformly).
type LikeExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Op       MatchOp
	Expr     Expr
	Pattern  Expr
	Not      bool
	Escape   Expr
}

func (*LikeExpr) exprNode()        {}
func (l *LikeExpr) Pos() token.Pos { return l.StartPos }
func (l *LikeExpr) End() token.Pos { return l.EndPos }

// IsExpr covers IS [NOT] [DISTINCT FROM] expr, plus the ISNULL/NOTNULL/IS
// NULL postfix forms, which are normalized to Right being a NULL literal.
type IsExpr struct {
	StartPos     token.Pos
	EndPos       token.Pos
	Expr         Expr
	Not          bool
	DistinctFrom bool
	Right        Expr
}

func (*IsExpr) exprNode()        {}
func (i *IsExpr) Pos() token.Pos { return i.StartPos }
func (i *IsExpr) End() token.Pos { return i.EndPos }

// Subquery is a parenthesized SELECT used as an expression or as a table
// reference (it satisfies both Expr and TableExpr).
type Subquery struct {
	StartPos token.Pos
	EndPos   token.Pos
	Select   *SelectStmt
}

func (*Subquery) exprNode()        {}
func (*Subquery) tableExprNode()   {}
func (s *Subquery) Pos() token.Pos { return s.StartPos }
func (s *Subquery) End() token.Pos { return s.EndPos }

// ExistsExpr is [NOT] EXISTS (subquery).
type ExistsExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Not      bool
	Subquery *Subquery
}

func (*ExistsExpr) exprNode()        {}
func (e *ExistsExpr) Pos() token.Pos { return e.StartPos }
func (e *ExistsExpr) End() token.Pos { return e.EndPos }

// CollateExpr is the postfix "expr COLLATE name" form.
type CollateExpr struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Expr      Expr
	Collation string
}

func (*CollateExpr) exprNode()        {}
func (c *CollateExpr) Pos() token.Pos { return c.StartPos }
func (c *CollateExpr) End() token.Pos { return c.EndPos }

// RaiseAction is the action keyword inside a RAISE(...) call.
type RaiseAction int

const (
	RaiseIgnore RaiseAction = iota
	RaiseRollback
	RaiseAbort
	RaiseFail
)

// RaiseExpr is RAISE(IGNORE | ROLLBACK|ABORT|FAIL, message), a primary
// expression form valid only inside trigger bodies.
type RaiseExpr struct {
	StartPos token.Pos
	EndPos   token.Pos
	Action   RaiseAction
	Message  string // empty for RAISE(IGNORE)
}

func (*RaiseExpr) exprNode()        {}
func (r *RaiseExpr) Pos() token.Pos { return r.StartPos }
func (r *RaiseExpr) End() token.Pos { return r.EndPos }
