package parser

import (
	"strconv"
	"strings"

	"github.com/freeeve/sqlitelang/ast"
	"github.com/freeeve/sqlitelang/token"
)

// Precedence levels, low to high, matching the SQLite reference's operator
// table. precNone is below every real operator, so passing it as minPrec
// parses a full expression down through OR.
const (
	precNone = iota
	precOr
	precAnd
	precNot
	precEquality
	precRelational
	precBitwise
	precAdditive
	precMultiplicative
	precConcat
	precCollate
	precUnary
	precPrimary
)

// binPrec is the precedence table for plain left-associative binary
// operators; the precedence-climbing loop in parseExpr consults it
// directly. Operators needing extra grammar (NOT IN, BETWEEN, IS, LIKE,
// COLLATE) are handled as explicit suffixes alongside the table lookup.
var binPrec = map[token.Token]int{
	token.OR:  precOr,
	token.AND: precAnd,

	token.EQ:   precEquality,
	token.EQ2:  precEquality,
	token.NEQ:  precEquality,
	token.NEQ2: precEquality,

	token.LT:  precRelational,
	token.GT:  precRelational,
	token.LTE: precRelational,
	token.GTE: precRelational,

	token.AMP:  precBitwise,
	token.PIPE: precBitwise,
	token.SHL:  precBitwise,
	token.SHR:  precBitwise,

	token.PLUS:  precAdditive,
	token.MINUS: precAdditive,

	token.ASTERISK: precMultiplicative,
	token.SLASH:    precMultiplicative,
	token.PERCENT:  precMultiplicative,

	token.CONCAT: precConcat,
	token.ARROW:  precConcat,
	token.ARROW2: precConcat,
}

// parseExpr parses an expression accepting operators at precedence minPrec
// and above, via precedence climbing: one operand, then a loop of binary
// and suffix operators each tested against minPrec.
func (p *Parser) parseExpr(minPrec int) ast.Expr {
	left := p.parseOperand(minPrec)
	if left == nil {
		return nil
	}
	for {
		if prec, ok := binPrec[p.cur.Type]; ok && prec >= minPrec {
			op := p.cur.Type
			p.advance()
			right := p.parseExpr(prec + 1)
			if right == nil {
				return left
			}
			left = &ast.BinaryExpr{StartPos: left.Pos(), EndPos: right.End(), Op: op, Left: left, Right: right}
			continue
		}
		if minPrec <= precEquality {
			if next, ok := p.tryEqualitySuffix(left); ok {
				left = next
				continue
			}
		}
		if minPrec <= precCollate && p.curIs(token.COLLATE) {
			left = p.parseCollateSuffix(left)
			continue
		}
		break
	}
	return left
}

// parseOperand produces the left-hand atom that parseExpr's infix loop
// starts from: a prefix NOT (valid only when minPrec admits level 3), a
// prefix +/-/~, or a primary.
func (p *Parser) parseOperand(minPrec int) ast.Expr {
	if minPrec <= precNot && p.curIs(token.NOT) {
		start := p.cur.StartPos
		p.advance()
		operand := p.parseExpr(precEquality)
		if operand == nil {
			return nil
		}
		return &ast.UnaryExpr{StartPos: start, EndPos: operand.End(), Op: token.NOT, Operand: operand}
	}
	return p.parseUnaryOperand()
}

func (p *Parser) parseUnaryOperand() ast.Expr {
	switch p.cur.Type {
	case token.PLUS, token.MINUS, token.TILDE:
		op := p.cur.Type
		start := p.cur.StartPos
		p.advance()
		operand := p.parseExpr(precUnary)
		if operand == nil {
			return nil
		}
		return &ast.UnaryExpr{StartPos: start, EndPos: operand.End(), Op: op, Operand: operand}
	}
	return p.parsePrimary()
}

// tryEqualitySuffix recognizes the equality-level productions that need a
// parsed left operand first: IS, ISNULL, NOTNULL, IN, BETWEEN, and the
// LIKE/GLOB/MATCH/REGEXP family, each optionally NOT-negated.
func (p *Parser) tryEqualitySuffix(left ast.Expr) (ast.Expr, bool) {
	switch p.cur.Type {
	case token.IS:
		return p.parseIsSuffix(left), true
	case token.ISNULL:
		end := p.cur.EndPos
		p.advance()
		return &ast.IsExpr{StartPos: left.Pos(), EndPos: end, Expr: left, Right: &ast.Literal{Type: ast.LiteralNull}}, true
	case token.NOTNULL:
		end := p.cur.EndPos
		p.advance()
		return &ast.IsExpr{StartPos: left.Pos(), EndPos: end, Expr: left, Not: true, Right: &ast.Literal{Type: ast.LiteralNull}}, true
	case token.IN:
		return p.parseInSuffix(left, false), true
	case token.BETWEEN:
		return p.parseBetweenSuffix(left, false), true
	case token.LIKE:
		return p.parseLikeSuffix(left, ast.MatchLike, false), true
	case token.GLOB:
		return p.parseLikeSuffix(left, ast.MatchGlob, false), true
	case token.MATCH:
		return p.parseLikeSuffix(left, ast.MatchMatch, false), true
	case token.REGEXP:
		return p.parseLikeSuffix(left, ast.MatchRegexp, false), true
	case token.NOT:
		switch p.peek().Type {
		case token.IN:
			p.advance()
			return p.parseInSuffix(left, true), true
		case token.BETWEEN:
			p.advance()
			return p.parseBetweenSuffix(left, true), true
		case token.LIKE:
			p.advance()
			return p.parseLikeSuffix(left, ast.MatchLike, true), true
		case token.GLOB:
			p.advance()
			return p.parseLikeSuffix(left, ast.MatchGlob, true), true
		case token.MATCH:
			p.advance()
			return p.parseLikeSuffix(left, ast.MatchMatch, true), true
		case token.REGEXP:
			p.advance()
			return p.parseLikeSuffix(left, ast.MatchRegexp, true), true
		}
	}
	return left, false
}

func (p *Parser) parseIsSuffix(left ast.Expr) ast.Expr {
	p.advance() // IS
	not := false
	if p.curIs(token.NOT) {
		not = true
		p.advance()
	}
	distinctFrom := false
	if p.curIs(token.DISTINCT) {
		p.advance()
		if p.expect(token.FROM) {
			distinctFrom = true
		}
	}
	right := p.parseExpr(precRelational)
	end := left.Pos()
	if right != nil {
		end = right.End()
	}
	return &ast.IsExpr{StartPos: left.Pos(), EndPos: end, Expr: left, Not: not, DistinctFrom: distinctFrom, Right: right}
}

func (p *Parser) parseInSuffix(left ast.Expr, not bool) ast.Expr {
	start := left.Pos()
	p.advance() // IN
	in := &ast.InExpr{StartPos: start, Expr: left, Not: not}
	if p.curIs(token.LPAREN) {
		p.advance()
		switch {
		case p.curIs(token.SELECT) || p.curIs(token.VALUES) || p.curIs(token.WITH):
			in.Select = p.parseParenSelect()
		case p.curIs(token.RPAREN):
			in.Values = []ast.Expr{}
		default:
			for {
				e := p.parseExpr(precNone)
				if e == nil {
					break
				}
				in.Values = append(in.Values, e)
				if p.curIs(token.COMMA) {
					p.advance()
					continue
				}
				break
			}
		}
		p.expect(token.RPAREN)
	} else {
		in.Table = p.parseTableName()
	}
	in.EndPos = p.lastEnd
	return in
}

func (p *Parser) parseBetweenSuffix(left ast.Expr, not bool) ast.Expr {
	start := left.Pos()
	p.advance() // BETWEEN
	low := p.parseExpr(precRelational)
	p.expect(token.AND)
	high := p.parseExpr(precRelational)
	return &ast.BetweenExpr{StartPos: start, EndPos: p.lastEnd, Expr: left, Not: not, Low: low, High: high}
}

func (p *Parser) parseLikeSuffix(left ast.Expr, op ast.MatchOp, not bool) ast.Expr {
	start := left.Pos()
	p.advance() // LIKE/GLOB/MATCH/REGEXP
	pattern := p.parseExpr(precRelational)
	l := &ast.LikeExpr{StartPos: start, Expr: left, Op: op, Not: not, Pattern: pattern}
	if p.curIs(token.ESCAPE) {
		p.advance()
		l.Escape = p.parseExpr(precRelational)
	}
	l.EndPos = p.lastEnd
	return l
}

func (p *Parser) parseCollateSuffix(left ast.Expr) ast.Expr {
	p.advance() // COLLATE
	if !p.curIsIdent() {
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected collation name, got %s", p.describeCur())
		return left
	}
	name := p.curIdentValue()
	end := p.cur.EndPos
	p.advance()
	return &ast.CollateExpr{StartPos: left.Pos(), EndPos: end, Expr: left, Collation: name}
}

// parsePrimary parses the innermost expression forms: literals, names,
// parameters, parenthesized expressions/rows/subqueries, EXISTS, CASE,
// CAST, function calls, and RAISE.
func (p *Parser) parsePrimary() ast.Expr {
	start := p.cur.StartPos
	switch p.cur.Type {
	case token.INT:
		v, end := p.cur.Value, p.cur.EndPos
		p.advance()
		return &ast.Literal{StartPos: start, EndPos: end, Type: ast.LiteralInt, Value: v}
	case token.FLOAT:
		v, end := p.cur.Value, p.cur.EndPos
		p.advance()
		return &ast.Literal{StartPos: start, EndPos: end, Type: ast.LiteralFloat, Value: v}
	case token.STRING:
		v, end := p.cur.Value, p.cur.EndPos
		p.advance()
		return &ast.Literal{StartPos: start, EndPos: end, Type: ast.LiteralString, Value: v}
	case token.BLOB:
		v, end := p.cur.Value, p.cur.EndPos
		p.advance()
		return &ast.Literal{StartPos: start, EndPos: end, Type: ast.LiteralBlob, Value: v}
	case token.NULL:
		end := p.cur.EndPos
		p.advance()
		return &ast.Literal{StartPos: start, EndPos: end, Type: ast.LiteralNull}
	case token.CURRENT_DATE:
		end := p.cur.EndPos
		p.advance()
		return &ast.Literal{StartPos: start, EndPos: end, Type: ast.LiteralCurrentDate}
	case token.CURRENT_TIME:
		end := p.cur.EndPos
		p.advance()
		return &ast.Literal{StartPos: start, EndPos: end, Type: ast.LiteralCurrentTime}
	case token.CURRENT_TIMESTAMP:
		end := p.cur.EndPos
		p.advance()
		return &ast.Literal{StartPos: start, EndPos: end, Type: ast.LiteralCurrentTimestamp}
	case token.PARAM:
		return p.parseParam()
	case token.LPAREN:
		return p.parseParenOrSubquery()
	case token.EXISTS:
		return p.parseExists()
	case token.CASE:
		return p.parseCase()
	case token.CAST:
		return p.parseCast()
	case token.RAISE:
		return p.parseRaise()
	case token.IDENT:
		return p.parseIdentOrFuncOrQualified()
	case token.ILLEGAL:
		// The lexer already recorded a diagnostic for this token; don't
		// double-report it here.
		p.advance()
		return nil
	}
	p.errorf(p.cur.StartPos, p.cur.EndPos, "unexpected token %s in expression", p.describeCur())
	return nil
}

func (p *Parser) parseParam() ast.Expr {
	start, end, raw := p.cur.StartPos, p.cur.EndPos, p.cur.Value
	p.advance()
	param := &ast.Param{StartPos: start, EndPos: end, Raw: raw}
	switch raw[0] {
	case '?':
		if len(raw) > 1 {
			param.Form = ast.ParamIndexed
			if idx, err := strconv.Atoi(raw[1:]); err == nil {
				param.Index = idx
			}
		} else {
			param.Form = ast.ParamQuestion
		}
	case ':':
		param.Form = ast.ParamColon
		param.Name = raw[1:]
	case '@':
		param.Form = ast.ParamAt
		param.Name = raw[1:]
	case '$':
		param.Form = ast.ParamDollar
		param.Name = raw[1:]
	}
	return param
}

// parseParenOrSubquery disambiguates "(" followed by a select-core (a
// subquery) from a parenthesized expression or row-value.
func (p *Parser) parseParenOrSubquery() ast.Expr {
	start := p.cur.StartPos
	p.advance() // '('
	if p.curIs(token.SELECT) || p.curIs(token.VALUES) || p.curIs(token.WITH) {
		sel := p.parseParenSelect()
		p.expect(token.RPAREN)
		return &ast.Subquery{StartPos: start, EndPos: p.lastEnd, Select: sel}
	}
	var vals []ast.Expr
	for {
		e := p.parseExpr(precNone)
		if e == nil {
			break
		}
		vals = append(vals, e)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	if len(vals) == 1 {
		return &ast.ParenExpr{StartPos: start, EndPos: p.lastEnd, Expr: vals[0]}
	}
	return &ast.RowExpr{StartPos: start, EndPos: p.lastEnd, Values: vals}
}

func (p *Parser) parseExists() ast.Expr {
	start := p.cur.StartPos
	p.advance() // EXISTS
	p.expect(token.LPAREN)
	sel := p.parseParenSelect()
	p.expect(token.RPAREN)
	sub := &ast.Subquery{StartPos: start, EndPos: p.lastEnd, Select: sel}
	return &ast.ExistsExpr{StartPos: start, EndPos: p.lastEnd, Subquery: sub}
}

func (p *Parser) parseCase() ast.Expr {
	start := p.cur.StartPos
	p.advance() // CASE
	c := &ast.CaseExpr{StartPos: start}
	if !p.curIs(token.WHEN) {
		c.Operand = p.parseExpr(precNone)
	}
	for p.curIs(token.WHEN) {
		p.advance()
		cond := p.parseExpr(precNone)
		p.expect(token.THEN)
		result := p.parseExpr(precNone)
		c.Whens = append(c.Whens, &ast.When{Cond: cond, Result: result})
	}
	if len(c.Whens) == 0 {
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected WHEN, got %s", p.describeCur())
	}
	if p.curIs(token.ELSE) {
		p.advance()
		c.Else = p.parseExpr(precNone)
	}
	p.expect(token.END)
	c.EndPos = p.lastEnd
	return c
}

func (p *Parser) parseCast() ast.Expr {
	start := p.cur.StartPos
	p.advance() // CAST
	p.expect(token.LPAREN)
	expr := p.parseExpr(precNone)
	p.expect(token.AS)
	typ := p.parseTypeName()
	p.expect(token.RPAREN)
	return &ast.CastExpr{StartPos: start, EndPos: p.lastEnd, Expr: expr, Type: typ}
}

func (p *Parser) parseRaise() ast.Expr {
	start := p.cur.StartPos
	p.advance() // RAISE
	p.expect(token.LPAREN)
	var action ast.RaiseAction
	var msg string
	switch p.cur.Type {
	case token.IGNORE:
		action = ast.RaiseIgnore
		p.advance()
	case token.ROLLBACK, token.ABORT, token.FAIL:
		switch p.cur.Type {
		case token.ROLLBACK:
			action = ast.RaiseRollback
		case token.ABORT:
			action = ast.RaiseAbort
		case token.FAIL:
			action = ast.RaiseFail
		}
		p.advance()
		p.expect(token.COMMA)
		if p.curIs(token.STRING) {
			msg = p.cur.Value
			p.advance()
		} else {
			p.errorf(p.cur.StartPos, p.cur.EndPos, "expected message string, got %s", p.describeCur())
		}
	default:
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected IGNORE, ROLLBACK, ABORT or FAIL, got %s", p.describeCur())
	}
	p.expect(token.RPAREN)
	return &ast.RaiseExpr{StartPos: start, EndPos: p.lastEnd, Action: action, Message: msg}
}

// parseIdentOrFuncOrQualified parses a dotted identifier chain, resolving
// to a function call if immediately followed by '('.
func (p *Parser) parseIdentOrFuncOrQualified() ast.Expr {
	start := p.cur.StartPos
	parts := []string{p.curIdentValue()}
	p.advance()
	for p.curIs(token.DOT) {
		if len(parts) == 3 {
			p.errorf(start, p.cur.EndPos, "qualified identifier has more than 3 parts (schema.table.column)")
			break
		}
		p.advance()
		if !p.curIsIdent() {
			p.errorf(p.cur.StartPos, p.cur.EndPos, "expected name after '.', got %s", p.describeCur())
			break
		}
		parts = append(parts, p.curIdentValue())
		p.advance()
	}
	if p.curIs(token.LPAREN) {
		return p.parseFuncCallTail(start, strings.Join(parts, "."))
	}
	return &ast.ColName{StartPos: start, EndPos: p.lastEnd, Parts: parts}
}

func (p *Parser) parseFuncCallTail(start token.Pos, name string) ast.Expr {
	p.advance() // '('
	f := &ast.FuncExpr{StartPos: start, Name: name}
	switch {
	case p.curIs(token.ASTERISK):
		f.Star = true
		p.advance()
	case !p.curIs(token.RPAREN):
		if p.curIs(token.DISTINCT) {
			f.Distinct = true
			p.advance()
		}
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
		if p.curIs(token.ORDER) {
			f.OrderBy = p.parseOrderByList()
		}
	}
	p.expect(token.RPAREN)
	if p.curIs(token.FILTER) {
		p.advance()
		p.expect(token.LPAREN)
		p.expect(token.WHERE)
		f.Filter = p.parseExpr(precNone)
		p.expect(token.RPAREN)
	}
	if p.curIs(token.OVER) {
		f.Over = p.parseOverClause()
	}
	f.EndPos = p.lastEnd
	if f.Over != nil && f.Distinct {
		p.errorf(f.StartPos, f.EndPos, "a window function may not also carry DISTINCT")
	}
	return f
}

func (p *Parser) parseOverClause() *ast.OverClause {
	start := p.cur.StartPos
	p.advance() // OVER
	if p.curIsIdent() {
		name := p.curIdentValue()
		end := p.cur.EndPos
		p.advance()
		return &ast.OverClause{StartPos: start, EndPos: end, Name: name}
	}
	p.expect(token.LPAREN)
	spec := p.parseWindowSpecBody(start)
	p.expect(token.RPAREN)
	return &ast.OverClause{StartPos: start, EndPos: p.lastEnd, Def: spec}
}
