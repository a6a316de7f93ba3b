// Package parser implements a recursive-descent, precedence-climbing parser
// for the SQLite dialect of SQL. It turns a token stream from lexer into a
// list of ast.Statement, recovering from errors at statement boundaries so
// that one bad statement never prevents the rest of the input from parsing.
package parser

import (
	"fmt"

	"github.com/freeeve/sqlitelang/ast"
	"github.com/freeeve/sqlitelang/lexer"
	"github.com/freeeve/sqlitelang/token"
)

// Parser consumes a token stream and builds statements. It is single-use:
// create one per source text with New.
type Parser struct {
	lex    *lexer.Lexer
	source string

	cur     token.Item
	lastEnd token.Pos // EndPos of the token most recently consumed by advance
	queue   []token.Item

	Diagnostics []token.Diagnostic
}

// New creates a Parser over source, positioned at its first token.
func New(source string) *Parser {
	p := &Parser{lex: lexer.New(source), source: source}
	p.cur = p.lex.Next()
	return p
}

// ParseProgram parses every statement in the source, collecting diagnostics
// for any that fail and resuming after the next statement boundary. It is
// the implementation behind the package-level ParseAll entry point.
func (p *Parser) ParseProgram() []ast.Statement {
	var stmts []ast.Statement
	for p.curIs(token.SEMICOLON) {
		p.advance()
	}
	for !p.curIs(token.EOF) {
		before := len(p.Diagnostics)
		stmt := p.parseStatement()
		if len(p.Diagnostics) > before {
			p.synchronize()
		} else if stmt != nil {
			stmts = append(stmts, stmt)
		}
		for p.curIs(token.SEMICOLON) {
			p.advance()
		}
	}
	p.Diagnostics = append(p.Diagnostics, p.lex.Errors...)
	return stmts
}

var syncKeywords = map[token.Token]bool{
	token.SELECT: true, token.INSERT: true, token.UPDATE: true, token.DELETE: true,
	token.CREATE: true, token.ALTER: true, token.DROP: true, token.BEGIN: true,
	token.COMMIT: true, token.END: true, token.ROLLBACK: true, token.SAVEPOINT: true,
	token.RELEASE: true, token.ATTACH: true, token.DETACH: true, token.ANALYZE: true,
	token.VACUUM: true, token.REINDEX: true, token.EXPLAIN: true, token.PRAGMA: true,
	token.WITH: true, token.REPLACE: true,
}

// synchronize implements the panic-mode recovery contract: advance tokens
// until a ';' at nesting depth zero, a synchronization keyword at depth
// zero, or EOF. It always consumes at least one token, guaranteeing forward
// progress even when the very next token is itself a sync point.
func (p *Parser) synchronize() {
	depth := 0
	for !p.curIs(token.EOF) {
		cur := p.cur.Type
		if depth == 0 && cur == token.SEMICOLON {
			p.advance()
			return
		}
		p.advance()
		switch cur {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			if depth > 0 {
				depth--
			}
		}
		if depth == 0 {
			if p.curIs(token.EOF) || syncKeywords[p.cur.Type] {
				return
			}
		}
	}
}

func (p *Parser) advance() {
	p.lastEnd = p.cur.EndPos
	if len(p.queue) > 0 {
		p.cur = p.queue[0]
		p.queue = p.queue[1:]
		return
	}
	p.cur = p.lex.Next()
}

// peekAt returns the token n positions after cur (n=1 is the immediate
// lookahead token). Statement/clause forks never need more than 3.
func (p *Parser) peekAt(n int) token.Item {
	for len(p.queue) < n {
		p.queue = append(p.queue, p.lex.Next())
	}
	return p.queue[n-1]
}

func (p *Parser) peek() token.Item { return p.peekAt(1) }

func (p *Parser) curIs(t token.Token) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t token.Token) bool { return p.peek().Type == t }

func (p *Parser) curIsIdent() bool { return p.cur.Type == token.IDENT }

// curIdentValue returns the current token's literal text; callers check
// curIsIdent (or a specific keyword) first.
func (p *Parser) curIdentValue() string { return p.cur.Value }

// expect advances past the current token if it matches t, recording a
// diagnostic and leaving the cursor untouched otherwise.
func (p *Parser) expect(t token.Token) bool {
	if p.curIs(t) {
		p.advance()
		return true
	}
	p.errorf(p.cur.StartPos, p.cur.EndPos, "expected %s, got %s", t, p.describeCur())
	return false
}

func (p *Parser) describeCur() string {
	if p.cur.Value != "" {
		return fmt.Sprintf("%s %q", p.cur.Type, p.cur.Value)
	}
	return p.cur.Type.String()
}

func (p *Parser) errorf(start, end token.Pos, format string, args ...any) {
	p.Diagnostics = append(p.Diagnostics, token.Diagnostic{
		Severity: token.SeverityError,
		Message:  fmt.Sprintf(format, args...),
		Start:    start,
		End:      end,
		Source:   p.source,
	})
}

// parseTableName parses "[schema.]name", used for tables, indexes, views
// and triggers alike.
func (p *Parser) parseTableName() *ast.TableName {
	start := p.cur.StartPos
	if !p.curIsIdent() {
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected name, got %s", p.describeCur())
		return nil
	}
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
		return &ast.TableName{StartPos: start, EndPos: p.lastEnd, Schema: first, Name: second}
	}
	return &ast.TableName{StartPos: start, EndPos: p.lastEnd, Schema: "", Name: first}
}

// parseNameList parses "(name, name, ...)".
func (p *Parser) parseNameList() []string {
	if !p.expect(token.LPAREN) {
		return nil
	}
	var names []string
	for {
		if !p.curIsIdent() {
			p.errorf(p.cur.StartPos, p.cur.EndPos, "expected name, got %s", p.describeCur())
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
	p.expect(token.RPAREN)
	return names
}

// parseSignedInt parses an optional leading +/- followed by digits, used
// for type sizes like VARCHAR(n) and VARCHAR(n, m). Overflow saturates
// rather than erroring, since type sizes are never evaluated here.
func (p *Parser) parseSignedInt() (int64, bool) {
	neg := false
	if p.curIs(token.PLUS) {
		p.advance()
	} else if p.curIs(token.MINUS) {
		neg = true
		p.advance()
	}
	if !p.curIs(token.INT) {
		p.errorf(p.cur.StartPos, p.cur.EndPos, "expected integer, got %s", p.describeCur())
		return 0, false
	}
	var v int64
	for i := 0; i < len(p.cur.Value); i++ {
		c := p.cur.Value[i]
		if c < '0' || c > '9' {
			break // hex literal; type sizes are always decimal
		}
		if v > (1<<62)/10 {
			v = 1 << 62
			continue
		}
		v = v*10 + int64(c-'0')
	}
	p.advance()
	if neg {
		v = -v
	}
	return v, true
}

// parseTypeName parses a column/cast type: one or more name words followed
// by an optional (n) or (n, m) size.
func (p *Parser) parseTypeName() *ast.TypeName {
	start := p.cur.StartPos
	var words []string
	for p.curIsIdent() {
		words = append(words, p.curIdentValue())
		p.advance()
	}
	t := &ast.TypeName{StartPos: start, Words: words}
	if p.curIs(token.LPAREN) {
		p.advance()
		if n1, ok := p.parseSignedInt(); ok {
			t.Size1 = &n1
		}
		if p.curIs(token.COMMA) {
			p.advance()
			if n2, ok := p.parseSignedInt(); ok {
				t.Size2 = &n2
			}
		}
		p.expect(token.RPAREN)
	}
	t.EndPos = p.lastEnd
	return t
}
