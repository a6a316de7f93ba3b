// Package lexer turns SQLite source text into a stream of tokens with
// source spans, per the mode table in the lexer design notes: NORMAL,
// STRING_SINGLE, STRING_DOUBLE, BRACKET_IDENT, BACKTICK_IDENT, LINE_COMMENT,
// BLOCK_COMMENT and BLOB_LITERAL. It never executes or validates SQL; it
// only classifies bytes.
package lexer

import (
	"fmt"
	"strings"

	"github.com/freeeve/sqlitelang/token"
)

// Lexer scans one SQL source string into a stream of token.Item values. It
// is single-use and not safe for concurrent use from multiple goroutines.
type Lexer struct {
	input string
	pos   int // byte offset of the next unread byte
	line  int
	col   int

	peeked    bool
	peekItem  token.Item
	Errors    []token.Diagnostic
}

// New creates a Lexer over input, positioned at its first byte.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1, col: 1}
}

func (l *Lexer) pointer() token.Pos {
	return token.Pos{Offset: l.pos, Line: l.line, Column: l.col}
}

func (l *Lexer) eof() bool { return l.pos >= len(l.input) }

func (l *Lexer) peekByte(offset int) byte {
	i := l.pos + offset
	if i < 0 || i >= len(l.input) {
		return 0
	}
	return l.input[i]
}

func (l *Lexer) advanceByte() byte {
	c := l.input[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *Lexer) errorf(start, end token.Pos, format string, args ...any) {
	l.Errors = append(l.Errors, token.Diagnostic{
		Severity: token.SeverityError,
		Message:  fmt.Sprintf(format, args...),
		Start:    start,
		End:      end,
		Source:   l.input,
	})
}

// Next returns the next token in the stream, consuming it. Past the end of
// input it returns an endless sequence of EOF tokens.
func (l *Lexer) Next() token.Item {
	if l.peeked {
		l.peeked = false
		return l.peekItem
	}
	return l.scan()
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() token.Item {
	if !l.peeked {
		l.peekItem = l.scan()
		l.peeked = true
	}
	return l.peekItem
}

// Tokenize drains the lexer into a slice, including the terminating EOF.
// It is the implementation behind the package-level tokenize debugging
// entry point.
func Tokenize(input string) ([]token.Item, []token.Diagnostic) {
	l := New(input)
	var items []token.Item
	for {
		it := l.Next()
		items = append(items, it)
		if it.Type == token.EOF {
			break
		}
	}
	return items, l.Errors
}

func (l *Lexer) skipTrivia() {
	for !l.eof() {
		c := l.peekByte(0)
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advanceByte()
		case c == '-' && l.peekByte(1) == '-':
			l.advanceByte()
			l.advanceByte()
			for !l.eof() && l.peekByte(0) != '\n' {
				l.advanceByte()
			}
		case c == '/' && l.peekByte(1) == '*':
			start := l.pointer()
			l.advanceByte()
			l.advanceByte()
			closed := false
			for !l.eof() {
				if l.peekByte(0) == '*' && l.peekByte(1) == '/' {
					l.advanceByte()
					l.advanceByte()
					closed = true
					break
				}
				l.advanceByte()
			}
			if !closed {
				l.errorf(start, l.pointer(), "unterminated block comment")
			}
		default:
			return
		}
	}
}

func (l *Lexer) scan() token.Item {
	l.skipTrivia()
	start := l.pointer()
	if l.eof() {
		return token.Item{Type: token.EOF, StartPos: start, EndPos: start}
	}

	c := l.peekByte(0)
	switch {
	case c == '(':
		l.advanceByte()
		return l.simple(token.LPAREN, start)
	case c == ')':
		l.advanceByte()
		return l.simple(token.RPAREN, start)
	case c == ',':
		l.advanceByte()
		return l.simple(token.COMMA, start)
	case c == ';':
		l.advanceByte()
		return l.simple(token.SEMICOLON, start)
	case c == '*':
		l.advanceByte()
		return l.simple(token.ASTERISK, start)
	case c == '+':
		l.advanceByte()
		return l.simple(token.PLUS, start)
	case c == '%':
		l.advanceByte()
		return l.simple(token.PERCENT, start)
	case c == '&':
		l.advanceByte()
		return l.simple(token.AMP, start)
	case c == '~':
		l.advanceByte()
		return l.simple(token.TILDE, start)
	case c == '.':
		if isDigit(l.peekByte(1)) {
			return l.scanNumber(start)
		}
		l.advanceByte()
		return l.simple(token.DOT, start)
	case c == '-':
		return l.scanMinus(start)
	case c == '/':
		l.advanceByte()
		return l.simple(token.SLASH, start)
	case c == '=':
		l.advanceByte()
		if l.peekByte(0) == '=' {
			l.advanceByte()
			return l.finish(token.EQ2, start)
		}
		return l.finish(token.EQ, start)
	case c == '!':
		l.advanceByte()
		if l.peekByte(0) == '=' {
			l.advanceByte()
			return l.finish(token.NEQ, start)
		}
		l.errorf(start, l.pointer(), "stray character %q", "!")
		return token.Item{Type: token.ILLEGAL, Value: "!", StartPos: start, EndPos: l.pointer()}
	case c == '<':
		l.advanceByte()
		switch l.peekByte(0) {
		case '=':
			l.advanceByte()
			return l.finish(token.LTE, start)
		case '>':
			l.advanceByte()
			return l.finish(token.NEQ2, start)
		case '<':
			l.advanceByte()
			return l.finish(token.SHL, start)
		}
		return l.finish(token.LT, start)
	case c == '>':
		l.advanceByte()
		switch l.peekByte(0) {
		case '=':
			l.advanceByte()
			return l.finish(token.GTE, start)
		case '>':
			l.advanceByte()
			return l.finish(token.SHR, start)
		}
		return l.finish(token.GT, start)
	case c == '|':
		l.advanceByte()
		if l.peekByte(0) == '|' {
			l.advanceByte()
			return l.finish(token.CONCAT, start)
		}
		return l.finish(token.PIPE, start)
	case c == '?':
		return l.scanQuestionParam(start)
	case c == ':':
		return l.scanNamedParam(start, ':', token.PARAM)
	case c == '@':
		return l.scanNamedParam(start, '@', token.PARAM)
	case c == '$':
		return l.scanDollarParam(start)
	case c == '\'':
		return l.scanSingleQuoted(start)
	case c == '"':
		return l.scanDoubleQuotedIdent(start)
	case c == '`':
		return l.scanBacktickIdent(start)
	case c == '[':
		return l.scanBracketIdent(start)
	case (c == 'x' || c == 'X') && l.peekByte(1) == '\'':
		return l.scanBlob(start)
	case isDigit(c):
		return l.scanNumber(start)
	case isIdentStart(c):
		return l.scanIdent(start)
	default:
		l.advanceByte()
		l.errorf(start, l.pointer(), "stray character %q", string(c))
		return token.Item{Type: token.ILLEGAL, Value: string(c), StartPos: start, EndPos: l.pointer()}
	}
}

func (l *Lexer) simple(t token.Token, start token.Pos) token.Item {
	return token.Item{Type: t, Value: t.String(), StartPos: start, EndPos: l.pointer()}
}

func (l *Lexer) finish(t token.Token, start token.Pos) token.Item {
	end := l.pointer()
	return token.Item{Type: t, Value: l.input[start.Offset:end.Offset], StartPos: start, EndPos: end}
}

// scanMinus disambiguates '-', '--' (line comment, handled in skipTrivia so
// this only ever sees the operator forms), '->' and '->>'.
func (l *Lexer) scanMinus(start token.Pos) token.Item {
	l.advanceByte()
	if l.peekByte(0) == '>' {
		l.advanceByte()
		if l.peekByte(0) == '>' {
			l.advanceByte()
			return l.finish(token.ARROW2, start)
		}
		return l.finish(token.ARROW, start)
	}
	return l.finish(token.MINUS, start)
}

func (l *Lexer) scanQuestionParam(start token.Pos) token.Item {
	l.advanceByte() // '?'
	for isDigit(l.peekByte(0)) {
		l.advanceByte()
	}
	return l.finish(token.PARAM, start)
}

// scanNamedParam handles ':NAME' and '@NAME'. A sigil with no following
// identifier is a stray character: neither form is meaningful alone.
func (l *Lexer) scanNamedParam(start token.Pos, sigil byte, tok token.Token) token.Item {
	l.advanceByte() // sigil
	if !isIdentStart(l.peekByte(0)) {
		end := l.pointer()
		l.errorf(start, end, "stray character %q", string(sigil))
		return token.Item{Type: token.ILLEGAL, Value: string(sigil), StartPos: start, EndPos: end}
	}
	for isIdentChar(l.peekByte(0)) {
		l.advanceByte()
	}
	return l.finish(tok, start)
}

// scanDollarParam handles '$NAME' plus tcl-style '::name' and '(...)'
// suffixes, which are consumed verbatim as part of the parameter's text.
func (l *Lexer) scanDollarParam(start token.Pos) token.Item {
	l.advanceByte() // '$'
	if !isIdentStart(l.peekByte(0)) {
		end := l.pointer()
		l.errorf(start, end, "stray character %q", "$")
		return token.Item{Type: token.ILLEGAL, Value: "$", StartPos: start, EndPos: end}
	}
	for isIdentChar(l.peekByte(0)) {
		l.advanceByte()
	}
	for {
		if l.peekByte(0) == ':' && l.peekByte(1) == ':' && isIdentStart(l.peekByte(2)) {
			l.advanceByte()
			l.advanceByte()
			for isIdentChar(l.peekByte(0)) {
				l.advanceByte()
			}
			continue
		}
		if l.peekByte(0) == '(' {
			depth := 0
			for !l.eof() {
				c := l.peekByte(0)
				l.advanceByte()
				if c == '(' {
					depth++
				} else if c == ')' {
					depth--
					if depth == 0 {
						break
					}
				}
			}
			continue
		}
		break
	}
	return l.finish(token.PARAM, start)
}

func (l *Lexer) scanIdent(start token.Pos) token.Item {
	for isIdentChar(l.peekByte(0)) {
		l.advanceByte()
	}
	end := l.pointer()
	text := l.input[start.Offset:end.Offset]
	return token.Item{Type: token.LookupIdent(text), Value: text, StartPos: start, EndPos: end}
}

func (l *Lexer) scanNumber(start token.Pos) token.Item {
	isFloat := false
	if l.peekByte(0) == '0' && (l.peekByte(1) == 'x' || l.peekByte(1) == 'X') {
		l.advanceByte()
		l.advanceByte()
		for isHexDigit(l.peekByte(0)) {
			l.advanceByte()
		}
		return l.finish(token.INT, start)
	}
	for isDigit(l.peekByte(0)) {
		l.advanceByte()
	}
	if l.peekByte(0) == '.' && isDigit(l.peekByte(1)) || (l.peekByte(0) == '.' && l.pos > start.Offset) {
		isFloat = true
		l.advanceByte()
		for isDigit(l.peekByte(0)) {
			l.advanceByte()
		}
	}
	if l.peekByte(0) == 'e' || l.peekByte(0) == 'E' {
		save := l.pos
		saveLine, saveCol := l.line, l.col
		l.advanceByte()
		if l.peekByte(0) == '+' || l.peekByte(0) == '-' {
			l.advanceByte()
		}
		if isDigit(l.peekByte(0)) {
			isFloat = true
			for isDigit(l.peekByte(0)) {
				l.advanceByte()
			}
		} else {
			l.pos, l.line, l.col = save, saveLine, saveCol
		}
	}
	if isFloat {
		return l.finish(token.FLOAT, start)
	}
	return l.finish(token.INT, start)
}

// scanSingleQuoted implements STRING_SINGLE: '' is an embedded single quote;
// there is no backslash-escape syntax in SQLite string literals.
func (l *Lexer) scanSingleQuoted(start token.Pos) token.Item {
	l.advanceByte() // opening '
	var b strings.Builder
	for {
		if l.eof() {
			l.errorf(start, l.pointer(), "unterminated string literal")
			return token.Item{Type: token.ILLEGAL, Value: b.String(), StartPos: start, EndPos: l.pointer()}
		}
		c := l.peekByte(0)
		if c == '\'' {
			if l.peekByte(1) == '\'' {
				l.advanceByte()
				l.advanceByte()
				b.WriteByte('\'')
				continue
			}
			l.advanceByte()
			break
		}
		b.WriteByte(c)
		l.advanceByte()
	}
	return token.Item{Type: token.STRING, Value: b.String(), StartPos: start, EndPos: l.pointer()}
}

// scanDoubleQuotedIdent implements STRING_DOUBLE: always a delimited
// identifier here — SQLite's historical double-quote-as-string fallback is
// not attempted, per the lexer design notes.
func (l *Lexer) scanDoubleQuotedIdent(start token.Pos) token.Item {
	l.advanceByte() // opening "
	var b strings.Builder
	for {
		if l.eof() {
			l.errorf(start, l.pointer(), "unterminated delimited identifier")
			return token.Item{Type: token.ILLEGAL, Value: b.String(), StartPos: start, EndPos: l.pointer()}
		}
		c := l.peekByte(0)
		if c == '"' {
			if l.peekByte(1) == '"' {
				l.advanceByte()
				l.advanceByte()
				b.WriteByte('"')
				continue
			}
			l.advanceByte()
			break
		}
		b.WriteByte(c)
		l.advanceByte()
	}
	return token.Item{Type: token.IDENT, Value: b.String(), StartPos: start, EndPos: l.pointer()}
}

// scanBacktickIdent implements BACKTICK_IDENT, with a doubled backtick as
// the embedded-backtick escape, mirroring the double-quote form.
func (l *Lexer) scanBacktickIdent(start token.Pos) token.Item {
	l.advanceByte() // opening `
	var b strings.Builder
	for {
		if l.eof() {
			l.errorf(start, l.pointer(), "unterminated delimited identifier")
			return token.Item{Type: token.ILLEGAL, Value: b.String(), StartPos: start, EndPos: l.pointer()}
		}
		c := l.peekByte(0)
		if c == '`' {
			if l.peekByte(1) == '`' {
				l.advanceByte()
				l.advanceByte()
				b.WriteByte('`')
				continue
			}
			l.advanceByte()
			break
		}
		b.WriteByte(c)
		l.advanceByte()
	}
	return token.Item{Type: token.IDENT, Value: b.String(), StartPos: start, EndPos: l.pointer()}
}

// scanBracketIdent implements BRACKET_IDENT: SQLite has no array types, so
// unlike dialects with subscript syntax, '[' always begins a delimited
// identifier and ends at the next ']', with no escapes.
func (l *Lexer) scanBracketIdent(start token.Pos) token.Item {
	l.advanceByte() // opening [
	contentStart := l.pos
	for !l.eof() && l.peekByte(0) != ']' {
		l.advanceByte()
	}
	text := l.input[contentStart:l.pos]
	if l.eof() {
		l.errorf(start, l.pointer(), "unterminated delimited identifier")
		return token.Item{Type: token.ILLEGAL, Value: text, StartPos: start, EndPos: l.pointer()}
	}
	l.advanceByte() // closing ]
	return token.Item{Type: token.IDENT, Value: text, StartPos: start, EndPos: l.pointer()}
}

// scanBlob implements BLOB_LITERAL: X'...'/x'...' with hex digits only; an
// odd digit count is rejected but still produces a token so the parser can
// keep going.
func (l *Lexer) scanBlob(start token.Pos) token.Item {
	l.advanceByte() // X or x
	l.advanceByte() // opening '
	contentStart := l.pos
	for !l.eof() && l.peekByte(0) != '\'' {
		l.advanceByte()
	}
	hex := l.input[contentStart:l.pos]
	if l.eof() {
		l.errorf(start, l.pointer(), "unterminated blob literal")
		return token.Item{Type: token.ILLEGAL, Value: hex, StartPos: start, EndPos: l.pointer()}
	}
	l.advanceByte() // closing '
	end := l.pointer()
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			l.errorf(start, end, "invalid hex digit in blob literal")
			return token.Item{Type: token.ILLEGAL, Value: hex, StartPos: start, EndPos: end}
		}
	}
	if len(hex)%2 != 0 {
		l.errorf(start, end, "blob literal has an odd number of hex digits")
		return token.Item{Type: token.ILLEGAL, Value: hex, StartPos: start, EndPos: end}
	}
	return token.Item{Type: token.BLOB, Value: hex, StartPos: start, EndPos: end}
}

func isDigit(c byte) bool    { return c >= '0' && c <= '9' }
func isHexDigit(c byte) bool { return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '$'
}
