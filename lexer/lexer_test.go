package lexer

import (
	"testing"

	"github.com/freeeve/sqlitelang/token"
)

func TestLexerBasicTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Token
	}{
		{
			input:    "SELECT * FROM users",
			expected: []token.Token{token.SELECT, token.ASTERISK, token.FROM, token.IDENT, token.EOF},
		},
		{
			input: "SELECT id, name FROM users WHERE id = 1",
			expected: []token.Token{
				token.SELECT, token.IDENT, token.COMMA, token.IDENT, token.FROM, token.IDENT,
				token.WHERE, token.IDENT, token.EQ, token.INT, token.EOF,
			},
		},
		{
			input:    "a != b <> c",
			expected: []token.Token{token.IDENT, token.NEQ, token.IDENT, token.NEQ2, token.IDENT, token.EOF},
		},
		{
			input:    "a || b",
			expected: []token.Token{token.IDENT, token.CONCAT, token.IDENT, token.EOF},
		},
	}

	for _, tt := range tests {
		items, diags := Tokenize(tt.input)
		if len(diags) != 0 {
			t.Fatalf("Tokenize(%q) produced diagnostics: %v", tt.input, diags)
		}
		if len(items) != len(tt.expected) {
			t.Fatalf("Tokenize(%q): got %d tokens, want %d: %v", tt.input, len(items), len(tt.expected), items)
		}
		for i, want := range tt.expected {
			if items[i].Type != want {
				t.Errorf("Tokenize(%q)[%d] = %v, want %v", tt.input, i, items[i].Type, want)
			}
		}
	}
}

func TestLexerLiterals(t *testing.T) {
	tests := []struct {
		input     string
		wantType  token.Token
		wantValue string
	}{
		{"123", token.INT, "123"},
		{"0x1F", token.INT, "0x1F"},
		{"1.5", token.FLOAT, "1.5"},
		{"1e10", token.FLOAT, "1e10"},
		{"'it''s'", token.STRING, "it's"},
		{"X'ABCD'", token.BLOB, "ABCD"},
		{`"quoted ident"`, token.IDENT, "quoted ident"},
		{"`backtick`", token.IDENT, "backtick"},
		{"[bracket]", token.IDENT, "bracket"},
		{"?", token.PARAM, "?"},
		{"?7", token.PARAM, "?7"},
		{":name", token.PARAM, ":name"},
		{"@name", token.PARAM, "@name"},
		{"$name", token.PARAM, "$name"},
	}

	for _, tt := range tests {
		items, diags := Tokenize(tt.input)
		if len(diags) != 0 {
			t.Fatalf("Tokenize(%q) produced diagnostics: %v", tt.input, diags)
		}
		if len(items) != 2 {
			t.Fatalf("Tokenize(%q): got %d tokens, want 2 (literal + EOF): %v", tt.input, len(items), items)
		}
		if items[0].Type != tt.wantType {
			t.Errorf("Tokenize(%q) type = %v, want %v", tt.input, items[0].Type, tt.wantType)
		}
		if items[0].Value != tt.wantValue {
			t.Errorf("Tokenize(%q) value = %q, want %q", tt.input, items[0].Value, tt.wantValue)
		}
	}
}

func TestLexerKeywordsAreCaseInsensitive(t *testing.T) {
	for _, input := range []string{"select", "Select", "SELECT", "sElEcT"} {
		items, diags := Tokenize(input)
		if len(diags) != 0 {
			t.Fatalf("Tokenize(%q) produced diagnostics: %v", input, diags)
		}
		if len(items) != 2 || items[0].Type != token.SELECT {
			t.Errorf("Tokenize(%q) = %v, want a single SELECT token", input, items)
		}
	}
}

func TestLexerIdentifierKeeping(t *testing.T) {
	items, diags := Tokenize("my_table2 $foo")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if items[0].Type != token.IDENT || items[0].Value != "my_table2" {
		t.Fatalf("got %+v, want IDENT my_table2", items[0])
	}
}

func TestLexerUnterminatedStringIsDiagnostic(t *testing.T) {
	_, diags := Tokenize("'unterminated")
	if len(diags) == 0 {
		t.Fatalf("expected a diagnostic for an unterminated string literal")
	}
	if diags[0].Severity != token.SeverityError {
		t.Errorf("got severity %v, want SeverityError", diags[0].Severity)
	}
}

func TestLexerPositions(t *testing.T) {
	items, _ := Tokenize("SELECT\n  id")
	// id is on line 2, starting at column 3.
	var id token.Item
	for _, it := range items {
		if it.Type == token.IDENT {
			id = it
			break
		}
	}
	if id.StartPos.Line != 2 || id.StartPos.Column != 3 {
		t.Errorf("id position = %v, want line 2 column 3", id.StartPos)
	}
}
