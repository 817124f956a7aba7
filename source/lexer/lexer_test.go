package lexer

import (
	"testing"

	"github.com/querykit/arrayfn/source/token"
)

func TestCallSyntax(t *testing.T) {
	input := `array::sort::desc([1, -2.5, 3e2, 4.25dec], "desc")`
	items := []testItem{
		{token.IDENT, "array", 1},
		{token.DOUBLECOLON, "::", 1},
		{token.IDENT, "sort", 1},
		{token.DOUBLECOLON, "::", 1},
		{token.IDENT, "desc", 1},
		{token.LPAREN, "(", 1},
		{token.LBRACK, "[", 1},
		{token.INT, "1", 1},
		{token.COMMA, ",", 1},
		{token.FLOAT, "-2.5", 1},
		{token.COMMA, ",", 1},
		{token.FLOAT, "3e2", 1},
		{token.COMMA, ",", 1},
		{token.DECIMAL, "4.25", 1},
		{token.RBRACK, "]", 1},
		{token.COMMA, ",", 1},
		{token.STRING, "desc", 1},
		{token.RPAREN, ")", 1},
		{token.EOF, "EOF", 1},
	}
	testLexingString(t, input, items)
}

func TestLiterals(t *testing.T) {
	input := `{a: true, 'b c': NULL}
NONE false _x9 "tab\there"`
	items := []testItem{
		{token.LBRACE, "{", 1},
		{token.IDENT, "a", 1},
		{token.COLON, ":", 1},
		{token.TRUE, "true", 1},
		{token.COMMA, ",", 1},
		{token.STRING, "b c", 1},
		{token.COLON, ":", 1},
		{token.NULL, "NULL", 1},
		{token.RBRACE, "}", 1},
		{token.NONE, "NONE", 2},
		{token.FALSE, "false", 2},
		{token.IDENT, "_x9", 2},
		{token.STRING, "tab\there", 2},
		{token.EOF, "EOF", 2},
	}
	testLexingString(t, input, items)
}

func TestErrors(t *testing.T) {
	input := `1.5x ? "abc`
	items := []testItem{
		{token.ILLEGAL, "lex/number", 1},
		{token.ILLEGAL, "lex/char", 1},
		{token.ILLEGAL, "lex/string/term", 1},
		{token.EOF, "EOF", 1},
	}
	l := NewLexer("dummy source", input)
	runTest(t, l, items)
	if len(l.Ers) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(l.Ers))
	}
	if l.Ers[1].Args[0] != "?" {
		t.Fatalf("expected the error to blame '?', got %v", l.Ers[1].Args[0])
	}
}

func TestIntegersTooBigForInt64AreDecimals(t *testing.T) {
	input := `9223372036854775807 99999999999999999999 -99999999999999999999`
	items := []testItem{
		{token.INT, "9223372036854775807", 1},
		{token.DECIMAL, "99999999999999999999", 1},
		{token.DECIMAL, "-99999999999999999999", 1},
		{token.EOF, "EOF", 1},
	}
	testLexingString(t, input, items)
}

func TestBadEscape(t *testing.T) {
	l := NewLexer("dummy source", `"a\qb"`)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL || tok.Literal != "lex/string/escape" {
		t.Fatalf("expected an escape error, got %v %q", tok.Type, tok.Literal)
	}
}

func TestPositions(t *testing.T) {
	l := NewLexer("dummy source", `f(  [12])`)
	want := [][2]int{{0, 1}, {1, 2}, {4, 5}, {5, 7}, {7, 8}, {8, 9}}
	for i, w := range want {
		tok := l.NextToken()
		if tok.ChStart != w[0] || tok.ChEnd != w[1] {
			t.Fatalf("tests[%d] - position of %q wrong. expected=%v, got=[%d %d]",
				i, tok.Literal, w, tok.ChStart, tok.ChEnd)
		}
	}
}

func TestTokenize(t *testing.T) {
	tcc := NewLexer("dummy source", `len([])`).Tokenize()
	if tcc.Length() != 5 {
		t.Fatalf("expected 5 tokens, got %d:\n%s", tcc.Length(), tcc.String())
	}
}

type testItem struct {
	expectedType    token.TokenType
	expectedLiteral string
	expectedLine    int
}

func testLexingString(t *testing.T, input string, items []testItem) {
	l := NewLexer("dummy source", input)
	runTest(t, l, items)
	if len(l.Ers) != 0 {
		t.Fatalf("unexpected lexer error: %s", l.Ers[0].Message)
	}
}

func runTest(t *testing.T, l *lexer, items []testItem) {
	for i, tt := range items {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q with literal %q, got=%q with literal %q",
				i, tt.expectedType, tt.expectedLiteral, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
		if tok.Line != tt.expectedLine {
			t.Fatalf("tests[%d] - line wrong. expected=%d, got=%d",
				i, tt.expectedLine, tok.Line)
		}
	}
}
