package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/querykit/arrayfn/source/err"
	"github.com/querykit/arrayfn/source/settings"
	"github.com/querykit/arrayfn/source/token"
)

type lexer struct {
	runes  *RuneSupplier
	tstart int // the value of char at the start of a token
	lineNo int
	Ers    err.Errors
	source string
}

func NewLexer(source, input string) *lexer {
	return &lexer{
		runes:  NewRuneSupplier([]rune(input)),
		Ers:    []*err.Error{},
		source: source,
		lineNo: 1,
	}
}

// Tokenize lexes the whole of the input. Illegal tokens are included in the chunk, with the error id
// as their literal, and the errors themselves are in Ers.
func (l *lexer) Tokenize() *token.TokenizedCodeChunk {
	tcc := token.NewCodeChunk()
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			return tcc
		}
		tcc.Append(tok)
	}
}

func (l *lexer) NextToken() token.Token {
	l.skipWhitespace()
	l.lineNo, l.tstart = l.runes.Position()
	switch ch := l.runes.CurrentRune(); ch {
	case 0:
		return l.MakeToken(token.EOF, "EOF")
	case ',':
		return l.NewToken(token.COMMA, ",")
	case ':':
		if l.runes.PeekRune() == ':' {
			l.runes.Next()
			return l.NewToken(token.DOUBLECOLON, "::")
		}
		return l.NewToken(token.COLON, ":")
	case '(':
		return l.NewToken(token.LPAREN, "(")
	case ')':
		return l.NewToken(token.RPAREN, ")")
	case '[':
		return l.NewToken(token.LBRACK, "[")
	case ']':
		return l.NewToken(token.RBRACK, "]")
	case '{':
		return l.NewToken(token.LBRACE, "{")
	case '}':
		return l.NewToken(token.RBRACE, "}")
	case '"', '\'':
		s, errorId, arg := l.runes.ReadString()
		if errorId != "" {
			return l.Throw(errorId, arg)
		}
		return l.NewToken(token.STRING, s)
	}

	if IsDigit(l.runes.CurrentRune()) || (l.runes.CurrentRune() == '-' && IsDigit(l.runes.PeekRune())) {
		return l.lexNumber()
	}

	if IsLetter(l.runes.CurrentRune()) || IsUnderscore(l.runes.CurrentRune()) {
		lit := l.runes.ReadIdentifier()
		return l.NewToken(token.LookupIdent(lit), lit)
	}

	// Or we have nothing recognizable.
	return l.Throw("lex/char", string(l.runes.CurrentRune()))
}

func (l *lexer) lexNumber() token.Token {
	numString := l.runes.ReadNumber()
	if body, ok := strings.CutSuffix(numString, "dec"); ok {
		if _, e := strconv.ParseFloat(body, 64); e == nil {
			return l.NewToken(token.DECIMAL, body)
		}
		return l.Throw("lex/number", numString)
	}
	if _, e := strconv.ParseInt(numString, 10, 64); e == nil {
		return l.NewToken(token.INT, numString)
	} else if e.(*strconv.NumError).Err == strconv.ErrRange {
		// Too big for an int, but a float would lose digits.
		return l.NewToken(token.DECIMAL, numString)
	}
	if _, e := strconv.ParseFloat(numString, 64); e == nil && !strings.ContainsAny(numString, "xXpP_") {
		return l.NewToken(token.FLOAT, numString)
	}
	return l.Throw("lex/number", numString)
}

func (l *lexer) skipWhitespace() {
	for IsWhitespace(l.runes.CurrentRune()) {
		l.runes.Next()
	}
}

func IsWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func IsLetter(ch rune) bool {
	return unicode.IsLetter(ch)
}

func IsDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func IsUnderscore(ch rune) bool {
	return ch == '_'
}

func (l *lexer) NewToken(tokenType token.TokenType, st string) token.Token {
	l.runes.Next()
	return l.MakeToken(tokenType, st)
}

func (l *lexer) MakeToken(tokenType token.TokenType, st string) token.Token {
	if settings.SHOW_LEXER {
		fmt.Println(tokenType, st)
	}
	_, chNo := l.runes.Position()
	return token.Token{Type: tokenType, Literal: st, Source: l.source, Line: l.lineNo, ChStart: l.tstart, ChEnd: chNo}
}

func (l *lexer) Throw(errorId string, args ...any) token.Token {
	tok := l.NewToken(token.ILLEGAL, errorId)
	l.Ers = err.Throw(errorId, l.Ers, &tok, args...)
	return tok
}
