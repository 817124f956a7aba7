package token

import (
	"fmt"
)

// A TokenizedCodeChunk is a buffer of tokens with a read position, which the parser walks through.
type TokenizedCodeChunk struct {
	position int
	code     []Token
}

func NewCodeChunk() *TokenizedCodeChunk {
	tcc := &TokenizedCodeChunk{
		position: -1,
		code:     []Token{},
	}
	return tcc
}

func (tcc *TokenizedCodeChunk) Append(tokenToAppend Token) {
	tcc.code = append(tcc.code, tokenToAppend)
}

func (tcc *TokenizedCodeChunk) Length() int {
	return len(tcc.code)
}

// NextToken advances the read position. Past the end of the chunk it keeps returning an EOF token
// positioned at the last real token.
func (tcc *TokenizedCodeChunk) NextToken() Token {
	if tcc.position+1 < len(tcc.code) {
		tcc.position++
		return tcc.code[tcc.position]
	}
	return tcc.eof()
}

// PeekToken returns the token after the current one without advancing.
func (tcc *TokenizedCodeChunk) PeekToken() Token {
	if tcc.position+1 < len(tcc.code) {
		return tcc.code[tcc.position+1]
	}
	return tcc.eof()
}

func (tcc *TokenizedCodeChunk) eof() Token {
	if len(tcc.code) == 0 {
		return Token{Type: EOF, Literal: "EOF", Line: 1}
	}
	last := tcc.code[len(tcc.code)-1]
	return Token{Type: EOF, Literal: "EOF",
		Line: last.Line, ChStart: last.ChEnd, ChEnd: last.ChEnd, Source: last.Source}
}

func (tcc *TokenizedCodeChunk) String() string {
	output := ""
	for _, tok := range tcc.code {
		output = output + fmt.Sprintf("%v\n", tok)
	}
	return output + "\n"
}

func (tcc *TokenizedCodeChunk) ToStart() {
	tcc.position = -1
}
