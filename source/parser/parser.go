// Package parser turns a line of text into a tree of function calls and literals.
//
// The grammar is small. An expression is a literal, an array of expressions in square brackets, an
// object in braces, or a call of the form 'name::space::fn(arg, ..., arg)'. There are no operators
// and no variables.
package parser

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/querykit/arrayfn/source/ast"
	"github.com/querykit/arrayfn/source/err"
	"github.com/querykit/arrayfn/source/lexer"
	"github.com/querykit/arrayfn/source/settings"
	"github.com/querykit/arrayfn/source/token"
)

type TokenSupplier interface{ NextToken() token.Token }

type Parser struct {
	TokenizedCode TokenSupplier
	Errors        err.Errors
	curToken      token.Token
	peekToken     token.Token
}

func New() *Parser {
	return &Parser{Errors: []*err.Error{}}
}

func (p *Parser) NextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.TokenizedCode.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek moves on if the next token is of the given type and complains if it isn't.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.NextToken()
		return true
	}
	p.peekError(string(t))
	return false
}

func (p *Parser) peekError(want string) {
	switch p.peekToken.Type {
	case token.EOF:
		p.Throw("parse/eof", &p.peekToken)
	case token.ILLEGAL: // Already reported by the lexer.
	default:
		p.Throw("parse/expected", &p.peekToken, want, p.peekToken.Literal)
	}
}

// ParseLine lexes and parses a line. If there are errors they are in p.Errors, lexer errors first,
// and the node returned should not be evaluated.
func (p *Parser) ParseLine(source, input string) ast.Node {
	p.ClearErrors()
	l := lexer.NewLexer(source, input)
	p.TokenizedCode = l.Tokenize()
	p.Errors = append(p.Errors, l.Ers...)
	result := p.ParseTokenizedChunk()
	if settings.SHOW_PARSER && result != nil {
		fmt.Printf("Parser returns: %v\n\n", result.String())
	}
	return result
}

// ParseTokenizedChunk parses exactly one expression from the token supply.
func (p *Parser) ParseTokenizedChunk() ast.Node {
	p.NextToken()
	p.NextToken()
	result := p.parseExpression()
	if result == nil || p.ErrorsExist() {
		return result
	}
	if !p.peekTokenIs(token.EOF) {
		p.Throw("parse/trailing", &p.peekToken, p.peekToken.Literal)
	}
	return result
}

func (p *Parser) parseExpression() ast.Node {
	switch p.curToken.Type {
	case token.INT:
		return p.parseIntegerLiteral()
	case token.FLOAT:
		return p.parseFloatLiteral()
	case token.DECIMAL:
		return p.parseDecimalLiteral()
	case token.STRING:
		return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	case token.TRUE, token.FALSE:
		return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
	case token.NONE, token.NULL:
		return &ast.Nothing{Token: p.curToken}
	case token.LBRACK:
		return p.parseListExpression()
	case token.LBRACE:
		return p.parseObjectExpression()
	case token.IDENT:
		return p.parseFunctionCall()
	case token.EOF:
		p.Throw("parse/eof", &p.curToken)
	case token.ILLEGAL:
	default:
		p.Throw("parse/expected", &p.curToken, "an expression", p.curToken.Literal)
	}
	return nil
}

func (p *Parser) parseIntegerLiteral() ast.Node {
	lit := &ast.IntegerLiteral{Token: p.curToken}
	value, e := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if e != nil {
		p.Throw("parse/number", &p.curToken, p.curToken.Literal)
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseFloatLiteral() ast.Node {
	lit := &ast.FloatLiteral{Token: p.curToken}
	value, e := strconv.ParseFloat(p.curToken.Literal, 64)
	if e != nil {
		p.Throw("parse/number", &p.curToken, p.curToken.Literal)
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseDecimalLiteral() ast.Node {
	lit := &ast.DecimalLiteral{Token: p.curToken}
	value, e := decimal.NewFromString(p.curToken.Literal)
	if e != nil {
		p.Throw("parse/number", &p.curToken, p.curToken.Literal+"dec")
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseFunctionCall() ast.Node {
	call := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	for p.peekTokenIs(token.DOUBLECOLON) {
		p.NextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		call.Operator = call.Operator + "::" + p.curToken.Literal
	}
	if !p.peekTokenIs(token.LPAREN) {
		p.Throw("parse/ident", &call.Token, call.Operator)
		return nil
	}
	p.NextToken()
	args, ok := p.parseExpressionList(token.RPAREN)
	if !ok {
		return nil
	}
	call.Args = args
	return call
}

func (p *Parser) parseListExpression() ast.Node {
	list := &ast.ListExpression{Token: p.curToken}
	elements, ok := p.parseExpressionList(token.RBRACK)
	if !ok {
		return nil
	}
	list.Elements = elements
	return list
}

// parseExpressionList parses comma-separated expressions up to the closing token. It starts with
// the opening bracket as the current token and finishes on the closing one.
func (p *Parser) parseExpressionList(end token.TokenType) ([]ast.Node, bool) {
	result := []ast.Node{}
	if p.peekTokenIs(end) {
		p.NextToken()
		return result, true
	}
	for {
		p.NextToken()
		exp := p.parseExpression()
		if exp == nil {
			return nil, false
		}
		result = append(result, exp)
		if p.peekTokenIs(end) {
			p.NextToken()
			return result, true
		}
		if !p.expectPeek(token.COMMA) {
			return nil, false
		}
	}
}

func (p *Parser) parseObjectExpression() ast.Node {
	obj := &ast.ObjectExpression{Token: p.curToken, Keys: []string{}, Values: []ast.Node{}}
	if p.peekTokenIs(token.RBRACE) {
		p.NextToken()
		return obj
	}
	for {
		p.NextToken()
		switch p.curToken.Type {
		case token.IDENT, token.STRING, token.TRUE, token.FALSE, token.NONE, token.NULL:
			obj.Keys = append(obj.Keys, p.curToken.Literal)
		case token.EOF:
			p.Throw("parse/eof", &p.curToken)
			return nil
		case token.ILLEGAL:
			return nil
		default:
			p.Throw("parse/key", &p.curToken, p.curToken.Literal)
			return nil
		}
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.NextToken()
		exp := p.parseExpression()
		if exp == nil {
			return nil
		}
		obj.Values = append(obj.Values, exp)
		if p.peekTokenIs(token.RBRACE) {
			p.NextToken()
			return obj
		}
		if !p.expectPeek(token.COMMA) {
			return nil
		}
	}
}

func (p *Parser) Throw(errorID string, tok *token.Token, args ...any) {
	p.Errors = err.Throw(errorID, p.Errors, tok, args...)
}

func (p *Parser) ErrorsExist() bool {
	return len(p.Errors) > 0
}

func (p *Parser) ClearErrors() {
	p.Errors = []*err.Error{}
}
