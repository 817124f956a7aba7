package ast

import (
	"bytes"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/querykit/arrayfn/source/token"
)

// The base Node interface
type Node interface {
	Children() []Node
	GetToken() *token.Token
	String() string
}

type Callable interface {
	Node
	GetOperator() string
	GetArgs() []Node
}

// Nodes in alphabetical order.

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) Children() []Node       { return []Node{} }
func (b *BooleanLiteral) GetToken() *token.Token { return &b.Token }
func (b *BooleanLiteral) String() string         { return b.Token.Literal }

type DecimalLiteral struct {
	Token token.Token
	Value decimal.Decimal
}

func (dl *DecimalLiteral) Children() []Node       { return []Node{} }
func (dl *DecimalLiteral) GetToken() *token.Token { return &dl.Token }
func (dl *DecimalLiteral) String() string         { return dl.Token.Literal + "dec" }

type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) Children() []Node       { return []Node{} }
func (fl *FloatLiteral) GetToken() *token.Token { return &fl.Token }
func (fl *FloatLiteral) String() string         { return fl.Token.Literal }

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) Children() []Node       { return []Node{} }
func (il *IntegerLiteral) GetToken() *token.Token { return &il.Token }
func (il *IntegerLiteral) String() string         { return il.Token.Literal }

type ListExpression struct {
	Token    token.Token // The [ token
	Elements []Node
}

func (le *ListExpression) Children() []Node       { return le.Elements }
func (le *ListExpression) GetToken() *token.Token { return &le.Token }
func (le *ListExpression) String() string {
	var out bytes.Buffer

	out.WriteString("[")
	writeList(&out, le.Elements)
	out.WriteString("]")

	return out.String()
}

// NONE and NULL.
type Nothing struct {
	Token token.Token
}

func (n *Nothing) Children() []Node       { return []Node{} }
func (n *Nothing) GetToken() *token.Token { return &n.Token }
func (n *Nothing) String() string         { return n.Token.Literal }

type ObjectExpression struct {
	Token  token.Token // The { token
	Keys   []string
	Values []Node
}

func (oe *ObjectExpression) Children() []Node       { return oe.Values }
func (oe *ObjectExpression) GetToken() *token.Token { return &oe.Token }
func (oe *ObjectExpression) String() string {
	var out bytes.Buffer

	out.WriteString("{")
	for i, k := range oe.Keys {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(strconv.Quote(k))
		out.WriteString(": ")
		out.WriteString(oe.Values[i].String())
	}
	out.WriteString("}")

	return out.String()
}

// A function call. The Operator is the whole name, e.g. 'array::sort::asc'.
type PrefixExpression struct {
	Token    token.Token
	Operator string
	Args     []Node
}

func (pe *PrefixExpression) Children() []Node       { return pe.Args }
func (pe *PrefixExpression) GetArgs() []Node        { return pe.Args }
func (pe *PrefixExpression) GetOperator() string    { return pe.Operator }
func (pe *PrefixExpression) GetToken() *token.Token { return &pe.Token }
func (pe *PrefixExpression) String() string {
	var out bytes.Buffer

	out.WriteString(pe.Operator)
	out.WriteString("(")
	writeList(&out, pe.Args)
	out.WriteString(")")

	return out.String()
}

type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) Children() []Node       { return []Node{} }
func (sl *StringLiteral) GetToken() *token.Token { return &sl.Token }
func (sl *StringLiteral) String() string         { return strconv.Quote(sl.Value) }

func writeList(out *bytes.Buffer, nodes []Node) {
	for i, v := range nodes {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(v.String())
	}
}
