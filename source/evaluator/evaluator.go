package evaluator

// This is a tree-walking evaluator. Arguments are evaluated left to right before a function is
// called, and the first error stops evaluation.

import (
	"github.com/querykit/arrayfn/source/array"
	"github.com/querykit/arrayfn/source/ast"
	"github.com/querykit/arrayfn/source/err"
	"github.com/querykit/arrayfn/source/parser"
	"github.com/querykit/arrayfn/source/values"
)

// The Context bundles what evaluation needs: a parser to read lines with and the library to call.
// A Context is not safe for concurrent use, because the parser keeps the state of the line it is on;
// the library it wraps is.
type Context struct {
	prsr *parser.Parser
	lib  *array.Library
}

func NewContext(lib *array.Library) *Context {
	if lib == nil {
		lib = array.New(nil)
	}
	return &Context{prsr: parser.New(), lib: lib}
}

// EvaluateLine parses and evaluates one line of input.
func (c *Context) EvaluateLine(source, line string) (values.Value, err.Errors) {
	node := c.prsr.ParseLine(source, line)
	if c.prsr.ErrorsExist() {
		return values.None(), c.prsr.Errors
	}
	result, e := Evaluate(node, c)
	if e != nil {
		return values.None(), err.Errors{e}
	}
	return result, nil
}

func Evaluate(node ast.Node, c *Context) (values.Value, *err.Error) {
	switch node := node.(type) {
	case *ast.IntegerLiteral:
		return values.Int(node.Value), nil
	case *ast.FloatLiteral:
		return values.Float(node.Value), nil
	case *ast.DecimalLiteral:
		return values.Decimal(node.Value), nil
	case *ast.StringLiteral:
		return values.String(node.Value), nil
	case *ast.BooleanLiteral:
		return values.Bool(node.Value), nil
	case *ast.Nothing:
		if node.Token.Literal == "NULL" {
			return values.Null(), nil
		}
		return values.None(), nil
	case *ast.ListExpression:
		elements, e := evalExpressions(node.Elements, c)
		if e != nil {
			return values.None(), e
		}
		return values.Array(elements...), nil
	case *ast.ObjectExpression:
		return evalObjectExpression(node, c)
	case *ast.PrefixExpression:
		return evalPrefixExpression(node, c)
	}
	panic("unhandled node type " + node.String())
}

func evalExpressions(nodes []ast.Node, c *Context) ([]values.Value, *err.Error) {
	result := make([]values.Value, 0, len(nodes))
	for _, node := range nodes {
		v, e := Evaluate(node, c)
		if e != nil {
			return nil, e
		}
		result = append(result, v)
	}
	return result, nil
}

// Later keys overwrite earlier ones.
func evalObjectExpression(node *ast.ObjectExpression, c *Context) (values.Value, *err.Error) {
	obj := values.NewObject()
	for i, key := range node.Keys {
		v, e := Evaluate(node.Values[i], c)
		if e != nil {
			return values.None(), e
		}
		obj = obj.Set(key, v)
	}
	return values.ObjectOf(obj), nil
}

func evalPrefixExpression(node *ast.PrefixExpression, c *Context) (values.Value, *err.Error) {
	args, e := evalExpressions(node.Args, c)
	if e != nil {
		return values.None(), e
	}
	result, e := c.lib.Call(node.Operator, args)
	if e != nil {
		e.Token = &node.Token
		return values.None(), e
	}
	return result, nil
}
