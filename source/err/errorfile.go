package err

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/querykit/arrayfn/source/token"
)

// A map from error identifiers to functions that supply the corresponding error messages and explanations.
//
// Errors in the map are in alphabetical order of their identifers.
//
// Major categories are array, fn, lex, parse, and repl.
//
// Two otherwise identical errors thrown in different places in the Go code must be assigned
// different identifiers, if only by suffixing /a, /b, etc to the identifier.
var ErrorCreatorMap = map[string]ErrorCreator{

	// TEMPLATE
	"": {
		Message: func(tok *token.Token, args ...any) string {
			return ""
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return ""
		},
	},

	"array/insert/args": {
		Message: func(tok *token.Token, args ...any) string {
			return "Expected at least two arguments"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The function " + emph(args[0]) + " needs an array and the value to put into it. " +
				"The index is optional: without one, the value is appended to the end of the array."
		},
	},

	"fn/args/count": {
		Message: func(tok *token.Token, args ...any) string {
			return "The function expects " + describeArity(args[1].(int), args[2].(int)) + "."
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return fmt.Sprintf("You called %v with %v, but it takes %v. "+
				"Arguments of the wrong type aren't an error, but the wrong number of them is.",
				emph(args[0]), plural(args[3].(int), "argument"), describeArity(args[1].(int), args[2].(int)))
		},
	},

	"fn/unknown": {
		Message: func(tok *token.Token, args ...any) string {
			return "there is no function " + emph(args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Functions are addressed by their full name, such as " + emph("array::sort::asc") +
				". Enter " + emph("help") + " for a list of them."
		},
	},

	"lex/char": {
		Message: func(tok *token.Token, args ...any) string {
			return "unexpected character " + emph(args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "That character can't begin any literal, identifier, or punctuation mark."
		},
	},

	"lex/number": {
		Message: func(tok *token.Token, args ...any) string {
			return "malformed number " + emph(args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A number is written as an integer such as " + emph("42") + ", a float such as " +
				emph("4.2") + " or " + emph("4e2") + ", or a decimal such as " + emph("4.2dec") + "."
		},
	},

	"lex/string/escape": {
		Message: func(tok *token.Token, args ...any) string {
			return "unknown escape sequence " + emph(`\`+args[0].(string))
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The escape sequences recognized in string literals are \\n, \\r, \\t, \\\\, \\\" and \\'."
		},
	},

	"lex/string/term": {
		Message: func(tok *token.Token, args ...any) string {
			return "unterminated string literal"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A string literal must end on the same line with the same kind of quote mark it began with."
		},
	},

	"parse/expected": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected " + emph(args[0]) + ", found " + emph(args[1])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The line couldn't be read as a function call or a literal because of this token." + blame(errors, pos, "lex/char", "lex/number", "lex/string/term", "lex/string/escape")
		},
	},

	"parse/eof": {
		Message: func(tok *token.Token, args ...any) string {
			return "unexpected end of line"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The line ended before the expression was finished. Check that brackets and parentheses are balanced."
		},
	},

	"parse/ident": {
		Message: func(tok *token.Token, args ...any) string {
			return "identifier " + emph(args[0]) + " should be followed by the arguments of a function call"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "There are no variables here: an identifier can only be the name of a function, and so must be followed by " + emph("(") + "."
		},
	},

	"parse/key": {
		Message: func(tok *token.Token, args ...any) string {
			return "object key should be an identifier or a string, not " + emph(args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "An object literal is written like " + emph(`{a: 1, "b c": 2}`) + "."
		},
	},

	"parse/number": {
		Message: func(tok *token.Token, args ...any) string {
			return "number " + emph(args[0]) + " is out of range"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Integers must fit into 64 bits. A decimal's exponent must fit into 32."
		},
	},

	"parse/trailing": {
		Message: func(tok *token.Token, args ...any) string {
			return "unexpected " + emph(args[0]) + " after end of expression"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Only one expression can be evaluated per line."
		},
	},

	"repl/why": {
		Message: func(tok *token.Token, args ...any) string {
			return "the " + emph("why") + " keyword takes the number of an error as a parameter"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Errors are numbered from 0 in the order they were reported since the last line was evaluated."
		},
	},
}

type ErrorCreator struct {
	Message     func(tok *token.Token, args ...any) string
	Explanation func(errors Errors, pos int, tok *token.Token, args ...any) string
}

// The error type. Name is the fully-qualified name of the function which failed, if any; Message
// is the fixed message associated with the ErrorId.
type Error struct {
	ErrorId string
	Name    string
	Message string
	Args    []any
	Token   *token.Token
}

type Errors []*Error

func (e *Error) Error() string {
	if e.Name != "" {
		return "Incorrect arguments for function " + e.Name + "(). " + e.Message
	}
	return e.Message
}

// Explain returns the long-form explanation of the error at position pos of a list of errors.
func (errors Errors) Explain(pos int) string {
	e := errors[pos]
	return ErrorCreatorMap[e.ErrorId].Explanation(errors, pos, e.Token, e.Args...)
}

func CreateErr(errorId string, tok *token.Token, args ...any) *Error {
	creator, ok := ErrorCreatorMap[errorId]
	if !ok {
		panic("Unknown error id '" + errorId + "'.")
	}
	return &Error{ErrorId: errorId, Message: creator.Message(tok, args...), Args: args, Token: tok}
}

// Throw creates an error and appends it to a list of errors.
func Throw(errorId string, ers Errors, tok *token.Token, args ...any) Errors {
	return append(ers, CreateErr(errorId, tok, args...))
}

// CreateFnErr makes an error raised by a function call. The name of the function is passed to the
// message and explanation as the first argument.
func CreateFnErr(errorId string, name string, args ...any) *Error {
	e := CreateErr(errorId, &token.Token{Source: "function call"}, append([]any{name}, args...)...)
	e.Name = name
	return e
}

func blame(errors Errors, pos int, args ...string) string {
	if pos == 0 {
		return ""
	}
	for _, v := range args {
		if errors[pos-1].ErrorId == v {
			return "\n\nIn this case the problem is likely a knock-on effect of the previous error ([" +
				strconv.Itoa(pos-1) + "] " + errors[pos-1].Message + ".)"
		}
	}
	return ""
}

func describeArity(minArgs, maxArgs int) string {
	if minArgs == maxArgs {
		return plural(minArgs, "argument")
	}
	return strconv.Itoa(minArgs) + " or " + plural(maxArgs, "argument")
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

func emph(s any) string {
	if t, ok := s.(string); ok {
		s = strings.TrimSpace(t)
	}
	return fmt.Sprintf("'%v'", s)
}
