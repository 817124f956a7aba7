// Package repl reads lines from the terminal, evaluates them, and prints the results.
package repl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lmorg/readline"

	"github.com/querykit/arrayfn/source/array"
	"github.com/querykit/arrayfn/source/err"
	"github.com/querykit/arrayfn/source/evaluator"
	"github.com/querykit/arrayfn/source/text"
	"github.com/querykit/arrayfn/source/values"
)

const (
	SOURCE       = "REPL input"
	RIGHT_MARGIN = 92
)

type REPL struct {
	ctx        *evaluator.Context
	out        io.Writer
	lastErrors err.Errors
}

func New(ctx *evaluator.Context, out io.Writer) *REPL {
	return &REPL{ctx: ctx, out: out}
}

// Start runs the loop until the user quits or the terminal is closed.
func (r *REPL) Start() {
	rline := readline.NewInstance()
	rline.TabCompleter = complete
	rline.SetPrompt(text.PROMPT)
	for {
		line, e := rline.Readline()
		if e != nil {
			return
		}
		if r.Do(line) {
			return
		}
	}
}

// Do handles one line of input and says whether it was a request to quit.
func (r *REPL) Do(line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
	case line == "quit":
		return true
	case line == "help":
		r.help()
	case line == "why" || strings.HasPrefix(line, "why "):
		r.why(strings.TrimSpace(strings.TrimPrefix(line, "why")))
	default:
		result, ers := r.ctx.EvaluateLine(SOURCE, line)
		if len(ers) > 0 {
			r.lastErrors = ers
			r.writeErrors()
			return false
		}
		r.lastErrors = nil
		fmt.Fprintln(r.out, values.Describe(result))
	}
	return false
}

func (r *REPL) help() {
	fmt.Fprint(r.out, "\nThe functions are:\n\n")
	for _, name := range array.Names() {
		fmt.Fprintln(r.out, text.BULLET+name)
	}
	fmt.Fprint(r.out, "\nEnter "+text.Emph("why <n>")+" to explain error n, or "+text.Emph("quit")+" to leave.\n\n")
}

func (r *REPL) why(arg string) {
	n, e := strconv.Atoi(arg)
	if e != nil || n < 0 || n >= len(r.lastErrors) {
		fmt.Fprint(r.out, text.Pretty(text.ERROR+err.CreateErr("repl/why", nil).Message+".", 0, RIGHT_MARGIN))
		return
	}
	fmt.Fprint(r.out, "\n"+text.Pretty(r.lastErrors.Explain(n), 2, RIGHT_MARGIN)+"\n")
}

func (r *REPL) writeErrors() {
	for i, e := range r.lastErrors {
		pos := ""
		if e.Token != nil {
			pos = text.DescribePos(e.Token)
		}
		fmt.Fprint(r.out, text.Pretty("["+strconv.Itoa(i)+"] "+text.ERROR+e.Error()+pos+".", 0, RIGHT_MARGIN))
	}
	fmt.Fprintln(r.out)
}

// Failed says whether the last line evaluated had errors.
func (r *REPL) Failed() bool {
	return len(r.lastErrors) > 0
}

// complete offers the function names which extend the word before the cursor.
func complete(line []rune, pos int, dtx readline.DelayedTabContext) (string, []string, map[string]string, readline.TabDisplayType) {
	start := pos
	for start > 0 && isNameRune(line[start-1]) {
		start--
	}
	word := string(line[start:pos])
	var suggestions []string
	for _, name := range array.Names() {
		if strings.HasPrefix(name, word) {
			suggestions = append(suggestions, name[len(word):])
		}
	}
	return word, suggestions, nil, readline.TabDisplayGrid
}

func isNameRune(ch rune) bool {
	return ch == ':' || ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ('0' <= ch && ch <= '9')
}
