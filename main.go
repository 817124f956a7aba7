package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/querykit/arrayfn/source/array"
	"github.com/querykit/arrayfn/source/evaluator"
	"github.com/querykit/arrayfn/source/repl"
	"github.com/querykit/arrayfn/source/text"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-v", "--version":
			fmt.Println(text.VERSION)
			return
		case "-h", "--help":
			fmt.Print(text.HELP)
			return
		}
	}

	ctx := evaluator.NewContext(array.New(nil))
	r := repl.New(ctx, os.Stdout)

	// An expression on the command line is evaluated instead of starting the REPL.
	if len(os.Args) > 1 {
		r.Do(strings.Join(os.Args[1:], " "))
		if r.Failed() {
			os.Exit(1)
		}
		return
	}

	fmt.Print(text.Logo())
	r.Start()
}
