package text

// Text utilities for the REPL's prompts, help and error messages.

import (
	"strconv"
	"strings"

	"github.com/querykit/arrayfn/source/token"
)

const (
	VERSION        = "0.1.0"
	BULLET         = "  ▪ "
	BULLET_SPACING = "    " // I.e. whitespace the same width as BULLET.
	GOOD_BULLET    = "\033[32m  ▪ \033[0m"
	BROKEN         = "\033[31m  ✖ \033[0m"
	PROMPT         = "→ "
)

var (
	RESET  = "\033[0m"
	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	CYAN   = "\033[36m"

	ERROR = "$Error$"
	OK    = Green("OK")
)

func Cyan(s string) string {
	return CYAN + s + RESET
}

func Emph(s string) string {
	return "'" + s + "'"
}

func Red(s string) string {
	return RED + s + RESET
}

func Green(s string) string {
	return GREEN + s + RESET
}

func Yellow(s string) string {
	return YELLOW + s + RESET
}

func Logo() string {
	var padding string
	if len(VERSION)%2 == 0 {
		padding = ","
	}
	titleText := " arrayfn" + padding + " version " + VERSION + " "
	leftMargin := "  "
	bar := strings.Repeat("═", len(titleText)/2)
	mark := Cyan("◆")
	logoString := "\n" +
		leftMargin + "╔" + bar + mark + bar + "╗\n" +
		leftMargin + "║" + titleText + "║\n" +
		leftMargin + "╚" + bar + mark + bar + "╝\n\n"
	return logoString
}

const HELP = "\nUsage: arrayfn [-v | --version] [-h | --help]\n" +
	"               [expression]\n\n" +
	"Given an expression, arrayfn evaluates it and prints the result. Without one it\n" +
	"starts a REPL. For example:\n\n" +
	"  arrayfn 'array::union([1, 2], [2, 3])'\n\n" +
	"In the REPL, 'help' lists the functions, 'why <n>' explains error number n, and\n" +
	"'quit' leaves.\n\n"

// DescribePos says where a token is, for error messages. The position is bracketed by @ so that
// HighlightLine can color it.
func DescribePos(token *token.Token) string {
	prettySource := token.Source
	if prettySource == "" {
		return ""
	}
	if prettySource != "REPL input" {
		prettySource = "'" + prettySource + "'"
	}
	if token.Line > 0 {
		result := strconv.Itoa(token.Line) + ":" + strconv.Itoa(token.ChStart)
		if token.ChStart != token.ChEnd {
			result = result + "-" + strconv.Itoa(token.ChEnd)
		}
		return " at line" + "@" + result + "@" + "of " + prettySource
	}
	return " in " + prettySource
}

// HighlightLine colors a line of an error message. Anything in '...' or "..." is code and is shown
// in cyan, $...$ is an error heading in red, and @...@ is a position in yellow. A quote mark only
// opens a highlight after a space or the start of the line, since it might be an apostrophe.
//
// The highlighter returned is the one still open at the end of the line, if any, so that it can be
// passed to the next line.
func HighlightLine(plainLine string, highlighter rune) (string, rune) {
	highlitLine := ""
	prevCh := ' '
	if highlighter != ' ' {
		highlitLine = CYAN
	}
	for _, ch := range plainLine {
		if highlighter == ' ' && ((prevCh == ' ' || prevCh == '\n' || prevCh == '$') &&
			(ch == '\'' || ch == '"' || ch == '$') || ch == '@') {
			highlighter = ch
			switch highlighter {
			case '$':
				highlitLine = highlitLine + RED
				continue
			case '@':
				highlitLine = highlitLine + " " + YELLOW
				continue
			}
			highlitLine = highlitLine + CYAN
		} else if highlighter != ' ' && ch == highlighter {
			prevCh = ch
			highlighter = ' '
			switch ch {
			case '$':
				highlitLine = highlitLine + RESET + ": "
			case '@':
				highlitLine = highlitLine + " " + RESET
			default:
				highlitLine = highlitLine + string(ch) + RESET
			}
			continue
		}
		prevCh = ch
		highlitLine = highlitLine + string(ch)
	}
	return highlitLine, highlighter
}

// Pretty word-wraps s between the margins and highlights each line.
func Pretty(s string, lMargin, rMargin int) string {
	width := rMargin - lMargin
	result := ""
	highlighter := ' '
	for i := 0; i < len(s); {
		result = result + strings.Repeat(" ", lMargin)
		e := i + width
		j := 0
		if e >= len(s) {
			j = len(s) - i
		} else {
			j = strings.LastIndex(s[i:e], " ")
		}
		if j <= 0 {
			j = min(width, len(s)-i)
		}
		if nl := strings.Index(s[i:i+j], "\n"); nl >= 0 {
			j = nl
		}
		var line string
		line, highlighter = HighlightLine(s[i:i+j], highlighter)
		result = result + line + "\n"
		i = i + j + 1
	}
	return result
}
