// All this does is contain in one place the constants controlling which bits of the inner workings of the
// lexer/parser/library are displayed for debugging purposes. In a release they must all be set to false
// except SHOW_TESTS which may as well be left as true.

package settings

import "github.com/sirupsen/logrus"

const (
	// These do what it sounds like.
	SHOW_LEXER    = false
	SHOW_PARSER   = false
	SHOW_DISPATCH = false // Logs every call made through the function table, with its arguments, at debug level.

	SHOW_TESTS = true // Says whether the tests should say what is being tested, useful if one of them crashes and we don't know which.
)

// LogLevel is the level of the library's default logger.
func LogLevel() logrus.Level {
	if SHOW_DISPATCH || SHOW_LEXER || SHOW_PARSER {
		return logrus.DebugLevel
	}
	return logrus.WarnLevel
}
