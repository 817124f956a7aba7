package lexer

// The RuneSupplier walks through the runes of a line for the lexer, keeping track of the position.
// The reading functions leave it on the last rune of whatever they read.
type RuneSupplier struct {
	code      []rune
	pos       int
	lineNo    int
	lineStart int
}

func NewRuneSupplier(code []rune) *RuneSupplier {
	return &RuneSupplier{code: code, lineNo: 1}
}

func (rs *RuneSupplier) CurrentRune() rune {
	if rs.pos < len(rs.code) {
		return rs.code[rs.pos]
	}
	return 0
}

func (rs *RuneSupplier) PeekRune() rune {
	if rs.pos+1 < len(rs.code) {
		return rs.code[rs.pos+1]
	}
	return 0
}

func (rs *RuneSupplier) Next() {
	if rs.pos >= len(rs.code) {
		return
	}
	if rs.code[rs.pos] == '\n' {
		rs.lineNo++
		rs.lineStart = rs.pos + 1
	}
	rs.pos++
}

func (rs *RuneSupplier) Position() (int, int) {
	return rs.lineNo, rs.pos - rs.lineStart
}

// ReadIdentifier reads letters, digits and underscores.
func (rs *RuneSupplier) ReadIdentifier() string {
	result := string(rs.CurrentRune())
	for IsLetter(rs.PeekRune()) || IsDigit(rs.PeekRune()) || IsUnderscore(rs.PeekRune()) {
		rs.Next()
		result = result + string(rs.CurrentRune())
	}
	return result
}

// ReadNumber reads an optional minus sign, digits, an optional fraction and an optional exponent.
// Anything alphanumeric directly after that is read too, so that the caller can see the suffix or
// reject the whole thing.
func (rs *RuneSupplier) ReadNumber() string {
	result := string(rs.CurrentRune())
	for IsDigit(rs.PeekRune()) {
		rs.Next()
		result = result + string(rs.CurrentRune())
	}
	if rs.PeekRune() == '.' && rs.pos+2 < len(rs.code) && IsDigit(rs.code[rs.pos+2]) {
		rs.Next()
		result = result + "."
		for IsDigit(rs.PeekRune()) {
			rs.Next()
			result = result + string(rs.CurrentRune())
		}
	}
	if (rs.PeekRune() == 'e' || rs.PeekRune() == 'E') && rs.exponentFollows() {
		rs.Next()
		result = result + string(rs.CurrentRune())
		if rs.PeekRune() == '+' || rs.PeekRune() == '-' {
			rs.Next()
			result = result + string(rs.CurrentRune())
		}
		for IsDigit(rs.PeekRune()) {
			rs.Next()
			result = result + string(rs.CurrentRune())
		}
	}
	for IsLetter(rs.PeekRune()) || IsDigit(rs.PeekRune()) || IsUnderscore(rs.PeekRune()) {
		rs.Next()
		result = result + string(rs.CurrentRune())
	}
	return result
}

func (rs *RuneSupplier) exponentFollows() bool {
	i := rs.pos + 2
	if i < len(rs.code) && (rs.code[i] == '+' || rs.code[i] == '-') {
		i++
	}
	return i < len(rs.code) && IsDigit(rs.code[i])
}

// ReadString reads a string literal delimited by the current rune. If it fails it returns the id of
// the error and the offending text.
func (rs *RuneSupplier) ReadString() (string, string, string) {
	quote := rs.CurrentRune()
	result := ""
	for {
		rs.Next()
		switch ch := rs.CurrentRune(); ch {
		case 0, '\n':
			return "", "lex/string/term", ""
		case quote:
			return result, "", ""
		case '\\':
			rs.Next()
			switch esc := rs.CurrentRune(); esc {
			case 'n':
				result = result + "\n"
			case 'r':
				result = result + "\r"
			case 't':
				result = result + "\t"
			case '\\', '"', '\'':
				result = result + string(esc)
			case 0:
				return "", "lex/string/term", ""
			default:
				return "", "lex/string/escape", string(esc)
			}
		default:
			result = result + string(ch)
		}
	}
}
