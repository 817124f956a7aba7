package values

import (
	"strconv"
	"strings"
	"unicode"

	"src.elv.sh/pkg/persistent/vector"
)

// Describe returns the literal form of a value, which reads back as an equal value.
func Describe(v Value) string {
	var buf strings.Builder
	describe(&buf, v)
	return buf.String()
}

func (v Value) String() string {
	return Describe(v)
}

func describe(buf *strings.Builder, v Value) {
	switch v.T {
	case NONE:
		buf.WriteString("NONE")
	case NULL:
		buf.WriteString("NULL")
	case BOOL:
		buf.WriteString(strconv.FormatBool(v.V.(bool)))
	case NUMBER:
		buf.WriteString(v.V.(Number).String())
	case STRING:
		buf.WriteString(strconv.Quote(v.V.(string)))
	case ARRAY:
		buf.WriteByte('[')
		sep := ""
		for it := v.V.(vector.Vector).Iterator(); it.HasElem(); it.Next() {
			buf.WriteString(sep)
			describe(buf, it.Elem().(Value))
			sep = ", "
		}
		buf.WriteByte(']')
	case OBJECT:
		buf.WriteByte('{')
		sep := ""
		v.V.(*Object).Range(func(k string, el Value) {
			buf.WriteString(sep)
			buf.WriteString(describeKey(k))
			buf.WriteString(": ")
			describe(buf, el)
			sep = ", "
		})
		buf.WriteByte('}')
	default:
		buf.WriteString("<" + v.T.String() + ">")
	}
}

func describeKey(k string) string {
	if IsIdentifier(k) {
		return k
	}
	return strconv.Quote(k)
}

// IsIdentifier says whether an object key can be written without quotes.
func IsIdentifier(s string) bool {
	if s == "" || s == "true" || s == "false" || s == "NONE" || s == "NULL" {
		return false
	}
	for i, ch := range s {
		if !(ch == '_' || unicode.IsLetter(ch) || (i > 0 && unicode.IsDigit(ch))) {
			return false
		}
	}
	return true
}
