package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENT   = "IDENT"   // array, sort, a_b, ...
	INT     = "int"     // 1343456
	FLOAT   = "float"   // 1.23, 1e9
	DECIMAL = "decimal" // 1.23dec
	STRING  = "string"  // "foo", 'bar'
	TRUE    = "true"
	FALSE   = "false"
	NONE    = "NONE"
	NULL    = "NULL"

	// Delimiters
	COMMA       = ","
	COLON       = ":"
	DOUBLECOLON = "::"
	LPAREN      = "("
	RPAREN      = ")"
	LBRACE      = "{"
	RBRACE      = "}"
	LBRACK      = "["
	RBRACK      = "]"
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	ChStart int
	ChEnd   int
	Source  string
}

var keywords = map[string]TokenType{
	"true":  TRUE,
	"false": FALSE,
	"NONE":  NONE,
	"NULL":  NULL,
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
