package expr

// TokenType identifies the lexical class of a token.
type TokenType int

const (
	TOKEN_ILLEGAL TokenType = iota
	TOKEN_EOF

	TOKEN_NUMBER // 3.14
	TOKEN_IDENT  // x, rate, nsum

	TOKEN_PLUS    // +
	TOKEN_MINUS   // -
	TOKEN_STAR    // *
	TOKEN_SLASH   // /
	TOKEN_PERCENT // %
	TOKEN_CARET   // ^

	TOKEN_LPAREN // (
	TOKEN_RPAREN // )
	TOKEN_COMMA  // ,
)

var tokenNames = map[TokenType]string{
	TOKEN_ILLEGAL: "ILLEGAL",
	TOKEN_EOF:     "EOF",
	TOKEN_NUMBER:  "NUMBER",
	TOKEN_IDENT:   "IDENT",
	TOKEN_PLUS:    "+",
	TOKEN_MINUS:   "-",
	TOKEN_STAR:    "*",
	TOKEN_SLASH:   "/",
	TOKEN_PERCENT: "%",
	TOKEN_CARET:   "^",
	TOKEN_LPAREN:  "(",
	TOKEN_RPAREN:  ")",
	TOKEN_COMMA:   ",",
}

func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Token is a single lexical token with its source offset.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int // byte offset in the input (0-based)
}
