package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexer_NextToken(t *testing.T) {
	input := "x1 = (3.5 + rate) * 2 ^ -1 % nsum(1, 2)"

	// "=" is not part of the grammar and lexes as ILLEGAL; the assignment
	// resolver splits on it before the expression parser ever runs.
	expected := []struct {
		typ TokenType
		lit string
	}{
		{TOKEN_IDENT, "x1"},
		{TOKEN_ILLEGAL, "="},
		{TOKEN_LPAREN, "("},
		{TOKEN_NUMBER, "3.5"},
		{TOKEN_PLUS, "+"},
		{TOKEN_IDENT, "rate"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_STAR, "*"},
		{TOKEN_NUMBER, "2"},
		{TOKEN_CARET, "^"},
		{TOKEN_MINUS, "-"},
		{TOKEN_NUMBER, "1"},
		{TOKEN_PERCENT, "%"},
		{TOKEN_IDENT, "nsum"},
		{TOKEN_LPAREN, "("},
		{TOKEN_NUMBER, "1"},
		{TOKEN_COMMA, ","},
		{TOKEN_NUMBER, "2"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_EOF, ""},
	}

	l := NewLexer(input)
	for i, exp := range expected {
		tok := l.NextToken()
		assert.Equal(t, exp.typ, tok.Type, "token %d type", i)
		assert.Equal(t, exp.lit, tok.Literal, "token %d literal", i)
	}
}

func TestLexer_LeadingDot(t *testing.T) {
	l := NewLexer(".5")
	tok := l.NextToken()
	assert.Equal(t, TOKEN_NUMBER, tok.Type)
	assert.Equal(t, ".5", tok.Literal)
}

func TestLexer_IdentWithUnderscore(t *testing.T) {
	l := NewLexer("tax_rate")
	tok := l.NextToken()
	assert.Equal(t, TOKEN_IDENT, tok.Type)
	assert.Equal(t, "tax_rate", tok.Literal)
	assert.Equal(t, TOKEN_EOF, l.NextToken().Type)
}

func TestLexer_Positions(t *testing.T) {
	l := NewLexer("  12 + ab")
	tok := l.NextToken()
	assert.Equal(t, 2, tok.Pos)
	tok = l.NextToken()
	assert.Equal(t, 5, tok.Pos)
	tok = l.NextToken()
	assert.Equal(t, 7, tok.Pos)
}
