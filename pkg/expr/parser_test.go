package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Shape(t *testing.T) {
	node, err := Parse("2 + 3 * 4")
	require.NoError(t, err)

	bin, ok := node.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, TOKEN_PLUS, bin.Op)

	right, ok := bin.Right.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, TOKEN_STAR, right.Op)
}

func TestParse_PowerRightAssociative(t *testing.T) {
	node, err := Parse("2 ^ 3 ^ 2")
	require.NoError(t, err)

	bin, ok := node.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, TOKEN_CARET, bin.Op)

	// Right operand must itself be 3 ^ 2.
	_, leftIsLit := bin.Left.(*NumberLit)
	assert.True(t, leftIsLit)
	right, ok := bin.Right.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, TOKEN_CARET, right.Op)
}

func TestParse_Call(t *testing.T) {
	node, err := Parse("nsum(1, 2, x)")
	require.NoError(t, err)

	call, ok := node.(*CallExpr)
	require.True(t, ok)
	assert.Equal(t, "nsum", call.Func)
	assert.Len(t, call.Args, 3)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"adjacent primaries", "1 km"},
		{"unbalanced paren", "(1 + 2"},
		{"trailing operator", "1 +"},
		{"double operator", "1 * / 2"},
		{"stray punctuation", "@#$"},
		{"missing call paren", "nsum(1, 2"},
		{"words", "hello in spanish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var perr *ParseError
			assert.ErrorAs(t, err, &perr)
		})
	}
}
