package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietloop/serpent/token"
)

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestTokenizeAssignment(t *testing.T) {
	toks, err := New("x = 1").Tokenize()
	require.NoError(t, err)
	assert.Equal(t, []token.Type{token.NAME, token.ASSIGN, token.INT, token.EOF}, types(toks))
}

func TestTokenizeIndentDedent(t *testing.T) {
	toks, err := New("if x:\n  y = 1\nz = 2").Tokenize()
	require.NoError(t, err)

	var sawIndent, sawDedent bool
	for _, tok := range toks {
		if tok.Type == token.INDENT {
			sawIndent = true
		}
		if tok.Type == token.DEDENT {
			sawDedent = true
		}
	}
	assert.True(t, sawIndent)
	assert.True(t, sawDedent)
}

func TestTokenizeMultiLevelDedent(t *testing.T) {
	// Closing two blocks on one line must produce two DEDENT tokens, or
	// the statement after the inner block is swallowed into the outer one.
	toks, err := New("class C:\n  def get(self):\n    return 1\nx = 2").Tokenize()
	require.NoError(t, err)

	dedents := 0
	var sawXAfter bool
	for _, tok := range toks {
		if tok.Type == token.DEDENT {
			dedents++
		}
		if tok.Type == token.NAME && tok.Literal == "x" {
			sawXAfter = dedents == 2
		}
	}
	assert.Equal(t, 2, dedents)
	assert.True(t, sawXAfter, "x must follow both DEDENTs")
}

func TestTokenizeStringLiteral(t *testing.T) {
	toks, err := New(`x = "hello"`).Tokenize()
	require.NoError(t, err)
	var sawString bool
	for _, tok := range toks {
		if tok.Type == token.STRING {
			sawString = true
			assert.Equal(t, "hello", tok.Literal)
		}
	}
	assert.True(t, sawString)
}

func TestTokenizeKeywords(t *testing.T) {
	toks, err := New("def f():\n  return 1").Tokenize()
	require.NoError(t, err)
	assert.Equal(t, token.DEF, toks[0].Type)
	var sawReturn bool
	for _, tok := range toks {
		if tok.Type == token.RETURN {
			sawReturn = true
		}
	}
	assert.True(t, sawReturn)
}
