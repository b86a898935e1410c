package tek

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindsOf(tokens []Token) []LexicalToken {
	out := make([]LexicalToken, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeSimpleVarDecl(t *testing.T) {
	tokens, _, diags := Tokenize("var x = 1\n")
	require.Empty(t, diags)
	assert.Equal(t, []LexicalToken{VAR, IDENTIFIER, ASSIGN, NUMBER, NEWLINE, EOF}, kindsOf(tokens))
}

func TestTokenizeIndentOutdent(t *testing.T) {
	src := "function f()\n\tvar x = 1\nvar y = 2\n"
	tokens, _, diags := Tokenize(src)
	require.Empty(t, diags)

	kinds := kindsOf(tokens)
	assert.Contains(t, kinds, INDENT)
	assert.Contains(t, kinds, OUTDENT)

	// The OUTDENT must appear before the second "var", and only one
	// INDENT/OUTDENT pair should have been synthesised for this single
	// level change.
	indentCount, outdentCount, outdentAt := 0, 0, -1
	for i, k := range kinds {
		if k == INDENT {
			indentCount++
		}
		if k == OUTDENT {
			outdentCount++
			outdentAt = i
		}
	}
	assert.Equal(t, 1, indentCount)
	assert.Equal(t, 1, outdentCount)
	require.Less(t, outdentAt+1, len(kinds))
	assert.Equal(t, VAR, kinds[outdentAt+1], "the OUTDENT must come right before the second var")
}

func TestTokenizeTrailingOutdentsAtEOF(t *testing.T) {
	src := "function f()\n\tif true\n\t\tvar x = 1\n"
	tokens, _, diags := Tokenize(src)
	require.Empty(t, diags)

	last := tokens[len(tokens)-1]
	assert.Equal(t, EOF, last.Kind)

	outdentCount := 0
	for _, tok := range tokens {
		if tok.Kind == OUTDENT {
			outdentCount++
		}
	}
	assert.Equal(t, 2, outdentCount, "both open indent levels must be closed before EOF")
}

func TestTokenizeMultiWordOperators(t *testing.T) {
	cases := map[string]LexicalToken{
		"a is not b\n":        IS_NOT,
		"a is less than b\n":  IS_LESS_THAN,
		"a is greater than b\n": IS_GREATER_THAN,
	}
	for src, want := range cases {
		tokens, _, diags := Tokenize(src)
		require.Empty(t, diags, src)
		found := false
		for _, tok := range tokens {
			if tok.Kind == want {
				found = true
			}
		}
		assert.True(t, found, "expected %s in %q", want, src)
	}
}

func TestTokenizePlainIsIsStillAvailable(t *testing.T) {
	tokens, _, diags := Tokenize("a is b\n")
	require.Empty(t, diags)
	assert.Contains(t, kindsOf(tokens), IS)
}

func TestTokenizeBareWordGuard(t *testing.T) {
	_, _, diags := Tokenize("a less b\n")
	require.NotEmpty(t, diags)
	assert.Equal(t, ERROR, diags[0].Level)
}

func TestTokenizeMixedTabsAndSpacesIsAnError(t *testing.T) {
	_, _, diags := Tokenize("function f()\n \tvar x = 1\n")
	require.NotEmpty(t, diags)
	assert.Contains(t, diags[0].Message, "tabs only")
}

func TestTokenizeCommentOnlyLineDoesNotAffectIndent(t *testing.T) {
	src := "function f()\n\t# a comment\n\tvar x = 1\n"
	tokens, comments, diags := Tokenize(src)
	require.Empty(t, diags)
	require.Len(t, comments, 1)

	indentCount := 0
	for _, tok := range tokens {
		if tok.Kind == INDENT {
			indentCount++
		}
	}
	assert.Equal(t, 1, indentCount)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, _, diags := Tokenize("var x = 'abc\n")
	require.NotEmpty(t, diags)
	assert.Contains(t, diags[0].Message, "unterminated string")
}

func TestTokenizeNumberLiteral(t *testing.T) {
	tokens, _, diags := Tokenize("var x = 1_000.25\n")
	require.Empty(t, diags)
	var lexeme string
	for _, tok := range tokens {
		if tok.Kind == NUMBER {
			lexeme = tok.Lexeme
		}
	}
	assert.Equal(t, "1_000.25", lexeme)
}
