package tek

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileFrontEndCleanSourceHasNoDiagnostics(t *testing.T) {
	result := CompileFrontEnd("function add(a: Number, b: Number): Number\n\treturn a + b\n", DefaultRuleSet())
	assert.Empty(t, result.Diagnostics)
	require.NotNil(t, result.AST)
	assert.Len(t, result.AST.Body, 1)
}

func TestCompileFrontEndConcatenatesStagesInPipelineOrder(t *testing.T) {
	// "$" is an unexpected-character tokenizer error that leaves the rest
	// of the line parseable; a top-level "return" is a linter error. Both
	// must show up, in pipeline order: tokenizer before linter.
	result := CompileFrontEnd("var x = 1 $\nreturn 1\n", DefaultRuleSet())
	require.Len(t, result.Diagnostics, 2)
	assert.Equal(t, SourceTokenizer, result.Diagnostics[0].Source)
	assert.Equal(t, SourceLinter, result.Diagnostics[1].Source)
}
