package tek

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lintSource(t *testing.T, src string) []Diagnostic {
	t.Helper()
	prog, diags := parseSource(t, src)
	require.Empty(t, diags, "fixture source must parse cleanly")
	return Lint(prog, DefaultRuleSet())
}

func TestLintReturnOutsideFunctionIsReported(t *testing.T) {
	diags := lintSource(t, "return 1\n")
	require.Len(t, diags, 1)
	assert.Equal(t, ERROR, diags[0].Level)
	assert.Contains(t, diags[0].Message, "only place return inside a function")
}

func TestLintReturnInsideFunctionIsFine(t *testing.T) {
	diags := lintSource(t, "function f()\n\treturn 1\n")
	assert.Empty(t, diags)
}

func TestLintBreakOutsideLoopOrSwitchIsReported(t *testing.T) {
	diags := lintSource(t, "if true\n\tbreak\n")
	require.NotEmpty(t, diags)
	assert.Contains(t, diags[0].Message, "break")
}

func TestLintBreakInsideLoopIsFine(t *testing.T) {
	diags := lintSource(t, "while true\n\tbreak\n")
	assert.Empty(t, diags)
}

func TestLintContinueOutsideLoopIsReported(t *testing.T) {
	diags := lintSource(t, "switch x\n\tcase 1\n\t\tcontinue\n")
	require.NotEmpty(t, diags)
	assert.Contains(t, diags[0].Message, "continue")
}

func TestLintFallthroughOutsideSwitchIsReported(t *testing.T) {
	diags := lintSource(t, "while true\n\tfallthrough\n")
	require.NotEmpty(t, diags)
	assert.Contains(t, diags[0].Message, "fallthrough")
}

func TestLintDeclarationsInClassRejectsNonDeclarations(t *testing.T) {
	diags := lintSource(t, "class C\n\tx = 1\n")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "only put declarations in a class body")
}

func TestLintDeclarationsInClassAllowsFunctionsAndVars(t *testing.T) {
	diags := lintSource(t, "class C\n\tvar a\n\tfunction m()\n\t\treturn 1\n")
	assert.Empty(t, diags)
}

func TestLintUnreachableAfterReturn(t *testing.T) {
	diags := lintSource(t, "function f()\n\treturn 1\n\tvar x = 2\n")
	require.Len(t, diags, 1)
	assert.Equal(t, WARNING, diags[0].Level)
	assert.Contains(t, diags[0].Message, "unreachable")
}

func TestLintNoUnreachableWhenReturnIsLastStatement(t *testing.T) {
	diags := lintSource(t, "function f()\n\tvar x = 1\n\treturn x\n")
	assert.Empty(t, diags)
}

func TestLintDuplicateClassMember(t *testing.T) {
	diags := lintSource(t, "class C\n\tvar a\n\tvar a\n")
	require.Len(t, diags, 1)
	assert.Equal(t, WARNING, diags[0].Level)
	assert.Contains(t, diags[0].Message, `"a"`)
}

func TestLintRuleSetOverridesSeverity(t *testing.T) {
	prog, diags := parseSource(t, "return 1\n")
	require.Empty(t, diags)

	rules := DefaultRuleSet()
	rules.Levels[ruleInvalidControlStatement] = WARNING
	lintDiags := Lint(prog, rules)
	require.Len(t, lintDiags, 1)
	assert.Equal(t, WARNING, lintDiags[0].Level)
}

func TestLintDoesNotFilterByLevel(t *testing.T) {
	// Both an ERROR-level and a WARNING-level violation in the same
	// program must both be reported; the walker never filters by level
	// (spec.md §4.3.3).
	diags := lintSource(t, "function f()\n\treturn 1\n\treturn 2\nreturn 3\n")
	levels := map[Level]bool{}
	for _, d := range diags {
		levels[d.Level] = true
	}
	assert.True(t, levels[ERROR])
	assert.True(t, levels[WARNING])
}
