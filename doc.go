// Package tek is a compiler front end: tokenizer, Pratt-style parser, and
// rule-based linter over an indentation-sensitive language.
//
// A tiny example:
//
//	tokens, _, tokenDiags := tek.Tokenize(source)
//	ast, parseDiags := tek.Parse(tokens)
//	lintDiags := tek.Lint(ast, tek.DefaultRuleSet())
//
// Or, in one call:
//
//	result := tek.CompileFrontEnd(source, tek.DefaultRuleSet())
//	for _, d := range result.Diagnostics {
//	    fmt.Println(d)
//	}
//
// Each stage consumes its input by value and returns its output by value;
// diagnostics from all three stages are plain data (never a Go error) and
// accumulate in pipeline order.
package tek
