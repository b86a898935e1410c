package tek

// FrontEndResult is the composed output of tokenizing, parsing and linting
// one source unit (spec.md §6.1, "a convenience compileFrontEnd(source)").
type FrontEndResult struct {
	AST         *Program
	Diagnostics []Diagnostic
}

// CompileFrontEnd runs the full pipeline — Tokenize, Parse, Lint — against
// source and concatenates each stage's diagnostics in pipeline order
// (spec.md §3.4: "a run's final diagnostic list is the concatenation of
// each stage's list in pipeline order"). rules selects the linter's
// severities; pass DefaultRuleSet() for the built-in defaults.
func CompileFrontEnd(source string, rules RuleSet) FrontEndResult {
	tokens, _, tokenDiags := Tokenize(source)
	ast, parseDiags := Parse(tokens)
	lintDiags := Lint(ast, rules)

	all := make([]Diagnostic, 0, len(tokenDiags)+len(parseDiags)+len(lintDiags))
	all = append(all, tokenDiags...)
	all = append(all, parseDiags...)
	all = append(all, lintDiags...)

	return FrontEndResult{AST: ast, Diagnostics: all}
}
