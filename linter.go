package tek

import "fmt"

// Built-in rule names (spec.md §4.3.3, SPEC_FULL.md §4). These are the keys
// a RuleSet document's `rules:` map may mention.
const (
	ruleDeclarationsInClass     = "declarations-in-class"
	ruleInvalidControlStatement = "invalid-control-statement"
	ruleUnreachableAfterReturn  = "unreachable-after-return"
	ruleDuplicateClassMember    = "duplicate-class-member"
)

// ruleInstaller binds one rule's callbacks onto a Walker, reporting through
// sink at the given level. This is the "predicate over the subtree plus a
// positioned diagnostic" contract spec.md §4.3.3 calls for.
type ruleInstaller func(w *Walker, sink *diagnosticSink, level Level)

type rule struct {
	name    string
	install ruleInstaller
}

// builtinRules lists every rule Lint knows how to run, in the order their
// callbacks are installed onto the Walker (spec.md §4.3.1: registration
// order is the callback firing order).
var builtinRules = []rule{
	{ruleDeclarationsInClass, installDeclarationsInClass},
	{ruleInvalidControlStatement, installInvalidControlStatement},
	{ruleUnreachableAfterReturn, installUnreachableAfterReturn},
	{ruleDuplicateClassMember, installDuplicateClassMember},
}

// init guards against the programmer error of registering the same rule
// name twice in builtinRules, which would silently double-install one
// rule's callbacks and drop another's name from RuleSet.levelOf lookups.
func init() {
	seen := make(map[string]bool, len(builtinRules))
	for _, r := range builtinRules {
		if seen[r.name] {
			panic(errDuplicateRule(r.name))
		}
		seen[r.name] = true
	}
}

// Lint walks program once, running every built-in rule at the severity
// RuleSet assigns it, and returns the accumulated diagnostics (spec.md
// §6.1: `lint(ast, rules) -> diagnostics`).
func Lint(program *Program, rules RuleSet) []Diagnostic {
	sink := newDiagnosticSink(SourceLinter)
	w := NewWalker()
	for _, r := range builtinRules {
		r.install(w, sink, rules.levelOf(r.name))
	}
	linterLog.Tracef("linting with %d rules", len(builtinRules))
	_ = w.Walk(program)
	return sink.diags
}

// installDeclarationsInClass enforces that every entry in a ClassDecl's
// staticBody/instanceBody is a declaration node.
func installDeclarationsInClass(w *Walker, sink *diagnosticSink, level Level) {
	check := func(body []Node) {
		for _, m := range body {
			switch m.Kind() {
			case nodeVariableDecl, nodeEmptyVariableDecl, nodeFunctionDecl:
			default:
				sink.report(level, "You can only put declarations in a class body", m.Span())
			}
		}
	}
	w.OnEnter(nodeClassDecl, func(n Node) error {
		c := n.(*ClassDecl)
		check(c.StaticBody)
		check(c.InstanceBody)
		return nil
	})
}

// installInvalidControlStatement maintains the in-function/in-loop/
// in-switch counters spec.md §4.3.3 names and flags return/break/continue/
// fallthrough used outside their valid context. The AST has no distinct
// node for "inside one case clause" (SwitchCase is not itself a Node, see
// ast.go), so in-switch doubles as the in-case counter: both break and
// fallthrough are considered valid anywhere inside a Switch's cases or
// default body, which is the only place either can appear since Cond/
// Subject are expression trees that cannot contain statement nodes.
func installInvalidControlStatement(w *Walker, sink *diagnosticSink, level Level) {
	inFunction := 0
	inLoop := 0
	inSwitch := 0

	w.OnEnter(nodeFunctionDecl, func(n Node) error { inFunction++; return nil })
	w.OnLeave(nodeFunctionDecl, func(n Node) error { inFunction--; return nil })

	enterLoop := func(n Node) error { inLoop++; return nil }
	leaveLoop := func(n Node) error { inLoop--; return nil }
	w.OnEnter(nodeFor, enterLoop)
	w.OnLeave(nodeFor, leaveLoop)
	w.OnEnter(nodeWhile, enterLoop)
	w.OnLeave(nodeWhile, leaveLoop)
	w.OnEnter(nodeRepeat, enterLoop)
	w.OnLeave(nodeRepeat, leaveLoop)

	w.OnEnter(nodeSwitch, func(n Node) error { inSwitch++; return nil })
	w.OnLeave(nodeSwitch, func(n Node) error { inSwitch--; return nil })

	w.OnEnter(nodeReturn, func(n Node) error {
		if inFunction == 0 {
			sink.report(level, "You can only place return inside a function", n.Span())
		}
		return nil
	})
	w.OnEnter(nodeBreak, func(n Node) error {
		if inLoop == 0 && inSwitch == 0 {
			sink.report(level, "break is only valid inside a loop or a switch case", n.Span())
		}
		return nil
	})
	w.OnEnter(nodeContinue, func(n Node) error {
		if inLoop == 0 {
			sink.report(level, "continue is only valid inside a loop", n.Span())
		}
		return nil
	})
	w.OnEnter(nodeFallthrough, func(n Node) error {
		if inSwitch == 0 {
			sink.report(level, "fallthrough is only valid inside a switch case", n.Span())
		}
		return nil
	})
}

func isTerminalStatement(n Node) bool {
	switch n.(type) {
	case *Return, *Break, *Continue, *Throw:
		return true
	default:
		return false
	}
}

func checkUnreachable(body []Node, sink *diagnosticSink, level Level) {
	for i := 0; i < len(body)-1; i++ {
		if isTerminalStatement(body[i]) {
			sink.report(level, fmt.Sprintf("unreachable code after %s", body[i].Kind()), body[i+1].Span())
			break
		}
	}
}

// installUnreachableAfterReturn flags a statement following an
// unconditional return/break/continue/throw in the same block
// (SPEC_FULL.md §4, "Additional linter rule: unreachable-after-return").
func installUnreachableAfterReturn(w *Walker, sink *diagnosticSink, level Level) {
	w.OnEnter(nodeProgram, func(n Node) error {
		checkUnreachable(n.(*Program).Body, sink, level)
		return nil
	})
	w.OnEnter(nodeFunctionDecl, func(n Node) error {
		checkUnreachable(n.(*FunctionDecl).Body, sink, level)
		return nil
	})
	w.OnEnter(nodeIf, func(n Node) error {
		v := n.(*If)
		checkUnreachable(v.Then, sink, level)
		checkUnreachable(v.Else, sink, level)
		return nil
	})
	w.OnEnter(nodeFor, func(n Node) error {
		checkUnreachable(n.(*For).Body, sink, level)
		return nil
	})
	w.OnEnter(nodeWhile, func(n Node) error {
		checkUnreachable(n.(*While).Body, sink, level)
		return nil
	})
	w.OnEnter(nodeRepeat, func(n Node) error {
		checkUnreachable(n.(*Repeat).Body, sink, level)
		return nil
	})
	w.OnEnter(nodeTry, func(n Node) error {
		v := n.(*Try)
		checkUnreachable(v.Body, sink, level)
		checkUnreachable(v.CatchBody, sink, level)
		checkUnreachable(v.Finally, sink, level)
		return nil
	})
	w.OnEnter(nodeSwitch, func(n Node) error {
		v := n.(*Switch)
		for _, c := range v.Cases {
			checkUnreachable(c.Body, sink, level)
		}
		checkUnreachable(v.Default, sink, level)
		return nil
	})
}

func memberName(n Node) (string, bool) {
	switch v := n.(type) {
	case *VariableDecl:
		return v.Name, true
	case *EmptyVariableDecl:
		return v.Name, true
	case *FunctionDecl:
		return v.Name, true
	default:
		return "", false
	}
}

func checkDuplicateNames(body []Node, sink *diagnosticSink, level Level) {
	seen := make(map[string]bool, len(body))
	for _, m := range body {
		name, ok := memberName(m)
		if !ok {
			continue
		}
		if seen[name] {
			sink.report(level, fmt.Sprintf("duplicate class member %q", name), m.Span())
			continue
		}
		seen[name] = true
	}
}

// installDuplicateClassMember flags a class member sharing a name with an
// earlier one in the same body section (SPEC_FULL.md §4,
// "Additional linter rule: duplicate-class-member").
func installDuplicateClassMember(w *Walker, sink *diagnosticSink, level Level) {
	w.OnEnter(nodeClassDecl, func(n Node) error {
		c := n.(*ClassDecl)
		checkDuplicateNames(c.StaticBody, sink, level)
		checkDuplicateNames(c.InstanceBody, sink, level)
		return nil
	})
}
