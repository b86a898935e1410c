package tek

import "github.com/juju/errors"

// These wrap github.com/juju/errors the way the teacher repo's own go.mod
// already pulls it in: Annotate to add context as an internal error
// crosses a package boundary, and a NotFound family for "rule doesn't
// exist" style lookups. None of this touches Diagnostic — Diagnostics are
// the user-facing result of compiling a file and are plain data, never a
// Go error.

// errRuleNotFound reports that a RuleSet config referenced a rule name
// the linter doesn't register.
func errRuleNotFound(name string) error {
	return errors.NotFoundf("linter rule %q", name)
}

// errDuplicateRule reports that the same rule name appears twice in
// builtinRules (checked by linter.go's init); this is a programmer error,
// not a config error.
func errDuplicateRule(name string) error {
	return errors.AlreadyExistsf("linter rule %q", name)
}

// wrapConfigError annotates a YAML/rule-config loading failure with the
// path it came from.
func wrapConfigError(path string, err error) error {
	return errors.Annotatef(err, "loading rule config %q", path)
}
