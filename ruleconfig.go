package tek

import (
	"os"

	"github.com/juju/errors"
	yaml "gopkg.in/yaml.v2"
)

// RuleSet says which linter rules run and at what severity, overriding
// each rule's built-in default (spec.md §6.1's `rules` parameter of
// `lint(ast, rules)`; shape given concretely in SPEC_FULL.md §2.3).
type RuleSet struct {
	Levels map[string]Level
}

// ruleConfigDocument mirrors the YAML shape documented in SPEC_FULL.md §2.3:
//
//	rules:
//	  declarations-in-class: error
//	  invalid-control-statement: error
//	  unreachable-after-return: warning
type ruleConfigDocument struct {
	Rules map[string]string `yaml:"rules"`
}

var ruleLevelWords = map[string]Level{
	"error":   ERROR,
	"warning": WARNING,
	"info":    INFO,
}

// DefaultRuleSet returns the built-in rule levels named in spec.md §4.3.3
// and SPEC_FULL.md §4.
func DefaultRuleSet() RuleSet {
	return RuleSet{Levels: map[string]Level{
		ruleDeclarationsInClass:     ERROR,
		ruleInvalidControlStatement: ERROR,
		ruleUnreachableAfterReturn:  WARNING,
		ruleDuplicateClassMember:    WARNING,
	}}
}

// LoadRuleSet parses a YAML rule-configuration document into a RuleSet
// layered on top of DefaultRuleSet. An unknown rule name or severity word
// is a config error (distinct from a Diagnostic, per errors.go) — it can
// only come from a malformed config file, never from a compiled source.
func LoadRuleSet(data []byte) (RuleSet, error) {
	rs := DefaultRuleSet()

	var doc ruleConfigDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return RuleSet{}, errors.Annotate(err, "parsing rule configuration")
	}

	for name, word := range doc.Rules {
		if _, known := rs.Levels[name]; !known {
			return RuleSet{}, errRuleNotFound(name)
		}
		level, ok := ruleLevelWords[word]
		if !ok {
			return RuleSet{}, errors.Errorf("rule %q: unknown severity %q", name, word)
		}
		rs.Levels[name] = level
	}

	return rs, nil
}

// LoadRuleSetFile reads and parses a rule-configuration document from disk,
// annotating any failure with the path it came from.
func LoadRuleSetFile(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, wrapConfigError(path, err)
	}
	rs, err := LoadRuleSet(data)
	if err != nil {
		return RuleSet{}, wrapConfigError(path, err)
	}
	return rs, nil
}

// levelOf returns the configured level for name, falling back to ERROR for
// a rule the RuleSet doesn't mention (e.g. a zero-value RuleSet).
func (rs RuleSet) levelOf(name string) Level {
	if l, ok := rs.Levels[name]; ok {
		return l
	}
	return ERROR
}
