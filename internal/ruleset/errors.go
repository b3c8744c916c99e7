package ruleset

import "fmt"

// RuleError reports why a single rule record failed to compile or validate
// during ruleset construction. A RuleError aborts the entire ruleset build
// (§4.9) — rules are never silently skipped.
type RuleError struct {
	Facet Facet
	Index int
	Regex string
	Err   error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("ruleset: facet %s rule %d (%q): %v", e.Facet, e.Index, e.Regex, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }

func newRuleError(facet Facet, index int, regex string, err error) *RuleError {
	return &RuleError{Facet: facet, Index: index, Regex: regex, Err: err}
}

func errBackrefOutOfRange(wanted, have int) error {
	return fmt.Errorf("template references $%d but pattern has only %d capture group(s)", wanted, have)
}

func errUnknownRegexFlag(flag string) error {
	return fmt.Errorf("unrecognised regex_flag %q (only \"i\" is supported)", flag)
}
