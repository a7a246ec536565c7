package advisory

// Rule is a single clinical advisory: a CEL expression over the Patient
// fact object. When the expression evaluates true for a prediction
// request, the rule's name is attached to the response as an advisory.
type Rule struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
	Active     bool   `yaml:"active"`
}

// Result is the outcome of evaluating one rule against patient facts.
type Result struct {
	RuleID   string
	RuleName string
	Matched  bool
	Error    error
}
