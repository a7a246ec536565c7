package advisory

import (
	"fmt"
	"regexp"
	"strings"
)

var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)

// ValidateRule validates a rule definition before compilation.
// Returns an error if validation fails, nil if the rule is valid.
func ValidateRule(r *Rule) error {
	if err := validateRuleID(r.ID); err != nil {
		return fmt.Errorf("invalid rule ID %q: %w", r.ID, err)
	}

	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("rule %q must have a name", r.ID)
	}

	if strings.TrimSpace(r.Expression) == "" {
		return fmt.Errorf("rule %q must have an expression", r.ID)
	}

	return nil
}

// validateRuleID validates a rule identifier.
// Must be 1-100 characters, start with a letter or underscore, and
// contain only letters, digits, underscores, or hyphens.
func validateRuleID(id string) error {
	if len(id) == 0 {
		return fmt.Errorf("identifier cannot be empty")
	}
	if len(id) > 100 {
		return fmt.Errorf("identifier length %d exceeds maximum of 100 characters", len(id))
	}

	if !validIdentifier.MatchString(id) {
		return fmt.Errorf("must start with a letter or underscore, followed by letters, digits, underscores, or hyphens")
	}

	return nil
}

// ValidateRules validates a full rules file worth of definitions,
// including ID uniqueness across the set.
func ValidateRules(rules []Rule) error {
	if len(rules) > 200 {
		return fmt.Errorf("rules file contains %d rules, maximum allowed is 200", len(rules))
	}

	seen := make(map[string]bool, len(rules))
	for i := range rules {
		if err := ValidateRule(&rules[i]); err != nil {
			return err
		}
		if seen[rules[i].ID] {
			return fmt.Errorf("duplicate rule ID %q", rules[i].ID)
		}
		seen[rules[i].ID] = true
	}

	return nil
}
