package advisory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadFile reads advisory rule definitions from a YAML file and
// validates them. Compilation happens when the rules are handed to an
// Engine.
func LoadFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file %s: %w", path, err)
	}

	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	if err := ValidateRules(rf.Rules); err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}

	return rf.Rules, nil
}

// NewEngineFromFile builds an engine preloaded with the rules in a YAML
// file. Passing an empty path yields an engine with no rules.
func NewEngineFromFile(path string) (*Engine, error) {
	store := NewInMemoryStore()

	if path != "" {
		rules, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		for i := range rules {
			if err := store.Add(&rules[i]); err != nil {
				return nil, err
			}
		}
	}

	return NewEngine(store)
}
