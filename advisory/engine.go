package advisory

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/SibelSenturk950/CancerAI-API/patient"
)

// Engine compiles advisory rule expressions against the Patient fact
// schema and evaluates them per prediction request. Compilation happens
// once at startup; evaluation is read-only and safe under concurrency
// (RWMutex around the program map).
type Engine struct {
	env      *cel.Env
	store    Store
	cache    Cache
	programs map[string]cel.Program // ruleID -> compiled program
	mu       sync.RWMutex
}

// NewEngine creates an advisory engine over the given store. Every
// active rule in the store is validated and compiled; a rule that does
// not compile fails construction, which is fatal at startup.
func NewEngine(store Store) (*Engine, error) {
	env, err := cel.NewEnv(
		cel.Variable("Patient", cel.DynType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	en := &Engine{
		env:      env,
		store:    store,
		cache:    NewInMemoryCache(DefaultCacheConfig()),
		programs: make(map[string]cel.Program),
	}

	if err := en.CompileAll(); err != nil {
		return nil, fmt.Errorf("failed to compile advisory rules: %w", err)
	}

	return en, nil
}

// CompileRule compiles a single rule expression to a CEL program.
// A cost limit guards against runaway expressions from a bad rules file.
func (en *Engine) CompileRule(ruleID, expression string) error {
	ast, issues := en.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return fmt.Errorf("compile error: %w", issues.Err())
	}

	prog, err := en.env.Program(ast, cel.CostLimit(1000000))
	if err != nil {
		return fmt.Errorf("program creation error: %w", err)
	}

	en.mu.Lock()
	en.programs[ruleID] = prog
	en.mu.Unlock()

	return nil
}

// CompileAll validates and compiles all active rules from the store and
// populates the cache with the active rules list.
func (en *Engine) CompileAll() error {
	rules, err := en.store.ListActive()
	if err != nil {
		return err
	}

	for _, rule := range rules {
		if err := ValidateRule(rule); err != nil {
			return fmt.Errorf("invalid rule %s: %w", rule.ID, err)
		}
		if err := en.CompileRule(rule.ID, rule.Expression); err != nil {
			return fmt.Errorf("failed to compile rule %s: %w", rule.ID, err)
		}
	}

	en.cache.Set(rules)

	return nil
}

// AddRule validates, compiles, and stores a rule.
func (en *Engine) AddRule(r *Rule) error {
	if _, err := en.store.Get(r.ID); err == nil {
		return fmt.Errorf("rule with ID %s already exists", r.ID)
	}

	if err := ValidateRule(r); err != nil {
		return fmt.Errorf("rule validation failed: %w", err)
	}

	if err := en.CompileRule(r.ID, r.Expression); err != nil {
		return fmt.Errorf("rule validation failed: %w", err)
	}

	if err := en.store.Add(r); err != nil {
		// Remove from compiled programs if store fails
		en.mu.Lock()
		delete(en.programs, r.ID)
		en.mu.Unlock()
		return err
	}

	en.cache.Invalidate()

	return nil
}

// EvaluateAll evaluates every active rule against the facts. A rule that
// errors at evaluation time is reported in its Result but never fails
// the request; the remaining rules still run.
func (en *Engine) EvaluateAll(facts map[string]any) ([]*Result, error) {
	rules := en.cache.Get()

	if rules == nil {
		var err error
		rules, err = en.store.ListActive()
		if err != nil {
			return nil, err
		}
		en.cache.Set(rules)
	}

	results := make([]*Result, 0, len(rules))
	for _, rule := range rules {
		en.mu.RLock()
		prog, exists := en.programs[rule.ID]
		en.mu.RUnlock()

		if !exists {
			results = append(results, &Result{
				RuleID:   rule.ID,
				RuleName: rule.Name,
				Matched:  false,
				Error:    fmt.Errorf("rule %s is not compiled", rule.ID),
			})
			continue
		}

		out, _, err := prog.Eval(facts)
		if err != nil {
			results = append(results, &Result{
				RuleID:   rule.ID,
				RuleName: rule.Name,
				Matched:  false,
				Error:    err,
			})
			continue
		}

		matched := false
		if boolVal, ok := out.Value().(bool); ok {
			matched = boolVal
		}

		results = append(results, &Result{
			RuleID:   rule.ID,
			RuleName: rule.Name,
			Matched:  matched,
		})
	}

	return results, nil
}

// Matched evaluates all rules and returns the names of those that
// triggered, the form the prediction response carries.
func (en *Engine) Matched(facts map[string]any) ([]string, error) {
	results, err := en.EvaluateAll(facts)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(results))
	for _, res := range results {
		if res.Matched {
			names = append(names, res.RuleName)
		}
	}
	return names, nil
}

// Facts converts a patient input into the fact map the rule expressions
// are written against.
func Facts(in patient.Input) map[string]any {
	return map[string]any{
		"Patient": map[string]any{
			"age":                in.Age,
			"sex":                in.Sex,
			"cancer_type":        in.CancerType,
			"stage":              in.Stage,
			"grade":              in.Grade,
			"tumor_size_cm":      in.TumorSizeCM,
			"treatment":          in.Treatment,
			"performance_status": in.PerformanceStatus,
		},
	}
}
