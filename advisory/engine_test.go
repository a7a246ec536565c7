package advisory

import (
	"strings"
	"testing"

	"github.com/SibelSenturk950/CancerAI-API/patient"
)

func exampleFacts() map[string]any {
	return Facts(patient.Input{
		Age:               58,
		Sex:               "Female",
		CancerType:        "Breast Cancer",
		Stage:             "II",
		Grade:             "Moderately Differentiated",
		TumorSizeCM:       3.2,
		Treatment:         "Surgery + Chemotherapy",
		PerformanceStatus: "Good",
	})
}

func TestNewEngineEmptyStore(t *testing.T) {
	engine, err := NewEngine(NewInMemoryStore())
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}

	matched, err := engine.Matched(exampleFacts())
	if err != nil {
		t.Fatalf("Matched() failed: %v", err)
	}
	if len(matched) != 0 {
		t.Errorf("expected no advisories, got %v", matched)
	}
}

func TestNewEngineCompilesActiveRules(t *testing.T) {
	store := NewInMemoryStore()
	rules := []*Rule{
		{ID: "elderly-poor-status", Name: "Elderly with poor performance status",
			Expression: `Patient.age >= 75 && Patient.performance_status == "Poor"`, Active: true},
		{ID: "late-stage", Name: "Late stage disease",
			Expression: `Patient.stage == "IV"`, Active: true},
		{ID: "disabled-rule", Name: "Disabled",
			Expression: `true`, Active: false},
	}
	for _, rule := range rules {
		if err := store.Add(rule); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}

	engine, err := NewEngine(store)
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}

	results, err := engine.EvaluateAll(exampleFacts())
	if err != nil {
		t.Fatalf("EvaluateAll() failed: %v", err)
	}

	// The inactive rule must not be evaluated
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, res := range results {
		if res.Matched {
			t.Errorf("rule %s should not match the example patient", res.RuleID)
		}
	}
}

func TestNewEngineFailsOnBadExpression(t *testing.T) {
	store := NewInMemoryStore()
	err := store.Add(&Rule{
		ID:         "broken",
		Name:       "Broken rule",
		Expression: `Patient.age >=`,
		Active:     true,
	})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	if _, err := NewEngine(store); err == nil {
		t.Fatal("NewEngine() should fail when an active rule does not compile")
	}
}

func TestNewEngineFailsOnInvalidDefinition(t *testing.T) {
	store := NewInMemoryStore()
	err := store.Add(&Rule{
		ID:         "no name",
		Name:       "Bad ID",
		Expression: `true`,
		Active:     true,
	})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	if _, err := NewEngine(store); err == nil {
		t.Fatal("NewEngine() should fail when a rule definition is invalid")
	}
}

func TestMatchedReturnsTriggeredNames(t *testing.T) {
	store := NewInMemoryStore()
	rules := []*Rule{
		{ID: "large-tumor", Name: "Large tumor",
			Expression: `Patient.tumor_size_cm >= 3.0`, Active: true},
		{ID: "young-patient", Name: "Young patient",
			Expression: `Patient.age < 40`, Active: true},
	}
	for _, rule := range rules {
		if err := store.Add(rule); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}

	engine, err := NewEngine(store)
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}

	matched, err := engine.Matched(exampleFacts())
	if err != nil {
		t.Fatalf("Matched() failed: %v", err)
	}

	if len(matched) != 1 || matched[0] != "Large tumor" {
		t.Errorf("Matched() = %v, want [Large tumor]", matched)
	}
}

func TestEvaluationErrorDoesNotFailRequest(t *testing.T) {
	store := NewInMemoryStore()
	rules := []*Rule{
		// References a field the facts never carry; errors at eval time
		{ID: "bad-field", Name: "Bad field",
			Expression: `Patient.biopsy_result == "positive"`, Active: true},
		{ID: "late-stage", Name: "Late stage disease",
			Expression: `Patient.stage == "II"`, Active: true},
	}
	for _, rule := range rules {
		if err := store.Add(rule); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}

	engine, err := NewEngine(store)
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}

	results, err := engine.EvaluateAll(exampleFacts())
	if err != nil {
		t.Fatalf("EvaluateAll() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	var sawError, sawMatch bool
	for _, res := range results {
		if res.RuleID == "bad-field" && res.Error != nil {
			sawError = true
		}
		if res.RuleID == "late-stage" && res.Matched {
			sawMatch = true
		}
	}
	if !sawError {
		t.Error("bad-field rule should report an evaluation error")
	}
	if !sawMatch {
		t.Error("late-stage rule should still evaluate and match")
	}
}

func TestAddRuleValidatesAndCompiles(t *testing.T) {
	engine, err := NewEngine(NewInMemoryStore())
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}

	err = engine.AddRule(&Rule{
		ID:         "pancreatic",
		Name:       "Pancreatic cancer",
		Expression: `Patient.cancer_type == "Pancreatic Cancer"`,
		Active:     true,
	})
	if err != nil {
		t.Fatalf("AddRule() failed: %v", err)
	}

	err = engine.AddRule(&Rule{
		ID:         "pancreatic",
		Name:       "Duplicate",
		Expression: `true`,
		Active:     true,
	})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("duplicate AddRule() error = %v", err)
	}

	err = engine.AddRule(&Rule{
		ID:         "broken",
		Name:       "Broken",
		Expression: `&&`,
		Active:     true,
	})
	if err == nil {
		t.Error("AddRule() should reject an expression that does not compile")
	}

	matched, err := engine.Matched(Facts(patient.Input{
		Age: 70, Sex: "Male", CancerType: "Pancreatic Cancer", Stage: "III",
		Grade: "Poorly Differentiated", TumorSizeCM: 4.1, Treatment: "Chemotherapy",
		PerformanceStatus: "Poor",
	}))
	if err != nil {
		t.Fatalf("Matched() failed: %v", err)
	}
	if len(matched) != 1 || matched[0] != "Pancreatic cancer" {
		t.Errorf("Matched() = %v", matched)
	}
}
