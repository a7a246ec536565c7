package advisory

import (
	"fmt"
	"sync"
)

// Store manages advisory rule definitions. The only implementation today
// is in-memory, populated from the rules file at startup; the interface
// keeps the engine decoupled from where definitions come from.
type Store interface {
	// Add a new rule
	Add(rule *Rule) error

	// Get a rule by ID
	Get(id string) (*Rule, error)

	// List all active rules
	ListActive() ([]*Rule, error)
}

// InMemoryStore implements Store using a map. Thread-safe.
type InMemoryStore struct {
	rules map[string]*Rule
	mu    sync.RWMutex
}

// NewInMemoryStore creates an empty in-memory rule store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		rules: make(map[string]*Rule),
	}
}

// Add adds a new rule to the store. Rule IDs are unique.
func (s *InMemoryStore) Add(rule *Rule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rules[rule.ID]; exists {
		return fmt.Errorf("rule with ID %s already exists", rule.ID)
	}

	s.rules[rule.ID] = rule
	return nil
}

// Get retrieves a rule by ID.
func (s *InMemoryStore) Get(id string) (*Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rule, exists := s.rules[id]
	if !exists {
		return nil, fmt.Errorf("rule with ID %s not found", id)
	}
	return rule, nil
}

// ListActive returns all active rules.
func (s *InMemoryStore) ListActive() ([]*Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var active []*Rule
	for _, rule := range s.rules {
		if rule.Active {
			active = append(active, rule)
		}
	}
	return active, nil
}
