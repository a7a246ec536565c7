package model

import (
	"fmt"
	"sort"
	"sync"
)

// Kind selects which of the loaded classifiers to invoke.
type Kind string

const (
	KindSurvival     Kind = "survival"
	KindDrugResponse Kind = "drug-response"
)

// Model is a loaded classifier with its metadata.
type Model struct {
	Kind       Kind
	Info       Info
	Classifier Classifier
}

// Registry holds the loaded models. Load runs once during startup;
// afterwards the registry is read-only and shared across all requests.
type Registry struct {
	models map[Kind]*Model
	loaded bool
	mu     sync.RWMutex
}

// NewRegistry creates an empty, unloaded registry.
func NewRegistry() *Registry {
	return &Registry{
		models: make(map[Kind]*Model),
	}
}

// Load reads every model file and installs the set atomically: either
// all paths load or the registry stays unloaded. Any failure must keep
// the process from serving traffic.
func (r *Registry) Load(paths map[Kind]string) error {
	loaded := make(map[Kind]*Model, len(paths))
	for kind, path := range paths {
		mf, err := ReadFile(path)
		if err != nil {
			return err
		}
		loaded[kind] = &Model{
			Kind:       kind,
			Info:       mf.Info,
			Classifier: mf.Classifier,
		}
	}

	r.mu.Lock()
	r.models = loaded
	r.loaded = true
	r.mu.Unlock()

	return nil
}

// Get retrieves the model for a kind.
func (r *Registry) Get(kind Kind) (*Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, exists := r.models[kind]
	if !exists {
		return nil, fmt.Errorf("model %s not loaded", kind)
	}
	return m, nil
}

// Loaded reports whether the full model set has been installed.
func (r *Registry) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

// Kinds returns the loaded model kinds in stable order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.models))
	for kind := range r.models {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
