package model

import (
	"encoding/gob"
	"fmt"
	"math"
)

// Classifier is an opaque binary classifier. Implementations are
// immutable after deserialization and safe for concurrent use.
type Classifier interface {
	// PredictProba returns the class probabilities (p0, p1).
	// The two always sum to 1.
	PredictProba(features []float64) (p0, p1 float64, err error)

	// NumFeatures is the feature vector length the classifier was
	// trained with.
	NumFeatures() int
}

func init() {
	// Concrete classifier types must be registered so gob can decode
	// them through the Classifier interface field in File.
	gob.Register(&Logistic{})
	gob.Register(&StumpEnsemble{})
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// Logistic is a linear classifier: p1 = sigmoid(intercept + w·x).
type Logistic struct {
	Weights   []float64
	Intercept float64
}

func (m *Logistic) NumFeatures() int { return len(m.Weights) }

func (m *Logistic) PredictProba(features []float64) (float64, float64, error) {
	if len(features) != len(m.Weights) {
		return 0, 0, fmt.Errorf("expected %d features, got %d", len(m.Weights), len(features))
	}

	z := m.Intercept
	for i, w := range m.Weights {
		z += w * features[i]
	}

	p1 := sigmoid(z)
	return 1 - p1, p1, nil
}

// Stump is a depth-1 decision tree contributing a raw score to an
// additive ensemble.
type Stump struct {
	Feature   int
	Threshold float64
	Left      float64 // score when feature < threshold
	Right     float64 // score otherwise
}

// StumpEnsemble is a boosted ensemble of stumps. The summed raw score is
// squashed through a sigmoid, the usual shape of a gradient-boosted
// binary classifier.
type StumpEnsemble struct {
	Features int
	Bias     float64
	Trees    []Stump
}

func (m *StumpEnsemble) NumFeatures() int { return m.Features }

func (m *StumpEnsemble) PredictProba(features []float64) (float64, float64, error) {
	if len(features) != m.Features {
		return 0, 0, fmt.Errorf("expected %d features, got %d", m.Features, len(features))
	}

	score := m.Bias
	for _, t := range m.Trees {
		if t.Feature < 0 || t.Feature >= len(features) {
			return 0, 0, fmt.Errorf("tree references feature %d, model has %d", t.Feature, len(features))
		}
		if features[t.Feature] < t.Threshold {
			score += t.Left
		} else {
			score += t.Right
		}
	}

	p1 := sigmoid(score)
	return 1 - p1, p1, nil
}
