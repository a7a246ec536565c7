package predict

import (
	"fmt"

	"github.com/SibelSenturk950/CancerAI-API/model"
	"github.com/SibelSenturk950/CancerAI-API/patient"
)

// InferenceError wraps an unexpected failure inside the model call
// itself, after the input already validated and encoded cleanly.
// It maps to a 500, not a 400.
type InferenceError struct {
	Kind model.Kind
	Err  error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed for %s model: %v", e.Kind, e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }

// SurvivalResult is the outcome of a survival prediction.
type SurvivalResult struct {
	Survived            bool
	SurvivalProbability float64
	DeathProbability    float64
	Confidence          float64
	RiskCategory        RiskCategory
	Model               model.Info
}

// DrugResponseResult is the outcome of a drug-response prediction.
type DrugResponseResult struct {
	ResponseType        string
	ResponseProbability float64
	Confidence          float64
	Model               model.Info
}

// Pipeline runs the full prediction flow: validate the input, encode it
// through the training vocabulary, invoke the classifier, and derive the
// discrete outcomes from the returned probabilities. A Pipeline is
// stateless apart from its read-only registry and band configuration, so
// one instance serves all requests concurrently.
type Pipeline struct {
	registry *model.Registry
	risk     RiskBands
	response ResponseBands
}

// NewPipeline wires a pipeline to a loaded registry.
func NewPipeline(registry *model.Registry, risk RiskBands, response ResponseBands) *Pipeline {
	return &Pipeline{
		registry: registry,
		risk:     risk,
		response: response,
	}
}

// proba validates and encodes the input, then runs the selected model.
// A single deterministic call, no retries: every operation here is pure.
func (p *Pipeline) proba(kind model.Kind, in patient.Input) (*model.Model, float64, float64, error) {
	if err := patient.Validate(in); err != nil {
		return nil, 0, 0, err
	}

	features, err := patient.Features(in)
	if err != nil {
		return nil, 0, 0, err
	}

	m, err := p.registry.Get(kind)
	if err != nil {
		return nil, 0, 0, &InferenceError{Kind: kind, Err: err}
	}

	p0, p1, err := m.Classifier.PredictProba(features)
	if err != nil {
		return nil, 0, 0, &InferenceError{Kind: kind, Err: err}
	}

	return m, p0, p1, nil
}

// PredictSurvival runs the survival model for one patient.
func (p *Pipeline) PredictSurvival(in patient.Input) (*SurvivalResult, error) {
	m, pDeath, pSurvival, err := p.proba(model.KindSurvival, in)
	if err != nil {
		return nil, err
	}

	return &SurvivalResult{
		Survived:            pSurvival >= 0.5,
		SurvivalProbability: pSurvival,
		DeathProbability:    pDeath,
		Confidence:          max(pSurvival, pDeath),
		RiskCategory:        p.risk.Categorize(pDeath),
		Model:               m.Info,
	}, nil
}

// PredictDrugResponse runs the drug-response model for one patient.
func (p *Pipeline) PredictDrugResponse(in patient.Input) (*DrugResponseResult, error) {
	m, p0, p1, err := p.proba(model.KindDrugResponse, in)
	if err != nil {
		return nil, err
	}

	return &DrugResponseResult{
		ResponseType:        p.response.Categorize(p1),
		ResponseProbability: p1,
		Confidence:          max(p0, p1),
		Model:               m.Info,
	}, nil
}
