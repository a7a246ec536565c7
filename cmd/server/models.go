package main

import "github.com/SibelSenturk950/CancerAI-API/patient"

// API request and response models.

// predictRequest is the inbound patient payload. Pointer fields let the
// handler distinguish a missing field from a zero value.
type predictRequest struct {
	Age               *int     `json:"age"`
	Sex               *string  `json:"sex"`
	CancerType        *string  `json:"cancer_type"`
	Stage             *string  `json:"stage"`
	Grade             *string  `json:"grade"`
	TumorSizeCM       *float64 `json:"tumor_size_cm"`
	Treatment         *string  `json:"treatment"`
	PerformanceStatus *string  `json:"performance_status"`
}

// input converts the request to a patient.Input, reporting any fields
// that were absent from the payload.
func (r *predictRequest) input() (patient.Input, []string) {
	var missing []string
	var in patient.Input

	if r.Age == nil {
		missing = append(missing, "age")
	} else {
		in.Age = *r.Age
	}
	if r.Sex == nil {
		missing = append(missing, "sex")
	} else {
		in.Sex = *r.Sex
	}
	if r.CancerType == nil {
		missing = append(missing, "cancer_type")
	} else {
		in.CancerType = *r.CancerType
	}
	if r.Stage == nil {
		missing = append(missing, "stage")
	} else {
		in.Stage = *r.Stage
	}
	if r.Grade == nil {
		missing = append(missing, "grade")
	} else {
		in.Grade = *r.Grade
	}
	if r.TumorSizeCM == nil {
		missing = append(missing, "tumor_size_cm")
	} else {
		in.TumorSizeCM = *r.TumorSizeCM
	}
	if r.Treatment == nil {
		missing = append(missing, "treatment")
	} else {
		in.Treatment = *r.Treatment
	}
	if r.PerformanceStatus == nil {
		missing = append(missing, "performance_status")
	} else {
		in.PerformanceStatus = *r.PerformanceStatus
	}

	return in, missing
}

// SurvivalPrediction is the numeric outcome block of a survival response.
type SurvivalPrediction struct {
	Survived            bool    `json:"survived"`
	SurvivalProbability float64 `json:"survival_probability"`
	DeathProbability    float64 `json:"death_probability"`
	Confidence          float64 `json:"confidence"`
	RiskCategory        string  `json:"risk_category"`
}

// PatientEcho is the subset of input fields echoed back in a survival
// response.
type PatientEcho struct {
	Age         int     `json:"age"`
	Sex         string  `json:"sex"`
	CancerType  string  `json:"cancer_type"`
	Stage       string  `json:"stage"`
	TumorSizeCM float64 `json:"tumor_size_cm"`
}

// ModelMeta is the training provenance block of a prediction response.
type ModelMeta struct {
	Name            string `json:"name"`
	Accuracy        string `json:"accuracy"`
	CrossValidation string `json:"cross_validation,omitempty"`
}

// SurvivalResponse is the full survival prediction response.
type SurvivalResponse struct {
	Prediction   SurvivalPrediction `json:"prediction"`
	Advisories   []string           `json:"advisories"`
	Patient      PatientEcho        `json:"patient"`
	Model        ModelMeta          `json:"model"`
	PredictionID string             `json:"prediction_id"`
}

// DrugResponsePrediction is the numeric outcome block of a drug-response
// response.
type DrugResponsePrediction struct {
	ResponseType        string  `json:"response_type"`
	ResponseProbability float64 `json:"response_probability"`
	Confidence          float64 `json:"confidence"`
}

// DrugPatientEcho is the subset of input fields echoed back in a
// drug-response response.
type DrugPatientEcho struct {
	CancerType string `json:"cancer_type"`
	Stage      string `json:"stage"`
	Treatment  string `json:"treatment"`
}

// DrugResponseResponse is the full drug-response prediction response.
type DrugResponseResponse struct {
	Prediction   DrugResponsePrediction `json:"prediction"`
	Patient      DrugPatientEcho        `json:"patient"`
	Model        ModelMeta              `json:"model"`
	PredictionID string                 `json:"prediction_id"`
}

// HealthResponse reports whether the model set is loaded.
type HealthResponse struct {
	Status        string `json:"status"`
	ModelsLoaded  bool   `json:"models_loaded"`
	SurvivalModel string `json:"survival_model,omitempty"`
	DrugModel     string `json:"drug_model,omitempty"`
}
