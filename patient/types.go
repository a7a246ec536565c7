package patient

import (
	"fmt"
	"strings"
)

// Input is a single patient's attributes as submitted for prediction.
// It is constructed per request and never stored.
type Input struct {
	Age               int     `json:"age"`
	Sex               string  `json:"sex"`
	CancerType        string  `json:"cancer_type"`
	Stage             string  `json:"stage"`
	Grade             string  `json:"grade"`
	TumorSizeCM       float64 `json:"tumor_size_cm"`
	Treatment         string  `json:"treatment"`
	PerformanceStatus string  `json:"performance_status"`
}

// ValidationError reports every field that failed validation, not just
// the first one, so the caller can fix a request in a single round trip.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid patient input: %s", strings.Join(e.Fields, ", "))
}

// Validate checks that all required fields are present and within their
// documented domains. Categorical values are checked later, during
// encoding, against the training vocabulary.
func Validate(in Input) error {
	var fields []string

	if in.Age <= 0 {
		fields = append(fields, "age must be a positive integer")
	}
	if in.Sex == "" {
		fields = append(fields, "sex is required")
	}
	if in.CancerType == "" {
		fields = append(fields, "cancer_type is required")
	}
	if in.Stage == "" {
		fields = append(fields, "stage is required")
	}
	if in.Grade == "" {
		fields = append(fields, "grade is required")
	}
	if in.TumorSizeCM < 0 {
		fields = append(fields, "tumor_size_cm must not be negative")
	}
	if in.Treatment == "" {
		fields = append(fields, "treatment is required")
	}
	if in.PerformanceStatus == "" {
		fields = append(fields, "performance_status is required")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
