package predict

import "fmt"

// RiskCategory is the discrete bucket derived from death probability.
type RiskCategory string

const (
	RiskLow    RiskCategory = "Low"
	RiskMedium RiskCategory = "Medium"
	RiskHigh   RiskCategory = "High"
)

// RiskBands are the death-probability thresholds for risk bucketing.
// These are product configuration, not a computed statistic.
type RiskBands struct {
	// LowMax is the exclusive upper bound on death probability for Low.
	LowMax float64
	// MediumMax is the exclusive upper bound for Medium; at or above
	// this the category is High.
	MediumMax float64
}

// DefaultRiskBands matches the shipped product thresholds: survival
// above 0.7 is Low risk, above 0.4 Medium, otherwise High.
func DefaultRiskBands() RiskBands {
	return RiskBands{LowMax: 0.3, MediumMax: 0.6}
}

func (b RiskBands) Validate() error {
	if b.LowMax <= 0 || b.LowMax >= 1 {
		return fmt.Errorf("risk band low_max %v must be in (0, 1)", b.LowMax)
	}
	if b.MediumMax <= 0 || b.MediumMax >= 1 {
		return fmt.Errorf("risk band medium_max %v must be in (0, 1)", b.MediumMax)
	}
	if b.LowMax > b.MediumMax {
		return fmt.Errorf("risk band low_max %v exceeds medium_max %v", b.LowMax, b.MediumMax)
	}
	return nil
}

// Categorize buckets a death probability. Monotonic: a higher death
// probability never yields a lower risk category.
func (b RiskBands) Categorize(pDeath float64) RiskCategory {
	switch {
	case pDeath < b.LowMax:
		return RiskLow
	case pDeath < b.MediumMax:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// Drug response categories.
const (
	ResponseNone     = "No Response"
	ResponsePartial  = "Partial Response"
	ResponseComplete = "Complete Response"
)

// ResponseBands are the response-probability thresholds for mapping a
// drug-response probability to a category.
type ResponseBands struct {
	CompleteMin float64 // exclusive lower bound for Complete Response
	PartialMin  float64 // exclusive lower bound for Partial Response
}

// DefaultResponseBands matches the shipped product thresholds.
func DefaultResponseBands() ResponseBands {
	return ResponseBands{CompleteMin: 0.8, PartialMin: 0.5}
}

func (b ResponseBands) Validate() error {
	if b.PartialMin <= 0 || b.PartialMin >= 1 {
		return fmt.Errorf("response band partial_min %v must be in (0, 1)", b.PartialMin)
	}
	if b.CompleteMin <= 0 || b.CompleteMin >= 1 {
		return fmt.Errorf("response band complete_min %v must be in (0, 1)", b.CompleteMin)
	}
	if b.PartialMin > b.CompleteMin {
		return fmt.Errorf("response band partial_min %v exceeds complete_min %v", b.PartialMin, b.CompleteMin)
	}
	return nil
}

// Categorize maps a response probability to its category.
func (b ResponseBands) Categorize(p float64) string {
	switch {
	case p > b.CompleteMin:
		return ResponseComplete
	case p > b.PartialMin:
		return ResponsePartial
	default:
		return ResponseNone
	}
}
