package patient

import "fmt"

// The encoder tables map categorical values to the integer codes the
// models were trained with (alphabetical label-encoder order). They are
// fixed at build time and never mutated: a code shift here would silently
// change every prediction, so any edit must be paired with retrained
// model files.

var sexCodes = map[string]int{
	"Female": 0,
	"Male":   1,
}

var cancerTypeCodes = map[string]int{
	"Breast Cancer":     0,
	"Colorectal Cancer": 1,
	"Leukemia":          2,
	"Lung Cancer":       3,
	"Melanoma":          4,
	"Ovarian Cancer":    5,
	"Pancreatic Cancer": 6,
	"Prostate Cancer":   7,
}

var stageCodes = map[string]int{
	"I":   0,
	"II":  1,
	"III": 2,
	"IV":  3,
}

var gradeCodes = map[string]int{
	"Moderately Differentiated": 0,
	"Poorly Differentiated":     1,
	"Well Differentiated":       2,
}

var treatmentCodes = map[string]int{
	"Chemotherapy":             0,
	"Chemotherapy + Radiation": 1,
	"Immunotherapy":            2,
	"Multimodal":               3,
	"Radiation":                4,
	"Surgery":                  5,
	"Surgery + Chemotherapy":   6,
	"Surgery + Radiation":      7,
}

var performanceStatusCodes = map[string]int{
	"Excellent": 0,
	"Good":      1,
	"Poor":      2,
}

var codeTables = map[string]map[string]int{
	"sex":                sexCodes,
	"cancer_type":        cancerTypeCodes,
	"stage":              stageCodes,
	"grade":              gradeCodes,
	"treatment":          treatmentCodes,
	"performance_status": performanceStatusCodes,
}

// UnknownCategoryError is returned when a categorical value is not part
// of the vocabulary a model was trained with. Encoding never falls back
// to a default code: a guessed code produces a plausible-looking but
// wrong prediction.
type UnknownCategoryError struct {
	Field string
	Value string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Field, e.Value)
}

// Encode maps a categorical field value to its training-time integer code.
func Encode(field, value string) (int, error) {
	table, ok := codeTables[field]
	if !ok {
		return 0, fmt.Errorf("no encoder for field %q", field)
	}
	code, ok := table[value]
	if !ok {
		return 0, &UnknownCategoryError{Field: field, Value: value}
	}
	return code, nil
}

// NumFeatures is the length of the feature vector the models expect:
// two numeric columns followed by the six categorical columns.
const NumFeatures = 8

// Features assembles the ordered feature vector for a validated input.
// The order is fixed by training: age, tumor size, then the categorical
// columns sex, cancer_type, stage, grade, treatment, performance_status.
func Features(in Input) ([]float64, error) {
	features := make([]float64, 0, NumFeatures)
	features = append(features, float64(in.Age), in.TumorSizeCM)

	categorical := []struct {
		field string
		value string
	}{
		{"sex", in.Sex},
		{"cancer_type", in.CancerType},
		{"stage", in.Stage},
		{"grade", in.Grade},
		{"treatment", in.Treatment},
		{"performance_status", in.PerformanceStatus},
	}

	for _, c := range categorical {
		code, err := Encode(c.field, c.value)
		if err != nil {
			return nil, err
		}
		features = append(features, float64(code))
	}

	return features, nil
}

// sortedValues returns the vocabulary of a code table in code order, so
// the enumeration endpoints list values exactly as the encoder knows them.
func sortedValues(table map[string]int) []string {
	values := make([]string, len(table))
	for value, code := range table {
		values[code] = value
	}
	return values
}

// CancerTypes returns the supported cancer type vocabulary.
func CancerTypes() []string { return sortedValues(cancerTypeCodes) }

// Stages returns the supported stage vocabulary.
func Stages() []string { return sortedValues(stageCodes) }

// Treatments returns the supported treatment vocabulary.
func Treatments() []string { return sortedValues(treatmentCodes) }
