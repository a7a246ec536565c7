package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTestModel(t *testing.T, dir, name string, mf *File) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := WriteFile(path, mf); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func testModelFile(name string) *File {
	return &File{
		Info: Info{Name: name, Accuracy: "85.0%"},
		Classifier: &Logistic{
			Intercept: 0.2,
			Weights:   []float64{0.1, -0.1},
		},
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeTestModel(t, dir, "m.gob", &File{
		Info: Info{Name: "Gradient Boosting Classifier", Accuracy: "85.0%", CrossValidation: "85.5% (±4.9%)"},
		Classifier: &StumpEnsemble{
			Features: 2,
			Bias:     0.3,
			Trees:    []Stump{{Feature: 0, Threshold: 1, Left: 0.5, Right: -0.5}},
		},
	})

	mf, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}

	if mf.Info.Name != "Gradient Boosting Classifier" {
		t.Errorf("Info.Name = %q", mf.Info.Name)
	}
	if mf.Classifier.NumFeatures() != 2 {
		t.Errorf("NumFeatures() = %d, want 2", mf.Classifier.NumFeatures())
	}

	// Decoded classifier must score identically to the original
	_, p1, err := mf.Classifier.PredictProba([]float64{0.5, 0})
	if err != nil {
		t.Fatalf("PredictProba() failed: %v", err)
	}
	if p1 <= 0.5 {
		t.Errorf("expected positive score for features below threshold, got p1 = %v", p1)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.gob"))
	if err == nil {
		t.Fatal("ReadFile() should fail for a missing file")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
}

func TestReadFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gob")
	if err := os.WriteFile(path, []byte("not a gob stream"), 0o644); err != nil {
		t.Fatal(err)
	}

	var loadErr *LoadError
	if _, err := ReadFile(path); !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError for corrupt file, got %v", err)
	}
}

func TestRegistryLoadAndGet(t *testing.T) {
	dir := t.TempDir()
	survival := writeTestModel(t, dir, "survival.gob", testModelFile("Gradient Boosting Classifier"))
	drug := writeTestModel(t, dir, "drug.gob", testModelFile("Random Forest Classifier"))

	r := NewRegistry()
	if r.Loaded() {
		t.Fatal("new registry should not report loaded")
	}

	err := r.Load(map[Kind]string{
		KindSurvival:     survival,
		KindDrugResponse: drug,
	})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !r.Loaded() {
		t.Error("registry should report loaded")
	}

	m, err := r.Get(KindSurvival)
	if err != nil {
		t.Fatalf("Get(survival) failed: %v", err)
	}
	if m.Info.Name != "Gradient Boosting Classifier" {
		t.Errorf("survival model name = %q", m.Info.Name)
	}

	kinds := r.Kinds()
	if len(kinds) != 2 || kinds[0] != KindDrugResponse || kinds[1] != KindSurvival {
		t.Errorf("Kinds() = %v", kinds)
	}
}

func TestRegistryLoadIsAllOrNothing(t *testing.T) {
	dir := t.TempDir()
	survival := writeTestModel(t, dir, "survival.gob", testModelFile("Gradient Boosting Classifier"))

	r := NewRegistry()
	err := r.Load(map[Kind]string{
		KindSurvival:     survival,
		KindDrugResponse: filepath.Join(dir, "missing.gob"),
	})
	if err == nil {
		t.Fatal("Load() should fail when any file is missing")
	}

	if r.Loaded() {
		t.Error("registry should stay unloaded after a partial failure")
	}
	if _, err := r.Get(KindSurvival); err == nil {
		t.Error("no model should be retrievable after a failed load")
	}
}

func TestRegistryGetUnknownKind(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get(Kind("sentiment")); err == nil {
		t.Fatal("Get() should fail for a kind that was never loaded")
	}
}
