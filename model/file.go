package model

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Info is the training provenance surfaced in API responses.
type Info struct {
	Name            string
	Accuracy        string
	CrossValidation string
}

// File is the on-disk representation of a trained model: metadata plus
// the serialized classifier itself.
type File struct {
	Info       Info
	Classifier Classifier
}

// LoadError wraps any failure to read or decode a model file. It is
// fatal at startup: the service must not serve with a partial model set.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load model %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ReadFile decodes a gob model file.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var mf File
	if err := gob.NewDecoder(f).Decode(&mf); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if mf.Classifier == nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("file contains no classifier")}
	}

	return &mf, nil
}

// WriteFile encodes a model to disk in the format ReadFile expects.
func WriteFile(path string, mf *File) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write model %s: %w", path, err)
	}

	if err := gob.NewEncoder(f).Encode(mf); err != nil {
		f.Close()
		return fmt.Errorf("write model %s: %w", path, err)
	}

	return f.Close()
}
