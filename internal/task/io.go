package task

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrOutputNotFound reports a missing task output file.
var ErrOutputNotFound = errors.New("task output file not found")

// LoadOutput reads a task output record from disk. The record is validated;
// a file with missing required fields fails with the field list so the
// producer can fix it.
func LoadOutput(path string) (Output, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Output{}, ErrOutputNotFound
		}
		return Output{}, fmt.Errorf("read task output %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()

	var out Output
	if err := dec.Decode(&out); err != nil {
		return Output{}, fmt.Errorf("parse task output %s: %w", path, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Output{}, fmt.Errorf("parse task output %s: trailing JSON values", path)
		}
		return Output{}, fmt.Errorf("parse task output %s: trailing data: %w", path, err)
	}

	if errs := out.Validate(); len(errs) > 0 {
		return Output{}, fmt.Errorf("task output %s: %w", path, ValidationErrors(errs))
	}

	return out, nil
}
