package domain

import (
	"errors"
	"fmt"
	"strings"

	m "flreduce.dev/pkg/flreduce/internal/model"
)

var (
	// ErrUnsupportedFormula is returned for an unknown formula tag.
	ErrUnsupportedFormula = errors.New("unsupported formula")
	// ErrMissingArtifact is returned when an upstream stage output is absent.
	ErrMissingArtifact = errors.New("missing artifact")
	// ErrInvalidRatio is returned for a reduction ratio outside [0, 1].
	ErrInvalidRatio = errors.New("invalid ratio")
	// ErrInvalidDataset is returned when a program version fails validation.
	ErrInvalidDataset = errors.New("invalid dataset")
	// ErrInvalidConfig is returned for an unknown strategy name or an out of range option.
	ErrInvalidConfig = errors.New("invalid config")
)

// StageError names the pipeline cell that failed.
type StageError struct {
	Stage   m.Stage
	Dataset string
	Project string
	Formula string
	Ratios  *m.Ratios
	Err     error
}

func (e *StageError) Error() string {
	parts := []string{string(e.Stage)}
	if e.Dataset != "" {
		parts = append(parts, "dataset="+e.Dataset)
	}

	if e.Project != "" {
		parts = append(parts, "project="+e.Project)
	}

	if e.Formula != "" {
		parts = append(parts, "formula="+e.Formula)
	}

	if e.Ratios != nil {
		parts = append(parts, "ratios="+e.Ratios.String())
	}

	return fmt.Sprintf("%s: %v", strings.Join(parts, " "), e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
