package domain

import "errors"

var (
	ErrMissingURL     = errors.New("missing url")
	ErrMissingSection = errors.New("missing section")
)

// NormalizationError reports why a CreationRequest could not become a record.
// It matches its kind with errors.Is.
type NormalizationError struct {
	Field string
	Kind  error
}

func (e *NormalizationError) Error() string {
	return "normalize " + e.Field + ": " + e.Kind.Error()
}

func (e *NormalizationError) Unwrap() error { return e.Kind }
