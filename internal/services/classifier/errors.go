package classifier

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrTypeUnavailable ErrorType = "MODEL_UNAVAILABLE"
	ErrTypeArtifact    ErrorType = "ARTIFACT"
	ErrTypeValidation  ErrorType = "VALIDATION"
)

type ClassifierError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *ClassifierError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Classifier %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("Classifier %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *ClassifierError) Unwrap() error {
	return e.Cause
}

func NewUnavailableError(operation, msg string, cause error) *ClassifierError {
	return &ClassifierError{Type: ErrTypeUnavailable, Operation: operation, Message: msg, Cause: cause}
}

func NewArtifactError(operation, msg string, cause error) *ClassifierError {
	return &ClassifierError{Type: ErrTypeArtifact, Operation: operation, Message: msg, Cause: cause}
}

func NewValidationError(operation, msg string) *ClassifierError {
	return &ClassifierError{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

// IsModelUnavailable reports whether err means the pretrained artifact is
// absent or unloadable, the condition that reroutes a request to the
// heuristic matcher.
func IsModelUnavailable(err error) bool {
	var ce *ClassifierError
	return errors.As(err, &ce) && ce.Type == ErrTypeUnavailable
}
