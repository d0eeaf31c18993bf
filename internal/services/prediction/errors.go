package prediction

import "fmt"

type ErrorType string

const (
	ErrTypeValidation  ErrorType = "VALIDATION"
	ErrTypeCatalog     ErrorType = "CATALOG"
	ErrTypePersistence ErrorType = "PERSISTENCE"
)

type PredictionError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *PredictionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Prediction %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("Prediction %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *PredictionError) Unwrap() error {
	return e.Cause
}

func NewValidationError(operation, msg string) *PredictionError {
	return &PredictionError{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

func NewCatalogError(operation string, cause error) *PredictionError {
	return &PredictionError{Type: ErrTypeCatalog, Operation: operation, Message: "disease catalog unavailable", Cause: cause}
}
