package catalog

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrTypeNotFound ErrorType = "NOT_FOUND"
	ErrTypeCorrupt  ErrorType = "CORRUPT"
)

// CatalogError describes why the disease catalog could not be loaded.
type CatalogError struct {
	Type    ErrorType
	Path    string
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Catalog %s error: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("Catalog %s error: %s", e.Type, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

func NewNotFoundError(paths []string) *CatalogError {
	return &CatalogError{
		Type:    ErrTypeNotFound,
		Message: fmt.Sprintf("disease data file not found in any of %d candidate paths %v", len(paths), paths),
	}
}

func NewCorruptError(path string, cause error) *CatalogError {
	return &CatalogError{
		Type:    ErrTypeCorrupt,
		Path:    path,
		Message: "disease data file contains invalid JSON",
		Cause:   cause,
	}
}

// IsNotFound reports whether err means no candidate path had a catalog file.
func IsNotFound(err error) bool {
	var ce *CatalogError
	return errors.As(err, &ce) && ce.Type == ErrTypeNotFound
}

// IsCorrupt reports whether err means a catalog file existed but would not decode.
func IsCorrupt(err error) bool {
	var ce *CatalogError
	return errors.As(err, &ce) && ce.Type == ErrTypeCorrupt
}
