package itinerary

import "fmt"

// GenerationError marks a fatal pipeline failure: the draft generator
// errored or returned a payload that cannot pass itinerary validation.
type GenerationError struct {
	Code    string
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func NewGenerationError(msg string, err error) error {
	return &GenerationError{
		Code:    "generationError",
		Message: msg,
		Err:     err,
	}
}

// ValidationError reports the first itinerary invariant a payload breaks.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validationError: %s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
