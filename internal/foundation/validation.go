// Package foundation holds small generic building blocks shared by the config,
// rendering and pre-flight packages.
package foundation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/security-e/security-e.github.io/internal/foundation/errors"
)

// Validator represents a validation function.
type Validator[T any] func(T) ValidationResult

// ValidationResult contains the result of a validation operation.
type ValidationResult struct {
	Valid  bool
	Errors []FieldError
}

// FieldError represents a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (fe FieldError) Error() string {
	if fe.Field != "" {
		return fmt.Sprintf("field '%s': %s", fe.Field, fe.Message)
	}
	return fe.Message
}

// Valid creates a successful validation result.
func Valid() ValidationResult {
	return ValidationResult{Valid: true}
}

// Invalid creates a failed validation result with errors.
func Invalid(errs ...FieldError) ValidationResult {
	return ValidationResult{Valid: false, Errors: errs}
}

// NewValidationError creates a field error.
func NewValidationError(field, code, message string) FieldError {
	return FieldError{Field: field, Code: code, Message: message}
}

// Combine merges two validation results.
func (vr ValidationResult) Combine(other ValidationResult) ValidationResult {
	if vr.Valid && other.Valid {
		return Valid()
	}
	all := make([]FieldError, 0, len(vr.Errors)+len(other.Errors))
	all = append(all, vr.Errors...)
	all = append(all, other.Errors...)
	return Invalid(all...)
}

// Add appends a single failure.
func (vr ValidationResult) Add(field, code, message string) ValidationResult {
	return vr.Combine(Invalid(NewValidationError(field, code, message)))
}

// Fields returns the names of all failing fields in order.
func (vr ValidationResult) Fields() []string {
	out := make([]string, 0, len(vr.Errors))
	for _, e := range vr.Errors {
		out = append(out, e.Field)
	}
	return out
}

// ToError converts an invalid result to a validation ClassifiedError.
func (vr ValidationResult) ToError() error {
	if vr.Valid {
		return nil
	}
	messages := make([]string, 0, len(vr.Errors))
	for _, err := range vr.Errors {
		messages = append(messages, err.Error())
	}
	b := errors.ValidationError(strings.Join(messages, "; "))
	if len(vr.Errors) > 0 {
		b = b.WithContext("field", vr.Errors[0].Field).WithContext("failures", len(vr.Errors))
	}
	return b.Build()
}

// ValidatorChain runs several validators and combines their results.
type ValidatorChain[T any] struct {
	validators []Validator[T]
}

// NewValidatorChain creates a new validator chain.
func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

// Validate runs all validators in the chain.
func (vc *ValidatorChain[T]) Validate(value T) ValidationResult {
	result := Valid()
	for _, validator := range vc.validators {
		result = result.Combine(validator(value))
	}
	return result
}

// Required fails when the trimmed string is empty.
func Required(field string) Validator[string] {
	return func(value string) ValidationResult {
		if strings.TrimSpace(value) == "" {
			return Invalid(NewValidationError(field, "required", "field is required"))
		}
		return Valid()
	}
}

// OneOf validates that a value is in a set of allowed values.
func OneOf[T comparable](field string, allowed []T) Validator[T] {
	return func(value T) ValidationResult {
		if !slices.Contains(allowed, value) {
			return Invalid(NewValidationError(field, "one_of",
				fmt.Sprintf("value %v must be one of: %v", value, allowed)))
		}
		return Valid()
	}
}
