package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedSpecification is returned when a machine description cannot be
// turned into a Transition Table.
var ErrMalformedSpecification = errors.New("malformed specification")

// ErrVerdictNotFound is returned when a verdict is not present in a store.
var ErrVerdictNotFound = errors.New("verdict not found")

// SpecError represents a single malformed field of a machine description.
type SpecError struct {
	Field  string // e.g. "transitions[3].read"
	Reason string
	Value  any
}

func (e *SpecError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %q)", e.Field, e.Reason, fmt.Sprint(e.Value))
}

// Unwrap lets errors.Is match ErrMalformedSpecification.
func (e *SpecError) Unwrap() error {
	return ErrMalformedSpecification
}

// AggregateError represents multiple malformed fields.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d specification errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// Is reports ErrMalformedSpecification even for an empty aggregate.
func (e *AggregateError) Is(target error) bool {
	return target == ErrMalformedSpecification
}

// SpecErrors returns the individual failures carried by err.
// A lone SpecError is returned as a single element; anything else yields nil.
func SpecErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	var single *SpecError
	if errors.As(err, &single) {
		return []error{single}
	}
	return nil
}

// Collect folds errs into nil, the single error, or an AggregateError.
func Collect(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return &AggregateError{Errors: errs}
}
