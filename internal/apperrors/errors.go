// Package apperrors defines the error taxonomy shared by services and
// handlers. Services wrap causes with %w; handlers map the category to
// an HTTP status with errors.As.
package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError rejects bad input before any state changes: malformed
// coordinates, illegal state transitions, role-forbidden field writes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
	}
	return "validation: " + e.Reason
}

// NewValidation builds a ValidationError for one field.
func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports a missing resource.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Resource + " not found"
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// NewNotFound builds a NotFoundError for one resource instance.
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// TransientDeliveryError marks a channel failure that retry may fix:
// timeouts, connection refusals, 5xx responses.
type TransientDeliveryError struct {
	Channel string
	Err     error
}

func (e *TransientDeliveryError) Error() string {
	return fmt.Sprintf("delivery via %s failed: %v", e.Channel, e.Err)
}

func (e *TransientDeliveryError) Unwrap() error { return e.Err }

// NewTransientDelivery wraps a channel failure.
func NewTransientDelivery(channel string, err error) *TransientDeliveryError {
	return &TransientDeliveryError{Channel: channel, Err: err}
}

// PermanentFailureError marks an exhausted operation that no retry will
// fix, such as a handoff past its attempt budget.
type PermanentFailureError struct {
	Reason string
}

func (e *PermanentFailureError) Error() string {
	return "permanent failure: " + e.Reason
}

// NewPermanentFailure builds a PermanentFailureError.
func NewPermanentFailure(reason string) *PermanentFailureError {
	return &PermanentFailureError{Reason: reason}
}

// IsValidation reports whether err is a ValidationError anywhere in its chain.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is a NotFoundError anywhere in its chain.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsTransientDelivery reports whether err is retryable.
func IsTransientDelivery(err error) bool {
	var target *TransientDeliveryError
	return errors.As(err, &target)
}

// IsPermanentFailure reports whether err is beyond retry.
func IsPermanentFailure(err error) bool {
	var target *PermanentFailureError
	return errors.As(err, &target)
}
