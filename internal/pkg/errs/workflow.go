package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrForbidden         = errors.New("forbidden")
	ErrTokenMismatch     = errors.New("token mismatch")
	ErrCascadeFailed     = errors.New("cascade failed")
)

// InvalidTransitionError reports a (from, to) pair that is not in the legal table,
// or a request made while the entity is in the wrong source state.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s %s -> %s", ErrInvalidTransition, e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

type ForbiddenError struct {
	Role   string
	Action string
	Reason string
}

func NewForbiddenError(role, action string) *ForbiddenError {
	return &ForbiddenError{Role: role, Action: action}
}

func NewForbiddenErrorWithReason(role, action, reason string) *ForbiddenError {
	return &ForbiddenError{Role: role, Action: action, Reason: reason}
}

func (e *ForbiddenError) Error() string {
	msg := fmt.Sprintf("%s: role %s cannot %s", ErrForbidden, e.Role, e.Action)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// TokenMismatchError is recoverable: the user may re-scan or re-enter the token.
type TokenMismatchError struct {
	OrderID string
	Reason  string
}

func NewTokenMismatchError(orderID, reason string) *TokenMismatchError {
	return &TokenMismatchError{OrderID: orderID, Reason: reason}
}

func (e *TokenMismatchError) Error() string {
	return fmt.Sprintf("%s: order %s (%s)", ErrTokenMismatch, e.OrderID, e.Reason)
}

func (e *TokenMismatchError) Unwrap() error {
	return ErrTokenMismatch
}

// CascadeFailedError is reported next to a primary result that did commit.
// Both ErrCascadeFailed and the underlying cause match with errors.Is.
type CascadeFailedError struct {
	OrderID string
	Cause   error
}

func NewCascadeFailedError(orderID string, cause error) *CascadeFailedError {
	return &CascadeFailedError{OrderID: orderID, Cause: cause}
}

func (e *CascadeFailedError) Error() string {
	return fmt.Sprintf("%s: order %s (cause: %v)", ErrCascadeFailed, e.OrderID, e.Cause)
}

func (e *CascadeFailedError) Unwrap() []error {
	return []error{ErrCascadeFailed, e.Cause}
}
