package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each typed error below
// unwraps to exactly one of these, which is what the HTTP adapter switches on.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrUnknownAssetClass = errors.New("unknown asset class")
	ErrInvalidState      = errors.New("invalid state")
	ErrForbidden         = errors.New("forbidden")
)

// sanitize strips newlines so attacker-controlled values cannot break up log lines.
func sanitize(v any) string {
	s := fmt.Sprintf("%s", v)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ObjectNotFoundError reports that an entity could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports a value that fails validation rules.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside its configured bounds.
// Used for order amounts, where Min and Max come from deployment configuration.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s (cause: %s)",
			ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), sanitize(e.Min), sanitize(e.Max), e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), sanitize(e.Min), sanitize(e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// UnknownAssetClassError reports an asset class the catalog has no definition for.
// Reachable only at boundaries where the class arrives as unvalidated input.
type UnknownAssetClassError struct {
	AssetClass string
	Cause      error
}

func NewUnknownAssetClassError(assetClass string) *UnknownAssetClassError {
	return &UnknownAssetClassError{AssetClass: assetClass}
}

func NewUnknownAssetClassErrorWithCause(assetClass string, cause error) *UnknownAssetClassError {
	return &UnknownAssetClassError{AssetClass: assetClass, Cause: cause}
}

func (e *UnknownAssetClassError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrUnknownAssetClass, sanitize(e.AssetClass), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrUnknownAssetClass, sanitize(e.AssetClass))
}

func (e *UnknownAssetClassError) Unwrap() error {
	return ErrUnknownAssetClass
}

// InvalidStateError reports an operation that is illegal for the transaction's
// current status, e.g. advancing a completed order.
type InvalidStateError struct {
	Operation string
	Reason    string
	Cause     error
}

func NewInvalidStateError(operation, reason string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Reason: reason}
}

func NewInvalidStateErrorWithCause(operation, reason string, cause error) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Reason: reason, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: cannot %s, %s (cause: %s)", ErrInvalidState, e.Operation, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: cannot %s, %s", ErrInvalidState, e.Operation, e.Reason)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ForbiddenError reports a caller that lacks the role or ownership an operation requires.
type ForbiddenError struct {
	Operation string
	Reason    string
	Cause     error
}

func NewForbiddenError(operation, reason string) *ForbiddenError {
	return &ForbiddenError{Operation: operation, Reason: reason}
}

func NewForbiddenErrorWithCause(operation, reason string, cause error) *ForbiddenError {
	return &ForbiddenError{Operation: operation, Reason: reason, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s requires %s (cause: %s)", ErrForbidden, e.Operation, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s requires %s", ErrForbidden, e.Operation, e.Reason)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
