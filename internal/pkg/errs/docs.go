// Package errs provides the standardized error types used across the order
// lifecycle service. It implements a consistent pattern for error creation,
// formatting, and unwrapping.
//
// The taxonomy covers every failure the transition engine can report:
//   - ObjectNotFoundError: unknown transaction id
//   - UnknownAssetClassError: asset class with no state machine definition
//   - ValueIsOutOfRangeError: amount outside the configured bounds
//   - InvalidStateError: operation illegal for the current status
//   - ForbiddenError: caller lacks the required role or ownership
//   - ValueIsRequiredError / ValueIsInvalidError: general input validation
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrInvalidState)
//   - a struct type carrying the error details
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Callers classify errors with errors.Is against the sentinels; the HTTP
// adapter maps the sentinels to status codes. Storage failures deliberately
// have no wrapper here: they propagate verbatim from the persistence layer.
package errs
