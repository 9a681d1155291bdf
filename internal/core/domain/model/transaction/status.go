package transaction

import (
	"fmt"

	"assetflow/internal/pkg/errs"
)

// Status is the lifecycle state of a transaction record. It is derived from
// and constrained by the catalog position: reaching the terminal catalog state
// yields Completed, fail yields Failed, cancel yields Cancelled.
//
// Status transitions:
//
//	Processing ──> Completed   (advance into the terminal state)
//	Processing ──> Failed      (fail, registrar or owner)
//	Processing ──> Cancelled   (cancel, owner)
//
// Completed, Failed, and Cancelled are terminal; no operation succeeds on them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Processing marks an order still walking its state machine.
	Processing

	// Completed marks an order that reached the terminal catalog state.
	Completed

	// Failed marks an order rejected by the process or an operator.
	Failed

	// Cancelled marks an order withdrawn by its owner.
	Cancelled
)

// getStatusStrings returns the wire representation of every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Processing: "processing",
		Completed:  "completed",
		Failed:     "failed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns only the statuses a persisted record may carry.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Processing: "processing",
		Completed:  "completed",
		Failed:     "failed",
		Cancelled:  "cancelled",
	}
}

// ParseStatus converts the wire representation back to a Status.
// Used when reconstructing records from storage or external input.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the persistable values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation, or "unknown" for invalid values.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed || s == Cancelled
}
