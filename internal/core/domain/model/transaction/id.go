package transaction

import (
	"strings"

	"assetflow/internal/core/domain/model/statemachine"
	"assetflow/internal/pkg/errs"

	"github.com/oklog/ulid/v2"
)

// ID is the human-readable, globally unique transaction identifier.
// Format: asset-class prefix (MF/STK/CRY) followed by a ULID, which keeps the
// original time-component-plus-random-suffix composition while staying
// lexicographically sortable by creation time. Collisions are accepted as
// negligible; the repository's primary key is the backstop.
type ID struct {
	value string
}

// NewID mints an identifier for an order of the given class.
func NewID(class statemachine.AssetClass) ID {
	return ID{value: class.IDPrefix() + ulid.Make().String()}
}

// IDFromString wraps an identifier arriving from a request or storage.
func IDFromString(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}, errs.NewValueIsRequiredError("transactionId")
	}
	return ID{value: s}, nil
}

// String returns the wire representation.
func (id ID) String() string {
	return id.value
}

// IsEqual reports whether two identifiers name the same transaction.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Validate rejects the zero value.
func (id ID) Validate() error {
	if id.value == "" {
		return errs.NewValueIsRequiredError("transactionId")
	}
	return nil
}
