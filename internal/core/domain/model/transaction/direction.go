package transaction

import "assetflow/internal/pkg/errs"

// Direction is the side of an order.
type Direction string

const (
	Buy  Direction = "buy"
	Sell Direction = "sell"
)

// ParseDirection validates a direction arriving as unvalidated input.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate rejects anything outside buy|sell.
func (d Direction) Validate() error {
	switch d {
	case Buy, Sell:
		return nil
	default:
		return errs.NewValueIsInvalidError("orderDirection")
	}
}

// String returns the wire representation.
func (d Direction) String() string {
	return string(d)
}
