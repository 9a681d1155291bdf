package statemachine

import "assetflow/internal/pkg/errs"

// AssetClass selects which state machine applies to an order.
// The string values are the wire representation used by the API and storage.
type AssetClass string

const (
	MutualFund AssetClass = "mutualFund"
	Stock      AssetClass = "stock"
	Crypto     AssetClass = "crypto"
)

// ParseAssetClass validates an asset class arriving as unvalidated input,
// e.g. deserialized from a request or read back from storage.
func ParseAssetClass(s string) (AssetClass, error) {
	class := AssetClass(s)
	if err := class.Validate(); err != nil {
		return "", err
	}
	return class, nil
}

// Validate reports ErrUnknownAssetClass for anything outside the enumeration.
func (c AssetClass) Validate() error {
	switch c {
	case MutualFund, Stock, Crypto:
		return nil
	default:
		return errs.NewUnknownAssetClassError(string(c))
	}
}

// String returns the wire representation.
func (c AssetClass) String() string {
	return string(c)
}

// IDPrefix returns the transaction id prefix minted for orders of this class.
func (c AssetClass) IDPrefix() string {
	switch c {
	case MutualFund:
		return "MF"
	case Stock:
		return "STK"
	case Crypto:
		return "CRY"
	default:
		return ""
	}
}
