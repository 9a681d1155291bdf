package statemachine

import (
	"time"

	"assetflow/internal/pkg/errs"
)

// Catalog is the read-only lookup from asset class to state machine definition.
// It is built once at process start and shared by every caller.
type Catalog struct {
	definitions map[AssetClass]Definition
}

// NewCatalog assembles a catalog from definitions.
func NewCatalog(definitions ...Definition) Catalog {
	byClass := make(map[AssetClass]Definition, len(definitions))
	for _, d := range definitions {
		byClass[d.AssetClass()] = d
	}
	return Catalog{definitions: byClass}
}

// DefinitionFor resolves the machine for an asset class. Fails with
// ErrUnknownAssetClass both for unrecognized classes and for valid classes
// this catalog carries no definition for.
func (c Catalog) DefinitionFor(assetClass AssetClass) (Definition, error) {
	if err := assetClass.Validate(); err != nil {
		return Definition{}, err
	}
	d, ok := c.definitions[assetClass]
	if !ok {
		return Definition{}, errs.NewUnknownAssetClassError(string(assetClass))
	}
	return d, nil
}

// DefaultCatalog returns the standard catalog: mutual fund orders settle in
// batches (T+1/T+2), stocks trade in real time with T+1 settlement, crypto
// settles on-chain within minutes.
func DefaultCatalog() Catalog {
	mutualFund, err := NewDefinition(
		MutualFund,
		"Mutual Fund",
		"MF orders are processed in batches at specific cut-off times with T+1 or T+2 settlement",
		[]StateDescriptor{
			{ID: "initiated", Name: "Order Initiated", Description: "Order received", Duration: "Instant"},
			{ID: "payment_pending", Name: "Payment Pending", Description: "Awaiting payment", Duration: "5-15 mins"},
			{ID: "payment_confirmed", Name: "Payment Confirmed", Description: "Funds debited", Duration: "Instant"},
			{ID: "order_queued", Name: "Order Queued", Description: "In batch queue", Duration: "Until cut-off"},
			{ID: "sent_to_amc", Name: "Sent to AMC", Description: "Transmitted to AMC", Duration: "1-2 hours"},
			{ID: "nav_applied", Name: "NAV Applied", Description: "NAV determined", Duration: "End of day"},
			{ID: "units_allotted", Name: "Units Allotted", Description: "Units credited", Duration: "T+1 day"},
			{ID: "completed", Name: "Completed", Description: "Transaction complete", Duration: "-"},
		},
		48*time.Hour,
		"T+1 to T+2 days",
	)
	if err != nil {
		panic(err)
	}

	stock, err := NewDefinition(
		Stock,
		"Stocks",
		"Real-time trading during market hours with T+1 settlement",
		[]StateDescriptor{
			{ID: "initiated", Name: "Order Initiated", Description: "Order placed", Duration: "Instant"},
			{ID: "margin_check", Name: "Margin Check", Description: "Validating funds", Duration: "< 1 sec"},
			{ID: "sent_to_exchange", Name: "Sent to Exchange", Description: "Transmitted to NSE/BSE", Duration: "< 1 sec"},
			{ID: "pending_execution", Name: "Order Book", Description: "In exchange order book", Duration: "Variable"},
			{ID: "executed", Name: "Trade Executed", Description: "Order matched", Duration: "Instant"},
			{ID: "clearing", Name: "Clearing", Description: "At clearing corp", Duration: "T+0"},
			{ID: "settlement", Name: "Settlement", Description: "Funds/securities exchanged", Duration: "T+1"},
			{ID: "completed", Name: "Completed", Description: "In demat account", Duration: "-"},
		},
		24*time.Hour,
		"T+1 day",
	)
	if err != nil {
		panic(err)
	}

	crypto, err := NewDefinition(
		Crypto,
		"Cryptocurrency",
		"Blockchain-based processing with near-instant settlement",
		[]StateDescriptor{
			{ID: "initiated", Name: "Order Initiated", Description: "Order placed", Duration: "Instant"},
			{ID: "wallet_check", Name: "Wallet Check", Description: "Verifying balance", Duration: "< 1 sec"},
			{ID: "order_matching", Name: "Order Matching", Description: "Finding counterparty", Duration: "< 1 sec"},
			{ID: "executed", Name: "Trade Executed", Description: "Order filled", Duration: "Instant"},
			{ID: "blockchain_confirm", Name: "Blockchain Confirmation", Description: "On-chain settlement", Duration: "1-60 mins"},
			{ID: "completed", Name: "Completed", Description: "Credited to wallet", Duration: "-"},
		},
		5*time.Minute,
		"Seconds to minutes",
	)
	if err != nil {
		panic(err)
	}

	return NewCatalog(mutualFund, stock, crypto)
}
