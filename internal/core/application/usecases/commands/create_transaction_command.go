package commands

import (
	"errors"

	"assetflow/internal/core/domain/model/kernel"
	"assetflow/internal/core/domain/model/statemachine"
	"assetflow/internal/core/domain/model/transaction"
	"assetflow/internal/pkg/errs"
	"assetflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCreateTransactionCommandIsNotConstructed is returned when the command
// was not built via NewCreateTransactionCommand.
var ErrCreateTransactionCommandIsNotConstructed = errors.New(
	"CreateTransactionCommand must be created via NewCreateTransactionCommand constructor",
)

// CreateTransactionCommand represents an investor's request to place a new
// asset order. Asset class and direction arrive as raw strings from the
// transport and are validated here, at the boundary.
type CreateTransactionCommand struct { //nolint:recvcheck //using for validation
	ownerID    kernel.UUID
	assetClass statemachine.AssetClass
	assetName  string
	amount     decimal.Decimal
	direction  transaction.Direction

	guard guard.ConstructorGuard
}

// NewCreateTransactionCommand validates the raw order details.
// Fails with UnknownAssetClass for an unrecognized class, ValueIsRequired for
// a missing asset name, and ValueIsInvalid for a bad direction or amount.
func NewCreateTransactionCommand(
	ownerID kernel.UUID,
	assetClass string,
	assetName string,
	amount decimal.Decimal,
	direction string,
) (CreateTransactionCommand, error) {
	cmd := CreateTransactionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setAssetClass(assetClass),
		cmd.setAssetName(assetName),
		cmd.setAmount(amount),
		cmd.setDirection(direction),
	); err != nil {
		return CreateTransactionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransactionCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransactionCommandIsNotConstructed)
}

// OwnerID returns the investor placing the order.
func (c CreateTransactionCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// AssetClass returns the validated asset class.
func (c CreateTransactionCommand) AssetClass() statemachine.AssetClass {
	return c.assetClass
}

// AssetName returns the traded instrument's name.
func (c CreateTransactionCommand) AssetName() string {
	return c.assetName
}

// Amount returns the order amount.
func (c CreateTransactionCommand) Amount() decimal.Decimal {
	return c.amount
}

// Direction returns the validated order side.
func (c CreateTransactionCommand) Direction() transaction.Direction {
	return c.direction
}

func (c *CreateTransactionCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *CreateTransactionCommand) setAssetClass(raw string) error {
	class, err := statemachine.ParseAssetClass(raw)
	if err != nil {
		return err
	}
	c.assetClass = class
	return nil
}

func (c *CreateTransactionCommand) setAssetName(assetName string) error {
	if assetName == "" {
		return errs.NewValueIsRequiredError("assetName")
	}
	c.assetName = assetName
	return nil
}

func (c *CreateTransactionCommand) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}
	c.amount = amount
	return nil
}

func (c *CreateTransactionCommand) setDirection(raw string) error {
	direction, err := transaction.ParseDirection(raw)
	if err != nil {
		return err
	}
	c.direction = direction
	return nil
}
