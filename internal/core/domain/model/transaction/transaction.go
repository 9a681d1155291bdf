package transaction

import (
	"errors"
	"fmt"
	"time"

	"assetflow/internal/core/domain/model/actor"
	"assetflow/internal/core/domain/model/kernel"
	"assetflow/internal/core/domain/model/statemachine"
	"assetflow/internal/pkg/errs"
	"assetflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// FailedStateID is the sentinel state a failed order's currentStateID is
	// overwritten to. It is not part of any catalog definition.
	FailedStateID = "failed"

	// CancelledStateID appears only in the history ledger; cancellation leaves
	// the record's catalog position untouched.
	CancelledStateID = "cancelled"

	// DefaultFailureReason is used when fail is called without a reason.
	DefaultFailureReason = "Transaction failed"

	// CancelledByUserReason is both the failure reason and ledger message of a
	// cancelled order.
	CancelledByUserReason = "Cancelled by user"

	initialHistoryMessage = "Transaction initiated"

	notProcessingReason = "transaction is not in processing state"
)

// ErrTransactionIsNotConstructed is returned when a Transaction was not
// created via NewTransaction or RestoreTransaction.
var ErrTransactionIsNotConstructed = errors.New(
	"Transaction must be created via NewTransaction or RestoreTransaction",
)

// Transaction is the aggregate root of one asset order. It owns the record's
// current position in its asset class's state machine, its derived status, and
// the append-only history ledger of every transition it has undergone.
//
// Invariants:
//   - currentStateID is always a valid id of the class's machine or the
//     sentinel FailedStateID
//   - the first ledger entry matches the initial state; every later entry
//     matches the currentStateID at the moment of its transition
//   - records are never deleted; terminal records reject all operations
//
// All fields are private; mutation happens only through Advance, Fail, and
// Cancel, each of which validates every precondition before touching state.
type Transaction struct {
	id                    ID
	ownerID               kernel.UUID
	assetClass            statemachine.AssetClass
	assetName             string
	amount                decimal.Decimal
	direction             Direction
	currentStateID        string
	status                Status
	failureReason         string
	estimatedCompletionAt time.Time
	createdAt             time.Time
	updatedAt             time.Time
	history               []HistoryEntry

	guard guard.ConstructorGuard
}

// NewTransaction creates an order seeded at the first state of its machine,
// with status Processing and a single "Transaction initiated" ledger entry.
// The estimated completion is the creation time plus the machine's fixed
// per-class offset.
func NewTransaction(
	ownerID kernel.UUID,
	def statemachine.Definition,
	assetName string,
	amount decimal.Decimal,
	direction Direction,
) (*Transaction, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}
	if assetName == "" {
		return nil, errs.NewValueIsRequiredError("assetName")
	}
	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}
	if err := direction.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	id := NewID(def.AssetClass())
	initialState := def.FirstState()

	t := &Transaction{
		id:                    id,
		ownerID:               ownerID,
		assetClass:            def.AssetClass(),
		assetName:             assetName,
		amount:                amount,
		direction:             direction,
		currentStateID:        initialState.ID,
		status:                Processing,
		estimatedCompletionAt: now.Add(def.EstimatedCompletion()),
		createdAt:             now,
		updatedAt:             now,
		guard:                 guard.NewConstructorGuard(),
	}
	t.appendEntry(initialState.ID, initialHistoryMessage, now)

	return t, nil
}

// RestoreTransaction rehydrates an aggregate from persistence. It validates
// identity, class, and status but deliberately does not replay history: the
// stored ledger is the source of truth and is passed through as-is.
func RestoreTransaction(
	id ID,
	ownerID kernel.UUID,
	assetClass statemachine.AssetClass,
	assetName string,
	amount decimal.Decimal,
	direction Direction,
	currentStateID string,
	status Status,
	failureReason string,
	estimatedCompletionAt time.Time,
	createdAt time.Time,
	updatedAt time.Time,
	history []HistoryEntry,
) (*Transaction, error) {
	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
		assetClass.Validate(),
		direction.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if currentStateID == "" {
		return nil, errs.NewValueIsRequiredError("currentState")
	}

	copied := make([]HistoryEntry, len(history))
	copy(copied, history)

	return &Transaction{
		id:                    id,
		ownerID:               ownerID,
		assetClass:            assetClass,
		assetName:             assetName,
		amount:                amount,
		direction:             direction,
		currentStateID:        currentStateID,
		status:                status,
		failureReason:         failureReason,
		estimatedCompletionAt: estimatedCompletionAt,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
		history:               copied,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the aggregate was built through a constructor.
func (t *Transaction) Validate() error {
	if t == nil {
		return ErrTransactionIsNotConstructed
	}
	return t.guard.Validate(ErrTransactionIsNotConstructed)
}

// ID returns the transaction identifier.
func (t *Transaction) ID() ID {
	return t.id
}

// OwnerID returns the investor who created the order.
func (t *Transaction) OwnerID() kernel.UUID {
	return t.ownerID
}

// AssetClass returns the class whose machine governs this order.
func (t *Transaction) AssetClass() statemachine.AssetClass {
	return t.assetClass
}

// AssetName returns the traded instrument's name.
func (t *Transaction) AssetName() string {
	return t.assetName
}

// Amount returns the order amount.
func (t *Transaction) Amount() decimal.Decimal {
	return t.amount
}

// Direction returns the order side.
func (t *Transaction) Direction() Direction {
	return t.direction
}

// CurrentStateID returns the catalog position, or FailedStateID after a fail.
func (t *Transaction) CurrentStateID() string {
	return t.currentStateID
}

// Status returns the lifecycle status.
func (t *Transaction) Status() Status {
	return t.status
}

// FailureReason is non-empty iff the status is Failed or Cancelled.
func (t *Transaction) FailureReason() string {
	return t.failureReason
}

// EstimatedCompletionAt returns the completion estimate computed at creation.
func (t *Transaction) EstimatedCompletionAt() time.Time {
	return t.estimatedCompletionAt
}

// CreatedAt returns the creation timestamp.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (t *Transaction) UpdatedAt() time.Time {
	return t.updatedAt
}

// History returns a copy of the ledger in append order.
func (t *Transaction) History() []HistoryEntry {
	copied := make([]HistoryEntry, len(t.history))
	copy(copied, t.history)
	return copied
}

// IsOwnedBy reports whether the actor id created this order.
func (t *Transaction) IsOwnedBy(actorID kernel.UUID) bool {
	return t.ownerID.IsEqual(actorID)
}

// Advance moves the order exactly one state forward in its machine and
// returns the appended ledger entry. Registrar-exclusive: every stage is a
// human-in-the-loop approval step.
//
// When the newly reached state is the machine's terminal state, the status
// becomes Completed. If the record already sits on the terminal state while
// still Processing (only possible with tampered storage), the call is an
// idempotent no-op that forces Completed and returns no entry.
func (t *Transaction) Advance(def statemachine.Definition, by actor.Actor) (*HistoryEntry, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := by.Validate(); err != nil {
		return nil, err
	}
	if def.AssetClass() != t.assetClass {
		return nil, errs.NewValueIsInvalidErrorWithCause("definition",
			fmt.Errorf("machine for %s cannot advance a %s order", def.AssetClass(), t.assetClass))
	}
	if !by.IsRegistrar() {
		return nil, errs.NewForbiddenError("advance", "registrar role")
	}
	if t.status != Processing {
		return nil, errs.NewInvalidStateError("advance", notProcessingReason)
	}

	index := def.IndexOf(t.currentStateID)
	if index < 0 {
		return nil, errs.NewInvalidStateError("advance",
			fmt.Sprintf("state %q is not part of the %s machine", t.currentStateID, t.assetClass))
	}

	now := time.Now().UTC()
	if index == def.StateCount()-1 {
		t.status = Completed
		t.updatedAt = now
		return nil, nil
	}

	next, _ := def.Next(t.currentStateID)
	t.currentStateID = next.ID
	if def.IsTerminal(next.ID) {
		t.status = Completed
	}
	t.updatedAt = now

	return t.appendEntry(next.ID, next.Description, now), nil
}

// Fail rejects the order, overwriting its catalog position with the sentinel
// FailedStateID. Permitted for the registrar (moderation) and for the owner
// (self-service rejection). An empty reason defaults to DefaultFailureReason.
func (t *Transaction) Fail(by actor.Actor, reason string) (*HistoryEntry, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := by.Validate(); err != nil {
		return nil, err
	}
	if !by.IsRegistrar() && !t.IsOwnedBy(by.ID()) {
		return nil, errs.NewForbiddenError("fail", "registrar role or ownership")
	}
	if t.status != Processing {
		return nil, errs.NewInvalidStateError("fail", notProcessingReason)
	}

	if reason == "" {
		reason = DefaultFailureReason
	}

	now := time.Now().UTC()
	t.currentStateID = FailedStateID
	t.status = Failed
	t.failureReason = reason
	t.updatedAt = now

	return t.appendEntry(FailedStateID, reason, now), nil
}

// Cancel withdraws the order on behalf of its owner. Registrars do not
// cancel, they fail. Unlike Fail, cancellation leaves currentStateID at its
// catalog position: only the status and reason change, plus a ledger entry
// under the CancelledStateID.
func (t *Transaction) Cancel(by actor.Actor) (*HistoryEntry, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := by.Validate(); err != nil {
		return nil, err
	}
	if !t.IsOwnedBy(by.ID()) {
		return nil, errs.NewForbiddenError("cancel", "ownership")
	}
	if t.status != Processing {
		return nil, errs.NewInvalidStateError("cancel", notProcessingReason)
	}

	now := time.Now().UTC()
	t.status = Cancelled
	t.failureReason = CancelledByUserReason
	t.updatedAt = now

	return t.appendEntry(CancelledStateID, CancelledByUserReason, now), nil
}

func (t *Transaction) appendEntry(stateID, message string, at time.Time) *HistoryEntry {
	entry := HistoryEntry{
		TransactionID: t.id,
		StateID:       stateID,
		Message:       message,
		Timestamp:     at,
	}
	t.history = append(t.history, entry)
	return &entry
}
