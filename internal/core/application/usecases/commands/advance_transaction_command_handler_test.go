package commands_test

import (
	"errors"
	"testing"

	"assetflow/internal/core/application/usecases/commands"
	"assetflow/internal/core/domain/model/kernel"
	"assetflow/internal/core/domain/model/statemachine"
	"assetflow/internal/core/domain/model/transaction"
	"assetflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func processingTransaction(t *testing.T, class statemachine.AssetClass) *transaction.Transaction {
	t.Helper()
	def, err := statemachine.DefaultCatalog().DefinitionFor(class)
	require.NoError(t, err)
	aggregate, err := transaction.NewTransaction(
		kernel.NewUUID(), def, "ACME", decimal.NewFromInt(1000), transaction.Buy)
	require.NoError(t, err)
	return aggregate
}

func TestAdvanceTransactionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := processingTransaction(t, statemachine.Stock)
	cmd, err := commands.NewAdvanceTransactionCommand(aggregate.ID(), registrarActor(t))
	require.NoError(t, err)

	repo := new(MockTransactionRepository)
	uow := new(MockTransactionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransactionRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("TransactionRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, aggregate, mock.AnythingOfType("*transaction.HistoryEntry")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransactionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceTransactionCommandHandler(factory, statemachine.DefaultCatalog())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "margin_check", updated.CurrentStateID())
	assert.Len(t, updated.History(), 2)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAdvanceTransactionCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id, err := transaction.IDFromString("STK01HZXYJ5E8M4Q2R7T9V3W6YBCD")
	require.NoError(t, err)
	cmd, err := commands.NewAdvanceTransactionCommand(id, registrarActor(t))
	require.NoError(t, err)

	repo := new(MockTransactionRepository)
	uow := new(MockTransactionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransactionRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("transactionId", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransactionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceTransactionCommandHandler(factory, statemachine.DefaultCatalog())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestAdvanceTransactionCommandHandler_Handle_InvestorForbidden(t *testing.T) {
	ctx := t.Context()
	aggregate := processingTransaction(t, statemachine.Crypto)
	cmd, err := commands.NewAdvanceTransactionCommand(
		aggregate.ID(), investorActor(t, aggregate.OwnerID()))
	require.NoError(t, err)

	repo := new(MockTransactionRepository)
	uow := new(MockTransactionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransactionRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransactionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceTransactionCommandHandler(factory, statemachine.DefaultCatalog())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, "initiated", aggregate.CurrentStateID())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdvanceTransactionCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	aggregate := processingTransaction(t, statemachine.MutualFund)
	cmd, err := commands.NewAdvanceTransactionCommand(aggregate.ID(), registrarActor(t))
	require.NoError(t, err)

	repo := new(MockTransactionRepository)
	uow := new(MockTransactionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransactionRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("TransactionRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, aggregate, mock.AnythingOfType("*transaction.HistoryEntry")).
			Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransactionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceTransactionCommandHandler(factory, statemachine.DefaultCatalog())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
