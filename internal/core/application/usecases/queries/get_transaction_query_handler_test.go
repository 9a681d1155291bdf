package queries_test

import (
	"context"
	"testing"
	"time"

	"assetflow/internal/adapters/out/storage/transactionrepo"
	"assetflow/internal/core/application/usecases/queries"
	"assetflow/internal/core/domain/model/actor"
	"assetflow/internal/core/domain/model/kernel"
	"assetflow/internal/core/domain/model/statemachine"
	"assetflow/internal/core/domain/model/transaction"
	"assetflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ transaction.ID, _ any) {}

type GetTransactionQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetTransactionQueryHandler
	repo      *transactionrepo.GormTransactionRepository
	catalog   statemachine.Catalog
}

func (suite *GetTransactionQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&transactionrepo.TransactionDTO{}, &transactionrepo.HistoryEntryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetTransactionQueryHandler(db)
	suite.repo = transactionrepo.NewGormTransactionRepository(db, noopTracker{})
	suite.catalog = statemachine.DefaultCatalog()
}

func (suite *GetTransactionQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetTransactionQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE transactions, state_history").Error
	suite.Require().NoError(err)
}

func (suite *GetTransactionQueryHandlerTestSuite) createTransaction(
	ownerID kernel.UUID,
	class statemachine.AssetClass,
) *transaction.Transaction {
	def, err := suite.catalog.DefinitionFor(class)
	suite.Require().NoError(err)

	aggregate, err := transaction.NewTransaction(
		ownerID, def, "ACME", decimal.NewFromInt(3000), transaction.Buy)
	suite.Require().NoError(err)

	err = suite.repo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GetTransactionQueryHandlerTestSuite) investor(id kernel.UUID) actor.Actor {
	a, err := actor.NewActor(id, actor.Investor)
	suite.Require().NoError(err)
	return a
}

func (suite *GetTransactionQueryHandlerTestSuite) registrar() actor.Actor {
	a, err := actor.NewActor(kernel.NewUUID(), actor.Registrar)
	suite.Require().NoError(err)
	return a
}

func (suite *GetTransactionQueryHandlerTestSuite) TestHandle_OwnerReadsOwnOrder() {
	ownerID := kernel.NewUUID()
	aggregate := suite.createTransaction(ownerID, statemachine.Crypto)

	query, err := queries.NewGetTransactionQuery(aggregate.ID(), suite.investor(ownerID))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID().String(), result.ID)
	suite.Equal(ownerID, result.OwnerID)
	suite.Equal("crypto", result.AssetClass)
	suite.Equal("initiated", result.CurrentStateID)
	suite.Equal("processing", result.Status)
	suite.True(decimal.NewFromInt(3000).Equal(result.Amount))
	suite.Require().Len(result.History, 1)
	suite.Equal("initiated", result.History[0].StateID)
}

func (suite *GetTransactionQueryHandlerTestSuite) TestHandle_RegistrarReadsAnyOrder() {
	aggregate := suite.createTransaction(kernel.NewUUID(), statemachine.Stock)

	query, err := queries.NewGetTransactionQuery(aggregate.ID(), suite.registrar())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID().String(), result.ID)
}

func (suite *GetTransactionQueryHandlerTestSuite) TestHandle_StrangerInvestor_NotFound() {
	aggregate := suite.createTransaction(kernel.NewUUID(), statemachine.MutualFund)

	query, err := queries.NewGetTransactionQuery(aggregate.ID(), suite.investor(kernel.NewUUID()))
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.NotErrorIs(err, errs.ErrForbidden)
}

func (suite *GetTransactionQueryHandlerTestSuite) TestHandle_UnknownID_NotFound() {
	id, err := transaction.IDFromString("STK01HZXYJ5E8M4Q2R7T9V3W6YBCD")
	suite.Require().NoError(err)

	query, err := queries.NewGetTransactionQuery(id, suite.registrar())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetTransactionQueryHandlerTestSuite) TestHandle_HistoryComesBackInAppendOrder() {
	ownerID := kernel.NewUUID()
	aggregate := suite.createTransaction(ownerID, statemachine.Crypto)

	def, err := suite.catalog.DefinitionFor(statemachine.Crypto)
	suite.Require().NoError(err)

	registrar := suite.registrar()
	for range 2 {
		entry, advErr := aggregate.Advance(def, registrar)
		suite.Require().NoError(advErr)
		suite.Require().NoError(suite.repo.Update(context.Background(), aggregate, entry))
	}

	query, err := queries.NewGetTransactionQuery(aggregate.ID(), suite.investor(ownerID))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result.History, 3)
	suite.Equal("initiated", result.History[0].StateID)
	suite.Equal("wallet_check", result.History[1].StateID)
	suite.Equal("order_matching", result.History[2].StateID)
}

func (suite *GetTransactionQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetTransactionQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetTransactionQuery constructor")
}

func TestGetTransactionQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetTransactionQueryHandlerTestSuite))
}
