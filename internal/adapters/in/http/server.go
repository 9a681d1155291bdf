// Package http exposes the order lifecycle service over REST. Authentication
// is out of scope: the caller's identity and role arrive in the X-User-Id and
// X-User-Role headers, placed there by the gateway in front of this service.
package http

import (
	"net/http"

	"assetflow/internal/core/application/usecases/commands"
	"assetflow/internal/core/application/usecases/queries"
	"assetflow/internal/core/domain/model/actor"
	"assetflow/internal/core/domain/model/kernel"
	"assetflow/internal/core/domain/model/transaction"
	"assetflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	userIDHeader   = "X-User-Id"
	userRoleHeader = "X-User-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createHandler  commands.CreateTransactionCommandHandler
	advanceHandler commands.AdvanceTransactionCommandHandler
	failHandler    commands.FailTransactionCommandHandler
	cancelHandler  commands.CancelTransactionCommandHandler

	getTransactionHandler  queries.GetTransactionQueryHandler
	getTransactionsHandler queries.GetTransactionsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createHandler commands.CreateTransactionCommandHandler,
	advanceHandler commands.AdvanceTransactionCommandHandler,
	failHandler commands.FailTransactionCommandHandler,
	cancelHandler commands.CancelTransactionCommandHandler,
	getTransactionHandler queries.GetTransactionQueryHandler,
	getTransactionsHandler queries.GetTransactionsQueryHandler,
) *Server {
	return &Server{
		createHandler:          createHandler,
		advanceHandler:         advanceHandler,
		failHandler:            failHandler,
		cancelHandler:          cancelHandler,
		getTransactionHandler:  getTransactionHandler,
		getTransactionsHandler: getTransactionsHandler,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/transactions", s.CreateTransaction)
	v1.GET("/transactions", s.GetTransactions)
	v1.GET("/transactions/:id", s.GetTransaction)
	v1.POST("/transactions/:id/advance", s.AdvanceTransaction)
	v1.POST("/transactions/:id/fail", s.FailTransaction)
	v1.POST("/transactions/:id/cancel", s.CancelTransaction)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateTransaction handles POST /api/v1/transactions.
func (s *Server) CreateTransaction(ctx echo.Context) error {
	by, err := resolveActor(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req CreateTransactionRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateTransactionCommand(
		by.ID(), req.AssetClass, req.AssetName, req.Amount, req.Direction)
	if err != nil {
		return errorJSON(ctx, err)
	}

	created, err := s.createHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromAggregate(created))
}

// GetTransactions handles GET /api/v1/transactions.
func (s *Server) GetTransactions(ctx echo.Context) error {
	by, err := resolveActor(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetTransactionsQuery(by)
	if err != nil {
		return errorJSON(ctx, err)
	}

	models, err := s.getTransactionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]TransactionResponse, 0, len(models))
	for _, model := range models {
		response = append(response, fromReadModel(model))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTransaction handles GET /api/v1/transactions/:id.
func (s *Server) GetTransaction(ctx echo.Context) error {
	by, err := resolveActor(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	id, err := transaction.IDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetTransactionQuery(id, by)
	if err != nil {
		return errorJSON(ctx, err)
	}

	model, err := s.getTransactionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromReadModel(model))
}

// AdvanceTransaction handles POST /api/v1/transactions/:id/advance.
func (s *Server) AdvanceTransaction(ctx echo.Context) error {
	by, err := resolveActor(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	id, err := transaction.IDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewAdvanceTransactionCommand(id, by)
	if err != nil {
		return errorJSON(ctx, err)
	}

	updated, err := s.advanceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(updated))
}

// FailTransaction handles POST /api/v1/transactions/:id/fail.
func (s *Server) FailTransaction(ctx echo.Context) error {
	by, err := resolveActor(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	id, err := transaction.IDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req FailTransactionRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewFailTransactionCommand(id, by, req.Reason)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.failHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelTransaction handles POST /api/v1/transactions/:id/cancel.
func (s *Server) CancelTransaction(ctx echo.Context) error {
	by, err := resolveActor(ctx)
	if err != nil {
		return errorJSON(ctx, err)
	}

	id, err := transaction.IDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCancelTransactionCommand(id, by)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.cancelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func resolveActor(ctx echo.Context) (actor.Actor, error) {
	rawID := ctx.Request().Header.Get(userIDHeader)
	rawRole := ctx.Request().Header.Get(userRoleHeader)
	if rawID == "" || rawRole == "" {
		return actor.Actor{}, errMissingIdentity
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return actor.Actor{}, errs.NewValueIsInvalidErrorWithCause(userIDHeader, err)
	}

	role, err := actor.ParseRole(rawRole)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(id, role)
}
