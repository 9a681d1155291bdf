package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"assetflow/internal/core/domain/model/actor"
	"assetflow/internal/core/domain/model/kernel"
	"assetflow/internal/core/domain/model/statemachine"
	"assetflow/internal/core/domain/model/transaction"
	"assetflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoContext(t *testing.T, headers map[string]string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest("GET", "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestResolveActor_ValidHeaders(t *testing.T) {
	id := kernel.NewUUID()
	ctx := echoContext(t, map[string]string{
		userIDHeader:   id.String(),
		userRoleHeader: "registrar",
	})

	by, err := resolveActor(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, by.ID())
	assert.Equal(t, actor.Registrar, by.Role())
}

func TestResolveActor_MissingUserID(t *testing.T) {
	ctx := echoContext(t, map[string]string{userRoleHeader: "investor"})

	_, err := resolveActor(ctx)
	require.ErrorIs(t, err, errMissingIdentity)

	code, _ := mapError(err)
	assert.Equal(t, 401, code)
}

func TestResolveActor_MissingRole(t *testing.T) {
	ctx := echoContext(t, map[string]string{userIDHeader: kernel.NewUUID().String()})

	_, err := resolveActor(ctx)
	require.ErrorIs(t, err, errMissingIdentity)
}

func TestResolveActor_MalformedUserID(t *testing.T) {
	ctx := echoContext(t, map[string]string{
		userIDHeader:   "not-a-uuid",
		userRoleHeader: "investor",
	})

	_, err := resolveActor(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestResolveActor_UnknownRole(t *testing.T) {
	ctx := echoContext(t, map[string]string{
		userIDHeader:   kernel.NewUUID().String(),
		userRoleHeader: "admin",
	})

	_, err := resolveActor(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestFromAggregate_SerializesFullRecord(t *testing.T) {
	def, err := statemachine.DefaultCatalog().DefinitionFor(statemachine.Crypto)
	require.NoError(t, err)

	aggregate, err := transaction.NewTransaction(
		kernel.NewUUID(), def, "BTC", decimal.NewFromInt(5000), transaction.Buy)
	require.NoError(t, err)

	raw, err := json.Marshal(fromAggregate(aggregate))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, aggregate.ID().String(), decoded["id"])
	assert.Equal(t, "crypto", decoded["assetClass"])
	assert.Equal(t, "BTC", decoded["assetName"])
	assert.Equal(t, "buy", decoded["direction"])
	assert.Equal(t, "initiated", decoded["currentState"])
	assert.Equal(t, "processing", decoded["status"])
	assert.NotContains(t, decoded, "failureReason")

	history, ok := decoded["history"].([]any)
	require.True(t, ok)
	require.Len(t, history, 1)
	first, ok := history[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "initiated", first["state"])
	assert.Equal(t, "Transaction initiated", first["message"])
}

func TestFromAggregate_FailedRecordCarriesReason(t *testing.T) {
	def, err := statemachine.DefaultCatalog().DefinitionFor(statemachine.Stock)
	require.NoError(t, err)

	ownerID := kernel.NewUUID()
	aggregate, err := transaction.NewTransaction(
		ownerID, def, "AAPL", decimal.NewFromInt(100), transaction.Sell)
	require.NoError(t, err)

	registrar, err := actor.NewActor(kernel.NewUUID(), actor.Registrar)
	require.NoError(t, err)
	_, err = aggregate.Fail(registrar, "Insufficient margin")
	require.NoError(t, err)

	resp := fromAggregate(aggregate)
	assert.Equal(t, "failed", resp.CurrentState)
	assert.Equal(t, "failed", resp.Status)
	assert.Equal(t, "Insufficient margin", resp.FailureReason)
	require.Len(t, resp.History, 2)
	assert.Equal(t, "failed", resp.History[1].State)
}
