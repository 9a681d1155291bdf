package http

import (
	"errors"
	"net/http"

	"assetflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errMissingIdentity marks requests that arrived without the gateway identity
// headers. Distinct from a malformed header, which is the caller's 400.
var errMissingIdentity = errors.New("missing identity headers")

// mapError translates domain errors into HTTP status codes. Unrecognized
// errors become 500 with a generic message so storage details never leak to
// clients.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, errMissingIdentity):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrUnknownAssetClass),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func errorJSON(ctx echo.Context, err error) error {
	code, message := mapError(err)
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
