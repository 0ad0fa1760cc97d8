package http

import (
	"net/http"

	"vitalguard-api/internal/ws"
	pkgErrors "vitalguard-api/pkg/errors"
	"vitalguard-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	ws.ErrMissingToken:          pkgErrors.NewUnauthorizedHTTPError(),
	ws.ErrInvalidToken:          pkgErrors.NewUnauthorizedHTTPError(),
	ws.ErrMaxConnectionsReached: pkgErrors.NewHTTPError(503, "Maximum connections reached", http.StatusServiceUnavailable),
}
