package http

import (
	"net/http"

	"vitalguard-api/internal/alert"
	pkgErrors "vitalguard-api/pkg/errors"
	"vitalguard-api/pkg/response"
)

var (
	errWrongBody  = pkgErrors.NewHTTPError(400, "Wrong body", http.StatusBadRequest)
	errWrongQuery = pkgErrors.NewHTTPError(400, "Wrong query", http.StatusBadRequest)
)

var errorMapping = response.ErrorMapping{
	alert.ErrInvalidSignal:     pkgErrors.NewHTTPError(400, "Invalid signal", http.StatusBadRequest),
	alert.ErrAlertNotFound:     pkgErrors.NewNotFoundHTTPError("Alert not found"),
	alert.ErrNoActiveEmergency: pkgErrors.NewNotFoundHTTPError("No active emergency for patient"),
	alert.ErrPermissionDenied:  pkgErrors.NewForbiddenHTTPError(),
}
