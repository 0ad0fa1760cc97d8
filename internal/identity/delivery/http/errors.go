package http

import (
	"net/http"

	"vitalguard-api/internal/identity"
	pkgErrors "vitalguard-api/pkg/errors"
	"vitalguard-api/pkg/response"
)

var errWrongBody = pkgErrors.NewHTTPError(400, "Wrong body", http.StatusBadRequest)

var errorMapping = response.ErrorMapping{
	identity.ErrFieldRequired:      pkgErrors.NewHTTPError(400, "Missing required field", http.StatusBadRequest),
	identity.ErrInvalidRole:        pkgErrors.NewHTTPError(400, "Invalid role", http.StatusBadRequest),
	identity.ErrInvalidAssignment:  pkgErrors.NewHTTPError(400, "Invalid assignment", http.StatusBadRequest),
	identity.ErrUserExists:         pkgErrors.NewHTTPError(409, "Username already taken", http.StatusConflict),
	identity.ErrUserNotFound:       pkgErrors.NewNotFoundHTTPError("User not found"),
	identity.ErrInvalidCredentials: pkgErrors.NewHTTPError(401, "Invalid username or password", http.StatusUnauthorized),
	identity.ErrPermissionDenied:   pkgErrors.NewForbiddenHTTPError(),
}
