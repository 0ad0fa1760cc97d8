package identity

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAssignment  = errors.New("invalid assignment")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrFieldRequired      = errors.New("field required")
)
