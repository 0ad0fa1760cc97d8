package ws

import "errors"

var (
	ErrMissingToken          = errors.New("missing authentication token")
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrMaxConnectionsReached = errors.New("maximum connections reached")
)
