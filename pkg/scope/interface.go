package scope

import "time"

const (
	// TokenExpirationDuration is the default JWT token expiration (1 week).
	TokenExpirationDuration = time.Hour * 24 * 7
)

// Manager defines the interface for JWT token management.
// Implementations are safe for concurrent use.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

// New creates a new scope Manager with the provided secret key.
func New(secretKey string) Manager {
	if secretKey == "" {
		panic("scope: secret key cannot be empty")
	}
	return &implManager{secretKey: secretKey}
}
