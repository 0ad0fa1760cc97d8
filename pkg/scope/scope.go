package scope

import (
	"context"
	"fmt"
	"time"

	"vitalguard-api/internal/model"

	"github.com/golang-jwt/jwt"
)

// Verify verifies the JWT token and returns the payload if valid.
// It checks the token signature, expiration, and claims structure.
func (m *implManager) Verify(token string) (Payload, error) {
	if token == "" {
		return Payload{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, t.Header["alg"])
		}
		return []byte(m.secretKey), nil
	}

	jwtToken, err := jwt.ParseWithClaims(token, &Payload{}, keyFunc)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !jwtToken.Valid {
		return Payload{}, fmt.Errorf("%w: token is not valid", ErrInvalidToken)
	}

	payload, ok := jwtToken.Claims.(*Payload)
	if !ok {
		return Payload{}, fmt.Errorf("%w: failed to parse claims", ErrInvalidToken)
	}

	return *payload, nil
}

// CreateToken creates a new JWT token with the given payload.
// The token expires after TokenExpirationDuration.
func (m *implManager) CreateToken(payload Payload) (string, error) {
	now := time.Now()
	payload.StandardClaims = jwt.StandardClaims{
		ExpiresAt: now.Add(TokenExpirationDuration).Unix(),
		Id:        fmt.Sprintf("%d", now.UnixNano()),
		NotBefore: now.Unix(),
		IssuedAt:  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return token.SignedString([]byte(m.secretKey))
}

// NewScope builds model.Scope from Payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}
	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

// SetPayloadToContext attaches Payload to context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, PayloadCtxKey{}, payload)
}

// GetPayloadFromContext returns Payload from context.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(PayloadCtxKey{}).(Payload)
	return payload, ok
}

// SetScopeToContext attaches model.Scope to context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ScopeCtxKey{}, sc)
}

// GetScopeFromContext returns model.Scope from context.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(ScopeCtxKey{}).(model.Scope)
	return sc, ok
}
