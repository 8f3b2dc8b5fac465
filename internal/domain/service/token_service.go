package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by every token issued by the service.
// Access and refresh tokens share this shape and differ only by lifetime; there
// is deliberately no kind discriminator (wire-compatible with the source API).
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into the user's store identity.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for issuing and verifying signed, expiring
// tokens. The issuer is parameterized by lifetime per call — it has no notion
// of token kind.
type TokenService interface {
	// Issue produces a signed token with the subject identity, username,
	// configured issuer/audience, and an expiration of now+ttl.
	Issue(userID uuid.UUID, username string, ttl time.Duration) (string, error)

	// Verify checks signature, expiration, issuer and audience, returning the
	// extracted claims on success. All failure modes collapse into a single
	// invalid-token outcome so the caller leaks nothing about which check failed.
	Verify(token string) (*Claims, error)

	// AccessTokenDuration returns the configured short lifetime.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured long lifetime.
	RefreshTokenDuration() time.Duration
}
