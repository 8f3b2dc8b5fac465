// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"centinela/config"
	domainerrors "centinela/internal/domain/errors"
	"centinela/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// A single HS256 secret signs both access and refresh tokens; the two differ
// only by the lifetime the caller passes to Issue.
type jwtService struct {
	secret     []byte
	issuer     string
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.JWT.AccessTTL <= 0 || cfg.JWT.RefreshTTL <= 0 {
		return nil, errors.New("jwt token lifetimes must be positive")
	}

	return &jwtService{
		secret:     []byte(cfg.JWT.Secret),
		issuer:     cfg.JWT.Issuer,
		audience:   cfg.JWT.Audience,
		accessTTL:  cfg.JWT.AccessTTL,
		refreshTTL: cfg.JWT.RefreshTTL,
	}, nil
}

// Issue produces a signed token bound to the user's identity and username,
// expiring after the given lifetime.
func (s *jwtService) Issue(userID uuid.UUID, username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks signature, expiration, issuer and audience. Every failure mode
// collapses into ErrInvalidToken so callers cannot tell which check rejected
// the token; the underlying cause stays wrapped for server-side logs.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token verification failed")
	}

	return claims, nil
}

// AccessTokenDuration returns the configured lifetime for access tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// RefreshTokenDuration returns the configured lifetime for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}
