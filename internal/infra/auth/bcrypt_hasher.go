// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"centinela/config"
	"centinela/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the SecretHasher interface using bcrypt.
// The same primitive hashes passwords and recovery answers.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher. The work factor comes
// from configuration; an unset or out-of-range cost falls back to bcrypt's default.
func NewBcryptHasher(cfg *config.Config) service.SecretHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil {
		if c := cfg.Auth.BcryptCost; c >= bcrypt.MinCost && c <= bcrypt.MaxCost {
			cost = c
		}
	}

	return &bcryptHasher{cost: cost}
}

// NewBcryptHasherWithCost builds a hasher with an explicit work factor.
// Tests use a low cost to keep hashing fast.
func NewBcryptHasherWithCost(cost int) service.SecretHasher {
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted digest from a plaintext secret using bcrypt.
// bcrypt embeds a fresh random salt, so identical inputs produce distinct digests.
func (h *bcryptHasher) Hash(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)

	return string(bytes), err
}

// Check compares a plaintext secret with a bcrypt digest. Any comparison
// failure, including a malformed digest, reads as a mismatch.
func (h *bcryptHasher) Check(secret, digest string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret))

	return err == nil
}
