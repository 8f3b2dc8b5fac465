// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"centinela/internal/domain/entity"
)

// Domain-specific errors for credential persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when no record exists for a username.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when a create collides with the unique username index.
	ErrUsernameTaken = errors.New("username already taken")
)

// UserRepository defines the standard operations for the credential store.
// Callers pass usernames already normalized to lowercase; the store's unique
// index on username is the actual uniqueness guarantee, not the application's
// existence check.
type UserRepository interface {
	// FindByUsername retrieves a user record by its normalized username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user record. Returns ErrUsernameTaken when the
	// unique constraint rejects the insert.
	Create(ctx context.Context, user *entity.User) error

	// Update saves changes to an existing user record (password resets).
	Update(ctx context.Context, user *entity.User) error
}
