// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the single credential record of the service. The username is the
// login identifier and is always stored normalized to lowercase; the ID is the
// store-assigned identity that ends up in token subject claims.
type User struct {
	ID                 uuid.UUID // The Global Unique Identifier (GUID) for the user, used as the token subject.
	Username           string    // Unique login identifier, normalized to lowercase before any store access.
	PasswordHash       string    // bcrypt digest of the password. Never the plaintext, never serialized out.
	RecoveryQuestion   string    // The security question chosen at registration, stored as plaintext.
	RecoveryAnswerHash string    // bcrypt digest of the lowercased recovery answer.
	CreatedAt          time.Time // Timestamp of when this account was created.
	UpdatedAt          time.Time // Timestamp of the last modification (password resets included).
}
