// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// SecretHasher defines the interface for one-way, salted hashing of passwords
// and recovery answers. This abstracts the underlying algorithm (e.g., bcrypt),
// keeping the domain pure.
type SecretHasher interface {
	// Hash generates a salted digest from a plaintext secret. Two calls with
	// the same input produce different digests.
	Hash(secret string) (string, error)

	// Check compares a plaintext secret with a digest. A malformed digest is
	// reported as a mismatch, never as a failure that skips the check.
	Check(secret, digest string) bool
}
