package auth

import (
	"testing"

	"centinela/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	digest, err := hasher.Hash("secreto123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "secreto123", digest)

	assert.True(t, hasher.Check("secreto123", digest))
	assert.False(t, hasher.Check("otroSecreto", digest))
}

func TestBcryptHasher_SaltedDigestsDiffer(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("misma-clave")
	require.NoError(t, err)
	second, err := hasher.Hash("misma-clave")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so equal inputs never share a digest.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("misma-clave", first))
	assert.True(t, hasher.Check("misma-clave", second))
}

func TestBcryptHasher_CheckMalformedDigest(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	assert.False(t, hasher.Check("cualquier", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Check("cualquier", ""))
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher := NewBcryptHasher(cfg)

	digest, err := hasher.Hash("secreto")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestNewBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}
	hasher := NewBcryptHasher(cfg)

	digest, err := hasher.Hash("secreto")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
