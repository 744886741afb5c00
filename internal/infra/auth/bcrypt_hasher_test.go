package auth

import (
	"testing"

	"tourgenius/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, hasher.Check("s3cret-pass", hash))
	assert.False(t, hasher.Check("wrong-pass", hash))
}

func TestBcryptHasher_UniqueSalts(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	first, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	second, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_DefaultCostWithoutConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.True(t, hasher.Check("s3cret-pass", hash))
}
