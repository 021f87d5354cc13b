package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := VerifyPassword("rahasia123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("salah", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	_, err := VerifyPassword("whatever", "not-a-hash")
	assert.Error(t, err)
}

func TestHashPasswordSaltsEveryHash(t *testing.T) {
	first, err := HashPassword("rahasia123")
	require.NoError(t, err)
	second, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
