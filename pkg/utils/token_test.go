package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyAccessToken(t *testing.T) {
	hash, err := HashAccessToken("s3cret-one-time-token")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := VerifyAccessToken("s3cret-one-time-token", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyAccessToken("wrong-secret", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyAccessTokenInvalidHashFormat(t *testing.T) {
	_, err := VerifyAccessToken("anything", "not-a-hash")
	assert.Error(t, err)
}

func TestHashAccessTokenSalted(t *testing.T) {
	h1, err := HashAccessToken("same-secret")
	require.NoError(t, err)
	h2, err := HashAccessToken("same-secret")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
