package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := HashPassword("secret1")
	require.NoError(t, err)
	h2, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "two hashes of the same password must differ")
	assert.NotContains(t, h1, "secret1")
}

func TestCheckPassword(t *testing.T) {
	digest, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, CheckPassword("secret1", digest))
	assert.False(t, CheckPassword("secret2", digest))
	assert.False(t, CheckPassword("", digest))
	assert.False(t, CheckPassword("secret1", "not-a-bcrypt-digest"))
}
