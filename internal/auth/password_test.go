package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("p1")
	require.NoError(t, err)
	assert.NotEqual(t, "p1", hash)

	// Salted hashing must not be deterministic.
	hash2, err := HashPassword("p1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	ok, err := CheckPassword("correct horse", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword("wrong horse", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	ok, err := CheckPassword("anything", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}
