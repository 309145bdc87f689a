package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	digest, err := HashPassword("longenough1")
	assert.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "longenough1", digest)

	assert.True(t, CheckPassword("longenough1", digest))
	assert.False(t, CheckPassword("wrongpassword", digest))
}

func TestHashPassword_DistinctDigests(t *testing.T) {
	// bcrypt salts every digest, so two hashes of the same input differ.
	first, err := HashPassword("longenough1")
	assert.NoError(t, err)
	second, err := HashPassword("longenough1")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)

	assert.True(t, CheckPassword("longenough1", first))
	assert.True(t, CheckPassword("longenough1", second))
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	assert.False(t, CheckPassword("longenough1", "not-a-bcrypt-digest"))
	assert.False(t, CheckPassword("longenough1", ""))
}
