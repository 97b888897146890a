package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyHasherDeterministic(t *testing.T) {
	h := LegacyHasher{}

	// Known SHA-256 vector; fixed-length hex, no salt.
	digest, err := h.Hash("password")
	require.NoError(t, err)
	assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", digest)

	again, err := h.Hash("password")
	require.NoError(t, err)
	assert.Equal(t, digest, again)

	assert.True(t, h.Verify(digest, "password"))
	assert.False(t, h.Verify(digest, "Password"))
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher()

	digest, err := h.Hash("hunter2hunter2")
	require.NoError(t, err)

	assert.True(t, h.Verify(digest, "hunter2hunter2"))
	assert.False(t, h.Verify(digest, "wrong"))

	// Salted: two hashes of the same plaintext differ.
	other, err := h.Hash("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, digest, other)
}
