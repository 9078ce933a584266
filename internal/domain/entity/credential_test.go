package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestParseCredential(t *testing.T) {
	t.Run("Bcrypt prefixes are tagged as hashed", func(t *testing.T) {
		for _, stored := range []string{
			"$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
			"$2b$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
			"$2y$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		} {
			cred := ParseCredential(stored)
			assert.Equal(t, CredentialHashed, cred.Kind())
			assert.Equal(t, stored, cred.Value())
		}
	})

	t.Run("Anything else is tagged as legacy plain text", func(t *testing.T) {
		for _, stored := range []string{"secret1", "", "$1$notbcrypt", "2a$looksalmost"} {
			cred := ParseCredential(stored)
			assert.Equal(t, CredentialPlaintext, cred.Kind())
		}
	})
}

func TestCredentialVerify(t *testing.T) {
	t.Run("Hashed credential verifies via bcrypt", func(t *testing.T) {
		hash, err := HashPassword("secret1")
		require.NoError(t, err)

		cred := ParseCredential(hash)
		require.Equal(t, CredentialHashed, cred.Kind())
		assert.True(t, cred.Verify("secret1"))
		assert.False(t, cred.Verify("wrong"))
	})

	t.Run("Plain-text credential requires exact equality", func(t *testing.T) {
		cred := ParseCredential("secret1")
		assert.True(t, cred.Verify("secret1"))
		assert.False(t, cred.Verify("Secret1"))
		assert.False(t, cred.Verify("secret1 "))
	})
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, HashCost, cost)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@test.com", NormalizeEmail("  ANA@Test.com "))
	assert.Equal(t, "ana@test.com", NormalizeEmail("ana@test.com"))
}
