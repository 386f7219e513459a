package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	bcryptCost = bcrypt.MinCost
}

func TestPasswordHashing(t *testing.T) {
	hash, err := hashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, passwordMatches(hash, "secret1"))
	assert.False(t, passwordMatches(hash, "secret2"))
	assert.False(t, passwordMatches("not-a-hash", "secret1"))
}

func TestValidEmail(t *testing.T) {
	cases := map[string]bool{
		"asha@example.com": true,
		"a@b.in":           true,
		"@example.com":     false,
		"asha@":            false,
		"asha@localhost":   false,
		"asha.example.com": false,
	}
	for email, want := range cases {
		assert.Equal(t, want, validEmail(email), email)
	}
}
