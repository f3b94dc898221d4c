package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, pw := range []string{"Password123", "", "пароль", "a very long passphrase with spaces"} {
		h, salt, err := Password(pw)
		require.NoError(t, err)
		require.Len(t, salt, SaltSize)
		require.NotEmpty(t, h)

		assert.True(t, Verify(pw, h, salt))
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	h, salt, err := Password("correct horse")
	require.NoError(t, err)

	assert.False(t, Verify("battery staple", h, salt))
	assert.False(t, Verify("", h, salt))
}

func TestPassword_SaltIsFresh(t *testing.T) {
	t.Parallel()

	h1, s1, err := Password("same password")
	require.NoError(t, err)
	h2, s2, err := Password("same password")
	require.NoError(t, err)

	assert.NotEqual(t, s1, s2)
	assert.NotEqual(t, h1, h2)

	// Each hash only verifies against its own salt.
	assert.True(t, Verify("same password", h1, s1))
	assert.False(t, Verify("same password", h1, s2))
}
