package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer() *Issuer {
	return &Issuer{
		Secret:    []byte("test-jwt-secret"),
		Issuer:    "todo-platform",
		Audience:  "todo-clients",
		AccessTTL: 15 * time.Minute,
	}
}

func TestIssueAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer()
	token, err := iss.IssueAccessToken(42, "a@x.com", "Admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := iss.Decode(token)
	require.NoError(t, err)

	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Admin", claims.Role)
	assert.NotEmpty(t, claims.ID)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(iss.AccessTTL), claims.ExpiresAt.Time, 2*time.Second)
}

func TestDecode_ExpiredToken(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer()
	iss.AccessTTL = -time.Minute

	token, err := iss.IssueAccessToken(1, "a@x.com", "User")
	require.NoError(t, err)

	_, err = iss.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecode_WrongSecret(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer()
	token, err := iss.IssueAccessToken(1, "a@x.com", "User")
	require.NoError(t, err)

	other := newTestIssuer()
	other.Secret = []byte("a-different-secret")

	_, err = other.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecode_WrongIssuerOrAudience(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer()
	token, err := iss.IssueAccessToken(1, "a@x.com", "User")
	require.NoError(t, err)

	badIssuer := newTestIssuer()
	badIssuer.Issuer = "someone-else"
	_, err = badIssuer.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	badAudience := newTestIssuer()
	badAudience.Audience = "other-clients"
	_, err = badAudience.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer()
	for _, tkn := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := iss.Decode(tkn)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestNewRefreshToken(t *testing.T) {
	t.Parallel()

	t1, err := NewRefreshToken()
	require.NoError(t, err)
	t2, err := NewRefreshToken()
	require.NoError(t, err)

	assert.NotEmpty(t, t1)
	assert.NotEqual(t, t1, t2)
	// 64 random bytes base64-encoded.
	assert.GreaterOrEqual(t, len(t1), 64)
}
