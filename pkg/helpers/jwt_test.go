package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(ttl time.Duration) *JWTManager {
	return NewJWTManager("test-secret", "passby", "passby-mobile", "passby", ttl)
}

func TestJWTIssueAndVerify(t *testing.T) {
	t.Parallel()
	m := newTestManager(time.Hour)

	token, exp, err := m.Issue(42, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.UserEmail)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "passby", claims.Issuer)
}

func TestJWTVerifyWrongSecret(t *testing.T) {
	t.Parallel()
	m := newTestManager(time.Hour)
	other := &JWTManager{Secret: []byte("different"), Issuer: m.Issuer, Audience: m.Audience, TokenTTL: time.Hour}

	token, _, err := other.Issue(1, "a@b.c")
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.Error(t, err)
}

func TestJWTVerifyExpired(t *testing.T) {
	t.Parallel()
	m := newTestManager(-time.Minute)

	token, _, err := m.Issue(1, "a@b.c")
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTVerifyWrongIssuerOrAudience(t *testing.T) {
	t.Parallel()
	m := newTestManager(time.Hour)

	badIssuer := &JWTManager{Secret: m.Secret, Issuer: "someone-else", Audience: m.Audience, TokenTTL: time.Hour}
	token, _, err := badIssuer.Issue(1, "a@b.c")
	require.NoError(t, err)
	_, err = m.Verify(token)
	require.Error(t, err)

	badAudience := &JWTManager{Secret: m.Secret, Issuer: m.Issuer, Audience: "other-app", TokenTTL: time.Hour}
	token, _, err = badAudience.Issue(1, "a@b.c")
	require.NoError(t, err)
	_, err = m.Verify(token)
	require.Error(t, err)
}

func TestJWTVerifyMissingIdentity(t *testing.T) {
	t.Parallel()
	m := newTestManager(time.Hour)

	// A well-formed, correctly signed token without the userEmail claim.
	claims := &Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.Issuer,
			Audience:  jwt.ClaimStrings{m.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.ErrorIs(t, err, ErrMissingIdentity)
}

func TestJWTVerifyGarbage(t *testing.T) {
	t.Parallel()
	m := newTestManager(time.Hour)

	_, err := m.Verify("not-a-token")
	require.Error(t, err)
}
