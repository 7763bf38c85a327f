package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueParseRoundtrip(t *testing.T) {
	ts := NewTokenService("test-secret")

	token, err := ts.Issue(42, "a@b.com")
	require.NoError(t, err)

	claims, err := ts.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)

	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, TokenTTL.Seconds(), ttl.Seconds(), 60)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").Issue(1, "a@b.com")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsTampered(t *testing.T) {
	ts := NewTokenService("test-secret")
	token, err := ts.Issue(1, "a@b.com")
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"
	_, err = ts.Parse(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	// sign an already-expired token with the service's own secret
	claims := Claims{
		UserID: 1,
		Email:  "a@b.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewTokenService("test-secret").Parse(expired)
	assert.ErrorIs(t, err, ErrInvalidToken, "expiry must be indistinguishable from a bad signature")
}

func TestTokenService_RejectsUnsignedAlg(t *testing.T) {
	claims := Claims{UserID: 1, Email: "a@b.com"}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService("test-secret").Parse(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
