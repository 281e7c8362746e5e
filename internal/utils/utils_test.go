package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken("s3cret", "demo", "USER", 5)
	require.NoError(t, err)
	assert.NotEmpty(t, tok.Token)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), tok.Exp, 5*time.Second)

	claims, err := ParseAccessToken("s3cret", tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "demo", claims["sub"])
	assert.Equal(t, "USER", claims["role"])

	_, err = ParseAccessToken("other", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredAndNone(t *testing.T) {
	expired, err := NewAccessToken("k", "demo", "USER", -1)
	require.NoError(t, err)
	_, err = ParseAccessToken("k", expired.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ParseAccessToken("k", none)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPassword(t *testing.T) {
	h, err := HashPassword("demo123", 4)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(h, "demo123"))
	assert.False(t, VerifyPassword(h, "demo124"))

	h, err = HashPassword("x", 99)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(h, "x"))
}

func TestIDs(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^prod-[0-9a-f]{6}$`), NewProductID())
	assert.Regexp(t, regexp.MustCompile(`^ORD-[0-9A-F]{8}$`), NewOrderID())
	assert.Len(t, ShortID(100), 32)
	assert.Len(t, ShortID(0), 1)
	assert.NotEqual(t, NewOrderID(), NewOrderID())
}
