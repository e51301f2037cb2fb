package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	str, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return str
}

func TestExpiresAt(t *testing.T) {
	expires := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	str := signedToken(t, jwt.RegisteredClaims{
		Subject:   "123456",
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	got, err := ExpiresAt(str)
	require.NoError(t, err)
	assert.True(t, got.Equal(expires))
}

func TestExpiresAt_NoExpClaim(t *testing.T) {
	str := signedToken(t, jwt.RegisteredClaims{Subject: "123456"})

	got, err := ExpiresAt(str)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestExpiresAt_Malformed(t *testing.T) {
	_, err := ExpiresAt("not-a-token")
	require.Error(t, err)
}

func TestIsExpired(t *testing.T) {
	expires := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	withExp := signedToken(t, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expires),
	})
	withoutExp := signedToken(t, jwt.RegisteredClaims{Subject: "123456"})

	tests := []struct {
		name  string
		token string
		now   time.Time
		want  bool
	}{
		{name: "before expiry", token: withExp, now: expires.Add(-time.Hour), want: false},
		{name: "at expiry", token: withExp, now: expires, want: true},
		{name: "after expiry", token: withExp, now: expires.Add(time.Hour), want: true},
		{name: "no exp claim never expires", token: withoutExp, now: expires.Add(24 * time.Hour), want: false},
		{name: "malformed treated as expired", token: "garbage", now: expires, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExpired(tt.token, tt.now))
		})
	}
}
