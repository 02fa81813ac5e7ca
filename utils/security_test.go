package utils_test

import (
	"testing"
	"time"

	"realty-server/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash1, err := utils.HashPassword("secret")
	require.NoError(t, err)
	hash2, err := utils.HashPassword("secret")
	require.NoError(t, err)

	// Random salt: same input, different digests, both verifiable
	assert.NotEqual(t, hash1, hash2)
	assert.True(t, utils.CheckPasswordHash("secret", hash1))
	assert.True(t, utils.CheckPasswordHash("secret", hash2))
	assert.False(t, utils.CheckPasswordHash("wrong", hash1))
}

func TestCheckPasswordHashMalformed(t *testing.T) {
	assert.False(t, utils.CheckPasswordHash("secret", "not-a-bcrypt-hash"))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"

	token, err := utils.CreateAccessToken(map[string]any{"sub": "alice"}, 30*time.Minute, secret)
	require.NoError(t, err)

	claims, err := utils.ParseAccessToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims["sub"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, int64(exp), time.Now().Unix())
}

func TestParseAccessTokenFailsClosed(t *testing.T) {
	const secret = "test-secret"

	expired, err := utils.CreateAccessToken(map[string]any{"sub": "alice"}, -time.Minute, secret)
	require.NoError(t, err)

	valid, err := utils.CreateAccessToken(map[string]any{"sub": "alice"}, 30*time.Minute, secret)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "expired token", token: expired, secret: secret},
		{name: "wrong secret", token: valid, secret: "other-secret"},
		{name: "malformed token", token: "not.a.jwt", secret: secret},
		{name: "empty token", token: "", secret: secret},
		{name: "tampered payload", token: valid[:len(valid)-4] + "AAAA", secret: secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := utils.ParseAccessToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, utils.ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
