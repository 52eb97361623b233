package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager() TokenManager {
	return NewTokenManager(TokenConfig{
		SecretKey: "test-secret-key",
		Expiry:    time.Hour,
	})
}

func TestTokenManager_GenerateAndParse(t *testing.T) {
	tm := newTestTokenManager()

	token, err := tm.Generate(42, "alice", "127.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "127.0.0.1", claims.IP)
	assert.Equal(t, DefaultTokenIssuer, claims.Issuer)
}

func TestTokenManager_Validate(t *testing.T) {
	tm := newTestTokenManager()

	token, err := tm.Generate(1, "bob", "10.0.0.1")
	require.NoError(t, err)

	assert.NoError(t, tm.Validate(token))
	assert.Error(t, tm.Validate(token+"x"))
	assert.Error(t, tm.Validate("not-a-token"))
}

func TestTokenManager_WrongKey(t *testing.T) {
	tm := newTestTokenManager()

	token, err := tm.Generate(7, "carol", "")
	require.NoError(t, err)

	_, err = ParseTokenWithKey(token, "another-secret")
	assert.Error(t, err)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager(TokenConfig{
		SecretKey: "test-secret-key",
		Expiry:    -time.Minute,
	})

	token, err := tm.Generate(9, "dave", "")
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.Error(t, err)
}
