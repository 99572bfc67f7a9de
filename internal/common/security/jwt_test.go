package security_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bharatha-dev/brainly-server/internal/common/security"
)

var secret = []byte("jwt-test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := security.GenerateToken(secret, time.Hour, "user-123", "alice")
	require.NoError(t, err)

	claims, err := security.ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := security.GenerateToken(secret, time.Hour, "user-123", "alice")
	require.NoError(t, err)

	_, err = security.ParseToken([]byte("different"), token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	token, err := security.GenerateToken(secret, -time.Minute, "user-123", "alice")
	require.NoError(t, err)

	_, err = security.ParseToken(secret, token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseRejectsEmptyUserID(t *testing.T) {
	token, err := security.GenerateToken(secret, time.Hour, "", "alice")
	require.NoError(t, err)

	_, err = security.ParseToken(secret, token)
	assert.Error(t, err)
}
