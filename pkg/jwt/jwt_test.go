package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

func TestManager_GenerateAndParse(t *testing.T) {
	m := NewManager("test-secret-at-least-32-characters!", 2*time.Hour, "bookstore-admin")

	token, err := m.GenerateToken(42, "alice", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token.AccessToken)
	assert.Equal(t, int64(7200), token.ExpiresIn)

	claims, err := m.ParseToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "bookstore-admin", claims.Issuer)
}

func TestManager_ExpiredToken(t *testing.T) {
	// 有效期为负，签出的Token立即过期
	m := NewManager("test-secret-at-least-32-characters!", -time.Minute, "bookstore-admin")

	token, err := m.GenerateToken(1, "bob", "bob@example.com")
	require.NoError(t, err)

	_, err = m.ParseToken(token.AccessToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestManager_WrongSecret(t *testing.T) {
	issuer := NewManager("secret-one-ooooooooooooooooooooooo", time.Hour, "bookstore-admin")
	verifier := NewManager("secret-two-ooooooooooooooooooooooo", time.Hour, "bookstore-admin")

	token, err := issuer.GenerateToken(1, "carol", "carol@example.com")
	require.NoError(t, err)

	_, err = verifier.ParseToken(token.AccessToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestManager_GarbageToken(t *testing.T) {
	m := NewManager("test-secret-at-least-32-characters!", time.Hour, "bookstore-admin")

	_, err := m.ParseToken("not-a-jwt")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
