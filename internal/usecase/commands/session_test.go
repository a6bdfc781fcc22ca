//go:build unit

package commands_test

import (
	"testing"
	"time"

	"pos-api/internal/infra/tokenstore"
	"pos-api/internal/pkg/clock"
	"pos-api/internal/pkg/jwt"
	"pos-api/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenLifetime = 24 * time.Hour

func newSessionFixture(t *testing.T) (commands.SessionCommands, *tokenstore.MemoryStore, *clock.MockClock) {
	t.Helper()
	store := tokenstore.NewMemoryStore()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	jwtService := jwt.NewService("test-secret-key", tokenLifetime, clk)
	return commands.NewSessionUseCase(store, jwtService, clk), store, clk
}

func TestStartSession(t *testing.T) {
	uc, store, _ := newSessionFixture(t)

	result, err := uc.StartSession()
	require.NoError(t, err)

	assert.NotEmpty(t, result.UserID)
	assert.NotEmpty(t, result.AccessToken)

	sess, ok := store.Get(result.AccessToken)
	require.True(t, ok)
	assert.Equal(t, result.UserID, sess.UserID)
	assert.Equal(t, tokenLifetime, sess.ExpiresAt.Sub(sess.CreatedAt))
}

func TestStartSessionGeneratesDistinctUsers(t *testing.T) {
	uc, _, _ := newSessionFixture(t)

	first, err := uc.StartSession()
	require.NoError(t, err)
	second, err := uc.StartSession()
	require.NoError(t, err)

	assert.NotEqual(t, first.UserID, second.UserID)
	assert.NotEqual(t, first.AccessToken, second.AccessToken)
}

func TestVerifyToken(t *testing.T) {
	t.Run("valid token returns the embedded user", func(t *testing.T) {
		uc, _, _ := newSessionFixture(t)
		result, err := uc.StartSession()
		require.NoError(t, err)

		userID, err := uc.VerifyToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, result.UserID, userID)
	})

	t.Run("still valid just before the lifetime ends", func(t *testing.T) {
		uc, _, clk := newSessionFixture(t)
		result, err := uc.StartSession()
		require.NoError(t, err)

		clk.Add(tokenLifetime - time.Second)

		userID, err := uc.VerifyToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, result.UserID, userID)
	})

	t.Run("expired token fails and is evicted", func(t *testing.T) {
		uc, store, clk := newSessionFixture(t)
		result, err := uc.StartSession()
		require.NoError(t, err)

		clk.Add(tokenLifetime + time.Second)

		_, err = uc.VerifyToken(result.AccessToken)
		assert.ErrorIs(t, err, commands.ErrTokenExpired)

		_, ok := store.Get(result.AccessToken)
		assert.False(t, ok)

		// 削除済みなので二度目は unauthenticated
		_, err = uc.VerifyToken(result.AccessToken)
		assert.ErrorIs(t, err, commands.ErrUnauthenticated)
	})

	t.Run("unknown token is unauthenticated", func(t *testing.T) {
		uc, _, _ := newSessionFixture(t)

		_, err := uc.VerifyToken("never-issued")
		assert.ErrorIs(t, err, commands.ErrUnauthenticated)
	})

	t.Run("undecodable token in the registry is malformed", func(t *testing.T) {
		uc, store, clk := newSessionFixture(t)
		store.Put("garbage", commands.Session{
			UserID:    "user-1",
			CreatedAt: clk.Now(),
			ExpiresAt: clk.Now().Add(tokenLifetime),
		})

		_, err := uc.VerifyToken("garbage")
		assert.ErrorIs(t, err, commands.ErrTokenMalformed)
	})

	t.Run("token signed with another key is malformed", func(t *testing.T) {
		uc, store, clk := newSessionFixture(t)

		otherService := jwt.NewService("other-secret", tokenLifetime, clk)
		forged, err := otherService.GenerateToken("user-1", clk.Now())
		require.NoError(t, err)
		store.Put(forged, commands.Session{
			UserID:    "user-1",
			CreatedAt: clk.Now(),
			ExpiresAt: clk.Now().Add(tokenLifetime),
		})

		_, err = uc.VerifyToken(forged)
		assert.ErrorIs(t, err, commands.ErrTokenMalformed)
	})
}

func TestRevokeToken(t *testing.T) {
	t.Run("revoke then verify is unauthenticated", func(t *testing.T) {
		uc, _, _ := newSessionFixture(t)
		result, err := uc.StartSession()
		require.NoError(t, err)

		assert.True(t, uc.RevokeToken(result.AccessToken))

		_, err = uc.VerifyToken(result.AccessToken)
		assert.ErrorIs(t, err, commands.ErrUnauthenticated)
	})

	t.Run("revoking twice reports true then false", func(t *testing.T) {
		uc, _, _ := newSessionFixture(t)
		result, err := uc.StartSession()
		require.NoError(t, err)

		assert.True(t, uc.RevokeToken(result.AccessToken))
		assert.False(t, uc.RevokeToken(result.AccessToken))
	})

	t.Run("revoking an unknown token reports false", func(t *testing.T) {
		uc, _, _ := newSessionFixture(t)

		assert.False(t, uc.RevokeToken("never-issued"))
	})
}
