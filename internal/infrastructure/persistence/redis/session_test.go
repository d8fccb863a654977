package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewSessionStore(client, time.Hour), mr
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	session := &Session{
		UserID:    1,
		Username:  "alice",
		LoginAt:   time.Now().Truncate(time.Second),
		ClientIP:  "127.0.0.1",
		UserAgent: "test-agent",
	}
	require.NoError(t, store.Save(ctx, session))

	found, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
	assert.Equal(t, "127.0.0.1", found.ClientIP)
}

func TestSessionStore_Get_NotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_OverwriteOnRelogin(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{UserID: 1, ClientIP: "10.0.0.1"}))
	require.NoError(t, store.Save(ctx, &Session{UserID: 1, ClientIP: "10.0.0.2"}))

	found, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2", found.ClientIP)
}

func TestSessionStore_Expiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{UserID: 1, Username: "alice"}))

	// 推进时钟超过过期时间
	mr.FastForward(2 * time.Hour)

	_, err := store.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{UserID: 1}))
	require.NoError(t, store.Delete(ctx, 1))

	_, err := store.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
