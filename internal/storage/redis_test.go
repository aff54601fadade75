package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/social-steps/pkg/state"
)

func setupTestRedis(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	rs, err := NewRedisStorage("redis://"+mr.Addr(), t.TempDir(), testLogger())
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create redis storage: %v", err)
	}

	return rs, mr
}

func TestRedisStorage_SnapshotLifecycle(t *testing.T) {
	rs, mr := setupTestRedis(t)
	defer mr.Close()
	defer func() {
		_ = rs.Close()
	}()

	ctx := context.Background()
	require.NoError(t, rs.Ping(ctx))

	id := uuid.New()

	snap, err := rs.LoadSnapshot(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, snap)

	require.NoError(t, rs.SaveSnapshot(ctx, id, testSnapshot()))

	snap, err = rs.LoadSnapshot(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, state.Position{X: 2, Y: 3}, *snap.Player)
	assert.Equal(t, 7, *snap.Comfort)
	assert.Equal(t, 300, *snap.Score)

	// Manual saves have no TTL.
	assert.Equal(t, int64(0), int64(mr.TTL("snapshot:"+id.String())))

	require.NoError(t, rs.DeleteSnapshot(ctx, id))
	snap, err = rs.LoadSnapshot(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestRedisStorage_LoadSnapshot_Corrupt(t *testing.T) {
	rs, mr := setupTestRedis(t)
	defer mr.Close()
	defer func() {
		_ = rs.Close()
	}()

	id := uuid.New()
	require.NoError(t, mr.Set("snapshot:"+id.String(), "{not json"))

	_, err := rs.LoadSnapshot(context.Background(), id)
	assert.Error(t, err)
}

func TestNewRedisStorage_BadURL(t *testing.T) {
	_, err := NewRedisStorage("not-a-url", "", testLogger())
	assert.Error(t, err)
}

func TestRedisStorage_WaitForConnection(t *testing.T) {
	rs, mr := setupTestRedis(t)
	defer mr.Close()
	defer func() {
		_ = rs.Close()
	}()

	require.NoError(t, rs.WaitForConnection(context.Background()))
}

func TestRedisStorage_WaitForConnection_ContextCancelled(t *testing.T) {
	rs, mr := setupTestRedis(t)
	defer func() {
		_ = rs.Close()
	}()

	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, rs.WaitForConnection(ctx), context.DeadlineExceeded)
}

func TestRedisStorage_PingFailure(t *testing.T) {
	rs, mr := setupTestRedis(t)
	defer func() {
		_ = rs.Close()
	}()

	mr.Close()
	assert.Error(t, rs.Ping(context.Background()))
}
