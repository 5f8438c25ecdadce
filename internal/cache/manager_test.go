package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BaSui01/agentpatterns/config"
)

// =============================================================================
// 🧪 Manager 测试
// =============================================================================

func setupTestRedis(t *testing.T, opts ...Option) (*miniredis.Miniredis, *Manager) {
	t.Helper()
	mr := miniredis.RunT(t)

	cfg := config.DefaultRedisConfig()
	cfg.Addr = mr.Addr()

	manager, err := NewManager(cfg, zap.NewNop(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })

	return mr, manager
}

func TestNewManager_Unreachable(t *testing.T) {
	cfg := config.DefaultRedisConfig()
	cfg.Addr = "127.0.0.1:1"
	_, err := NewManager(cfg, nil)
	assert.Error(t, err)
}

func TestManager_ReplaceAndRead(t *testing.T) {
	mr, manager := setupTestRedis(t)
	ctx := context.Background()

	err := manager.Replace(ctx, 0,
		Entry{Key: "bb:k", Value: map[string]string{"goal": "explore"}},
		Entry{Key: "bb:s", Value: `["x"]`},
	)
	require.NoError(t, err)

	fields, err := manager.HGetAll(ctx, "bb:k")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"goal": "explore"}, fields)

	var got []string
	require.NoError(t, manager.GetJSON(ctx, "bb:s", &got))
	assert.Equal(t, []string{"x"}, got)
	assert.Zero(t, mr.TTL("bb:k"))
}

func TestManager_ReplaceDropsStaleFields(t *testing.T) {
	_, manager := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, manager.Replace(ctx, 0, Entry{Key: "h", Value: map[string]string{"a": "1", "b": "2"}}))
	require.NoError(t, manager.Replace(ctx, 0, Entry{Key: "h", Value: map[string]string{"a": "3"}}))

	fields, err := manager.HGetAll(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "3"}, fields)
}

func TestManager_ReplaceWithTTL(t *testing.T) {
	mr, manager := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, manager.Replace(ctx, time.Minute,
		Entry{Key: "h", Value: map[string]string{"a": "1"}},
		Entry{Key: "s", Value: "v"},
	))
	assert.Equal(t, time.Minute, mr.TTL("h"))
	assert.Equal(t, time.Minute, mr.TTL("s"))

	mr.FastForward(2 * time.Minute)
	_, err := manager.HGetAll(ctx, "h")
	assert.True(t, IsCacheMiss(err))
}

func TestManager_ReplaceRejectsUnknownValue(t *testing.T) {
	_, manager := setupTestRedis(t)
	err := manager.Replace(context.Background(), 0, Entry{Key: "k", Value: 42})
	assert.Error(t, err)
}

func TestManager_Miss(t *testing.T) {
	_, manager := setupTestRedis(t)
	ctx := context.Background()

	_, err := manager.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	_, err = manager.HGetAll(ctx, "missing")
	assert.True(t, IsCacheMiss(err))
}

func TestManager_DeleteAndExists(t *testing.T) {
	_, manager := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, manager.Replace(ctx, 0, Entry{Key: "a", Value: "1"}, Entry{Key: "b", Value: "2"}))
	n, err := manager.Exists(ctx, "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, manager.Delete(ctx, "a", "b"))
	n, err = manager.Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, manager.Delete(ctx))
}

func TestManager_Close(t *testing.T) {
	_, manager := setupTestRedis(t, WithHealthCheck(10*time.Millisecond))
	ctx := context.Background()

	require.NoError(t, manager.Ping(ctx))
	require.NoError(t, manager.Close())
	require.NoError(t, manager.Close(), "close is idempotent")

	assert.ErrorIs(t, manager.Ping(ctx), ErrClosed)
	_, err := manager.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, manager.Replace(ctx, 0, Entry{Key: "k", Value: "v"}), ErrClosed)
}
