package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/BaSui01/agentpatterns/config"
	"github.com/BaSui01/agentpatterns/internal/metrics"
	"github.com/BaSui01/agentpatterns/testutil/fixtures"
)

func TestNewLedgerFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	ledger, err := NewLedgerFromConfig(cfg, zaptest.NewLogger(t), nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryLedger{}, ledger)

	cfg.Store.Ledger = config.StoreGorm
	cfg.Database = sqliteConfig(t)
	ledger, err = NewLedgerFromConfig(cfg, zaptest.NewLogger(t), nil)
	require.NoError(t, err)
	defer ledger.Close()
	assert.IsType(t, &GormLedger{}, ledger)

	cfg.Store.Ledger = "mongo"
	_, err = NewLedgerFromConfig(cfg, zaptest.NewLogger(t), nil)
	assert.Error(t, err)
}

func TestNewLedgerFromConfig_RecordsQueryMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector("test", reg, zaptest.NewLogger(t))

	cfg := config.DefaultConfig()
	cfg.Store.Ledger = config.StoreGorm
	cfg.Database = sqliteConfig(t)

	ledger, err := NewLedgerFromConfig(cfg, zaptest.NewLogger(t), collector)
	require.NoError(t, err)
	defer ledger.Close()

	require.NoError(t, ledger.RecordSettlement(context.Background(), fixtures.WonSettlement("cpu", "a", 2, 2)))
	n, err := testutil.GatherAndCount(reg, "test_db_query_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewBlackboardStoreFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	store, err := NewBlackboardStoreFromConfig(cfg, zaptest.NewLogger(t), nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryBlackboardStore{}, store)

	mr := miniredis.RunT(t)
	cfg.Store.Blackboard = config.StoreRedis
	cfg.Store.SnapshotTTL = time.Hour
	cfg.Redis.Addr = mr.Addr()
	store, err = NewBlackboardStoreFromConfig(cfg, zaptest.NewLogger(t), nil)
	require.NoError(t, err)
	defer store.Close()
	assert.IsType(t, &RedisBlackboardStore{}, store)

	require.NoError(t, store.Save(context.Background(), fixtures.MissionBoard().Snapshot()))
	assert.True(t, mr.Exists("agentpatterns:bb:mission:sources"))
	assert.Equal(t, time.Hour, mr.TTL("agentpatterns:bb:mission:sources"))

	cfg.Store.Blackboard = "etcd"
	_, err = NewBlackboardStoreFromConfig(cfg, zaptest.NewLogger(t), nil)
	assert.Error(t, err)
}

func TestNewBlackboardStoreFromConfig_Instrumented(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector("test", reg, zaptest.NewLogger(t))

	store, err := NewBlackboardStoreFromConfig(config.DefaultConfig(), zaptest.NewLogger(t), collector)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, fixtures.MissionBoard().Snapshot()))
	_, err = store.Load(ctx, "nope")
	require.Error(t, err)

	n, err := testutil.GatherAndCount(reg, "test_blackboard_snapshots_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = testutil.GatherAndCount(reg, "test_store_misses_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
