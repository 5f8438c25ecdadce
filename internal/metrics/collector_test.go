package metrics

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BaSui01/agentpatterns/market"
)

func newTestCollector(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewCollector("test", reg, zap.NewNop()), reg
}

// =============================================================================
// 🧪 Collector 测试
// =============================================================================

func TestNewCollector(t *testing.T) {
	collector, _ := newTestCollector(t)

	assert.NotNil(t, collector)
	assert.NotNil(t, collector.auctionsSettled)
	assert.NotNil(t, collector.auctionClearing)
	assert.NotNil(t, collector.consensusRounds)
	assert.NotNil(t, collector.blackboardSnapshots)
	assert.NotNil(t, collector.dbQueryDuration)
}

func TestNewCollector_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NewCollector("nil_logger", prometheus.NewRegistry(), nil)
	})
}

func TestCollector_ObserveSettlement(t *testing.T) {
	collector, _ := newTestCollector(t)

	winner := market.NewBid("agent-1", 120, "gpu")
	collector.ObserveSettlement(market.Settlement{
		Resource:      "gpu",
		Kind:          market.AuctionVickrey,
		Winner:        &winner,
		ClearingPrice: 90,
		BidCount:      3,
		SettledAt:     time.Now(),
	})
	collector.ObserveSettlement(market.Settlement{
		Resource: "cpu",
		Kind:     market.AuctionVickrey,
		BidCount: 1,
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.auctionsSettled.WithLabelValues("vickrey", "won")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.auctionsSettled.WithLabelValues("vickrey", "no_winner")))
	assert.Equal(t, 4.0, testutil.ToFloat64(collector.auctionBids.WithLabelValues("vickrey")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.allocationsTotal.WithLabelValues("gpu")))
	assert.Equal(t, 1, testutil.CollectAndCount(collector.auctionClearing))
}

func TestCollector_RecordConsensus(t *testing.T) {
	collector, _ := newTestCollector(t)

	collector.RecordConsensus(true, 3)
	collector.RecordConsensus(true, 5)
	collector.RecordConsensus(false, 3)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.consensusRounds.WithLabelValues("reached")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.consensusRounds.WithLabelValues("not_reached")))
	assert.Equal(t, 2, testutil.CollectAndCount(collector.consensusVotes))
}

func TestCollector_BlackboardMetrics(t *testing.T) {
	collector, _ := newTestCollector(t)

	collector.RecordBlackboardSize("mission", 4)
	collector.RecordSnapshot("redis", "save", nil)
	collector.RecordSnapshot("redis", "save", errors.New("boom"))

	assert.Equal(t, 4.0, testutil.ToFloat64(collector.blackboardEntries.WithLabelValues("mission")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.blackboardSnapshots.WithLabelValues("redis", "save", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.blackboardSnapshots.WithLabelValues("redis", "save", "error")))
}

func TestCollector_StoreLookups(t *testing.T) {
	collector, _ := newTestCollector(t)

	collector.RecordStoreHit("redis")
	collector.RecordStoreMiss("redis")
	collector.RecordStoreMiss("redis")

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.storeHits.WithLabelValues("redis")))
	assert.Equal(t, 2.0, testutil.ToFloat64(collector.storeMisses.WithLabelValues("redis")))
}

func TestCollector_RecordDatabaseQuery(t *testing.T) {
	collector, _ := newTestCollector(t)

	// 记录数据库查询
	collector.RecordDBQuery("sqlite", "record_settlement", 20*time.Millisecond)

	// 验证指标
	count := testutil.CollectAndCount(collector.dbQueryDuration)
	assert.Greater(t, count, 0)
}

func TestCollector_UpdateConnectionPool(t *testing.T) {
	collector, _ := newTestCollector(t)

	// 更新连接池状态
	collector.RecordDBConnections("postgres", 10, 5)

	assert.Equal(t, 10.0, testutil.ToFloat64(collector.dbConnectionsOpen.WithLabelValues("postgres")))
	assert.Equal(t, 5.0, testutil.ToFloat64(collector.dbConnectionsIdle.WithLabelValues("postgres")))
}

func TestCollector_ConcurrentRecording(t *testing.T) {
	collector, _ := newTestCollector(t)

	// 并发记录多个指标
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			collector.RecordConsensus(true, 3)
			collector.RecordStoreHit("memory")
		}()
	}
	wg.Wait()

	assert.Equal(t, 10.0, testutil.ToFloat64(collector.consensusRounds.WithLabelValues("reached")))
	assert.Equal(t, 10.0, testutil.ToFloat64(collector.storeHits.WithLabelValues("memory")))
}

func TestCollector_MetricsRegistration(t *testing.T) {
	collector, reg := newTestCollector(t)
	collector.RecordConsensus(false, 2)

	expected := `
# HELP test_consensus_rounds_total Total number of evaluated consensus rounds
# TYPE test_consensus_rounds_total counter
test_consensus_rounds_total{outcome="not_reached"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_consensus_rounds_total")
	require.NoError(t, err)

	// 同一个 registry 不允许重复注册
	assert.Panics(t, func() {
		NewCollector("test", reg, zap.NewNop())
	})
}
