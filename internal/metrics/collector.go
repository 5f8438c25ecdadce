// Package metrics provides internal metrics collection.
// This package is internal and should not be imported by external projects.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/BaSui01/agentpatterns/market"
)

// =============================================================================
// 📊 指标收集器
// =============================================================================

// Collector 指标收集器
type Collector struct {
	// 拍卖指标
	auctionsSettled  *prometheus.CounterVec
	auctionBids      *prometheus.CounterVec
	auctionClearing  *prometheus.HistogramVec
	allocationsTotal *prometheus.CounterVec

	// 共识指标
	consensusRounds *prometheus.CounterVec
	consensusVotes  *prometheus.HistogramVec

	// 黑板指标
	blackboardEntries   *prometheus.GaugeVec
	blackboardSnapshots *prometheus.CounterVec

	// 存储指标
	storeHits   *prometheus.CounterVec
	storeMisses *prometheus.CounterVec

	// 数据库指标
	dbConnectionsOpen *prometheus.GaugeVec
	dbConnectionsIdle *prometheus.GaugeVec
	dbQueryDuration   *prometheus.HistogramVec

	logger *zap.Logger
}

var _ market.Observer = (*Collector)(nil)

// NewCollector 创建指标收集器，指标注册到 reg；reg 为 nil 时使用默认 registry
func NewCollector(namespace string, reg prometheus.Registerer, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	// 拍卖指标
	c.auctionsSettled = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auctions_settled_total",
			Help:      "Total number of settled auctions",
		},
		[]string{"auction_type", "outcome"}, // outcome: won, no_winner
	)

	c.auctionBids = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auction_bids_total",
			Help:      "Total number of bids in settled auctions",
		},
		[]string{"auction_type"},
	)

	c.auctionClearing = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "auction_clearing_price",
			Help:      "Clearing price paid by auction winners",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		},
		[]string{"auction_type"},
	)

	c.allocationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resource_allocations_total",
			Help:      "Total number of resources allocated to auction winners",
		},
		[]string{"resource"},
	)

	// 共识指标
	c.consensusRounds = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consensus_rounds_total",
			Help:      "Total number of evaluated consensus rounds",
		},
		[]string{"outcome"}, // outcome: reached, not_reached
	)

	c.consensusVotes = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "consensus_votes",
			Help:      "Number of votes per consensus round",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 55, 89},
		},
		[]string{"outcome"},
	)

	// 黑板指标
	c.blackboardEntries = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "blackboard_entries",
			Help:      "Number of knowledge entries on a blackboard",
		},
		[]string{"blackboard"},
	)

	c.blackboardSnapshots = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blackboard_snapshots_total",
			Help:      "Total number of blackboard snapshot operations",
		},
		[]string{"store", "operation", "status"},
	)

	// 存储指标
	c.storeHits = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_hits_total",
			Help:      "Total number of store lookups that found a record",
		},
		[]string{"store"},
	)

	c.storeMisses = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_misses_total",
			Help:      "Total number of store lookups that found nothing",
		},
		[]string{"store"},
	)

	// 数据库指标
	c.dbConnectionsOpen = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_connections_open",
			Help:      "Number of open database connections",
		},
		[]string{"database"},
	)

	c.dbConnectionsIdle = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_connections_idle",
			Help:      "Number of idle database connections",
		},
		[]string{"database"},
	)

	c.dbQueryDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"database", "operation"},
	)

	c.logger.Info("metrics collector initialized", zap.String("namespace", namespace))

	return c
}

// =============================================================================
// 💰 拍卖指标记录
// =============================================================================

// ObserveSettlement 记录一次拍卖结算，实现 market.Observer
func (c *Collector) ObserveSettlement(s market.Settlement) {
	kind := string(s.Kind)
	c.auctionBids.WithLabelValues(kind).Add(float64(s.BidCount))
	if !s.Won() {
		c.auctionsSettled.WithLabelValues(kind, "no_winner").Inc()
		return
	}
	c.auctionsSettled.WithLabelValues(kind, "won").Inc()
	c.auctionClearing.WithLabelValues(kind).Observe(s.ClearingPrice)
	c.allocationsTotal.WithLabelValues(s.Resource).Inc()
}

// =============================================================================
// 🐝 共识指标记录
// =============================================================================

// RecordConsensus 记录一轮共识判定
func (c *Collector) RecordConsensus(reached bool, votes int) {
	outcome := "not_reached"
	if reached {
		outcome = "reached"
	}
	c.consensusRounds.WithLabelValues(outcome).Inc()
	c.consensusVotes.WithLabelValues(outcome).Observe(float64(votes))
}

// =============================================================================
// 📋 黑板指标记录
// =============================================================================

// RecordBlackboardSize 记录黑板当前知识条数
func (c *Collector) RecordBlackboardSize(name string, entries int) {
	c.blackboardEntries.WithLabelValues(name).Set(float64(entries))
}

// RecordSnapshot 记录一次快照存取
func (c *Collector) RecordSnapshot(store, operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.blackboardSnapshots.WithLabelValues(store, operation, status).Inc()
}

// RecordStoreHit 记录存储命中
func (c *Collector) RecordStoreHit(store string) {
	c.storeHits.WithLabelValues(store).Inc()
}

// RecordStoreMiss 记录存储未命中
func (c *Collector) RecordStoreMiss(store string) {
	c.storeMisses.WithLabelValues(store).Inc()
}

// =============================================================================
// 🗄️ 数据库指标记录
// =============================================================================

// RecordDBConnections 记录数据库连接数
func (c *Collector) RecordDBConnections(database string, open, idle int) {
	c.dbConnectionsOpen.WithLabelValues(database).Set(float64(open))
	c.dbConnectionsIdle.WithLabelValues(database).Set(float64(idle))
}

// RecordDBQuery 记录数据库查询
func (c *Collector) RecordDBQuery(database, operation string, duration time.Duration) {
	c.dbQueryDuration.WithLabelValues(database, operation).Observe(duration.Seconds())
}
