package persistence

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/BaSui01/agentpatterns/config"
	"github.com/BaSui01/agentpatterns/internal/cache"
	"github.com/BaSui01/agentpatterns/internal/database"
)

// Metrics 存储层上报的全部指标，由 metrics.Collector 实现
type Metrics interface {
	SnapshotMetrics
	RecordDBQuery(database, operation string, duration time.Duration)
	RecordDBConnections(database string, open, idle int)
}

// NewLedgerFromConfig 按 cfg.Store.Ledger 创建结算账本，m 可以为 nil
func NewLedgerFromConfig(cfg *config.Config, logger *zap.Logger, m Metrics) (Ledger, error) {
	switch cfg.Store.Ledger {
	case config.StoreMemory, "":
		return NewMemoryLedger(), nil
	case config.StoreGorm:
		driver := cfg.Database.Driver
		var poolOpts []database.PoolOption
		var ledgerOpts []GormLedgerOption
		if m != nil {
			poolOpts = append(poolOpts, database.WithStatsRecorder(func(open, idle int) {
				m.RecordDBConnections(driver, open, idle)
			}))
			ledgerOpts = append(ledgerOpts, WithQueryRecorder(func(op string, d time.Duration) {
				m.RecordDBQuery(driver, op, d)
			}))
		}

		pool, err := database.Open(cfg.Database, logger, poolOpts...)
		if err != nil {
			return nil, err
		}
		ledger, err := NewGormLedger(pool, logger, ledgerOpts...)
		if err != nil {
			_ = pool.Close()
			return nil, err
		}
		return ledger, nil
	default:
		return nil, fmt.Errorf("unsupported ledger store type: %s", cfg.Store.Ledger)
	}
}

// NewBlackboardStoreFromConfig 按 cfg.Store.Blackboard 创建快照存储，m 可以为 nil
func NewBlackboardStoreFromConfig(cfg *config.Config, logger *zap.Logger, m Metrics) (BlackboardStore, error) {
	var (
		store BlackboardStore
		name  = cfg.Store.Blackboard
	)
	switch name {
	case config.StoreMemory, "":
		name = config.StoreMemory
		store = NewMemoryBlackboardStore()
	case config.StoreRedis:
		manager, err := cache.NewManager(cfg.Redis, logger)
		if err != nil {
			return nil, err
		}
		store = NewRedisBlackboardStore(manager, cfg.Store.KeyPrefix, cfg.Store.SnapshotTTL, logger)
	default:
		return nil, fmt.Errorf("unsupported blackboard store type: %s", cfg.Store.Blackboard)
	}

	if m == nil {
		return store, nil
	}
	return Instrument(store, name, m), nil
}
