package persistence

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BaSui01/agentpatterns/internal/database"
	"github.com/BaSui01/agentpatterns/market"
	"github.com/BaSui01/agentpatterns/types"
)

// =============================================================================
// 🗄️ GORM 结算账本
// =============================================================================

// settlementModel settlements 表
type settlementModel struct {
	Seq           uint      `gorm:"primaryKey;autoIncrement"`
	ID            string    `gorm:"size:36;uniqueIndex;not null"`
	Resource      string    `gorm:"size:255;index;not null"`
	Kind          string    `gorm:"size:32;not null"`
	Winner        string    `gorm:"size:255"`
	WinningBid    float64   `gorm:"not null;default:0"`
	ClearingPrice float64   `gorm:"not null;default:0"`
	BidCount      int       `gorm:"not null;default:0"`
	SettledAt     time.Time `gorm:"index"`
}

func (settlementModel) TableName() string { return "settlements" }

// allocationModel allocations 表，每个有赢家的结算一行
type allocationModel struct {
	Seq          uint   `gorm:"primaryKey;autoIncrement"`
	SettlementID string `gorm:"size:36;index;not null"`
	Agent        string `gorm:"size:255;index;not null"`
	Resource     string `gorm:"size:255;not null"`
	CreatedAt    time.Time
}

func (allocationModel) TableName() string { return "allocations" }

func (m settlementModel) record() SettlementRecord {
	return SettlementRecord{
		ID:            m.ID,
		Resource:      m.Resource,
		Kind:          market.AuctionType(m.Kind),
		Winner:        types.AgentID(m.Winner),
		WinningBid:    m.WinningBid,
		ClearingPrice: m.ClearingPrice,
		BidCount:      m.BidCount,
		SettledAt:     m.SettledAt,
	}
}

// QueryRecorder 接收每次数据库操作的耗时
type QueryRecorder func(operation string, duration time.Duration)

// GormLedgerOption 配置 GormLedger
type GormLedgerOption func(*GormLedger)

// WithQueryRecorder 设置查询耗时回调
func WithQueryRecorder(r QueryRecorder) GormLedgerOption {
	return func(l *GormLedger) { l.recorder = r }
}

// WithWriteRetries 设置写入事务的最大尝试次数，默认 3
func WithWriteRetries(n int) GormLedgerOption {
	return func(l *GormLedger) { l.retries = n }
}

// GormLedger 基于 GORM 的结算账本
type GormLedger struct {
	pool     *database.PoolManager
	logger   *zap.Logger
	recorder QueryRecorder
	retries  int
}

// NewGormLedger 创建账本并自动迁移表结构
func NewGormLedger(pool *database.PoolManager, logger *zap.Logger, opts ...GormLedgerOption) (*GormLedger, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &GormLedger{
		pool:    pool,
		logger:  logger.With(zap.String("component", "gorm_ledger")),
		retries: 3,
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := pool.DB().AutoMigrate(&settlementModel{}, &allocationModel{}); err != nil {
		return nil, types.Errorf(types.ErrCodeStoreUnavailable, "migrate ledger tables").WithCause(err)
	}
	return l, nil
}

func (l *GormLedger) observe(op string, start time.Time) {
	if l.recorder != nil {
		l.recorder(op, time.Since(start))
	}
}

// RecordSettlement 在一个事务中写入结算及其资源分配
func (l *GormLedger) RecordSettlement(ctx context.Context, s market.Settlement) error {
	defer l.observe("record_settlement", time.Now())

	rec := newRecord(s)
	row := settlementModel{
		ID:            rec.ID,
		Resource:      rec.Resource,
		Kind:          string(rec.Kind),
		Winner:        rec.Winner.String(),
		WinningBid:    rec.WinningBid,
		ClearingPrice: rec.ClearingPrice,
		BidCount:      rec.BidCount,
		SettledAt:     rec.SettledAt,
	}

	err := l.pool.WithTransactionRetry(ctx, l.retries, func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		if !rec.Won() {
			return nil
		}
		return tx.Create(&allocationModel{
			SettlementID: rec.ID,
			Agent:        rec.Winner.String(),
			Resource:     rec.Resource,
		}).Error
	})
	if err != nil {
		l.logger.Error("record settlement failed", zap.String("resource", s.Resource), zap.Error(err))
		return types.Errorf(types.ErrCodeStoreUnavailable, "record settlement for %s", s.Resource).WithCause(err)
	}

	l.logger.Debug("settlement recorded", zap.String("id", rec.ID), zap.String("resource", rec.Resource))
	return nil
}

// Settlements 查询结算记录
func (l *GormLedger) Settlements(ctx context.Context, resource string) ([]SettlementRecord, error) {
	defer l.observe("list_settlements", time.Now())

	q := l.pool.DB().WithContext(ctx).Order("seq")
	if resource != "" {
		q = q.Where("resource = ?", resource)
	}
	var rows []settlementModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, types.Errorf(types.ErrCodeStoreUnavailable, "list settlements").WithCause(err)
	}

	out := make([]SettlementRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.record())
	}
	return out, nil
}

// AllocationsOf 查询智能体赢得的资源
func (l *GormLedger) AllocationsOf(ctx context.Context, agent types.AgentID) ([]string, error) {
	defer l.observe("list_allocations", time.Now())

	out := make([]string, 0)
	err := l.pool.DB().WithContext(ctx).
		Model(&allocationModel{}).
		Where("agent = ?", agent.String()).
		Order("seq").
		Pluck("resource", &out).Error
	if err != nil {
		return nil, types.Errorf(types.ErrCodeStoreUnavailable, "list allocations of %s", agent).WithCause(err)
	}
	return out, nil
}

// Close 关闭底层连接池
func (l *GormLedger) Close() error {
	return l.pool.Close()
}
