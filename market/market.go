package market

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/BaSui01/agentpatterns/types"
)

const tracerName = "github.com/BaSui01/agentpatterns/market"

// Settlement 是一次拍卖结算的结果
type Settlement struct {
	Resource      string      `json:"resource"`
	Kind          AuctionType `json:"kind"`
	Winner        *Bid        `json:"winner,omitempty"`
	ClearingPrice float64     `json:"clearing_price"`
	BidCount      int         `json:"bid_count"`
	SettledAt     time.Time   `json:"settled_at"`
}

// Won 判断本次结算是否产生了赢家
func (s Settlement) Won() bool { return s.Winner != nil }

// Ledger 持久化结算记录
type Ledger interface {
	RecordSettlement(ctx context.Context, s Settlement) error
}

// Observer 观察结算事件，通常用于指标采集
type Observer interface {
	ObserveSettlement(s Settlement)
}

// Market 市场协调机制：管理拍卖、结算并维护资源分配。
type Market struct {
	name       string
	auctions   []*Auction
	settled    map[*Auction]struct{}
	allocation *Allocation
	ledger     Ledger
	observer   Observer
	tracer     trace.Tracer
	logger     *zap.Logger
	now        func() time.Time
}

// Option 配置市场
type Option func(*Market)

// WithLedger 设置结算账本
func WithLedger(l Ledger) Option {
	return func(m *Market) { m.ledger = l }
}

// WithObserver 设置结算观察者
func WithObserver(o Observer) Option {
	return func(m *Market) { m.observer = o }
}

// WithLogger 设置日志记录器
func WithLogger(logger *zap.Logger) Option {
	return func(m *Market) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithTracer 设置 tracer，默认使用全局 TracerProvider
func WithTracer(t trace.Tracer) Option {
	return func(m *Market) {
		if t != nil {
			m.tracer = t
		}
	}
}

// NewMarket 创建市场
func NewMarket(name string, opts ...Option) *Market {
	m := &Market{
		name:       name,
		auctions:   make([]*Auction, 0),
		settled:    make(map[*Auction]struct{}),
		allocation: NewAllocation(),
		logger:     zap.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.tracer == nil {
		m.tracer = otel.Tracer(tracerName)
	}
	m.logger = m.logger.With(zap.String("component", "market"), zap.String("market", name))
	return m
}

// AddAuction 添加拍卖
func (m *Market) AddAuction(a *Auction) {
	m.auctions = append(m.auctions, a)
}

// Name 返回市场名称
func (m *Market) Name() string { return m.name }

// Auctions 返回拍卖列表的副本
func (m *Market) Auctions() []*Auction {
	out := make([]*Auction, len(m.auctions))
	copy(out, m.auctions)
	return out
}

// Allocation 返回资源分配表
func (m *Market) Allocation() *Allocation { return m.allocation }

// Settle 结算拍卖：选出赢家、写入账本，账本写入成功后再分配资源并通知观察者。
// 没有赢家的拍卖同样会记录结算结果。账本写入失败时不产生任何副作用，拍卖可以重新结算；
// 已成功结算的拍卖再次结算返回 ErrDuplicate。
func (m *Market) Settle(ctx context.Context, a *Auction) (Settlement, error) {
	ctx, span := m.tracer.Start(ctx, "market.settle", trace.WithAttributes(
		attribute.String("market.name", m.name),
		attribute.String("auction.resource", a.Resource()),
		attribute.String("auction.kind", string(a.Kind())),
		attribute.Int("auction.bids", a.Len()),
	))
	defer span.End()

	if m.IsSettled(a) {
		err := types.Errorf(types.ErrCodeDuplicate, "auction for %s already settled", a.Resource())
		span.RecordError(err)
		span.SetStatus(codes.Error, "already settled")
		return Settlement{}, err
	}

	s := Settlement{
		Resource:  a.Resource(),
		Kind:      a.Kind(),
		BidCount:  a.Len(),
		SettledAt: m.now(),
	}
	if winner, ok := a.Winner(); ok {
		price, _ := a.ClearingPrice()
		s.Winner = &winner
		s.ClearingPrice = price
		span.SetAttributes(
			attribute.String("auction.winner", winner.Bidder().String()),
			attribute.Float64("auction.clearing_price", price),
		)
	}

	if m.ledger != nil {
		if err := m.ledger.RecordSettlement(ctx, s); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "record settlement failed")
			m.logger.Error("record settlement failed", zap.String("resource", s.Resource), zap.Error(err))
			return s, fmt.Errorf("record settlement for %s: %w", s.Resource, err)
		}
	}

	m.settled[a] = struct{}{}
	if s.Won() {
		m.allocation.Allocate(s.Winner.Bidder(), s.Resource)
	}
	if m.observer != nil {
		m.observer.ObserveSettlement(s)
	}

	if s.Won() {
		m.logger.Info("auction settled",
			zap.String("resource", s.Resource),
			zap.String("winner", s.Winner.Bidder().String()),
			zap.Float64("clearing_price", s.ClearingPrice),
			zap.Int("bids", s.BidCount))
	} else {
		m.logger.Info("auction closed without winner",
			zap.String("resource", s.Resource),
			zap.Int("bids", s.BidCount))
	}
	return s, nil
}

// IsSettled 判断拍卖是否已在本市场成功结算
func (m *Market) IsSettled(a *Auction) bool {
	_, ok := m.settled[a]
	return ok
}

// SettleAll 按添加顺序结算所有尚未结算的拍卖，遇到第一个错误即停止。
// 出错后再次调用会从失败的拍卖继续。
func (m *Market) SettleAll(ctx context.Context) ([]Settlement, error) {
	out := make([]Settlement, 0, len(m.auctions))
	for _, a := range m.auctions {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if m.IsSettled(a) {
			continue
		}
		s, err := m.Settle(ctx, a)
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, nil
}
