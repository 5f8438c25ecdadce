package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BaSui01/agentpatterns/market"
	"github.com/BaSui01/agentpatterns/types"
)

// ErrStoreClosed 存储已关闭
var ErrStoreClosed = errors.New("store is closed")

// SettlementRecord 账本中的一条结算记录
type SettlementRecord struct {
	ID            string             `json:"id"`
	Resource      string             `json:"resource"`
	Kind          market.AuctionType `json:"kind"`
	Winner        types.AgentID      `json:"winner,omitempty"`
	WinningBid    float64            `json:"winning_bid"`
	ClearingPrice float64            `json:"clearing_price"`
	BidCount      int                `json:"bid_count"`
	SettledAt     time.Time          `json:"settled_at"`
}

// Won 判断该结算是否产生了赢家
func (r SettlementRecord) Won() bool { return !r.Winner.IsZero() }

// newRecord 把结算结果转换为带唯一 ID 的记录
func newRecord(s market.Settlement) SettlementRecord {
	rec := SettlementRecord{
		ID:            uuid.New().String(),
		Resource:      s.Resource,
		Kind:          s.Kind,
		ClearingPrice: s.ClearingPrice,
		BidCount:      s.BidCount,
		SettledAt:     s.SettledAt,
	}
	if s.Winner != nil {
		rec.Winner = s.Winner.Bidder()
		rec.WinningBid = s.Winner.Amount()
	}
	return rec
}

// Ledger 可查询的结算账本
type Ledger interface {
	market.Ledger

	// Settlements 按记录顺序返回某资源的结算，resource 为空时返回全部
	Settlements(ctx context.Context, resource string) ([]SettlementRecord, error)

	// AllocationsOf 按记录顺序返回智能体赢得的资源
	AllocationsOf(ctx context.Context, agent types.AgentID) ([]string, error)

	Close() error
}
