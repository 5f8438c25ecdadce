package market

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/BaSui01/agentpatterns/types"
)

// AuctionType 拍卖机制类型。仅作记录，不影响赢家选择。
type AuctionType string

const (
	AuctionEnglish   AuctionType = "english"    // 英式拍卖（价格递增）
	AuctionDutch     AuctionType = "dutch"      // 荷式拍卖（价格递减）
	AuctionSealedBid AuctionType = "sealed_bid" // 密封出价
	AuctionVickrey   AuctionType = "vickrey"    // 维克里拍卖（第二价格密封出价）
)

// Valid 判断拍卖类型是否合法
func (t AuctionType) Valid() bool {
	switch t {
	case AuctionEnglish, AuctionDutch, AuctionSealedBid, AuctionVickrey:
		return true
	}
	return false
}

// ParseAuctionType 解析拍卖类型字符串
func ParseAuctionType(s string) (AuctionType, error) {
	t := AuctionType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown auction type %q", s)
	}
	return t, nil
}

// Auction 针对单一资源收集出价并选出赢家。
//
// 出价按插入顺序保存，同一出价者可多次出价，后出价不会覆盖先出价。
type Auction struct {
	kind       AuctionType
	resource   string
	bids       []Bid
	reserve    float64
	hasReserve bool
	logger     *zap.Logger
}

// AuctionOption 配置拍卖
type AuctionOption func(*Auction)

// WithReservePrice 设置保留价。NaN 视为未设置。
func WithReservePrice(price float64) AuctionOption {
	return func(a *Auction) {
		if math.IsNaN(price) {
			return
		}
		a.reserve = price
		a.hasReserve = true
	}
}

// WithAuctionLogger 设置日志记录器
func WithAuctionLogger(logger *zap.Logger) AuctionOption {
	return func(a *Auction) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAuction 创建拍卖
func NewAuction(kind AuctionType, resource string, opts ...AuctionOption) *Auction {
	a := &Auction{
		kind:     kind,
		resource: resource,
		bids:     make([]Bid, 0),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With(zap.String("component", "auction"), zap.String("resource", resource))
	return a
}

// AddBid 追加出价。
// 金额为 NaN 的出价返回 ErrInvalidBid，资源名与拍卖不一致的出价返回 ErrResourceMismatch，
// 两种情况下出价都不会被记录。
func (a *Auction) AddBid(bid Bid) error {
	if math.IsNaN(bid.amount) {
		a.logger.Debug("rejected bid with NaN amount", zap.String("bidder", bid.bidder.String()))
		return types.Errorf(types.ErrCodeInvalidBid, "bid from %s has NaN amount", bid.bidder)
	}
	if bid.resource != a.resource {
		a.logger.Debug("rejected bid for another resource",
			zap.String("bidder", bid.bidder.String()),
			zap.String("bid_resource", bid.resource))
		return types.Errorf(types.ErrCodeResourceMismatch,
			"bid from %s targets %q, auction sells %q", bid.bidder, bid.resource, a.resource)
	}
	a.bids = append(a.bids, bid)
	return nil
}

// Winner 返回最高出价。
// 没有出价时返回 false；设置了保留价且最高金额低于保留价时同样返回 false。
// 金额相同的最高出价中取最先插入的一个。
func (a *Auction) Winner() (Bid, bool) {
	first, _ := a.topTwo()
	if first < 0 {
		return Bid{}, false
	}
	best := a.bids[first]
	if a.hasReserve && best.amount < a.reserve {
		return Bid{}, false
	}
	return best, true
}

// RunnerUp 返回排名第二的出价，不考虑保留价。
func (a *Auction) RunnerUp() (Bid, bool) {
	_, second := a.topTwo()
	if second < 0 {
		return Bid{}, false
	}
	return a.bids[second], true
}

// ClearingPrice 返回赢家需要支付的价格，没有赢家时返回 false。
//
// 维克里拍卖按第二高价成交（不低于保留价；只有一个出价时取保留价，没有保留价则取赢家出价），
// 其它类型按赢家出价成交。
func (a *Auction) ClearingPrice() (float64, bool) {
	winner, ok := a.Winner()
	if !ok {
		return 0, false
	}
	price := winner.amount
	if a.kind == AuctionVickrey {
		if second, ok := a.RunnerUp(); ok {
			price = second.amount
		} else if a.hasReserve {
			price = a.reserve
		}
		if a.hasReserve && a.reserve > price {
			price = a.reserve
		}
	}
	return price, true
}

// topTwo 单次扫描返回第一、第二名的下标，不存在时为 -1
func (a *Auction) topTwo() (first, second int) {
	first, second = -1, -1
	for i, b := range a.bids {
		switch {
		case first < 0 || b.amount > a.bids[first].amount:
			second = first
			first = i
		case second < 0 || b.amount > a.bids[second].amount:
			second = i
		}
	}
	return first, second
}

// Kind 返回拍卖类型
func (a *Auction) Kind() AuctionType { return a.kind }

// Resource 返回资源名
func (a *Auction) Resource() string { return a.resource }

// ReservePrice 返回保留价
func (a *Auction) ReservePrice() (float64, bool) { return a.reserve, a.hasReserve }

// Bids 返回全部出价的副本
func (a *Auction) Bids() []Bid {
	out := make([]Bid, len(a.bids))
	copy(out, a.bids)
	return out
}

// Len 返回出价数量
func (a *Auction) Len() int { return len(a.bids) }
