package market

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/BaSui01/agentpatterns/types"
)

// Bid 表示某个智能体对资源的一次出价，创建后不可变。
type Bid struct {
	bidder   types.AgentID
	amount   float64
	resource string
}

// NewBid 创建出价
func NewBid(bidder types.AgentID, amount float64, resource string) Bid {
	return Bid{bidder: bidder, amount: amount, resource: resource}
}

// Bidder 返回出价者
func (b Bid) Bidder() types.AgentID { return b.bidder }

// Amount 返回出价金额
func (b Bid) Amount() float64 { return b.amount }

// Resource 返回竞拍的资源名
func (b Bid) Resource() string { return b.resource }

// bidJSON 是 Bid 的序列化形态
type bidJSON struct {
	Bidder   types.AgentID `json:"bidder"`
	Amount   float64       `json:"amount"`
	Resource string        `json:"resource"`
}

// MarshalJSON 实现 json.Marshaler。NaN 与 Inf 无法用 JSON 表达，直接报错。
func (b Bid) MarshalJSON() ([]byte, error) {
	if math.IsNaN(b.amount) || math.IsInf(b.amount, 0) {
		return nil, fmt.Errorf("bid amount %v is not representable in JSON", b.amount)
	}
	return json.Marshal(bidJSON{Bidder: b.bidder, Amount: b.amount, Resource: b.resource})
}

// UnmarshalJSON 实现 json.Unmarshaler
func (b *Bid) UnmarshalJSON(data []byte) error {
	var raw bidJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = Bid{bidder: raw.Bidder, amount: raw.Amount, resource: raw.Resource}
	return nil
}
