// =============================================================================
// 📦 测试数据工厂 - 市场与黑板
// =============================================================================
// 提供预定义的出价、拍卖、结算与黑板，用于测试
// =============================================================================
package fixtures

import (
	"fmt"
	"time"

	"github.com/BaSui01/agentpatterns/blackboard"
	"github.com/BaSui01/agentpatterns/market"
	"github.com/BaSui01/agentpatterns/types"
)

// SettledAt 固定的结算时间，便于比较
var SettledAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// AgentIDs 返回 agent-0 … agent-(n-1)
func AgentIDs(n int) []types.AgentID {
	out := make([]types.AgentID, n)
	for i := range out {
		out[i] = types.AgentID(fmt.Sprintf("agent-%d", i))
	}
	return out
}

// =============================================================================
// 💰 市场
// =============================================================================

// Auction 创建拍卖并按给定顺序提交金额，出价者依次为 agent-0、agent-1 …
func Auction(kind market.AuctionType, resource string, reserve float64, amounts ...float64) *market.Auction {
	a := market.NewAuction(kind, resource, market.WithReservePrice(reserve))
	for i, id := range AgentIDs(len(amounts)) {
		if err := a.AddBid(market.NewBid(id, amounts[i], resource)); err != nil {
			panic(err)
		}
	}
	return a
}

// WonSettlement 返回一个有赢家的第二价格结算
func WonSettlement(resource string, winner types.AgentID, amount, price float64) market.Settlement {
	bid := market.NewBid(winner, amount, resource)
	return market.Settlement{
		Resource:      resource,
		Kind:          market.AuctionVickrey,
		Winner:        &bid,
		ClearingPrice: price,
		BidCount:      2,
		SettledAt:     SettledAt,
	}
}

// LostSettlement 返回一个没有赢家的结算
func LostSettlement(resource string) market.Settlement {
	return market.Settlement{
		Resource:  resource,
		Kind:      market.AuctionEnglish,
		BidCount:  1,
		SettledAt: SettledAt,
	}
}

// =============================================================================
// 📋 黑板
// =============================================================================

// MissionBoard 返回一块带两条知识和两个知识源的黑板
func MissionBoard() *blackboard.Blackboard {
	b := blackboard.New("mission")
	b.Write("goal", "map the cave")
	b.Write("hazard", "water")
	b.AddSource(blackboard.KnowledgeSource{Agent: "scout", Type: blackboard.SourceSensor, Priority: 5})
	b.AddSource(blackboard.KnowledgeSource{Agent: "planner", Type: blackboard.SourcePlanning, Priority: 9})
	return b
}
