package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/BaSui01/agentpatterns/blackboard"
	"github.com/BaSui01/agentpatterns/config"
	"github.com/BaSui01/agentpatterns/internal/metrics"
	"github.com/BaSui01/agentpatterns/market"
	"github.com/BaSui01/agentpatterns/persistence"
	"github.com/BaSui01/agentpatterns/swarm"
	"github.com/BaSui01/agentpatterns/types"
)

// =============================================================================
// 📜 场景定义
// =============================================================================

// Scenario 一次模拟运行的输入
type Scenario struct {
	Markets     []MarketSpec     `yaml:"markets"`
	Ballots     []BallotSpec     `yaml:"ballots"`
	Blackboards []BlackboardSpec `yaml:"blackboards"`
}

// MarketSpec 市场及其拍卖
type MarketSpec struct {
	Name     string        `yaml:"name"`
	Auctions []AuctionSpec `yaml:"auctions"`
}

// AuctionSpec 拍卖；Type 与 Reserve 缺省时取 config.MarketConfig
type AuctionSpec struct {
	Resource string    `yaml:"resource"`
	Type     string    `yaml:"type"`
	Reserve  *float64  `yaml:"reserve"`
	Bids     []BidSpec `yaml:"bids"`
}

// BidSpec 出价；Resource 缺省时为所属拍卖的资源
type BidSpec struct {
	Bidder   string  `yaml:"bidder"`
	Amount   float64 `yaml:"amount"`
	Resource string  `yaml:"resource"`
}

// BallotSpec 一轮共识投票；Threshold 缺省时取 config.SwarmConfig
type BallotSpec struct {
	Name      string            `yaml:"name"`
	Threshold *float64          `yaml:"threshold"`
	Votes     map[string]string `yaml:"votes"`
}

// BlackboardSpec 需要保存的黑板
type BlackboardSpec struct {
	Name      string            `yaml:"name"`
	Knowledge map[string]string `yaml:"knowledge"`
	Sources   []SourceSpec      `yaml:"sources"`
}

// SourceSpec 知识源
type SourceSpec struct {
	Agent    string `yaml:"agent"`
	Type     string `yaml:"type"`
	Priority uint32 `yaml:"priority"`
}

// LoadScenario 从 YAML 文件读取场景
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &sc, nil
}

// =============================================================================
// 🏃 运行
// =============================================================================

// Runner 执行场景所需的依赖
type Runner struct {
	Config    *config.Config
	Logger    *zap.Logger
	Ledger    market.Ledger
	Store     persistence.BlackboardStore
	Collector *metrics.Collector
	Tracer    trace.Tracer
}

// MarketResult 一个市场的结算结果
type MarketResult struct {
	Name         string
	Settlements  []market.Settlement
	RejectedBids int
}

// BallotResult 一轮投票的结果
type BallotResult struct {
	Name      string
	Threshold float64
	Votes     int
	Reached   bool
	Winner    string
}

// Report 场景运行结果
type Report struct {
	Markets     []MarketResult
	Ballots     []BallotResult
	Blackboards []string
}

// Run 依次结算所有市场、统计所有投票并保存所有黑板
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Report, error) {
	if r.Logger == nil {
		r.Logger = zap.NewNop()
	}
	report := &Report{}

	for _, ms := range sc.Markets {
		res, err := r.runMarket(ctx, ms)
		if err != nil {
			return report, err
		}
		report.Markets = append(report.Markets, res)
	}

	for _, bs := range sc.Ballots {
		report.Ballots = append(report.Ballots, r.runBallot(bs))
	}

	for _, bbs := range sc.Blackboards {
		if err := r.saveBlackboard(ctx, bbs); err != nil {
			return report, err
		}
		report.Blackboards = append(report.Blackboards, bbs.Name)
	}
	return report, nil
}

func (r *Runner) runMarket(ctx context.Context, ms MarketSpec) (MarketResult, error) {
	name := ms.Name
	if name == "" {
		name = r.Config.Market.Name
	}
	opts := []market.Option{market.WithLogger(r.Logger), market.WithTracer(r.Tracer)}
	if r.Ledger != nil {
		opts = append(opts, market.WithLedger(r.Ledger))
	}
	if r.Collector != nil {
		opts = append(opts, market.WithObserver(r.Collector))
	}
	m := market.NewMarket(name, opts...)
	res := MarketResult{Name: name}

	for _, as := range ms.Auctions {
		kindName := as.Type
		if kindName == "" {
			kindName = r.Config.Market.DefaultAuctionType
		}
		kind, err := market.ParseAuctionType(kindName)
		if err != nil {
			return res, types.Errorf(types.ErrCodeInvalidConfig, "market %s, auction %s", name, as.Resource).WithCause(err)
		}

		var aopts []market.AuctionOption
		switch {
		case as.Reserve != nil:
			aopts = append(aopts, market.WithReservePrice(*as.Reserve))
		case r.Config.Market.EnforceReserve:
			aopts = append(aopts, market.WithReservePrice(r.Config.Market.ReservePrice))
		}
		aopts = append(aopts, market.WithAuctionLogger(r.Logger))

		a := market.NewAuction(kind, as.Resource, aopts...)
		for _, bs := range as.Bids {
			resource := bs.Resource
			if resource == "" {
				resource = as.Resource
			}
			if err := a.AddBid(market.NewBid(types.AgentID(bs.Bidder), bs.Amount, resource)); err != nil {
				res.RejectedBids++
				r.Logger.Warn("bid rejected",
					zap.String("market", name),
					zap.String("bidder", bs.Bidder),
					zap.Error(err))
			}
		}
		m.AddAuction(a)
	}

	settlements, err := m.SettleAll(ctx)
	res.Settlements = settlements
	return res, err
}

func (r *Runner) runBallot(bs BallotSpec) BallotResult {
	threshold := r.Config.Swarm.Threshold
	if bs.Threshold != nil {
		threshold = *bs.Threshold
	}
	c := swarm.NewConsensus(threshold, swarm.WithConsensusLogger(r.Logger))

	voters := make([]string, 0, len(bs.Votes))
	for voter := range bs.Votes {
		voters = append(voters, voter)
	}
	sort.Strings(voters)
	for _, voter := range voters {
		// 空选项视为弃权
		if choice := bs.Votes[voter]; choice != "" {
			c.Vote(types.AgentID(voter), choice)
		}
	}

	winner, reached := c.Winner()
	if r.Collector != nil {
		r.Collector.RecordConsensus(reached, c.Len())
	}
	r.Logger.Info("ballot counted",
		zap.String("ballot", bs.Name),
		zap.Int("votes", c.Len()),
		zap.Bool("reached", reached),
		zap.String("winner", winner))

	return BallotResult{
		Name:      bs.Name,
		Threshold: c.Threshold(),
		Votes:     c.Len(),
		Reached:   reached,
		Winner:    winner,
	}
}

func (r *Runner) saveBlackboard(ctx context.Context, bbs BlackboardSpec) error {
	b := blackboard.New(bbs.Name)
	for k, v := range bbs.Knowledge {
		b.Write(k, v)
	}
	for _, ss := range bbs.Sources {
		st, err := blackboard.ParseSourceType(ss.Type)
		if err != nil {
			return types.Errorf(types.ErrCodeInvalidConfig, "blackboard %s", bbs.Name).WithCause(err)
		}
		b.AddSource(blackboard.KnowledgeSource{Agent: types.AgentID(ss.Agent), Type: st, Priority: ss.Priority})
	}

	if r.Collector != nil {
		r.Collector.RecordBlackboardSize(b.Name(), b.Size())
	}
	if r.Store == nil {
		return nil
	}
	if err := r.Store.Save(ctx, b.Snapshot()); err != nil {
		return fmt.Errorf("save blackboard %s: %w", bbs.Name, err)
	}
	r.Logger.Info("blackboard saved", zap.String("name", b.Name()), zap.Int("entries", b.Size()))
	return nil
}

// =============================================================================
// 🖨️ 输出
// =============================================================================

// Print 输出人类可读的摘要
func (rep *Report) Print(w io.Writer) {
	for _, m := range rep.Markets {
		fmt.Fprintf(w, "market %s (%d rejected bids)\n", m.Name, m.RejectedBids)
		for _, s := range m.Settlements {
			if s.Won() {
				fmt.Fprintf(w, "  %-16s %-10s winner=%s bid=%g price=%g bids=%d\n",
					s.Resource, s.Kind, s.Winner.Bidder(), s.Winner.Amount(), s.ClearingPrice, s.BidCount)
			} else {
				fmt.Fprintf(w, "  %-16s %-10s no winner bids=%d\n", s.Resource, s.Kind, s.BidCount)
			}
		}
	}
	for _, b := range rep.Ballots {
		if b.Reached {
			fmt.Fprintf(w, "ballot %s: %q reached (threshold %g, %d votes)\n", b.Name, b.Winner, b.Threshold, b.Votes)
		} else {
			fmt.Fprintf(w, "ballot %s: not reached (threshold %g, %d votes)\n", b.Name, b.Threshold, b.Votes)
		}
	}
	for _, name := range rep.Blackboards {
		fmt.Fprintf(w, "blackboard %s saved\n", name)
	}
}
