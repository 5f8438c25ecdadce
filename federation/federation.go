package federation

import (
	"sort"

	"go.uber.org/zap"

	"github.com/BaSui01/agentpatterns/swarm"
	"github.com/BaSui01/agentpatterns/types"
)

// Federation 由自治成员组成、按策略共同决策的联邦，零值可直接使用。
type Federation struct {
	name     string
	members  []types.AgentID
	index    map[types.AgentID]struct{}
	policies map[string]Policy
	logger   *zap.Logger
}

// Option 配置 Federation
type Option func(*Federation)

// WithLogger 设置日志记录器
func WithLogger(logger *zap.Logger) Option {
	return func(f *Federation) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// New 创建联邦
func New(name string, opts ...Option) *Federation {
	f := &Federation{
		name:     name,
		index:    make(map[types.AgentID]struct{}),
		policies: make(map[string]Policy),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With(zap.String("component", "federation"), zap.String("federation", name))
	return f
}

func (f *Federation) Name() string { return f.name }

// Join 加入联邦，已是成员返回 false
func (f *Federation) Join(id types.AgentID) bool {
	if _, ok := f.index[id]; ok {
		return false
	}
	if f.index == nil {
		f.index = make(map[types.AgentID]struct{})
	}
	f.index[id] = struct{}{}
	f.members = append(f.members, id)
	f.log().Debug("member joined", zap.String("agent", id.String()))
	return true
}

// Leave 退出联邦，不是成员返回 false
func (f *Federation) Leave(id types.AgentID) bool {
	if _, ok := f.index[id]; !ok {
		return false
	}
	delete(f.index, id)
	for i, m := range f.members {
		if m == id {
			f.members = append(f.members[:i], f.members[i+1:]...)
			break
		}
	}
	f.log().Debug("member left", zap.String("agent", id.String()))
	return true
}

// IsMember 判断是否为成员
func (f *Federation) IsMember(id types.AgentID) bool {
	_, ok := f.index[id]
	return ok
}

// Members 按加入顺序返回成员
func (f *Federation) Members() []types.AgentID {
	return append([]types.AgentID(nil), f.members...)
}

// AddPolicy 注册策略，同名策略返回 ErrDuplicate
func (f *Federation) AddPolicy(p Policy) error {
	if _, ok := f.policies[p.Name]; ok {
		return types.Errorf(types.ErrCodeDuplicate, "policy %q already exists", p.Name)
	}
	if f.policies == nil {
		f.policies = make(map[string]Policy)
	}
	f.policies[p.Name] = p
	return nil
}

// Policy 按名称查找策略
func (f *Federation) Policy(name string) (Policy, bool) {
	p, ok := f.policies[name]
	return p, ok
}

// Policies 按名称排序返回全部策略
func (f *Federation) Policies() []Policy {
	out := make([]Policy, 0, len(f.policies))
	for _, p := range f.policies {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Decide 按投票策略对成员的选票做出决策。
// 非成员的选票被忽略，空选票视为弃权；策略不存在返回 ErrNotFound，非投票策略返回 ErrInvalidPolicy。
func (f *Federation) Decide(policyName string, votes map[types.AgentID]string) (string, bool, error) {
	p, ok := f.policies[policyName]
	if !ok {
		return "", false, types.Errorf(types.ErrCodeNotFound, "policy %q not found", policyName)
	}
	if p.Type != PolicyVoting {
		return "", false, types.Errorf(types.ErrCodeInvalidPolicy, "policy %q is %s, not voting", policyName, p.Type)
	}

	c := swarm.NewConsensus(p.Threshold(), swarm.WithConsensusLogger(f.logger))
	ignored, abstained := 0, 0
	for id, choice := range votes {
		if !f.IsMember(id) {
			ignored++
			continue
		}
		if choice == "" {
			abstained++
			continue
		}
		c.Vote(id, choice)
	}

	choice, reached := c.Winner()
	f.log().Info("federation decision",
		zap.String("policy", policyName),
		zap.Bool("reached", reached),
		zap.String("choice", choice),
		zap.Int("votes", c.Len()),
		zap.Int("ignored", ignored),
		zap.Int("abstained", abstained))
	return choice, reached, nil
}

func (f *Federation) log() *zap.Logger {
	if f.logger == nil {
		return zap.NewNop()
	}
	return f.logger
}
