package hierarchy

import (
	"sort"

	"go.uber.org/zap"

	"github.com/BaSui01/agentpatterns/types"
)

// Hierarchy 层级化组织：层级、成员归属与委派记录，零值可直接使用。
type Hierarchy struct {
	name        string
	levels      map[string]Level
	assignments map[types.AgentID]string
	delegations []Delegation
	logger      *zap.Logger
}

// Option 配置 Hierarchy
type Option func(*Hierarchy)

// WithLogger 设置日志记录器
func WithLogger(logger *zap.Logger) Option {
	return func(h *Hierarchy) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// New 创建空的层级组织
func New(name string, opts ...Option) *Hierarchy {
	h := &Hierarchy{
		name:        name,
		levels:      make(map[string]Level),
		assignments: make(map[types.AgentID]string),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With(zap.String("component", "hierarchy"), zap.String("hierarchy", name))
	return h
}

func (h *Hierarchy) Name() string { return h.name }

// AddLevel 添加层级，名称重复返回 ErrDuplicate
func (h *Hierarchy) AddLevel(level Level) error {
	if _, ok := h.levels[level.Name]; ok {
		return types.Errorf(types.ErrCodeDuplicate, "level %q already exists", level.Name)
	}
	if h.levels == nil {
		h.levels = make(map[string]Level)
	}
	h.levels[level.Name] = level
	return nil
}

// Level 按名称查找层级
func (h *Hierarchy) Level(name string) (Level, bool) {
	l, ok := h.levels[name]
	return l, ok
}

// Levels 按 Rank 从高到低返回所有层级，Rank 相同按名称排序
func (h *Hierarchy) Levels() []Level {
	out := make([]Level, 0, len(h.levels))
	for _, l := range h.levels {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank > out[j].Rank
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// AssignAgent 将智能体放入层级，重复调用会覆盖原归属
func (h *Hierarchy) AssignAgent(id types.AgentID, levelName string) error {
	if _, ok := h.levels[levelName]; !ok {
		return types.Errorf(types.ErrCodeNotFound, "level %q not found", levelName)
	}
	if h.assignments == nil {
		h.assignments = make(map[types.AgentID]string)
	}
	h.assignments[id] = levelName
	return nil
}

// LevelOf 返回智能体所在层级
func (h *Hierarchy) LevelOf(id types.AgentID) (Level, bool) {
	name, ok := h.assignments[id]
	if !ok {
		return Level{}, false
	}
	return h.levels[name], true
}

// AgentsAt 返回某层级的全部智能体（排序后）
func (h *Hierarchy) AgentsAt(levelName string) []types.AgentID {
	out := make([]types.AgentID, 0)
	for id, name := range h.assignments {
		if name == levelName {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Delegate 由上级向下级委派任务。
// 双方都必须已分配层级，且委派方层级严格高于被委派方。
func (h *Hierarchy) Delegate(from, to types.AgentID, task string, authority uint32) error {
	fromLevel, ok := h.LevelOf(from)
	if !ok {
		return types.Errorf(types.ErrCodeInvalidDelegation, "delegator %s has no level", from)
	}
	toLevel, ok := h.LevelOf(to)
	if !ok {
		return types.Errorf(types.ErrCodeInvalidDelegation, "delegate %s has no level", to)
	}
	if !fromLevel.IsAbove(toLevel) {
		return types.Errorf(types.ErrCodeInvalidDelegation,
			"%s (%s) is not above %s (%s)", from, fromLevel.Name, to, toLevel.Name)
	}

	h.delegations = append(h.delegations, Delegation{
		From:           from,
		To:             to,
		Task:           task,
		AuthorityLevel: authority,
	})
	h.log().Debug("task delegated",
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.String("task", task))
	return nil
}

// Delegations 返回全部委派记录副本
func (h *Hierarchy) Delegations() []Delegation {
	return append([]Delegation(nil), h.delegations...)
}

// DelegationsFrom 返回某智能体发出的委派
func (h *Hierarchy) DelegationsFrom(id types.AgentID) []Delegation {
	return h.filter(func(d Delegation) bool { return d.From == id })
}

// DelegationsTo 返回某智能体收到的委派
func (h *Hierarchy) DelegationsTo(id types.AgentID) []Delegation {
	return h.filter(func(d Delegation) bool { return d.To == id })
}

func (h *Hierarchy) filter(keep func(Delegation) bool) []Delegation {
	out := make([]Delegation, 0)
	for _, d := range h.delegations {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

func (h *Hierarchy) log() *zap.Logger {
	if h.logger == nil {
		return zap.NewNop()
	}
	return h.logger
}
