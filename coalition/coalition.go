package coalition

import (
	"sort"

	"github.com/BaSui01/agentpatterns/types"
)

// Coalition 是为共同目标临时结成的智能体联盟。
type Coalition struct {
	name     string
	members  map[types.AgentID]struct{}
	strategy *Strategy
	value    float64
}

// New 创建空联盟，初始价值为 0。
func New(name string) *Coalition {
	return &Coalition{
		name:    name,
		members: make(map[types.AgentID]struct{}),
	}
}

// AddMember 加入成员，已是成员时返回 false。
func (c *Coalition) AddMember(id types.AgentID) bool {
	if _, ok := c.members[id]; ok {
		return false
	}
	c.members[id] = struct{}{}
	return true
}

// RemoveMember 移除成员，不是成员时返回 false。
func (c *Coalition) RemoveMember(id types.AgentID) bool {
	if _, ok := c.members[id]; !ok {
		return false
	}
	delete(c.members, id)
	return true
}

// HasMember 判断是否为成员。
func (c *Coalition) HasMember(id types.AgentID) bool {
	_, ok := c.members[id]
	return ok
}

// Members 返回按 ID 排序的成员列表。
func (c *Coalition) Members() []types.AgentID {
	out := make([]types.AgentID, 0, len(c.members))
	for id := range c.members {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (c *Coalition) Name() string { return c.name }
func (c *Coalition) Size() int    { return len(c.members) }

// SetStrategy 设置联盟策略。
func (c *Coalition) SetStrategy(s Strategy) { c.strategy = &s }

// Strategy 返回联盟策略。
func (c *Coalition) Strategy() (Strategy, bool) {
	if c.strategy == nil {
		return Strategy{}, false
	}
	return *c.strategy, true
}

func (c *Coalition) SetValue(v float64) { c.value = v }
func (c *Coalition) Value() float64     { return c.value }
