package market

import (
	"sort"

	"github.com/BaSui01/agentpatterns/types"
)

// Allocation 记录每个智能体获得的资源，零值可直接使用。
type Allocation struct {
	resources map[types.AgentID][]string
}

// NewAllocation 创建资源分配表
func NewAllocation() *Allocation {
	return &Allocation{resources: make(map[types.AgentID][]string)}
}

// Allocate 将资源分配给智能体，按分配顺序追加
func (a *Allocation) Allocate(agent types.AgentID, resource string) {
	if a.resources == nil {
		a.resources = make(map[types.AgentID][]string)
	}
	a.resources[agent] = append(a.resources[agent], resource)
}

// Get 返回智能体持有的资源副本
func (a *Allocation) Get(agent types.AgentID) ([]string, bool) {
	held, ok := a.resources[agent]
	if !ok {
		return nil, false
	}
	out := make([]string, len(held))
	copy(out, held)
	return out, true
}

// All 返回完整分配表的深拷贝
func (a *Allocation) All() map[types.AgentID][]string {
	out := make(map[types.AgentID][]string, len(a.resources))
	for agent, held := range a.resources {
		cp := make([]string, len(held))
		copy(cp, held)
		out[agent] = cp
	}
	return out
}

// Holders 返回持有资源的智能体，按标识排序
func (a *Allocation) Holders() []types.AgentID {
	out := make([]types.AgentID, 0, len(a.resources))
	for agent := range a.resources {
		out = append(out, agent)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len 返回持有资源的智能体数量
func (a *Allocation) Len() int { return len(a.resources) }
