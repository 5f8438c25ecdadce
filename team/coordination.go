package team

import "github.com/BaSui01/agentpatterns/types"

// Coordination 记录团队领导者与按加入顺序排列的成员。
type Coordination struct {
	leader  types.AgentID
	members []types.AgentID
}

// SetLeader 设置领导者。
func (c *Coordination) SetLeader(id types.AgentID) { c.leader = id }

// Leader 返回领导者，未设置时 ok 为 false。
func (c *Coordination) Leader() (types.AgentID, bool) {
	return c.leader, c.leader != ""
}

// AddMember 追加成员，已存在时忽略。
func (c *Coordination) AddMember(id types.AgentID) {
	for _, m := range c.members {
		if m == id {
			return
		}
	}
	c.members = append(c.members, id)
}

// Members 返回成员副本。
func (c *Coordination) Members() []types.AgentID {
	return append([]types.AgentID(nil), c.members...)
}
