package team

import (
	"sort"

	"github.com/BaSui01/agentpatterns/types"
)

// Team 以角色分工组织的智能体团队。
type Team struct {
	name         string
	roles        map[types.AgentID]Role
	coordination Coordination
}

// New 创建空团队。
func New(name string) *Team {
	return &Team{
		name:  name,
		roles: make(map[types.AgentID]Role),
	}
}

func (t *Team) Name() string { return t.name }

// AssignRole 为智能体分配角色，同时将其登记为成员。重复分配会覆盖角色。
func (t *Team) AssignRole(id types.AgentID, role Role) {
	t.roles[id] = role
	t.coordination.AddMember(id)
}

// GetRole 返回成员的角色。
func (t *Team) GetRole(id types.AgentID) (Role, bool) {
	r, ok := t.roles[id]
	return r, ok
}

// SetLeader 指定领导者，领导者必须已是成员。
func (t *Team) SetLeader(id types.AgentID) error {
	if _, ok := t.roles[id]; !ok {
		return types.Errorf(types.ErrCodeNotMember, "agent %s is not a member of team %s", id, t.name)
	}
	t.coordination.SetLeader(id)
	return nil
}

// Leader 返回领导者。
func (t *Team) Leader() (types.AgentID, bool) { return t.coordination.Leader() }

// Coordination 返回协调信息副本。
func (t *Team) Coordination() Coordination {
	return Coordination{leader: t.coordination.leader, members: t.coordination.Members()}
}

// Members 返回排序后的成员列表。
func (t *Team) Members() []types.AgentID {
	out := make([]types.AgentID, 0, len(t.roles))
	for id := range t.roles {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MembersWithRole 返回担任某类角色的成员（排序后）。
func (t *Team) MembersWithRole(rt RoleType) []types.AgentID {
	out := make([]types.AgentID, 0)
	for _, id := range t.Members() {
		if t.roles[id].Type == rt {
			out = append(out, id)
		}
	}
	return out
}

func (t *Team) Size() int { return len(t.roles) }
