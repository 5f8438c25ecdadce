package swarm

import (
	"github.com/BaSui01/agentpatterns/types"
)

// Swarm is a named group of agents sharing an optional collective behavior.
// The zero value is an unnamed, empty swarm ready for use.
type Swarm struct {
	name     string
	members  []types.AgentID
	index    map[types.AgentID]struct{}
	behavior *Behavior
}

// New creates an empty swarm.
func New(name string) *Swarm {
	return &Swarm{
		name:    name,
		members: make([]types.AgentID, 0),
		index:   make(map[types.AgentID]struct{}),
	}
}

// AddMember enrolls an agent. It returns false if the agent was already a member.
func (s *Swarm) AddMember(id types.AgentID) bool {
	if _, ok := s.index[id]; ok {
		return false
	}
	if s.index == nil {
		s.index = make(map[types.AgentID]struct{})
	}
	s.index[id] = struct{}{}
	s.members = append(s.members, id)
	return true
}

// RemoveMember removes an agent, keeping the join order of the rest.
func (s *Swarm) RemoveMember(id types.AgentID) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	delete(s.index, id)
	for i, m := range s.members {
		if m == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			break
		}
	}
	return true
}

// HasMember reports whether id belongs to the swarm.
func (s *Swarm) HasMember(id types.AgentID) bool {
	_, ok := s.index[id]
	return ok
}

// SetBehavior replaces the swarm behavior.
func (s *Swarm) SetBehavior(b Behavior) {
	s.behavior = &b
}

// Behavior returns the configured behavior, if any.
func (s *Swarm) Behavior() (Behavior, bool) {
	if s.behavior == nil {
		return Behavior{}, false
	}
	return *s.behavior, true
}

// Name returns the swarm name.
func (s *Swarm) Name() string { return s.name }

// Members returns the members in join order.
func (s *Swarm) Members() []types.AgentID {
	out := make([]types.AgentID, len(s.members))
	copy(out, s.members)
	return out
}

// Size returns the number of members.
func (s *Swarm) Size() int { return len(s.members) }

// Poll asks every member for a choice and returns the resulting tally.
// An empty choice counts as an abstention.
func (s *Swarm) Poll(threshold float64, ballot func(types.AgentID) string, opts ...ConsensusOption) *Consensus {
	c := NewConsensus(threshold, opts...)
	for _, m := range s.members {
		if choice := ballot(m); choice != "" {
			c.Vote(m, choice)
		}
	}
	return c
}
