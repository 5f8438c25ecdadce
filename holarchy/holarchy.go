package holarchy

import (
	"sort"

	"github.com/BaSui01/agentpatterns/types"
)

// Holarchy is a forest of holons keyed by id.
type Holarchy struct {
	holons map[types.AgentID]*Holon
}

// New returns an empty holarchy.
func New() *Holarchy {
	return &Holarchy{holons: make(map[types.AgentID]*Holon)}
}

// Add registers a detached holon. Parent and children links on h are ignored;
// use Attach to build the structure. The empty id is reserved for "no parent"
// and is rejected with ErrInvalidStructure.
func (hy *Holarchy) Add(h Holon) error {
	if h.ID == "" {
		return types.Errorf(types.ErrCodeInvalidStructure, "holon id must not be empty")
	}
	if _, ok := hy.holons[h.ID]; ok {
		return types.Errorf(types.ErrCodeDuplicate, "holon %s already exists", h.ID)
	}
	h.Parent = ""
	h.Children = nil
	hy.holons[h.ID] = &h
	return nil
}

// Get returns a copy of the holon.
func (hy *Holarchy) Get(id types.AgentID) (Holon, bool) {
	h, ok := hy.holons[id]
	if !ok {
		return Holon{}, false
	}
	out := *h
	out.Children = append([]types.AgentID(nil), h.Children...)
	return out, true
}

// SetAutonomy updates a holon's autonomy level.
func (hy *Holarchy) SetAutonomy(id types.AgentID, level float64) error {
	h, ok := hy.holons[id]
	if !ok {
		return types.Errorf(types.ErrCodeNotFound, "holon %s not found", id)
	}
	h.SetAutonomy(level)
	return nil
}

// Attach makes child a part of parent. A holon has at most one parent and
// the structure must stay acyclic.
func (hy *Holarchy) Attach(parent, child types.AgentID) error {
	p, ok := hy.holons[parent]
	if !ok {
		return types.Errorf(types.ErrCodeNotFound, "holon %s not found", parent)
	}
	c, ok := hy.holons[child]
	if !ok {
		return types.Errorf(types.ErrCodeNotFound, "holon %s not found", child)
	}
	if c.HasParent() {
		return types.Errorf(types.ErrCodeInvalidStructure, "holon %s already belongs to %s", child, c.Parent)
	}
	for cur := parent; cur != ""; cur = hy.holons[cur].Parent {
		if cur == child {
			return types.Errorf(types.ErrCodeInvalidStructure, "attaching %s under %s creates a cycle", child, parent)
		}
	}
	c.Parent = parent
	p.addChild(child)
	return nil
}

// Roots returns the holons without a parent, sorted by id.
func (hy *Holarchy) Roots() []types.AgentID {
	out := make([]types.AgentID, 0)
	for id, h := range hy.holons {
		if !h.HasParent() {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Depth returns the number of ancestors of id; roots have depth 0.
func (hy *Holarchy) Depth(id types.AgentID) (int, bool) {
	h, ok := hy.holons[id]
	if !ok {
		return 0, false
	}
	depth := 0
	for h.HasParent() {
		depth++
		h = hy.holons[h.Parent]
	}
	return depth, true
}

// Descendants returns every holon below id in breadth-first order.
func (hy *Holarchy) Descendants(id types.AgentID) []types.AgentID {
	h, ok := hy.holons[id]
	if !ok {
		return nil
	}
	out := make([]types.AgentID, 0)
	queue := append([]types.AgentID(nil), h.Children...)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		out = append(out, next)
		queue = append(queue, hy.holons[next].Children...)
	}
	return out
}

// Len returns the number of holons.
func (hy *Holarchy) Len() int { return len(hy.holons) }
