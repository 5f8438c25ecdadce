package holarchy

import (
	"math"

	"github.com/BaSui01/agentpatterns/types"
)

// HolonType distinguishes leaf holons from holons that contain others.
type HolonType string

const (
	HolonAtomic    HolonType = "atomic"
	HolonComposite HolonType = "composite"
)

// Holon is simultaneously a whole and a part of a larger whole.
type Holon struct {
	ID       types.AgentID   `json:"id"`
	Type     HolonType       `json:"type"`
	Parent   types.AgentID   `json:"parent,omitempty"`
	Children []types.AgentID `json:"children,omitempty"`
	Autonomy float64         `json:"autonomy"`
}

// NewAtomic returns a leaf holon with full autonomy.
func NewAtomic(id types.AgentID) Holon {
	return Holon{ID: id, Type: HolonAtomic, Autonomy: 1.0}
}

// NewComposite returns a composite holon with autonomy 0.8.
func NewComposite(id types.AgentID) Holon {
	return Holon{ID: id, Type: HolonComposite, Autonomy: 0.8}
}

// SetAutonomy clamps level to [0, 1]. NaN leaves the value unchanged.
func (h *Holon) SetAutonomy(level float64) {
	if math.IsNaN(level) {
		return
	}
	h.Autonomy = math.Min(math.Max(level, 0), 1)
}

// IsLeaf reports whether the holon has no children.
func (h Holon) IsLeaf() bool { return len(h.Children) == 0 }

// HasParent reports whether the holon is attached below another holon.
func (h Holon) HasParent() bool { return h.Parent != "" }

func (h *Holon) addChild(id types.AgentID) {
	h.Children = append(h.Children, id)
	if h.Type == HolonAtomic {
		h.Type = HolonComposite
	}
}
