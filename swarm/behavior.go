package swarm

import "fmt"

// BehaviorType names a collective swarm behavior.
type BehaviorType string

const (
	BehaviorFlocking    BehaviorType = "flocking"
	BehaviorForaging    BehaviorType = "foraging"
	BehaviorExploration BehaviorType = "exploration"
	BehaviorAggregation BehaviorType = "aggregation"
)

// ParseBehaviorType validates s as a behavior type.
func ParseBehaviorType(s string) (BehaviorType, error) {
	switch t := BehaviorType(s); t {
	case BehaviorFlocking, BehaviorForaging, BehaviorExploration, BehaviorAggregation:
		return t, nil
	}
	return "", fmt.Errorf("unknown behavior type %q", s)
}

// Parameter is a named numeric tuning knob.
type Parameter struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Behavior is a behavior type with ordered parameters.
type Behavior struct {
	Type       BehaviorType `json:"type" yaml:"type"`
	Parameters []Parameter  `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// NewBehavior creates a behavior without parameters.
func NewBehavior(t BehaviorType) Behavior {
	return Behavior{Type: t}
}

// WithParameter returns a copy of b with the parameter appended.
func (b Behavior) WithParameter(name string, value float64) Behavior {
	params := make([]Parameter, len(b.Parameters), len(b.Parameters)+1)
	copy(params, b.Parameters)
	b.Parameters = append(params, Parameter{Name: name, Value: value})
	return b
}

// Parameter returns the last value recorded under name.
func (b Behavior) Parameter(name string) (float64, bool) {
	for i := len(b.Parameters) - 1; i >= 0; i-- {
		if b.Parameters[i].Name == name {
			return b.Parameters[i].Value, true
		}
	}
	return 0, false
}
