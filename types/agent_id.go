package types

import (
	"fmt"

	"github.com/google/uuid"
)

// AgentID identifies an agent participating in a coordination pattern.
type AgentID string

// NewAgentID returns a fresh random agent identifier.
func NewAgentID() AgentID {
	return AgentID(uuid.New().String())
}

// ParseAgentID validates s as a UUID and returns it in canonical form.
func ParseAgentID(s string) (AgentID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parse agent id %q: %w", s, err)
	}
	return AgentID(id.String()), nil
}

// String implements fmt.Stringer.
func (id AgentID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty.
func (id AgentID) IsZero() bool {
	return id == ""
}
