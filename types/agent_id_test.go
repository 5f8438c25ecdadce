package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAgentID_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[AgentID]struct{})
	for i := 0; i < 100; i++ {
		id := NewAgentID()
		require.False(t, id.IsZero())
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestParseAgentID(t *testing.T) {
	t.Parallel()

	id := NewAgentID()
	parsed, err := ParseAgentID(strings.ToUpper(id.String()))
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseAgentID("not-a-uuid")
	assert.Error(t, err)
}

func TestAgentID_IsZero(t *testing.T) {
	t.Parallel()

	var id AgentID
	assert.True(t, id.IsZero())
	assert.Equal(t, "", id.String())
}
