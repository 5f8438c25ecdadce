package hierarchy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/BaSui01/agentpatterns/types"
)

func newCommandChain(t *testing.T) *Hierarchy {
	t.Helper()
	h := New("command", WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, h.AddLevel(NewLevel("board", LevelStrategic, 3)))
	require.NoError(t, h.AddLevel(NewLevel("managers", LevelTactical, 2)))
	require.NoError(t, h.AddLevel(NewLevel("workers", LevelOperational, 1)))
	require.NoError(t, h.AssignAgent("ceo", "board"))
	require.NoError(t, h.AssignAgent("lead", "managers"))
	require.NoError(t, h.AssignAgent("w1", "workers"))
	require.NoError(t, h.AssignAgent("w2", "workers"))
	return h
}

func TestLevel_IsAbove(t *testing.T) {
	high := NewLevel("a", LevelStrategic, 5)
	low := NewLevel("b", LevelOperational, 1)
	assert.True(t, high.IsAbove(low))
	assert.False(t, low.IsAbove(high))
	assert.False(t, high.IsAbove(high))
}

func TestHierarchy_AddLevelDuplicate(t *testing.T) {
	h := New("h")
	require.NoError(t, h.AddLevel(NewLevel("ops", LevelOperational, 1)))

	err := h.AddLevel(NewLevel("ops", LevelTactical, 2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrDuplicate))

	l, ok := h.Level("ops")
	require.True(t, ok)
	assert.Equal(t, LevelOperational, l.Type)
}

func TestHierarchy_LevelsSortedByRank(t *testing.T) {
	h := newCommandChain(t)
	levels := h.Levels()
	require.Len(t, levels, 3)
	assert.Equal(t, "board", levels[0].Name)
	assert.Equal(t, "managers", levels[1].Name)
	assert.Equal(t, "workers", levels[2].Name)
}

func TestHierarchy_AssignUnknownLevel(t *testing.T) {
	h := New("h")
	err := h.AssignAgent("x", "missing")
	assert.Equal(t, types.ErrCodeNotFound, types.GetErrorCode(err))
	_, ok := h.LevelOf("x")
	assert.False(t, ok)
}

func TestHierarchy_AgentsAt(t *testing.T) {
	h := newCommandChain(t)
	assert.Equal(t, []types.AgentID{"w1", "w2"}, h.AgentsAt("workers"))
	assert.Empty(t, h.AgentsAt("nobody"))

	require.NoError(t, h.AssignAgent("w2", "managers"))
	assert.Equal(t, []types.AgentID{"w1"}, h.AgentsAt("workers"))
}

func TestHierarchy_Delegate(t *testing.T) {
	h := newCommandChain(t)

	require.NoError(t, h.Delegate("ceo", "lead", "plan quarter", 3))
	require.NoError(t, h.Delegate("lead", "w1", "ship feature", 2))
	require.NoError(t, h.Delegate("ceo", "w2", "review", 1))

	tests := []struct {
		name     string
		from, to types.AgentID
	}{
		{"upward", "w1", "lead"},
		{"same level", "w1", "w2"},
		{"unassigned delegator", "ghost", "w1"},
		{"unassigned delegate", "ceo", "ghost"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.Delegate(tt.from, tt.to, "task", 1)
			assert.ErrorIs(t, err, types.ErrInvalidDelegation)
		})
	}

	assert.Len(t, h.Delegations(), 3)
	assert.Len(t, h.DelegationsFrom("ceo"), 2)
	to := h.DelegationsTo("w1")
	require.Len(t, to, 1)
	assert.Equal(t, "ship feature", to[0].Task)
	assert.Equal(t, uint32(2), to[0].AuthorityLevel)
	assert.Empty(t, h.DelegationsTo("ceo"))
}

func TestParseLevelType(t *testing.T) {
	lt, err := ParseLevelType("tactical")
	require.NoError(t, err)
	assert.Equal(t, LevelTactical, lt)
	_, err = ParseLevelType("galactic")
	assert.Error(t, err)
}

func TestHierarchy_ZeroValue(t *testing.T) {
	var h Hierarchy
	require.NoError(t, h.AddLevel(NewLevel("board", LevelStrategic, 2)))
	require.NoError(t, h.AddLevel(NewLevel("workers", LevelOperational, 1)))
	require.NoError(t, h.AssignAgent("ceo", "board"))
	require.NoError(t, h.AssignAgent("w1", "workers"))

	require.NoError(t, h.Delegate("ceo", "w1", "ship", 1))
	assert.Len(t, h.DelegationsTo("w1"), 1)
}
