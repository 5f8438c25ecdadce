package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/agentpatterns/types"
)

func TestAllocation_AllocateAndGet(t *testing.T) {
	t.Parallel()

	alloc := NewAllocation()
	agent := types.NewAgentID()

	alloc.Allocate(agent, "cpu_1")
	alloc.Allocate(agent, "memory_2gb")

	resources, ok := alloc.Get(agent)
	require.True(t, ok)
	assert.Equal(t, []string{"cpu_1", "memory_2gb"}, resources)

	_, ok = alloc.Get(types.NewAgentID())
	assert.False(t, ok)
}

func TestAllocation_ZeroValueUsable(t *testing.T) {
	t.Parallel()

	var alloc Allocation
	alloc.Allocate("a", "x")
	assert.Equal(t, 1, alloc.Len())
}

func TestAllocation_CopiesAreIndependent(t *testing.T) {
	t.Parallel()

	alloc := NewAllocation()
	alloc.Allocate("a", "x")

	got, _ := alloc.Get("a")
	got[0] = "mutated"
	all := alloc.All()
	all["a"][0] = "mutated"
	all["b"] = []string{"y"}

	again, _ := alloc.Get("a")
	assert.Equal(t, []string{"x"}, again)
	assert.Equal(t, 1, alloc.Len())
}

func TestAllocation_HoldersSorted(t *testing.T) {
	t.Parallel()

	alloc := NewAllocation()
	alloc.Allocate("c", "r1")
	alloc.Allocate("a", "r2")
	alloc.Allocate("b", "r3")

	assert.Equal(t, []types.AgentID{"a", "b", "c"}, alloc.Holders())
}
