package swarm

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/BaSui01/agentpatterns/types"
)

var optionGen = gen.OneConstOf("A", "B", "C", "D")

func buildConsensus(threshold float64, choices []string) *Consensus {
	c := NewConsensus(threshold)
	for i, choice := range choices {
		c.Vote(types.AgentID(fmt.Sprintf("p%d", i)), choice)
	}
	return c
}

func TestProperty_Consensus(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("reached iff leading share meets threshold", prop.ForAll(
		func(threshold float64, choices []string) bool {
			c := buildConsensus(threshold, choices)
			if len(choices) == 0 {
				return !c.IsReached()
			}
			max := 0
			for _, n := range c.Tally() {
				if n > max {
					max = n
				}
			}
			want := float64(max)/float64(len(choices)) >= c.Threshold()
			return c.IsReached() == want
		},
		gen.Float64Range(0, 1),
		gen.SliceOf(optionGen),
	))

	properties.Property("winner is a most voted option", prop.ForAll(
		func(threshold float64, choices []string) bool {
			c := buildConsensus(threshold, choices)
			winner, ok := c.Winner()
			if !ok {
				return winner == "" && !c.IsReached()
			}
			tally := c.Tally()
			for option, n := range tally {
				if n > tally[winner] || (n == tally[winner] && option < winner) {
					return false
				}
			}
			return true
		},
		gen.Float64Range(0, 1),
		gen.SliceOf(optionGen),
	))

	properties.Property("re-voting never grows the participant count", prop.ForAll(
		func(choices []string) bool {
			c := NewConsensus(0.5)
			for _, choice := range choices {
				c.Vote("same", choice)
			}
			return c.Len() <= 1
		},
		gen.SliceOf(optionGen),
	))

	properties.TestingRun(t)
}
