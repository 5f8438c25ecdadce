package swarm

import (
	"math"

	"go.uber.org/zap"

	"github.com/BaSui01/agentpatterns/types"
)

// Consensus tallies one vote per participant and decides whether an option
// holds a qualifying share of the votes. The zero value is usable and has a
// threshold of 0.
type Consensus struct {
	votes     map[types.AgentID]string
	threshold float64
	logger    *zap.Logger
}

// ConsensusOption configures a Consensus.
type ConsensusOption func(*Consensus)

// WithConsensusLogger sets the logger used for decision events.
func WithConsensusLogger(logger *zap.Logger) ConsensusOption {
	return func(c *Consensus) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewConsensus creates a tally with the given threshold ratio.
// The threshold is clamped to [0, 1]; NaN is treated as 1.
func NewConsensus(threshold float64, opts ...ConsensusOption) *Consensus {
	c := &Consensus{
		votes:     make(map[types.AgentID]string),
		threshold: clampUnit(threshold, 1),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(zap.String("component", "consensus"))
	return c
}

// Vote records participant's choice, replacing any earlier vote.
func (c *Consensus) Vote(participant types.AgentID, choice string) {
	if c.votes == nil {
		c.votes = make(map[types.AgentID]string)
	}
	c.votes[participant] = choice
}

// IsReached reports whether the most frequent option's share of all votes
// meets the threshold. It is false when no votes have been cast.
func (c *Consensus) IsReached() bool {
	_, count := c.leader()
	if count == 0 {
		return false
	}
	return float64(count)/float64(len(c.votes)) >= c.threshold
}

// Winner returns the leading option once consensus is reached.
// Options tied for the highest count resolve to the lexicographically smallest one.
func (c *Consensus) Winner() (string, bool) {
	if !c.IsReached() {
		return "", false
	}
	choice, count := c.leader()
	c.log().Debug("consensus reached",
		zap.String("choice", choice),
		zap.Int("votes", count),
		zap.Int("total", len(c.votes)),
		zap.Float64("threshold", c.threshold))
	return choice, true
}

// leader returns the option with the highest count and that count.
func (c *Consensus) leader() (string, int) {
	var (
		best      string
		bestCount int
	)
	for choice, count := range c.Tally() {
		if count > bestCount || (count == bestCount && choice < best) {
			best, bestCount = choice, count
		}
	}
	return best, bestCount
}

// Tally returns the number of votes per option.
func (c *Consensus) Tally() map[string]int {
	counts := make(map[string]int)
	for _, choice := range c.votes {
		counts[choice]++
	}
	return counts
}

// Votes returns a copy of the participant to choice mapping.
func (c *Consensus) Votes() map[types.AgentID]string {
	out := make(map[types.AgentID]string, len(c.votes))
	for k, v := range c.votes {
		out[k] = v
	}
	return out
}

// Len returns the number of participants that have voted.
func (c *Consensus) Len() int { return len(c.votes) }

// Threshold returns the clamped threshold ratio.
func (c *Consensus) Threshold() float64 { return c.threshold }

// Clear drops every vote. The threshold is kept.
func (c *Consensus) Clear() {
	c.votes = make(map[types.AgentID]string)
}

func (c *Consensus) log() *zap.Logger {
	if c.logger == nil {
		return zap.NewNop()
	}
	return c.logger
}

func clampUnit(v, nanValue float64) float64 {
	if math.IsNaN(v) {
		return nanValue
	}
	return math.Min(math.Max(v, 0), 1)
}
