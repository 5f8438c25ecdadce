package agentpatterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuctionScenarios(t *testing.T) {
	tests := []struct {
		name       string
		reserve    float64
		bids       map[AgentID]float64
		order      []AgentID
		wantWinner AgentID
		wantAmount float64
	}{
		{
			name:       "highest bid above reserve wins",
			reserve:    50,
			bids:       map[AgentID]float64{"A": 75, "B": 100, "C": 90},
			order:      []AgentID{"A", "B", "C"},
			wantWinner: "B",
			wantAmount: 100,
		},
		{
			name:    "single bid below reserve",
			reserve: 100,
			bids:    map[AgentID]float64{"A": 75},
			order:   []AgentID{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAuction(AuctionSealedBid, "compute", WithReservePrice(tt.reserve))
			for _, id := range tt.order {
				require.NoError(t, a.AddBid(NewBid(id, tt.bids[id], "compute")))
			}
			w, ok := a.Winner()
			if tt.wantWinner == "" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantWinner, w.Bidder())
			assert.Equal(t, tt.wantAmount, w.Amount())
		})
	}
}

func TestConsensusScenarios(t *testing.T) {
	tests := []struct {
		name        string
		choices     []string
		wantReached bool
		wantWinner  string
	}{
		{"majority", []string{"X", "X", "Y"}, true, "X"},
		{"split", []string{"X", "Y", "Z"}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConsensus(0.6)
			for i, choice := range tt.choices {
				c.Vote(AgentID(string(rune('a'+i))), choice)
			}
			assert.Equal(t, tt.wantReached, c.IsReached())
			w, _ := c.Winner()
			assert.Equal(t, tt.wantWinner, w)
		})
	}
}
