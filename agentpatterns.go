// Package agentpatterns provides a top-level entry point to the multi-agent
// coordination patterns.
//
// Usage:
//
//	import "github.com/BaSui01/agentpatterns"
//
//	a := agentpatterns.NewAuction(agentpatterns.AuctionVickrey, "gpu", agentpatterns.WithReservePrice(5))
//	_ = a.AddBid(agentpatterns.NewBid("a", 10, "gpu"))
//	c := agentpatterns.NewConsensus(0.6)
//
// Everything here is an alias of the pattern packages (market, swarm,
// coalition, hierarchy, team, holarchy, blackboard, federation); import those
// directly for the full API.
package agentpatterns

import (
	"github.com/BaSui01/agentpatterns/blackboard"
	"github.com/BaSui01/agentpatterns/coalition"
	"github.com/BaSui01/agentpatterns/federation"
	"github.com/BaSui01/agentpatterns/hierarchy"
	"github.com/BaSui01/agentpatterns/holarchy"
	"github.com/BaSui01/agentpatterns/market"
	"github.com/BaSui01/agentpatterns/swarm"
	"github.com/BaSui01/agentpatterns/team"
	"github.com/BaSui01/agentpatterns/types"
)

// AgentID identifies an agent in every pattern.
type AgentID = types.AgentID

// Market types.
type (
	Bid         = market.Bid
	Auction     = market.Auction
	AuctionType = market.AuctionType
	Allocation  = market.Allocation
	Market      = market.Market
	Settlement  = market.Settlement
)

// Auction kinds.
const (
	AuctionEnglish   = market.AuctionEnglish
	AuctionDutch     = market.AuctionDutch
	AuctionSealedBid = market.AuctionSealedBid
	AuctionVickrey   = market.AuctionVickrey
)

// Pattern containers.
type (
	Consensus  = swarm.Consensus
	Swarm      = swarm.Swarm
	Coalition  = coalition.Coalition
	Hierarchy  = hierarchy.Hierarchy
	Team       = team.Team
	Holarchy   = holarchy.Holarchy
	Blackboard = blackboard.Blackboard
	Federation = federation.Federation
)

// Constructors.
var (
	NewBid           = market.NewBid
	NewAuction       = market.NewAuction
	WithReservePrice = market.WithReservePrice
	NewAllocation    = market.NewAllocation
	NewMarket        = market.NewMarket
	NewConsensus     = swarm.NewConsensus
	NewSwarm         = swarm.New
	NewCoalition     = coalition.New
	NewHierarchy     = hierarchy.New
	NewTeam          = team.New
	NewHolarchy      = holarchy.New
	NewBlackboard    = blackboard.New
	NewFederation    = federation.New
)
