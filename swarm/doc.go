// Package swarm provides swarm intelligence patterns: swarm membership,
// collective behaviors (flocking, foraging) and threshold-based consensus.
//
// A Consensus keeps one vote per participant. Consensus is reached when the
// leading option's share of all votes is at least the threshold; ties for the
// lead resolve to the lexicographically smallest option so results never
// depend on map iteration order.
package swarm
