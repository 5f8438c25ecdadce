// Package persistence provides storage backends for the coordination
// patterns: a settlement ledger for markets and a snapshot store for
// blackboards.
//
// Supported backends:
//   - Memory: for development and testing (default)
//   - Gorm: settlements and allocations in postgres, mysql or sqlite
//   - Redis: blackboard snapshots as a knowledge hash plus a JSON source list
//
// Backends are selected from config.StoreConfig with NewLedgerFromConfig
// and NewBlackboardStoreFromConfig.
package persistence
