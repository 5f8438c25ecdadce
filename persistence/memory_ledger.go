package persistence

import (
	"context"
	"sync"

	"github.com/BaSui01/agentpatterns/market"
	"github.com/BaSui01/agentpatterns/types"
)

// MemoryLedger is an in-memory Ledger. Data is lost on restart.
type MemoryLedger struct {
	mu      sync.RWMutex
	records []SettlementRecord
	closed  bool
}

// NewMemoryLedger creates an empty in-memory ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{}
}

// RecordSettlement appends a settlement
func (l *MemoryLedger) RecordSettlement(ctx context.Context, s market.Settlement) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrStoreClosed
	}
	l.records = append(l.records, newRecord(s))
	return nil
}

// Settlements returns the settlements recorded for resource, or all of them
// when resource is empty.
func (l *MemoryLedger) Settlements(ctx context.Context, resource string) ([]SettlementRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return nil, ErrStoreClosed
	}
	out := make([]SettlementRecord, 0, len(l.records))
	for _, r := range l.records {
		if resource == "" || r.Resource == resource {
			out = append(out, r)
		}
	}
	return out, nil
}

// AllocationsOf returns the resources won by agent
func (l *MemoryLedger) AllocationsOf(ctx context.Context, agent types.AgentID) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return nil, ErrStoreClosed
	}
	out := make([]string, 0)
	for _, r := range l.records {
		if r.Winner == agent && r.Won() {
			out = append(out, r.Resource)
		}
	}
	return out, nil
}

// Close closes the ledger
func (l *MemoryLedger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	return nil
}
