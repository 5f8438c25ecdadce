// =============================================================================
// 🎭 Mock 账本与观察者
// =============================================================================
package mocks

import (
	"context"
	"sync"

	"github.com/BaSui01/agentpatterns/market"
)

// MockLedger 记录收到的结算，可注入错误
type MockLedger struct {
	mu          sync.Mutex
	settlements []market.Settlement
	err         error
}

// NewMockLedger 创建 MockLedger
func NewMockLedger() *MockLedger {
	return &MockLedger{}
}

// WithError 之后的每次写入都返回 err
func (l *MockLedger) WithError(err error) *MockLedger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
	return l
}

// RecordSettlement 实现 market.Ledger
func (l *MockLedger) RecordSettlement(ctx context.Context, s market.Settlement) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return l.err
	}
	l.settlements = append(l.settlements, s)
	return nil
}

// Settlements 返回已记录的结算
func (l *MockLedger) Settlements() []market.Settlement {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]market.Settlement(nil), l.settlements...)
}

// MockObserver 记录观察到的结算
type MockObserver struct {
	mu   sync.Mutex
	seen []market.Settlement
}

// ObserveSettlement 实现 market.Observer
func (o *MockObserver) ObserveSettlement(s market.Settlement) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, s)
}

// Seen 返回观察到的结算
func (o *MockObserver) Seen() []market.Settlement {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]market.Settlement(nil), o.seen...)
}
