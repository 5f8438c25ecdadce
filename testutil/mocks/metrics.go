package mocks

import "sync"

// MockStoreMetrics 记录快照存储上报的指标
type MockStoreMetrics struct {
	mu        sync.Mutex
	snapshots []string
	hits      int
	misses    int
}

// RecordSnapshot 以 "store:operation:ok|error" 形式记录
func (m *MockStoreMetrics) RecordSnapshot(store, operation string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.snapshots = append(m.snapshots, store+":"+operation+":"+status)
}

func (m *MockStoreMetrics) RecordStoreHit(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits++
}

func (m *MockStoreMetrics) RecordStoreMiss(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.misses++
}

// Snapshots 返回记录的快照操作
func (m *MockStoreMetrics) Snapshots() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.snapshots...)
}

// Hits 返回命中次数
func (m *MockStoreMetrics) Hits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits
}

// Misses 返回未命中次数
func (m *MockStoreMetrics) Misses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.misses
}
