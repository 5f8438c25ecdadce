package persistence

import (
	"context"
	"sync"

	"github.com/BaSui01/agentpatterns/blackboard"
	"github.com/BaSui01/agentpatterns/types"
)

// BlackboardStore 保存与加载黑板快照
type BlackboardStore interface {
	// Save 以快照名为键整体覆盖旧快照
	Save(ctx context.Context, s blackboard.Snapshot) error

	// Load 加载快照，不存在时返回 types.ErrNotFound
	Load(ctx context.Context, name string) (blackboard.Snapshot, error)

	// Delete 删除快照，不存在时不报错
	Delete(ctx context.Context, name string) error

	Close() error
}

func notFound(name string) error {
	return types.Errorf(types.ErrCodeNotFound, "blackboard snapshot %q not found", name)
}

// copySnapshot 深拷贝快照：知识表始终非 nil，空知识源列表归一为 nil
func copySnapshot(s blackboard.Snapshot) blackboard.Snapshot {
	out := blackboard.Snapshot{
		Name:      s.Name,
		Knowledge: make(map[string]string, len(s.Knowledge)),
	}
	for k, v := range s.Knowledge {
		out.Knowledge[k] = v
	}
	if len(s.Sources) > 0 {
		out.Sources = append([]blackboard.KnowledgeSource(nil), s.Sources...)
	}
	return out
}

// MemoryBlackboardStore is an in-memory BlackboardStore.
type MemoryBlackboardStore struct {
	mu        sync.RWMutex
	snapshots map[string]blackboard.Snapshot
	closed    bool
}

// NewMemoryBlackboardStore creates an empty store
func NewMemoryBlackboardStore() *MemoryBlackboardStore {
	return &MemoryBlackboardStore{snapshots: make(map[string]blackboard.Snapshot)}
}

func (s *MemoryBlackboardStore) Save(ctx context.Context, snap blackboard.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	s.snapshots[snap.Name] = copySnapshot(snap)
	return nil
}

func (s *MemoryBlackboardStore) Load(ctx context.Context, name string) (blackboard.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return blackboard.Snapshot{}, ErrStoreClosed
	}
	snap, ok := s.snapshots[name]
	if !ok {
		return blackboard.Snapshot{}, notFound(name)
	}
	return copySnapshot(snap), nil
}

func (s *MemoryBlackboardStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	delete(s.snapshots, name)
	return nil
}

func (s *MemoryBlackboardStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
