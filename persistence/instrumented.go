package persistence

import (
	"context"
	"errors"

	"github.com/BaSui01/agentpatterns/blackboard"
	"github.com/BaSui01/agentpatterns/types"
)

// SnapshotMetrics 接收快照存储的操作结果，由 metrics.Collector 实现
type SnapshotMetrics interface {
	RecordSnapshot(store, operation string, err error)
	RecordStoreHit(store string)
	RecordStoreMiss(store string)
}

// instrumentedStore 为任意 BlackboardStore 上报指标
type instrumentedStore struct {
	BlackboardStore
	name    string
	metrics SnapshotMetrics
}

// Instrument 包装 store，每次操作都上报到 m
func Instrument(store BlackboardStore, name string, m SnapshotMetrics) BlackboardStore {
	if m == nil {
		return store
	}
	return &instrumentedStore{BlackboardStore: store, name: name, metrics: m}
}

func (s *instrumentedStore) Save(ctx context.Context, snap blackboard.Snapshot) error {
	err := s.BlackboardStore.Save(ctx, snap)
	s.metrics.RecordSnapshot(s.name, "save", err)
	return err
}

func (s *instrumentedStore) Load(ctx context.Context, name string) (blackboard.Snapshot, error) {
	snap, err := s.BlackboardStore.Load(ctx, name)
	switch {
	case err == nil:
		s.metrics.RecordStoreHit(s.name)
	case errors.Is(err, types.ErrNotFound):
		s.metrics.RecordStoreMiss(s.name)
		return snap, err
	}
	s.metrics.RecordSnapshot(s.name, "load", err)
	return snap, err
}

func (s *instrumentedStore) Delete(ctx context.Context, name string) error {
	err := s.BlackboardStore.Delete(ctx, name)
	s.metrics.RecordSnapshot(s.name, "delete", err)
	return err
}
