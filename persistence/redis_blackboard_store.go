package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/BaSui01/agentpatterns/blackboard"
	"github.com/BaSui01/agentpatterns/internal/cache"
	"github.com/BaSui01/agentpatterns/types"
)

// RedisBlackboardStore 把黑板快照存入 Redis：
//
//	<prefix>:bb:<name>:knowledge  哈希，字段为知识键
//	<prefix>:bb:<name>:sources    JSON 数组，保持注册顺序
//
// sources 键总是写入，用于判断快照是否存在。
type RedisBlackboardStore struct {
	cache  *cache.Manager
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisBlackboardStore 创建 Redis 快照存储，ttl 为 0 表示不过期
func NewRedisBlackboardStore(m *cache.Manager, prefix string, ttl time.Duration, logger *zap.Logger) *RedisBlackboardStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisBlackboardStore{
		cache:  m,
		prefix: prefix,
		ttl:    ttl,
		logger: logger.With(zap.String("component", "redis_blackboard_store")),
	}
}

func (s *RedisBlackboardStore) knowledgeKey(name string) string {
	return fmt.Sprintf("%s:bb:%s:knowledge", s.prefix, name)
}

func (s *RedisBlackboardStore) sourcesKey(name string) string {
	return fmt.Sprintf("%s:bb:%s:sources", s.prefix, name)
}

func unavailable(op, name string, err error) error {
	return types.Errorf(types.ErrCodeStoreUnavailable, "%s blackboard snapshot %q", op, name).WithCause(err)
}

// Save 原子替换快照
func (s *RedisBlackboardStore) Save(ctx context.Context, snap blackboard.Snapshot) error {
	sources := snap.Sources
	if sources == nil {
		sources = []blackboard.KnowledgeSource{}
	}
	data, err := json.Marshal(sources)
	if err != nil {
		return fmt.Errorf("marshal knowledge sources: %w", err)
	}

	knowledge := snap.Knowledge
	if knowledge == nil {
		knowledge = map[string]string{}
	}
	err = s.cache.Replace(ctx, s.ttl,
		cache.Entry{Key: s.knowledgeKey(snap.Name), Value: knowledge},
		cache.Entry{Key: s.sourcesKey(snap.Name), Value: string(data)},
	)
	if err != nil {
		return unavailable("save", snap.Name, err)
	}

	s.logger.Debug("blackboard snapshot saved",
		zap.String("name", snap.Name),
		zap.Int("entries", len(knowledge)),
		zap.Int("sources", len(sources)))
	return nil
}

// Load 读取快照
func (s *RedisBlackboardStore) Load(ctx context.Context, name string) (blackboard.Snapshot, error) {
	var sources []blackboard.KnowledgeSource
	if err := s.cache.GetJSON(ctx, s.sourcesKey(name), &sources); err != nil {
		if cache.IsCacheMiss(err) {
			return blackboard.Snapshot{}, notFound(name)
		}
		return blackboard.Snapshot{}, unavailable("load", name, err)
	}

	knowledge, err := s.cache.HGetAll(ctx, s.knowledgeKey(name))
	if err != nil && !cache.IsCacheMiss(err) {
		return blackboard.Snapshot{}, unavailable("load", name, err)
	}

	return copySnapshot(blackboard.Snapshot{
		Name:      name,
		Knowledge: knowledge,
		Sources:   sources,
	}), nil
}

// Delete 删除快照
func (s *RedisBlackboardStore) Delete(ctx context.Context, name string) error {
	if err := s.cache.Delete(ctx, s.knowledgeKey(name), s.sourcesKey(name)); err != nil {
		return unavailable("delete", name, err)
	}
	return nil
}

// Close 关闭底层 Redis 连接
func (s *RedisBlackboardStore) Close() error {
	return s.cache.Close()
}
