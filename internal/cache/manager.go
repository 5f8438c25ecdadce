// Package cache provides the Redis client used by snapshot stores.
// This package is internal and should not be imported by external projects.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/BaSui01/agentpatterns/config"
)

// =============================================================================
// 💾 Redis 管理器
// =============================================================================

// ErrCacheMiss 键不存在
var ErrCacheMiss = errors.New("cache miss")

// ErrClosed 管理器已关闭
var ErrClosed = errors.New("cache manager is closed")

// IsCacheMiss 判断是否为缓存未命中错误
func IsCacheMiss(err error) bool {
	return errors.Is(err, ErrCacheMiss)
}

// Manager 持有 Redis 客户端并管理其生命周期
type Manager struct {
	redis    *redis.Client
	interval time.Duration
	logger   *zap.Logger
	mu       sync.RWMutex
	closed   bool
	stop     chan struct{}
}

// Option 配置 Manager
type Option func(*Manager)

// WithHealthCheck 开启后台探活
func WithHealthCheck(interval time.Duration) Option {
	return func(m *Manager) { m.interval = interval }
}

// NewManager 连接 Redis，连接失败时返回错误
func NewManager(cfg config.RedisConfig, logger *zap.Logger, opts ...Option) (*Manager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	m := &Manager{
		redis:  client,
		logger: logger.With(zap.String("component", "cache")),
		stop:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.interval > 0 {
		go m.healthCheckLoop()
	}

	m.logger.Info("cache manager initialized",
		zap.String("addr", cfg.Addr),
		zap.Int("pool_size", cfg.PoolSize),
	)
	return m, nil
}

// =============================================================================
// 🎯 核心方法
// =============================================================================

func (m *Manager) checkOpen() error {
	if m.closed {
		return ErrClosed
	}
	return nil
}

// Get 获取字符串值
func (m *Manager) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkOpen(); err != nil {
		return "", err
	}

	val, err := m.redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		m.logger.Error("cache get failed", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("cache get failed: %w", err)
	}
	return val, nil
}

// GetJSON 读取并反序列化 JSON 值
func (m *Manager) GetJSON(ctx context.Context, key string, dest any) error {
	val, err := m.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return nil
}

// HGetAll 读取整个哈希，键不存在时返回 ErrCacheMiss
func (m *Manager) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkOpen(); err != nil {
		return nil, err
	}

	fields, err := m.redis.HGetAll(ctx, key).Result()
	if err != nil {
		m.logger.Error("cache hgetall failed", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache hgetall failed: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrCacheMiss
	}
	return fields, nil
}

// Exists 返回存在的键数量
func (m *Manager) Exists(ctx context.Context, keys ...string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkOpen(); err != nil {
		return 0, err
	}

	count, err := m.redis.Exists(ctx, keys...).Result()
	if err != nil {
		return 0, fmt.Errorf("cache exists check failed: %w", err)
	}
	return count, nil
}

// Entry 一次原子写入中的单个键
type Entry struct {
	Key string
	// Value 为 string 时写字符串，为 map[string]string 时写哈希
	Value any
}

// Replace 在一个事务里删除旧键并写入新值，ttl 为 0 表示不过期
func (m *Manager) Replace(ctx context.Context, ttl time.Duration, entries ...Entry) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkOpen(); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	_, err := m.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, e := range entries {
			pipe.Del(ctx, e.Key)
			switch v := e.Value.(type) {
			case string:
				pipe.Set(ctx, e.Key, v, ttl)
				continue
			case map[string]string:
				if len(v) == 0 {
					continue
				}
				pipe.HSet(ctx, e.Key, v)
			default:
				return fmt.Errorf("unsupported cache value %T for key %s", e.Value, e.Key)
			}
			if ttl > 0 {
				pipe.Expire(ctx, e.Key, ttl)
			}
		}
		return nil
	})
	if err != nil {
		m.logger.Error("cache replace failed", zap.Int("keys", len(entries)), zap.Error(err))
		return fmt.Errorf("cache replace failed: %w", err)
	}
	return nil
}

// Delete 删除键
func (m *Manager) Delete(ctx context.Context, keys ...string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkOpen(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	if err := m.redis.Del(ctx, keys...).Err(); err != nil {
		m.logger.Error("cache delete failed", zap.Strings("keys", keys), zap.Error(err))
		return fmt.Errorf("cache delete failed: %w", err)
	}
	return nil
}

// Ping 检查 Redis 连接
func (m *Manager) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkOpen(); err != nil {
		return err
	}
	return m.redis.Ping(ctx).Err()
}

// Close 关闭管理器，可重复调用
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	close(m.stop)
	m.logger.Info("closing cache manager")
	return m.redis.Close()
}

// =============================================================================
// 🏥 健康检查
// =============================================================================

func (m *Manager) healthCheckLoop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := m.Ping(ctx); err != nil && !errors.Is(err, ErrClosed) {
				m.logger.Error("cache health check failed", zap.Error(err))
			} else {
				m.logger.Debug("cache health check passed")
			}
			cancel()
		}
	}
}
