// =============================================================================
// 📦 agentpatterns 默认配置
// =============================================================================
// 提供所有配置项的合理默认值
// =============================================================================
package config

import "time"

// 存储后端名称
const (
	StoreMemory = "memory"
	StoreGorm   = "gorm"
	StoreRedis  = "redis"
)

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Log:       DefaultLogConfig(),
		Market:    DefaultMarketConfig(),
		Swarm:     DefaultSwarmConfig(),
		Store:     DefaultStoreConfig(),
		Redis:     DefaultRedisConfig(),
		Database:  DefaultDatabaseConfig(),
		Metrics:   DefaultMetricsConfig(),
		Telemetry: DefaultTelemetryConfig(),
	}
}

// DefaultMarketConfig 返回默认市场配置
func DefaultMarketConfig() MarketConfig {
	return MarketConfig{
		Name:               "default-market",
		DefaultAuctionType: "english",
		ReservePrice:       0,
		EnforceReserve:     false,
	}
}

// DefaultSwarmConfig 返回默认群体配置
func DefaultSwarmConfig() SwarmConfig {
	return SwarmConfig{
		Threshold: 0.5,
		Behavior:  "flocking",
	}
}

// DefaultStoreConfig 返回默认存储配置
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		Ledger:      StoreMemory,
		Blackboard:  StoreMemory,
		KeyPrefix:   "agentpatterns",
		SnapshotTTL: 0,
	}
}

// DefaultRedisConfig 返回默认 Redis 配置
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:         "localhost:6379",
		Password:     "",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 2,
	}
}

// DefaultDatabaseConfig 返回默认数据库配置
func DefaultDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Driver:          "postgres",
		Host:            "localhost",
		Port:            5432,
		User:            "agentpatterns",
		Password:        "",
		Name:            "agentpatterns",
		SSLMode:         "disable",
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}
}

// DefaultMetricsConfig 返回默认指标配置
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:   true,
		Namespace: "agentpatterns",
		Addr:      "",
	}
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:            "info",
		Format:           "json",
		OutputPaths:      []string{"stdout"},
		EnableCaller:     true,
		EnableStacktrace: false,
	}
}

// DefaultTelemetryConfig 返回默认遥测配置
func DefaultTelemetryConfig() TelemetryConfig {
	return TelemetryConfig{
		Enabled:      false,
		OTLPEndpoint: "localhost:4317",
		ServiceName:  "agentpatterns",
		SampleRate:   0.1,
	}
}
