package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BaSui01/agentpatterns/config"
	"github.com/BaSui01/agentpatterns/types"
)

// Dialector 按驱动类型返回 GORM 方言
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		return postgres.Open(cfg.DSN()), nil
	case "mysql":
		return mysql.Open(cfg.DSN()), nil
	case "sqlite":
		return sqlite.Open(cfg.DSN()), nil
	case "":
		return nil, types.NewError(types.ErrCodeInvalidConfig, "database driver not configured")
	default:
		return nil, types.Errorf(types.ErrCodeInvalidConfig,
			"unsupported database driver: %s (supported: postgres, mysql, sqlite)", cfg.Driver)
	}
}

// Open 连接数据库并按配置创建连接池
func Open(cfg config.DatabaseConfig, logger *zap.Logger, opts ...PoolOption) (*PoolManager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, types.Errorf(types.ErrCodeStoreUnavailable, "failed to connect database").WithCause(err)
	}

	pool, err := NewPoolManager(db, PoolConfigFromDatabase(cfg), logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("init database pool: %w", err)
	}

	logger.Info("database connected", zap.String("driver", cfg.Driver))
	return pool, nil
}
