package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/BaSui01/agentpatterns/config"
	"github.com/BaSui01/agentpatterns/types"
)

func TestDialector(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql", "sqlite"} {
		d, err := Dialector(config.DatabaseConfig{Driver: driver, Name: "x"})
		require.NoError(t, err, driver)
		assert.Equal(t, driver, d.Name())
	}

	_, err := Dialector(config.DatabaseConfig{})
	assert.ErrorIs(t, err, types.ErrInvalidConfig)

	_, err = Dialector(config.DatabaseConfig{Driver: "oracle"})
	assert.ErrorIs(t, err, types.ErrInvalidConfig)
}

func TestOpen_SQLite(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver:       "sqlite",
		Name:         filepath.Join(t.TempDir(), "ledger.db"),
		MaxOpenConns: 4,
		MaxIdleConns: 8,
	}

	pool, err := Open(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer pool.Close()

	assert.Equal(t, 4, pool.config.MaxOpenConns)
	assert.Equal(t, 4, pool.config.MaxIdleConns, "idle connections are capped by open connections")
	assert.Zero(t, pool.config.HealthCheckInterval)
	assert.NoError(t, pool.DB().Exec("SELECT 1").Error)
}

func TestPoolConfigFromDatabase_Defaults(t *testing.T) {
	pc := PoolConfigFromDatabase(config.DatabaseConfig{})
	def := DefaultPoolConfig()
	assert.Equal(t, def.MaxOpenConns, pc.MaxOpenConns)
	assert.Equal(t, def.MaxIdleConns, pc.MaxIdleConns)
	assert.NoError(t, pc.Validate())
}
