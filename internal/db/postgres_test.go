package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentrecords/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.User = "records"
	cfg.Database.Password = "secret"
	cfg.Database.DBName = "students"
	cfg.Database.MaxOpenConns = 8
	cfg.Database.MaxIdleConns = 2
	cfg.Database.ConnMaxLifetime = "30m"
	return cfg
}

func TestNewPoolConfig(t *testing.T) {
	poolConfig, err := NewPoolConfig(testConfig())
	require.NoError(t, err)

	assert.Equal(t, int32(8), poolConfig.MaxConns)
	assert.Equal(t, int32(2), poolConfig.MinConns)
	assert.Equal(t, 30*time.Minute, poolConfig.MaxConnLifetime)
	assert.Equal(t, "db.internal", poolConfig.ConnConfig.Host)
	assert.Equal(t, uint16(5433), poolConfig.ConnConfig.Port)
	assert.Equal(t, "students", poolConfig.ConnConfig.Database)
	assert.NotNil(t, poolConfig.BeforeAcquire)
}

func TestNewPoolConfigBadLifetime(t *testing.T) {
	cfg := testConfig()
	cfg.Database.ConnMaxLifetime = "forever"

	_, err := NewPoolConfig(cfg)
	assert.ErrorContains(t, err, "max lifetime")
}

func TestNewPoolConfigSpecialCharacterPassword(t *testing.T) {
	cfg := testConfig()
	cfg.Database.Password = "p@ss/w:rd"

	poolConfig, err := NewPoolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "p@ss/w:rd", poolConfig.ConnConfig.Password)
	assert.Equal(t, "db.internal", poolConfig.ConnConfig.Host)
}
