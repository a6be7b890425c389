package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "dag-manager.yaml")
	configContent := `
dag-manager:
  general:
    instance_name: "dag-test"
    log_level: "debug"
    env: "test"
  storage:
    database:
      max_open_conns: 20
      max_idle_conns: 4
      conn_max_lifetime: "1h"
      conn_max_idle_time: "30m"
      query_timeout: "3s"
  server:
    read_timeout: "5s"
    write_timeout: "10s"
  events:
    enabled: false
    buffer_size: 16
  monitor:
    enabled: true
    pool_stats_cron: "*/30 * * * * *"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "dag-test", cfg.DagManager.General.InstanceName)
	assert.True(t, cfg.IsDebug())
	assert.Equal(t, 20, cfg.Database().MaxOpenConns)
	assert.Equal(t, 4, cfg.Database().MaxIdleConns)
	assert.Equal(t, time.Hour, cfg.Database().ConnMaxLifetime)
	assert.Equal(t, 30*time.Minute, cfg.Database().ConnMaxIdleTime)
	assert.Equal(t, 3*time.Second, cfg.Database().QueryTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server().ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server().WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server().ShutdownTimeout)
	assert.False(t, cfg.EventsEnabled())
	assert.Equal(t, 16, cfg.DagManager.Events.BufferSize)
	assert.True(t, cfg.DagManager.Monitor.Enabled)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "dag-manager", cfg.DagManager.General.InstanceName)
	assert.Equal(t, "info", cfg.DagManager.General.LogLevel)
	assert.Equal(t, 10, cfg.Database().MaxOpenConns)
	assert.Equal(t, 30*time.Second, cfg.Database().QueryTimeout)
	assert.True(t, cfg.EventsEnabled())
	assert.Equal(t, "@every 1m", cfg.DagManager.Monitor.PoolStatsCron)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("DAG_TEST_INSTANCE", "from-env")

	configPath := filepath.Join(t.TempDir(), "env.yaml")
	configContent := `
dag-manager:
  general:
    instance_name: "${DAG_TEST_INSTANCE}"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.DagManager.General.InstanceName)
}

func TestLoad_InvalidIsConfigurationError(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("dag-manager:\n  general:\n    log_level: loud\n"), 0644))

	_, err := Load(configPath)
	require.Error(t, err)

	var ce *ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, configPath, ce.Key)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"默认配置合法", func(c *Config) {}, false},
		{"非法日志级别", func(c *Config) { c.DagManager.General.LogLevel = "trace" }, true},
		{"空实例名", func(c *Config) { c.DagManager.General.InstanceName = "" }, true},
		{"空闲连接超过最大连接", func(c *Config) { c.DagManager.Storage.Database.MaxIdleConns = 50 }, true},
		{"语句超时为0", func(c *Config) { c.DagManager.Storage.Database.QueryTimeout = 0 }, true},
		{"非法cron表达式", func(c *Config) {
			c.DagManager.Monitor.Enabled = true
			c.DagManager.Monitor.PoolStatsCron = "every minute"
		}, true},
		{"监控关闭时不校验cron", func(c *Config) { c.DagManager.Monitor.PoolStatsCron = "every minute" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.Error(t, Validate(nil))
}
