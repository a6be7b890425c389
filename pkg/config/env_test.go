package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseURL(t *testing.T) {
	t.Setenv(DatabaseURLEnv, "")
	_, err := DatabaseURL()
	require.Error(t, err)

	var ce *ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, DatabaseURLEnv, ce.Key)
	assert.ErrorIs(t, err, ErrMissing)

	t.Setenv(DatabaseURLEnv, "postgres://localhost/dags")
	dsn, err := DatabaseURL()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/dags", dsn)
}

func TestLoadDotEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DAG_TEST_DOTENV=loaded\n"), 0644))

	t.Setenv("DAG_TEST_DOTENV", "")
	os.Unsetenv("DAG_TEST_DOTENV")

	require.NoError(t, LoadDotEnv(envFile))
	assert.Equal(t, "loaded", os.Getenv("DAG_TEST_DOTENV"))

	// 文件不存在不是错误
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestConfigPath(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")
	assert.Equal(t, DefaultConfigPath, ConfigPath())

	t.Setenv(ConfigPathEnv, "/etc/dag-manager.yaml")
	assert.Equal(t, "/etc/dag-manager.yaml", ConfigPath())
}
