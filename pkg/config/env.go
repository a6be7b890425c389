package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	// DatabaseURLEnv 数据库连接串环境变量
	DatabaseURLEnv = "DATABASE_URL"
	// ConfigPathEnv 配置文件路径环境变量
	ConfigPathEnv = "DAG_MANAGER_CONFIG"
	// DefaultConfigPath 默认配置文件路径
	DefaultConfigPath = "./configs/dag-manager.yaml"
)

// LoadDotEnv 加载.env文件到环境变量，文件不存在时忽略
// 已存在的环境变量不会被覆盖
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return &ConfigurationError{Key: p, Err: err}
		}
	}
	return nil
}

// DatabaseURL 读取数据库连接串，未设置时返回ConfigurationError
func DatabaseURL() (string, error) {
	dsn := os.Getenv(DatabaseURLEnv)
	if dsn == "" {
		return "", &ConfigurationError{Key: DatabaseURLEnv, Err: ErrMissing}
	}
	return dsn, nil
}

// ConfigPath 返回配置文件路径
func ConfigPath() string {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p
	}
	return DefaultConfigPath
}
