package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// envPattern 匹配 ${VAR} 形式的环境变量引用
var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load 加载配置文件
// 文件不存在时返回默认配置；内容中的${VAR}会被替换为环境变量的值
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, &ConfigurationError{Key: path, Err: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, &ConfigurationError{Key: path, Err: err}
	}
	return cfg, nil
}

// Parse 解析YAML配置内容，应用默认值并校验
func Parse(data []byte) (*Config, error) {
	expanded := envPattern.ReplaceAllStringFunc(string(data), func(m string) string {
		return os.Getenv(envPattern.FindStringSubmatch(m)[1])
	})

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("解析YAML失败: %w", err)
	}

	cfg.ApplyDefaults()
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
