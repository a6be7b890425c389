package config

import (
	"errors"
	"fmt"
)

// ErrMissing 必需的配置项缺失
var ErrMissing = errors.New("not set")

// ConfigurationError 启动期配置错误（对外导出）
// 出现该错误时进程不应继续启动
type ConfigurationError struct {
	Key string // 出错的配置项
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %v", e.Key, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
