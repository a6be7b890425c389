package config

import (
	"time"
)

// Config DAG Manager配置（对外导出）
// 数据库连接串和监听地址不在配置文件中，前者来自环境变量，后者固定
type Config struct {
	DagManager struct {
		General GeneralConfig `yaml:"general"`
		Storage struct {
			Database DatabaseConfig `yaml:"database"`
		} `yaml:"storage"`
		Server  ServerConfig  `yaml:"server"`
		Events  EventsConfig  `yaml:"events"`
		Monitor MonitorConfig `yaml:"monitor"`
	} `yaml:"dag-manager"`
}

// GeneralConfig 通用配置
type GeneralConfig struct {
	InstanceName string `yaml:"instance_name"`
	LogLevel     string `yaml:"log_level"`
	Env          string `yaml:"env"`
}

// DatabaseConfig 连接池配置
type DatabaseConfig struct {
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	QueryTimeout    time.Duration `yaml:"query_timeout"` // 单条语句（含等待空闲连接）的最长时间
}

// ServerConfig HTTP服务超时配置
type ServerConfig struct {
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// EventsConfig 创建事件总线配置
type EventsConfig struct {
	Enabled    *bool `yaml:"enabled"`
	BufferSize int   `yaml:"buffer_size"`
}

// MonitorConfig 连接池监控配置
type MonitorConfig struct {
	Enabled       bool   `yaml:"enabled"`
	PoolStatsCron string `yaml:"pool_stats_cron"`
}

// Default 返回应用了默认值的配置
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Database 获取连接池配置
func (c *Config) Database() DatabaseConfig {
	return c.DagManager.Storage.Database
}

// Server 获取HTTP服务配置
func (c *Config) Server() ServerConfig {
	return c.DagManager.Server
}

// EventsEnabled 事件总线是否启用（默认启用）
func (c *Config) EventsEnabled() bool {
	e := c.DagManager.Events.Enabled
	return e == nil || *e
}

// IsDebug 日志级别是否为debug
func (c *Config) IsDebug() bool {
	return c.DagManager.General.LogLevel == "debug"
}

// ApplyDefaults 应用默认值
func (c *Config) ApplyDefaults() {
	g := &c.DagManager.General
	if g.InstanceName == "" {
		g.InstanceName = "dag-manager"
	}
	if g.LogLevel == "" {
		g.LogLevel = "info"
	}
	if g.Env == "" {
		g.Env = "dev"
	}

	db := &c.DagManager.Storage.Database
	if db.MaxOpenConns <= 0 {
		db.MaxOpenConns = 10
	}
	if db.MaxIdleConns <= 0 {
		db.MaxIdleConns = min(5, db.MaxOpenConns)
	}
	if db.ConnMaxLifetime <= 0 {
		db.ConnMaxLifetime = 2 * time.Hour
	}
	if db.ConnMaxIdleTime <= 0 {
		db.ConnMaxIdleTime = 1 * time.Hour
	}
	if db.QueryTimeout <= 0 {
		db.QueryTimeout = 30 * time.Second
	}

	s := &c.DagManager.Server
	if s.ReadTimeout <= 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout <= 0 {
		s.WriteTimeout = 30 * time.Second
	}
	if s.ShutdownTimeout <= 0 {
		s.ShutdownTimeout = 10 * time.Second
	}

	if c.DagManager.Events.BufferSize <= 0 {
		c.DagManager.Events.BufferSize = 64
	}

	if c.DagManager.Monitor.PoolStatsCron == "" {
		c.DagManager.Monitor.PoolStatsCron = "@every 1m"
	}
}
