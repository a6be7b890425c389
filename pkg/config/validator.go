package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// cronParser 与监控调度器使用相同的解析规则（支持秒级与描述符）
var cronParser = cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Validate 校验配置合法性
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("配置不能为空")
	}
	m := cfg.DagManager

	if m.General.InstanceName == "" {
		return fmt.Errorf("instance_name不能为空")
	}
	if !validLogLevels[m.General.LogLevel] {
		return fmt.Errorf("log_level必须是debug/info/warn/error之一")
	}

	db := m.Storage.Database
	if db.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns必须大于0")
	}
	if db.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns不能为负数")
	}
	if db.MaxIdleConns > db.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns不能大于max_open_conns")
	}
	if db.QueryTimeout <= 0 {
		return fmt.Errorf("database.query_timeout必须大于0")
	}

	if m.Events.BufferSize < 0 {
		return fmt.Errorf("events.buffer_size不能为负数")
	}

	if m.Monitor.Enabled {
		if _, err := cronParser.Parse(m.Monitor.PoolStatsCron); err != nil {
			return fmt.Errorf("monitor.pool_stats_cron无效: %w", err)
		}
	}

	return nil
}
