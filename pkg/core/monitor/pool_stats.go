// Package monitor 按cron表达式周期性记录连接池状态
package monitor

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// StatsSource 连接池统计信息来源
type StatsSource interface {
	Stats() sql.DBStats
}

// Snapshot 一次采样结果
type Snapshot struct {
	Time  time.Time
	Stats sql.DBStats
}

// PoolStatsReporter 连接池状态定时报告器（对外导出）
type PoolStatsReporter struct {
	cron   *cron.Cron
	source StatsSource
	spec   string

	mu      sync.RWMutex
	entryID cron.EntryID
	last    *Snapshot
	count   int
}

// NewPoolStatsReporter 创建报告器，spec支持秒级精度和@every描述符
func NewPoolStatsReporter(source StatsSource, spec string) (*PoolStatsReporter, error) {
	parser := cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(spec); err != nil {
		return nil, fmt.Errorf("cron表达式无效(%s): %w", spec, err)
	}

	r := &PoolStatsReporter{
		cron:   cron.New(cron.WithParser(parser)),
		source: source,
		spec:   spec,
	}

	entryID, err := r.cron.AddFunc(spec, r.Report)
	if err != nil {
		return nil, fmt.Errorf("添加Cron任务失败: %w", err)
	}
	r.entryID = entryID
	return r, nil
}

// Report 采样一次并写日志
func (r *PoolStatsReporter) Report() {
	stats := r.source.Stats()

	r.mu.Lock()
	r.last = &Snapshot{Time: time.Now(), Stats: stats}
	r.count++
	r.mu.Unlock()

	log.Printf("📊 [Monitor] pool open=%d in_use=%d idle=%d wait_count=%d wait=%s",
		stats.OpenConnections, stats.InUse, stats.Idle, stats.WaitCount, stats.WaitDuration)
}

// Last 返回最近一次采样，从未采样时返回nil
func (r *PoolStatsReporter) Last() *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last
}

// Count 返回累计采样次数
func (r *PoolStatsReporter) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// NextRun 下一次调度时间
func (r *PoolStatsReporter) NextRun() time.Time {
	return r.cron.Entry(r.entryID).Next
}

// Start 启动调度
func (r *PoolStatsReporter) Start() {
	r.cron.Start()
	log.Printf("✅ [Monitor] 连接池监控已启动: %s", r.spec)
}

// Stop 停止调度并等待正在执行的采样结束
func (r *PoolStatsReporter) Stop() {
	<-r.cron.Stop().Done()
	log.Println("✅ [Monitor] 连接池监控已停止")
}
