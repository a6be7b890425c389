package api

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/LENAX/dag-manager/internal/storage"
	"github.com/LENAX/dag-manager/pkg/config"
	"github.com/LENAX/dag-manager/pkg/core/events"
	"github.com/LENAX/dag-manager/pkg/core/monitor"
)

// App 进程级组件：连接池、事件总线、监控和HTTP服务器
type App struct {
	cfg      *config.Config
	pool     *storage.Pool
	bus      *events.Bus
	reporter *monitor.PoolStatsReporter
	router   *gin.Engine
	server   *APIServer
	cancel   context.CancelFunc
}

// NewApp 初始化连接池并组装所有组件
// 连接池初始化失败时返回ConfigurationError，调用方应直接退出
func NewApp(ctx context.Context, cfg *config.Config, dsn, version string) (*App, error) {
	pool, err := storage.Open(ctx, dsn, cfg.Database())
	if err != nil {
		return nil, err
	}

	appCtx, cancel := context.WithCancel(context.Background())
	app := &App{cfg: cfg, pool: pool, cancel: cancel}

	if cfg.EventsEnabled() {
		app.bus = events.NewBus(cfg.DagManager.Events.BufferSize, cfg.IsDebug())
		if err := app.bus.StartAuditLog(appCtx); err != nil {
			app.Close()
			return nil, fmt.Errorf("启动事件总线失败: %w", err)
		}
	}

	if cfg.DagManager.Monitor.Enabled {
		reporter, err := monitor.NewPoolStatsReporter(pool, cfg.DagManager.Monitor.PoolStatsCron)
		if err != nil {
			app.Close()
			return nil, &config.ConfigurationError{Key: "monitor.pool_stats_cron", Err: err}
		}
		app.reporter = reporter
		reporter.Start()
	}

	repos := pool.Repositories()
	app.router = SetupRouter(Dependencies{
		DAGs:   repos.DAG,
		Nodes:  repos.Node,
		Edges:  repos.Edge,
		DB:     pool,
		Events: app.bus,
	}, version)
	app.server = NewAPIServer(app.router, cfg.Server())

	return app, nil
}

// Handler 返回HTTP处理器
func (a *App) Handler() *gin.Engine {
	return a.router
}

// Pool 返回共享连接池
func (a *App) Pool() *storage.Pool {
	return a.pool
}

// Server 返回HTTP服务器
func (a *App) Server() *APIServer {
	return a.server
}

// Run 启动HTTP服务并阻塞，直到ctx取消或服务器出错，然后关闭所有组件
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Start()
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server().ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		log.Printf("关闭API服务器失败: %v", err)
	}

	a.Close()
	return serveErr
}

// Close 按依赖倒序释放资源：监控、事件总线、连接池
func (a *App) Close() {
	if a.reporter != nil {
		a.reporter.Stop()
	}
	a.cancel()
	if a.bus != nil {
		if err := a.bus.Close(); err != nil {
			log.Printf("⚠️ [Events] 关闭事件总线失败: %v", err)
		}
	}
	if err := a.pool.Close(); err != nil {
		log.Printf("⚠️ [Storage] 关闭连接池失败: %v", err)
	}
}
