package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/LENAX/dag-manager/pkg/api"
	"github.com/LENAX/dag-manager/pkg/config"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	// 命令行参数（监听地址固定，不提供参数）
	configPath := flag.String("config", "", "配置文件路径，默认读取"+config.ConfigPathEnv+"或"+config.DefaultConfigPath)
	flag.Parse()

	log.Printf("DAG Manager Server v%s (%s, %s)", Version, GitCommit, BuildTime)

	// 1. 加载.env和配置
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	path := *configPath
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("❌ 加载配置失败: %v", err)
	}

	dsn, err := config.DatabaseURL()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	api.SetGinMode(cfg.IsDebug())

	// 2. 初始化连接池并组装服务，连接失败直接退出，不重试
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := api.NewApp(ctx, cfg, dsn, Version)
	if err != nil {
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			log.Fatalf("❌ 数据库初始化失败: %v", cfgErr)
		}
		log.Fatalf("❌ 启动失败: %v", err)
	}

	// 3. 阻塞直到收到中断信号，然后优雅关闭
	if err := app.Run(ctx); err != nil {
		log.Fatalf("❌ API服务器错误: %v", err)
	}
	log.Println("✅ 服务已停止")
}
