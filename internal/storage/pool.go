package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/LENAX/dag-manager/pkg/config"
	"github.com/LENAX/dag-manager/pkg/storage"
	"github.com/LENAX/dag-manager/pkg/storage/mysql"
	"github.com/LENAX/dag-manager/pkg/storage/postgres"
	"github.com/LENAX/dag-manager/pkg/storage/sqlite"
	"github.com/LENAX/dag-manager/pkg/storage/sqlstore"
)

// Pool 进程级数据库连接池（内部使用）
// 启动时创建一次，所有handler共享同一个实例，只有进程退出时关闭
type Pool struct {
	db           *sqlx.DB
	dialect      storage.Dialect
	queryTimeout time.Duration
}

// Repositories 存储Repository集合（内部使用）
type Repositories struct {
	DAG  storage.DAGRepository
	Node storage.NodeRepository
	Edge storage.EdgeRepository
}

// Open 根据连接串创建连接池并验证连通性
// 连接串缺失、协议不支持或首次连接失败时返回ConfigurationError，不做重试
func Open(ctx context.Context, dsn string, dbCfg config.DatabaseConfig) (*Pool, error) {
	if dsn == "" {
		return nil, &config.ConfigurationError{Key: config.DatabaseURLEnv, Err: config.ErrMissing}
	}

	dialect, driverDSN, err := detectDriver(dsn)
	if err != nil {
		return nil, &config.ConfigurationError{Key: config.DatabaseURLEnv, Err: err}
	}

	db, err := sqlx.Open(dialect.DriverName(), driverDSN)
	if err != nil {
		return nil, &config.ConfigurationError{Key: config.DatabaseURLEnv, Err: fmt.Errorf("打开数据库失败: %w", err)}
	}

	db.SetMaxOpenConns(dbCfg.MaxOpenConns)
	db.SetMaxIdleConns(dbCfg.MaxIdleConns)
	db.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(dbCfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &config.ConfigurationError{Key: config.DatabaseURLEnv, Err: fmt.Errorf("数据库连接失败: %w", err)}
	}

	log.Printf("✅ [Storage] 连接池已建立: driver=%s, max_open=%d, max_idle=%d, query_timeout=%s",
		dialect.Name(), dbCfg.MaxOpenConns, dbCfg.MaxIdleConns, dbCfg.QueryTimeout)

	return &Pool{db: db, dialect: dialect, queryTimeout: dbCfg.QueryTimeout}, nil
}

// detectDriver 根据连接串前缀选择方言，并由方言转换为驱动可识别的DSN
func detectDriver(dsn string) (storage.Dialect, string, error) {
	var dialect storage.Dialect
	raw := dsn

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		dialect = postgres.NewPostgresDialect()
	case strings.HasPrefix(dsn, "mysql://"):
		dialect = mysql.NewMySQLDialect()
	case strings.HasPrefix(dsn, "sqlite://"):
		dialect, raw = sqlite.NewSQLiteDialect(), strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "file:"), strings.HasPrefix(dsn, ":memory:"),
		hasSQLiteSuffix(dsn):
		dialect = sqlite.NewSQLiteDialect()
	default:
		return nil, "", fmt.Errorf("不支持的数据库连接串: %s", redact(dsn))
	}

	driverDSN, err := dialect.PrepareDSN(raw)
	if err != nil {
		return nil, "", err
	}
	return dialect, driverDSN, nil
}

// hasSQLiteSuffix 文件路径以.db或.sqlite结尾（忽略?之后的参数）
func hasSQLiteSuffix(dsn string) bool {
	path, _, _ := strings.Cut(dsn, "?")
	return strings.HasSuffix(path, ".db") || strings.HasSuffix(path, ".sqlite")
}

// redact 隐藏连接串中的密码
func redact(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	scheme := strings.Index(dsn, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return dsn
	}
	userInfo := dsn[scheme+3 : at]
	if colon := strings.Index(userInfo, ":"); colon >= 0 {
		return dsn[:scheme+3] + userInfo[:colon] + ":***" + dsn[at:]
	}
	return dsn
}

// Repositories 基于共享连接池创建Repository集合
func (p *Pool) Repositories() Repositories {
	timeout := sqlstore.WithQueryTimeout(p.queryTimeout)
	return Repositories{
		DAG:  sqlstore.NewDAGRepo(p.db, timeout),
		Node: sqlstore.NewNodeRepo(p.db, timeout),
		Edge: sqlstore.NewEdgeRepo(p.db, timeout),
	}
}

// DB 获取底层连接池
func (p *Pool) DB() *sqlx.DB {
	return p.db
}

// Dialect 获取方言
func (p *Pool) Dialect() storage.Dialect {
	return p.dialect
}

// PingContext 检查数据库连通性
func (p *Pool) PingContext(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Stats 获取连接池统计信息
func (p *Pool) Stats() sql.DBStats {
	return p.db.Stats()
}

// Close 关闭连接池
func (p *Pool) Close() error {
	if p.db != nil {
		log.Println("[Storage] 关闭连接池")
		return p.db.Close()
	}
	return nil
}
