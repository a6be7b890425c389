package postgres

import (
	"fmt"
	"net/url"

	_ "github.com/lib/pq"

	"github.com/LENAX/dag-manager/pkg/storage"
)

// PostgresDialect PostgreSQL方言实现（对外导出）
type PostgresDialect struct{}

// NewPostgresDialect 创建PostgreSQL方言实例
func NewPostgresDialect() *PostgresDialect {
	return &PostgresDialect{}
}

// Name 返回方言名称
func (d *PostgresDialect) Name() string {
	return "postgres"
}

// DriverName 返回lib/pq注册的驱动名
func (d *PostgresDialect) DriverName() string {
	return "postgres"
}

// PrepareDSN 通过启动参数options为每个连接设置UTC时区
func (d *PostgresDialect) PrepareDSN(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("解析PostgreSQL URL失败: %w", err)
	}

	q := u.Query()
	if !q.Has("options") && !q.Has("timezone") {
		q.Set("options", "-c timezone=UTC")
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// 确保实现接口
var _ storage.Dialect = (*PostgresDialect)(nil)
