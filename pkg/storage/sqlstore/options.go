package sqlstore

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// DefaultQueryTimeout 单条语句（含等待空闲连接）的默认超时
const DefaultQueryTimeout = 30 * time.Second

// Option Repository可选配置
type Option func(*baseRepo)

// WithQueryTimeout 设置单条语句超时，<=0时使用DefaultQueryTimeout
func WithQueryTimeout(d time.Duration) Option {
	return func(r *baseRepo) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// baseRepo 三个Repository共享的连接池和超时
// 连接池耗尽时语句在超时后失败，而不是一直等待请求上下文
type baseRepo struct {
	db      *sqlx.DB
	timeout time.Duration
}

func newBaseRepo(db *sqlx.DB, opts []Option) baseRepo {
	r := baseRepo{db: db, timeout: DefaultQueryTimeout}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *baseRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}
