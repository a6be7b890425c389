package storage

import (
	"context"
)

// BaseRepository 通用的追加写+全量读接口（对外导出）
// 所有实体都只支持创建与列表查询，没有更新和删除
type BaseRepository[T any] interface {
	// Create 插入一条记录（单条INSERT）
	Create(ctx context.Context, item *T) error
	// ListAll 查询全部记录（单条SELECT），顺序由数据库决定
	ListAll(ctx context.Context) ([]*T, error)
}
