// Package sqlstore 基于sqlx的DAG/Node/Edge存储实现，适用于PostgreSQL、MySQL和SQLite
package sqlstore

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/LENAX/dag-manager/pkg/core/dag"
	"github.com/LENAX/dag-manager/pkg/storage"
	"github.com/LENAX/dag-manager/pkg/storage/dao"
)

const (
	insertDAGSQL = `INSERT INTO dags (id, name) VALUES (:id, :name)`
	selectDAGSQL = `SELECT id, name FROM dags`
)

// DAGRepo DAG存储的sqlx实现（对外导出）
type DAGRepo struct {
	baseRepo
}

// NewDAGRepo 创建DAGRepo，db由调用方持有并负责关闭
func NewDAGRepo(db *sqlx.DB, opts ...Option) *DAGRepo {
	return &DAGRepo{baseRepo: newBaseRepo(db, opts)}
}

// Create 插入一条DAG记录
func (r *DAGRepo) Create(ctx context.Context, d *dag.DAG) error {
	row := dao.DAGDAO{ID: d.ID, Name: d.Name}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.NamedExecContext(ctx, insertDAGSQL, row); err != nil {
		return storage.NewStorageError(storage.OpCreate, "DAG", err)
	}
	return nil
}

// ListAll 查询全部DAG
func (r *DAGRepo) ListAll(ctx context.Context) ([]*dag.DAG, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []dao.DAGDAO
	if err := r.db.SelectContext(ctx, &rows, selectDAGSQL); err != nil {
		return nil, storage.NewStorageError(storage.OpList, "DAG", err)
	}

	result := make([]*dag.DAG, 0, len(rows))
	for _, row := range rows {
		result = append(result, &dag.DAG{ID: row.ID, Name: row.Name})
	}
	return result, nil
}

var _ storage.DAGRepository = (*DAGRepo)(nil)
