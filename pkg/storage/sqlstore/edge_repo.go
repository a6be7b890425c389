package sqlstore

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/LENAX/dag-manager/pkg/core/dag"
	"github.com/LENAX/dag-manager/pkg/storage"
	"github.com/LENAX/dag-manager/pkg/storage/dao"
)

const (
	insertEdgeSQL = `INSERT INTO edges (id, source, target, dag_id) VALUES (:id, :source, :target, :dag_id)`
	selectEdgeSQL = `SELECT id, source, target, dag_id FROM edges`
)

// EdgeRepo Edge存储的sqlx实现（对外导出）
type EdgeRepo struct {
	baseRepo
}

// NewEdgeRepo 创建EdgeRepo
func NewEdgeRepo(db *sqlx.DB, opts ...Option) *EdgeRepo {
	return &EdgeRepo{baseRepo: newBaseRepo(db, opts)}
}

// Create 插入一条Edge记录
func (r *EdgeRepo) Create(ctx context.Context, e *dag.Edge) error {
	row := dao.EdgeDAO{ID: e.ID, Source: e.Source, Target: e.Target, DagID: e.DagID}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.NamedExecContext(ctx, insertEdgeSQL, row); err != nil {
		return storage.NewStorageError(storage.OpCreate, "Edge", err)
	}
	return nil
}

// ListAll 查询全部Edge
func (r *EdgeRepo) ListAll(ctx context.Context) ([]*dag.Edge, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []dao.EdgeDAO
	if err := r.db.SelectContext(ctx, &rows, selectEdgeSQL); err != nil {
		return nil, storage.NewStorageError(storage.OpList, "Edge", err)
	}

	result := make([]*dag.Edge, 0, len(rows))
	for _, row := range rows {
		result = append(result, &dag.Edge{ID: row.ID, Source: row.Source, Target: row.Target, DagID: row.DagID})
	}
	return result, nil
}

var _ storage.EdgeRepository = (*EdgeRepo)(nil)
