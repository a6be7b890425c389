package sqlstore

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/LENAX/dag-manager/pkg/core/dag"
	"github.com/LENAX/dag-manager/pkg/storage"
	"github.com/LENAX/dag-manager/pkg/storage/dao"
)

const (
	insertNodeSQL = `INSERT INTO nodes (id, dag_id, label) VALUES (:id, :dag_id, :label)`
	selectNodeSQL = `SELECT id, dag_id, label FROM nodes`
)

// NodeRepo Node存储的sqlx实现（对外导出）
type NodeRepo struct {
	baseRepo
}

// NewNodeRepo 创建NodeRepo
func NewNodeRepo(db *sqlx.DB, opts ...Option) *NodeRepo {
	return &NodeRepo{baseRepo: newBaseRepo(db, opts)}
}

// Create 插入一条Node记录，dag_id不做存在性检查
func (r *NodeRepo) Create(ctx context.Context, n *dag.Node) error {
	row := dao.NodeDAO{ID: n.ID, DagID: n.DagID, Label: n.Label}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.NamedExecContext(ctx, insertNodeSQL, row); err != nil {
		return storage.NewStorageError(storage.OpCreate, "Node", err)
	}
	return nil
}

// ListAll 查询全部Node
func (r *NodeRepo) ListAll(ctx context.Context) ([]*dag.Node, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []dao.NodeDAO
	if err := r.db.SelectContext(ctx, &rows, selectNodeSQL); err != nil {
		return nil, storage.NewStorageError(storage.OpList, "Node", err)
	}

	result := make([]*dag.Node, 0, len(rows))
	for _, row := range rows {
		result = append(result, &dag.Node{ID: row.ID, DagID: row.DagID, Label: row.Label})
	}
	return result, nil
}

var _ storage.NodeRepository = (*NodeRepo)(nil)
