package storage

import (
	"github.com/LENAX/dag-manager/pkg/core/dag"
)

// DAGRepository DAG存储接口（对外导出）
type DAGRepository interface {
	BaseRepository[dag.DAG]
}

// NodeRepository Node存储接口（对外导出）
// 不校验dag_id引用，外键约束（如有）由数据库负责
type NodeRepository interface {
	BaseRepository[dag.Node]
}

// EdgeRepository Edge存储接口（对外导出）
// 不校验source/target/dag_id引用，也不拒绝自环或重复边
type EdgeRepository interface {
	BaseRepository[dag.Edge]
}
