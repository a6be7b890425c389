package dao

import (
	"github.com/google/uuid"
)

// DAGDAO dags表的数据访问对象（内部使用）
type DAGDAO struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

// NodeDAO nodes表的数据访问对象（内部使用）
type NodeDAO struct {
	ID    uuid.UUID `db:"id"`
	DagID uuid.UUID `db:"dag_id"`
	Label string    `db:"label"`
}

// EdgeDAO edges表的数据访问对象（内部使用）
type EdgeDAO struct {
	ID     uuid.UUID `db:"id"`
	Source uuid.UUID `db:"source"`
	Target uuid.UUID `db:"target"`
	DagID  uuid.UUID `db:"dag_id"`
}
