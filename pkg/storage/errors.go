package storage

import (
	"fmt"
)

// Op 存储操作类型
type Op string

const (
	OpCreate Op = "create"
	OpList   Op = "fetch"
)

// StorageError 存储层错误（对外导出）
// 包装驱动返回的原始错误，Error()保留驱动的原始文本
type StorageError struct {
	Op     Op     // 操作类型
	Entity string // 实体名称（DAG/Node/Edge）
	Err    error  // 驱动原始错误
}

// NewStorageError 创建StorageError
func NewStorageError(op Op, entity string, err error) *StorageError {
	return &StorageError{Op: op, Entity: entity, Err: err}
}

func (e *StorageError) Error() string {
	if e.Op == OpList {
		return fmt.Sprintf("Failed to fetch %ss: %v", e.Entity, e.Err)
	}
	return fmt.Sprintf("Failed to %s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
