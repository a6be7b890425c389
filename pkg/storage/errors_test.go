package storage

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageError_Message(t *testing.T) {
	cause := errors.New(`pq: duplicate key value violates unique constraint "dags_pkey"`)

	assert.Equal(t,
		`Failed to create DAG: pq: duplicate key value violates unique constraint "dags_pkey"`,
		NewStorageError(OpCreate, "DAG", cause).Error())
	assert.Equal(t,
		"Failed to fetch Nodes: sql: connection is already closed",
		NewStorageError(OpList, "Node", sql.ErrConnDone).Error())
	assert.Equal(t, "Failed to fetch Edges: boom", NewStorageError(OpList, "Edge", errors.New("boom")).Error())
}

func TestStorageError_Unwrap(t *testing.T) {
	err := error(NewStorageError(OpList, "DAG", sql.ErrConnDone))
	assert.True(t, errors.Is(err, sql.ErrConnDone))

	var se *StorageError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, "DAG", se.Entity)
}
