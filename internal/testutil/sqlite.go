// Package testutil 测试辅助工具（内部使用）
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// Schema 测试用表结构，与生产表结构列一致，不含外键约束
const Schema = `
CREATE TABLE IF NOT EXISTS dags (
	id TEXT PRIMARY KEY,
	name TEXT
);
CREATE TABLE IF NOT EXISTS nodes (
	id TEXT PRIMARY KEY,
	dag_id TEXT,
	label TEXT
);
CREATE TABLE IF NOT EXISTS edges (
	id TEXT PRIMARY KEY,
	source TEXT,
	target TEXT,
	dag_id TEXT
);
`

// NewSQLiteDB 在临时目录创建SQLite测试数据库并建表，测试结束自动关闭
func NewSQLiteDB(t testing.TB) *sqlx.DB {
	t.Helper()

	dbFile := filepath.Join(t.TempDir(), "dag_manager_test.db")
	db, err := sqlx.Open("sqlite3", dbFile+"?_busy_timeout=5000")
	require.NoError(t, err)

	// SQLite单写者，串行化连接避免SQLITE_BUSY
	db.SetMaxOpenConns(1)

	_, err = db.Exec(Schema)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})
	return db
}
