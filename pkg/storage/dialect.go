package storage

// Dialect SQL方言接口（对外导出）
// 封装不同数据库驱动之间的差异
type Dialect interface {
	// Name 返回方言名称（如 "sqlite", "mysql", "postgres"）
	Name() string

	// DriverName 返回database/sql注册的驱动名
	// SQLite: sqlite3, MySQL: mysql, PostgreSQL: postgres
	DriverName() string

	// PrepareDSN 把连接串转换为驱动DSN，并带上会话级设置（时区、PRAGMA）
	// 设置写在DSN里，连接池中每个新连接都会应用；连接串中已有的同名参数不被覆盖
	PrepareDSN(dsn string) (string, error)
}
