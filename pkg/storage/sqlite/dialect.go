package sqlite

import (
	"fmt"
	"net/url"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/LENAX/dag-manager/pkg/storage"
)

// connParams mattn/go-sqlite3在每个新连接上执行的PRAGMA，aliases为驱动认可的同义参数名
var connParams = []struct {
	key     string
	aliases []string
	value   string
}{
	{"_busy_timeout", []string{"_timeout"}, "30000"},
	{"_journal_mode", []string{"_journal"}, "WAL"},
	{"_synchronous", []string{"_sync"}, "NORMAL"},
}

// SQLiteDialect SQLite方言实现（对外导出）
type SQLiteDialect struct{}

// NewSQLiteDialect 创建SQLite方言实例
func NewSQLiteDialect() *SQLiteDialect {
	return &SQLiteDialect{}
}

// Name 返回方言名称
func (d *SQLiteDialect) Name() string {
	return "sqlite"
}

// DriverName 返回mattn/go-sqlite3注册的驱动名
func (d *SQLiteDialect) DriverName() string {
	return "sqlite3"
}

// PrepareDSN 追加busy_timeout、WAL和synchronous参数
func (d *SQLiteDialect) PrepareDSN(dsn string) (string, error) {
	var existing url.Values
	if pos := strings.IndexRune(dsn, '?'); pos >= 0 {
		q, err := url.ParseQuery(dsn[pos+1:])
		if err != nil {
			return "", fmt.Errorf("解析SQLite DSN参数失败: %w", err)
		}
		existing = q
	}

	var extra []string
	for _, p := range connParams {
		if hasAny(existing, p.key, p.aliases) {
			continue
		}
		extra = append(extra, p.key+"="+p.value)
	}
	if len(extra) == 0 {
		return dsn, nil
	}

	sep := "?"
	if existing != nil {
		sep = "&"
	}
	return dsn + sep + strings.Join(extra, "&"), nil
}

func hasAny(q url.Values, key string, aliases []string) bool {
	if q.Has(key) {
		return true
	}
	for _, a := range aliases {
		if q.Has(a) {
			return true
		}
	}
	return false
}

// 确保实现接口
var _ storage.Dialect = (*SQLiteDialect)(nil)
