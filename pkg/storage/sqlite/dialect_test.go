package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDialect_PrepareDSN(t *testing.T) {
	d := NewSQLiteDialect()
	assert.Equal(t, "sqlite3", d.DriverName())

	tests := []struct {
		dsn  string
		want string
	}{
		{"/tmp/dags.db", "/tmp/dags.db?_busy_timeout=30000&_journal_mode=WAL&_synchronous=NORMAL"},
		{":memory:", ":memory:?_busy_timeout=30000&_journal_mode=WAL&_synchronous=NORMAL"},
		{"file:dags.db?_timeout=500&_journal=DELETE", "file:dags.db?_timeout=500&_journal=DELETE&_synchronous=NORMAL"},
		{"dags.db?_busy_timeout=1&_journal_mode=WAL&_sync=OFF", "dags.db?_busy_timeout=1&_journal_mode=WAL&_sync=OFF"},
	}
	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			got, err := d.PrepareDSN(tt.dsn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := d.PrepareDSN("dags.db?_busy_timeout=%zz")
	assert.Error(t, err)
}
