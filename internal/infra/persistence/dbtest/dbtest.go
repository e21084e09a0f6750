// Package dbtest 为测试提供一个已完成迁移的临时 SQLite 数据库。
package dbtest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/blogly-dev/blogly/internal/infra/persistence/database"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// Open 打开 t.TempDir() 下的 SQLite 文件并返回原始连接池，测试结束时自动关闭。
func Open(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "blogly_test.db")
	db, err := sql.Open("sqlite3", database.SQLiteDSN(path))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Ping())
	return db
}

// NewDriver 返回一个已经建好全部表的 ent 驱动
func NewDriver(t *testing.T) dialect.Driver {
	t.Helper()

	drv := entsql.OpenDB(dialect.SQLite, Open(t))
	require.NoError(t, database.Migrate(context.Background(), drv))
	return drv
}
