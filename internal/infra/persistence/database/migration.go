/*
 * @Description: 数据迁移服务（表结构迁移之后处理存量数据）
 * @Author: blogly-dev
 * @Date: 2026-10-13 09:40:18
 * @LastEditTime: 2026-10-15 11:30:02
 * @LastEditors: blogly-dev
 */
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// MigrationService 数据迁移服务
type MigrationService struct {
	db              *sql.DB
	dbType          string
	defaultImageURL string
}

// NewMigrationService 创建迁移服务，dbType 为 ent 的方言名
func NewMigrationService(db *sql.DB, dbType, defaultImageURL string) *MigrationService {
	return &MigrationService{
		db:              db,
		dbType:          dbType,
		defaultImageURL: defaultImageURL,
	}
}

// RunMigrations 执行所有数据迁移
func (m *MigrationService) RunMigrations(ctx context.Context) error {
	log.Println("📋 开始执行数据迁移...")

	if err := m.backfillImageURL(ctx); err != nil {
		return fmt.Errorf("头像字段迁移失败: %w", err)
	}

	log.Println("✅ 数据迁移完成")
	return nil
}

// backfillImageURL 把旧版本留下的 NULL 头像补成默认头像。
// 空字符串是编辑时有意清空的结果，必须保留。
func (m *MigrationService) backfillImageURL(ctx context.Context) error {
	exists, err := m.columnExists(ctx, TableUsers, ColImageURL)
	if err != nil {
		return err
	}
	if !exists {
		log.Println("  ✓ image_url 字段不存在，跳过迁移")
		return nil
	}

	query, args := entsql.Dialect(m.dbType).
		Update(TableUsers).
		Set(ColImageURL, m.defaultImageURL).
		Where(entsql.IsNull(ColImageURL)).
		Query()

	res, err := m.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("更新 image_url 失败: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		log.Printf("  → 已为 %d 个用户补上默认头像", n)
	} else {
		log.Println("  ✓ 所有用户都有头像，无需处理")
	}
	return nil
}

// columnExists 检查列是否存在
func (m *MigrationService) columnExists(ctx context.Context, tableName, columnName string) (bool, error) {
	var query string

	switch m.dbType {
	case dialect.MySQL:
		query = `
			SELECT COUNT(*)
			FROM INFORMATION_SCHEMA.COLUMNS
			WHERE TABLE_SCHEMA = DATABASE()
			AND TABLE_NAME = ?
			AND COLUMN_NAME = ?
		`
	case dialect.Postgres:
		query = `
			SELECT COUNT(*)
			FROM information_schema.columns
			WHERE table_name = $1
			AND column_name = $2
		`
	case dialect.SQLite:
		query = `
			SELECT COUNT(*)
			FROM pragma_table_info(?)
			WHERE name = ?
		`
	default:
		return false, fmt.Errorf("不支持的数据库类型: %s", m.dbType)
	}

	var count int
	if err := m.db.QueryRowContext(ctx, query, tableName, columnName).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
