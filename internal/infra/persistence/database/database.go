/*
 * @Description: 数据库连接管理 (支持多种数据库)
 * @Author: blogly-dev
 * @Date: 2026-10-12 15:10:02
 * @LastEditTime: 2026-10-15 11:26:48
 * @LastEditors: blogly-dev
 */
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blogly-dev/blogly/pkg/config"
	"github.com/blogly-dev/blogly/pkg/constant"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DataDir 是相对路径的 SQLite 数据库文件所在目录
const DataDir = "./data"

// normalizeType 把配置中的数据库类型统一成 ent 的方言名
func normalizeType(dbType string) (string, error) {
	switch strings.ToLower(dbType) {
	case "", "sqlite", "sqlite3":
		return dialect.SQLite, nil
	case "mysql", "mariadb":
		return dialect.MySQL, nil
	case "postgres", "postgresql":
		return dialect.Postgres, nil
	default:
		return "", fmt.Errorf("不支持的数据库驱动: %s (支持: mysql/mariadb, postgres, sqlite)", dbType)
	}
}

// buildDSN 根据配置拼出 database/sql 的驱动名和 DSN
func buildDSN(cfg *config.Config) (driverName, dsn string, err error) {
	name, err := normalizeType(cfg.GetString(config.KeyDBType))
	if err != nil {
		return "", "", err
	}

	dbUser := cfg.GetString(config.KeyDBUser)
	dbPass := cfg.GetString(config.KeyDBPassword)
	dbHost := cfg.GetString(config.KeyDBHost)
	dbPort := cfg.GetString(config.KeyDBPort)
	dbName := cfg.GetString(config.KeyDBName)

	switch name {
	case dialect.MySQL:
		if dbUser == "" || dbHost == "" || dbPort == "" || dbName == "" {
			return "", "", fmt.Errorf("MySQL 连接参数不完整 (需要 User, Host, Port, Name)")
		}
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			dbUser, dbPass, dbHost, dbPort, dbName)
		return "mysql", dsn, nil
	case dialect.Postgres:
		if dbUser == "" || dbHost == "" || dbPort == "" || dbName == "" {
			return "", "", fmt.Errorf("PostgreSQL 连接参数不完整 (需要 User, Host, Port, Name)")
		}
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPass, dbName)
		return "postgres", dsn, nil
	default:
		if dbName == "" {
			dbName = constant.DefaultSQLiteName
		}
		finalPath := dbName
		if !filepath.IsAbs(finalPath) {
			if err := os.MkdirAll(DataDir, os.ModePerm); err != nil {
				return "", "", fmt.Errorf("无法创建 data 目录: %w", err)
			}
			finalPath = filepath.Join(DataDir, dbName)
		}
		log.Printf("【提示】SQLite 数据库路径: %s\n", finalPath)
		return "sqlite3", SQLiteDSN(finalPath), nil
	}
}

// SQLiteDSN 返回开启了外键约束的 SQLite DSN
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
}

// NewSQLDB 创建并返回一个标准的 *sql.DB 连接池。
func NewSQLDB(cfg *config.Config) (*sql.DB, error) {
	driverName, dsn, err := buildDSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("打开 sql.DB 连接失败 (驱动: %s): %w", driverName, err)
	}

	// 设置连接池参数
	db.SetMaxIdleConns(10)
	db.SetMaxOpenConns(100)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("无法 Ping 通数据库 (驱动: %s): %w", driverName, err)
	}

	log.Printf("✅ %s 数据库连接池创建成功！\n", driverName)
	return db, nil
}

// NewDriver 把 *sql.DB 包装成 ent 的方言驱动，Database.Debug 打开时打印所有 SQL。
func NewDriver(db *sql.DB, cfg *config.Config) (dialect.Driver, error) {
	name, err := normalizeType(cfg.GetString(config.KeyDBType))
	if err != nil {
		return nil, err
	}

	var drv dialect.Driver = entsql.OpenDB(name, db)
	if cfg.GetBool(config.KeyDBDebug) {
		drv = dialect.Debug(drv)
		log.Println("【数据库】Debug模式已开启，将打印所有执行的SQL语句。")
	}
	return drv, nil
}
