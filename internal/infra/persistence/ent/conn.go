/*
 * @Description: 基于 ent 方言驱动的 SQL 执行辅助
 * @Author: blogly-dev
 * @Date: 2026-10-12 16:20:51
 * @LastEditTime: 2026-10-15 10:47:33
 * @LastEditors: blogly-dev
 */
package ent

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"

	"github.com/blogly-dev/blogly/internal/infra/persistence/database"
)

// conn 把一个 dialect.ExecQuerier（驱动或事务）和它的方言名绑在一起。
type conn struct {
	eq      dialect.ExecQuerier
	dialect string
}

func (c conn) sql() *sql.DialectBuilder {
	return sql.Dialect(c.dialect)
}

// exec 执行一条写语句
func (c conn) exec(ctx context.Context, q sql.Querier) (stdsql.Result, error) {
	query, args := q.Query()
	var res stdsql.Result
	if err := c.eq.Exec(ctx, query, args, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// query 执行一条查询语句，每一行调用一次 scan
func (c conn) query(ctx context.Context, q sql.Querier, scan func(rows *sql.Rows) error) error {
	query, args := q.Query()
	rows := &sql.Rows{}
	if err := c.eq.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// exists 判断 table 中是否存在 id 对应的行
func (c conn) exists(ctx context.Context, table string, id uint) (bool, error) {
	found := false
	err := c.query(ctx,
		c.sql().Select(database.ColID).From(sql.Table(table)).Where(sql.EQ(database.ColID, id)).Limit(1),
		func(rows *sql.Rows) error {
			found = true
			return nil
		})
	return found, err
}

// insert 执行插入并返回自增主键。MySQL 不支持 RETURNING，改用 LastInsertId。
func (c conn) insert(ctx context.Context, ib *sql.InsertBuilder) (uint, error) {
	if c.dialect == dialect.MySQL {
		res, err := c.exec(ctx, ib)
		if err != nil {
			return 0, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("读取自增ID失败: %w", err)
		}
		return uint(id), nil
	}

	var id int64
	err := c.query(ctx, ib.Returning(database.ColID), func(rows *sql.Rows) error {
		return rows.Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, fmt.Errorf("插入后没有返回ID")
	}
	return uint(id), nil
}

// uintArgs 把 ID 列表转成 IN 谓词需要的参数
func uintArgs(ids []uint) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

// dedupe 去重并保持首次出现的顺序
func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// timeValue 兼容各驱动返回的时间格式。
// SQLite 驱动可能把 DATETIME 列返回成字符串。
type timeValue struct {
	t time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func (v *timeValue) Scan(src any) error {
	switch s := src.(type) {
	case nil:
		v.t = time.Time{}
		return nil
	case time.Time:
		v.t = s
		return nil
	case []byte:
		return v.parse(string(s))
	case string:
		return v.parse(s)
	case int64:
		v.t = time.Unix(s, 0)
		return nil
	default:
		return fmt.Errorf("无法把 %T 解析为时间", src)
	}
}

func (v *timeValue) parse(s string) error {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			v.t = t
			return nil
		}
	}
	return fmt.Errorf("无法解析时间字符串: %q", s)
}
