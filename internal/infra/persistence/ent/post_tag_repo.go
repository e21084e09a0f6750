/*
 * @Description: 文章与标签的关联仓储
 * @Author: blogly-dev
 * @Date: 2026-10-12 17:40:30
 * @LastEditTime: 2026-10-15 11:03:19
 * @LastEditors: blogly-dev
 */
package ent

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"

	"github.com/blogly-dev/blogly/internal/infra/persistence/database"
	"github.com/blogly-dev/blogly/pkg/constant"
	"github.com/blogly-dev/blogly/pkg/domain/model"
	"github.com/blogly-dev/blogly/pkg/domain/repository"
)

type postTagRepo struct {
	conn
}

// NewPostTagRepo 创建关联仓储
func NewPostTagRepo(eq dialect.ExecQuerier, dialectName string) repository.PostTagRepository {
	return &postTagRepo{conn: conn{eq: eq, dialect: dialectName}}
}

// existingIDs 过滤出 table 中真实存在的ID，保持入参顺序并去重
func (r *postTagRepo) existingIDs(ctx context.Context, table string, ids []uint) ([]uint, error) {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return ids, nil
	}

	found := make(map[uint]struct{}, len(ids))
	err := r.query(ctx,
		r.sql().Select(database.ColID).From(sql.Table(table)).Where(sql.In(database.ColID, uintArgs(ids)...)),
		func(rows *sql.Rows) error {
			var id uint
			if err := rows.Scan(&id); err != nil {
				return err
			}
			found[id] = struct{}{}
			return nil
		})
	if err != nil {
		return nil, err
	}

	out := make([]uint, 0, len(found))
	for _, id := range ids {
		if _, ok := found[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

// replace 删除 ownerCol = ownerID 的全部关联，再按 otherIDs 重新插入
func (r *postTagRepo) replace(ctx context.Context, ownerCol string, ownerID uint, otherCol string, otherIDs []uint) error {
	if _, err := r.exec(ctx, r.sql().Delete(database.TablePostTags).
		Where(sql.EQ(ownerCol, ownerID))); err != nil {
		return fmt.Errorf("清空旧关联失败: %w", err)
	}
	if len(otherIDs) == 0 {
		return nil
	}

	ib := r.sql().Insert(database.TablePostTags).Columns(ownerCol, otherCol)
	for _, id := range otherIDs {
		ib.Values(ownerID, id)
	}
	if _, err := r.exec(ctx, ib); err != nil {
		return fmt.Errorf("写入新关联失败: %w", err)
	}
	return nil
}

func (r *postTagRepo) SetTags(ctx context.Context, postID uint, tagIDs []uint) error {
	ok, err := r.exists(ctx, database.TablePosts, postID)
	if err != nil {
		return fmt.Errorf("查询文章失败: %w", err)
	}
	if !ok {
		return constant.NewNotFoundError(constant.EntityPost, postID)
	}

	valid, err := r.existingIDs(ctx, database.TableTags, tagIDs)
	if err != nil {
		return fmt.Errorf("校验标签ID失败: %w", err)
	}
	return r.replace(ctx, database.ColPostID, postID, database.ColTagID, valid)
}

func (r *postTagRepo) SetPosts(ctx context.Context, tagID uint, postIDs []uint) error {
	ok, err := r.exists(ctx, database.TableTags, tagID)
	if err != nil {
		return fmt.Errorf("查询标签失败: %w", err)
	}
	if !ok {
		return constant.NewNotFoundError(constant.EntityTag, tagID)
	}

	valid, err := r.existingIDs(ctx, database.TablePosts, postIDs)
	if err != nil {
		return fmt.Errorf("校验文章ID失败: %w", err)
	}
	return r.replace(ctx, database.ColTagID, tagID, database.ColPostID, valid)
}

func (r *postTagRepo) List(ctx context.Context) ([]model.PostTag, error) {
	pairs := make([]model.PostTag, 0)
	err := r.query(ctx,
		r.sql().Select(database.ColPostID, database.ColTagID).From(sql.Table(database.TablePostTags)).
			OrderBy(sql.Asc(database.ColPostID), sql.Asc(database.ColTagID)),
		func(rows *sql.Rows) error {
			var pt model.PostTag
			if err := rows.Scan(&pt.PostID, &pt.TagID); err != nil {
				return err
			}
			pairs = append(pairs, pt)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("查询关联列表失败: %w", err)
	}
	return pairs, nil
}
