/*
 * @Description: 标签仓储
 * @Author: blogly-dev
 * @Date: 2026-10-12 17:22:16
 * @LastEditTime: 2026-10-14 15:37:02
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

type tagRepo struct {
	conn
}

// NewTagRepo 创建标签仓储
func NewTagRepo(eq dialect.ExecQuerier, dialectName string) repository.TagRepository {
	return &tagRepo{conn: conn{eq: eq, dialect: dialectName}}
}

func (r *tagRepo) selectTags() *sql.Selector {
	return r.sql().Select(database.ColID, database.ColName).From(sql.Table(database.TableTags))
}

func (r *tagRepo) list(ctx context.Context, s *sql.Selector) ([]*model.Tag, error) {
	tags := make([]*model.Tag, 0)
	err := r.query(ctx, s.OrderBy(sql.Asc(database.ColID)), func(rows *sql.Rows) error {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return err
		}
		tags = append(tags, &t)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("查询标签列表失败: %w", err)
	}
	return tags, nil
}

func (r *tagRepo) FindByID(ctx context.Context, id uint) (*model.Tag, error) {
	tags, err := r.list(ctx, r.selectTags().Where(sql.EQ(database.ColID, id)))
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, constant.NewNotFoundError(constant.EntityTag, id)
	}
	return tags[0], nil
}

func (r *tagRepo) List(ctx context.Context) ([]*model.Tag, error) {
	return r.list(ctx, r.selectTags())
}

func (r *tagRepo) ListByPost(ctx context.Context, postID uint) ([]*model.Tag, error) {
	attached := r.sql().Select(database.ColTagID).From(sql.Table(database.TablePostTags)).
		Where(sql.EQ(database.ColPostID, postID))
	return r.list(ctx, r.selectTags().Where(sql.In(database.ColID, attached)))
}

func (r *tagRepo) FindByIDs(ctx context.Context, ids []uint) ([]*model.Tag, error) {
	if len(ids) == 0 {
		return []*model.Tag{}, nil
	}
	return r.list(ctx, r.selectTags().Where(sql.In(database.ColID, uintArgs(ids)...)))
}

func (r *tagRepo) Create(ctx context.Context, t *model.Tag) error {
	id, err := r.insert(ctx, r.sql().Insert(database.TableTags).
		Columns(database.ColName).
		Values(t.Name))
	if err != nil {
		return fmt.Errorf("创建标签失败: %w", err)
	}
	t.ID = id
	return nil
}

func (r *tagRepo) Update(ctx context.Context, t *model.Tag) error {
	ok, err := r.exists(ctx, database.TableTags, t.ID)
	if err != nil {
		return fmt.Errorf("查询标签失败: %w", err)
	}
	if !ok {
		return constant.NewNotFoundError(constant.EntityTag, t.ID)
	}

	if _, err := r.exec(ctx, r.sql().Update(database.TableTags).
		Set(database.ColName, t.Name).
		Where(sql.EQ(database.ColID, t.ID))); err != nil {
		return fmt.Errorf("更新标签失败: %w", err)
	}
	return nil
}

// Delete 删除标签及其关联，关联的文章不受影响
func (r *tagRepo) Delete(ctx context.Context, id uint) error {
	ok, err := r.exists(ctx, database.TableTags, id)
	if err != nil {
		return fmt.Errorf("查询标签失败: %w", err)
	}
	if !ok {
		return constant.NewNotFoundError(constant.EntityTag, id)
	}

	if _, err := r.exec(ctx, r.sql().Delete(database.TablePostTags).
		Where(sql.EQ(database.ColTagID, id))); err != nil {
		return fmt.Errorf("删除标签关联失败: %w", err)
	}
	if _, err := r.exec(ctx, r.sql().Delete(database.TableTags).
		Where(sql.EQ(database.ColID, id))); err != nil {
		return fmt.Errorf("删除标签失败: %w", err)
	}
	return nil
}
