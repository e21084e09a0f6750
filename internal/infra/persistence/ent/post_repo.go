/*
 * @Description: 文章仓储
 * @Author: blogly-dev
 * @Date: 2026-10-12 17:05:44
 * @LastEditTime: 2026-10-15 10:58:40
 * @LastEditors: blogly-dev
 */
package ent

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"

	"github.com/blogly-dev/blogly/internal/infra/persistence/database"
	"github.com/blogly-dev/blogly/pkg/constant"
	"github.com/blogly-dev/blogly/pkg/domain/model"
	"github.com/blogly-dev/blogly/pkg/domain/repository"
)

var postColumns = []string{
	database.ColID,
	database.ColTitle,
	database.ColContent,
	database.ColCreatedAt,
	database.ColUserID,
}

type postRepo struct {
	conn
}

// NewPostRepo 创建文章仓储
func NewPostRepo(eq dialect.ExecQuerier, dialectName string) repository.PostRepository {
	return &postRepo{conn: conn{eq: eq, dialect: dialectName}}
}

func scanPost(rows *sql.Rows) (*model.Post, error) {
	var (
		p         model.Post
		createdAt timeValue
	)
	if err := rows.Scan(&p.ID, &p.Title, &p.Content, &createdAt, &p.UserID); err != nil {
		return nil, err
	}
	p.CreatedAt = createdAt.t.Local()
	return &p, nil
}

func (r *postRepo) selectPosts() *sql.Selector {
	return r.sql().Select(postColumns...).From(sql.Table(database.TablePosts))
}

func (r *postRepo) list(ctx context.Context, s *sql.Selector) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	err := r.query(ctx, s.OrderBy(sql.Asc(database.ColID)), func(rows *sql.Rows) error {
		p, err := scanPost(rows)
		if err != nil {
			return err
		}
		posts = append(posts, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("查询文章列表失败: %w", err)
	}
	return posts, nil
}

func (r *postRepo) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	posts, err := r.list(ctx, r.selectPosts().Where(sql.EQ(database.ColID, id)))
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, constant.NewNotFoundError(constant.EntityPost, id)
	}
	return posts[0], nil
}

func (r *postRepo) List(ctx context.Context) ([]*model.Post, error) {
	return r.list(ctx, r.selectPosts())
}

func (r *postRepo) ListByUser(ctx context.Context, userID uint) ([]*model.Post, error) {
	return r.list(ctx, r.selectPosts().Where(sql.EQ(database.ColUserID, userID)))
}

func (r *postRepo) ListByTag(ctx context.Context, tagID uint) ([]*model.Post, error) {
	tagged := r.sql().Select(database.ColPostID).From(sql.Table(database.TablePostTags)).
		Where(sql.EQ(database.ColTagID, tagID))
	return r.list(ctx, r.selectPosts().Where(sql.In(database.ColID, tagged)))
}

func (r *postRepo) FindByIDs(ctx context.Context, ids []uint) ([]*model.Post, error) {
	if len(ids) == 0 {
		return []*model.Post{}, nil
	}
	return r.list(ctx, r.selectPosts().Where(sql.In(database.ColID, uintArgs(ids)...)))
}

// Create 要求作者存在，CreatedAt 为空时取当前时间
func (r *postRepo) Create(ctx context.Context, p *model.Post) error {
	ok, err := r.exists(ctx, database.TableUsers, p.UserID)
	if err != nil {
		return fmt.Errorf("查询用户失败: %w", err)
	}
	if !ok {
		return constant.NewNotFoundError(constant.EntityUser, p.UserID)
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	id, err := r.insert(ctx, r.sql().Insert(database.TablePosts).
		Columns(database.ColTitle, database.ColContent, database.ColCreatedAt, database.ColUserID).
		Values(p.Title, p.Content, p.CreatedAt, p.UserID))
	if err != nil {
		return fmt.Errorf("创建文章失败: %w", err)
	}
	p.ID = id
	return nil
}

// Update 只覆盖标题和正文，创建时间和作者保持不变
func (r *postRepo) Update(ctx context.Context, p *model.Post) error {
	ok, err := r.exists(ctx, database.TablePosts, p.ID)
	if err != nil {
		return fmt.Errorf("查询文章失败: %w", err)
	}
	if !ok {
		return constant.NewNotFoundError(constant.EntityPost, p.ID)
	}

	_, err = r.exec(ctx, r.sql().Update(database.TablePosts).
		Set(database.ColTitle, p.Title).
		Set(database.ColContent, p.Content).
		Where(sql.EQ(database.ColID, p.ID)))
	if err != nil {
		return fmt.Errorf("更新文章失败: %w", err)
	}
	return nil
}

// Delete 先删除文章的标签关联，再删除文章。标签本身保留。
func (r *postRepo) Delete(ctx context.Context, id uint) error {
	ok, err := r.exists(ctx, database.TablePosts, id)
	if err != nil {
		return fmt.Errorf("查询文章失败: %w", err)
	}
	if !ok {
		return constant.NewNotFoundError(constant.EntityPost, id)
	}

	if _, err := r.exec(ctx, r.sql().Delete(database.TablePostTags).
		Where(sql.EQ(database.ColPostID, id))); err != nil {
		return fmt.Errorf("删除文章标签关联失败: %w", err)
	}
	if _, err := r.exec(ctx, r.sql().Delete(database.TablePosts).
		Where(sql.EQ(database.ColID, id))); err != nil {
		return fmt.Errorf("删除文章失败: %w", err)
	}
	return nil
}
