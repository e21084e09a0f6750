/*
 * @Description: 用户仓储
 * @Author: blogly-dev
 * @Date: 2026-10-12 16:48:09
 * @LastEditTime: 2026-10-15 10:52:14
 * @LastEditors: blogly-dev
 */
package ent

import (
	"context"
	stdsql "database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"

	"github.com/blogly-dev/blogly/internal/infra/persistence/database"
	"github.com/blogly-dev/blogly/pkg/constant"
	"github.com/blogly-dev/blogly/pkg/domain/model"
	"github.com/blogly-dev/blogly/pkg/domain/repository"
)

var userColumns = []string{
	database.ColID,
	database.ColFirstName,
	database.ColLastName,
	database.ColImageURL,
}

// entUserRepository 是 UserRepository 的实现
type entUserRepository struct {
	conn
}

// NewEntUserRepository 是 entUserRepository 的构造函数，eq 可以是驱动也可以是事务
func NewEntUserRepository(eq dialect.ExecQuerier, dialectName string) repository.UserRepository {
	return &entUserRepository{conn: conn{eq: eq, dialect: dialectName}}
}

func scanUser(rows *sql.Rows) (*model.User, error) {
	var (
		u        model.User
		imageURL stdsql.NullString
	)
	if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &imageURL); err != nil {
		return nil, err
	}
	u.ImageURL = imageURL.String
	return &u, nil
}

func (r *entUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var found *model.User
	err := r.query(ctx,
		r.sql().Select(userColumns...).From(sql.Table(database.TableUsers)).Where(sql.EQ(database.ColID, id)),
		func(rows *sql.Rows) (err error) {
			found, err = scanUser(rows)
			return err
		})
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	if found == nil {
		return nil, constant.NewNotFoundError(constant.EntityUser, id)
	}
	return found, nil
}

// List 按姓、名排序，姓名相同时按ID保证顺序稳定
func (r *entUserRepository) List(ctx context.Context) ([]*model.User, error) {
	users := make([]*model.User, 0)
	err := r.query(ctx,
		r.sql().Select(userColumns...).From(sql.Table(database.TableUsers)).
			OrderBy(sql.Asc(database.ColLastName), sql.Asc(database.ColFirstName), sql.Asc(database.ColID)),
		func(rows *sql.Rows) error {
			u, err := scanUser(rows)
			if err != nil {
				return err
			}
			users = append(users, u)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("查询用户列表失败: %w", err)
	}
	return users, nil
}

func (r *entUserRepository) Create(ctx context.Context, u *model.User) error {
	id, err := r.insert(ctx, r.sql().Insert(database.TableUsers).
		Columns(database.ColFirstName, database.ColLastName, database.ColImageURL).
		Values(u.FirstName, u.LastName, u.ImageURL))
	if err != nil {
		return fmt.Errorf("创建用户失败: %w", err)
	}
	u.ID = id
	return nil
}

func (r *entUserRepository) Update(ctx context.Context, u *model.User) error {
	ok, err := r.exists(ctx, database.TableUsers, u.ID)
	if err != nil {
		return fmt.Errorf("查询用户失败: %w", err)
	}
	if !ok {
		return constant.NewNotFoundError(constant.EntityUser, u.ID)
	}

	_, err = r.exec(ctx, r.sql().Update(database.TableUsers).
		Set(database.ColFirstName, u.FirstName).
		Set(database.ColLastName, u.LastName).
		// 编辑表单提交的空头像原样写入 ""，不能写成 NULL
		Set(database.ColImageURL, u.ImageURL).
		Where(sql.EQ(database.ColID, u.ID)))
	if err != nil {
		return fmt.Errorf("更新用户失败: %w", err)
	}
	return nil
}

// Delete 依次删除：用户文章的标签关联、用户的文章、用户本身。
func (r *entUserRepository) Delete(ctx context.Context, id uint) error {
	ok, err := r.exists(ctx, database.TableUsers, id)
	if err != nil {
		return fmt.Errorf("查询用户失败: %w", err)
	}
	if !ok {
		return constant.NewNotFoundError(constant.EntityUser, id)
	}

	userPosts := r.sql().Select(database.ColID).From(sql.Table(database.TablePosts)).
		Where(sql.EQ(database.ColUserID, id))
	if _, err := r.exec(ctx, r.sql().Delete(database.TablePostTags).
		Where(sql.In(database.ColPostID, userPosts))); err != nil {
		return fmt.Errorf("删除用户文章的标签关联失败: %w", err)
	}
	if _, err := r.exec(ctx, r.sql().Delete(database.TablePosts).
		Where(sql.EQ(database.ColUserID, id))); err != nil {
		return fmt.Errorf("删除用户文章失败: %w", err)
	}
	if _, err := r.exec(ctx, r.sql().Delete(database.TableUsers).
		Where(sql.EQ(database.ColID, id))); err != nil {
		return fmt.Errorf("删除用户失败: %w", err)
	}
	return nil
}
