/*
 * @Description:
 * @Author: blogly-dev
 * @Date: 2026-10-12 13:40:22
 * @LastEditTime: 2026-10-13 10:08:51
 * @LastEditors: blogly-dev
 */
package repository

import (
	"context"

	"github.com/blogly-dev/blogly/pkg/domain/model"
)

// UserRepository 定义了所有用户数据操作的契约。
type UserRepository interface {
	// 嵌入基础接口，自动获得 FindByID, Create, Update, Delete 等方法。
	// Delete 会级联删除该用户的所有文章以及这些文章的标签关联。
	BaseRepository[model.User]

	// List 按 (last_name, first_name) 升序返回全部用户
	List(ctx context.Context) ([]*model.User, error)
}
