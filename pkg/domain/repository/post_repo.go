/*
 * @Description:
 * @Author: blogly-dev
 * @Date: 2026-10-12 13:45:10
 * @LastEditTime: 2026-10-13 10:11:37
 * @LastEditors: blogly-dev
 */
package repository

import (
	"context"

	"github.com/blogly-dev/blogly/pkg/domain/model"
)

// PostRepository 定义了文章的数据仓库接口。
type PostRepository interface {
	// Delete 会先删除文章的标签关联，再删除文章本身，标签不受影响。
	BaseRepository[model.Post]

	// List 返回全部文章
	List(ctx context.Context) ([]*model.Post, error)

	// ListByUser 返回某个用户的全部文章
	ListByUser(ctx context.Context, userID uint) ([]*model.Post, error)

	// ListByTag 返回关联了某个标签的全部文章
	ListByTag(ctx context.Context, tagID uint) ([]*model.Post, error)

	// FindByIDs 返回给定ID中实际存在的文章，不存在的ID被忽略
	FindByIDs(ctx context.Context, ids []uint) ([]*model.Post, error)
}
