/*
 * @Description:
 * @Author: blogly-dev
 * @Date: 2026-10-12 13:49:56
 * @LastEditTime: 2026-10-13 10:12:20
 * @LastEditors: blogly-dev
 */
package repository

import (
	"context"

	"github.com/blogly-dev/blogly/pkg/domain/model"
)

// TagRepository 定义了标签的数据仓库接口。
type TagRepository interface {
	// Delete 只删除标签自身及其关联行，不影响文章。
	BaseRepository[model.Tag]

	// List 返回全部标签
	List(ctx context.Context) ([]*model.Tag, error)

	// ListByPost 返回某篇文章关联的全部标签
	ListByPost(ctx context.Context, postID uint) ([]*model.Tag, error)

	// FindByIDs 返回给定ID中实际存在的标签，不存在的ID被忽略
	FindByIDs(ctx context.Context, ids []uint) ([]*model.Tag, error)
}
