/*
 * @Description:
 * @Author: blogly-dev
 * @Date: 2026-10-12 13:55:41
 * @LastEditTime: 2026-10-14 09:30:12
 * @LastEditors: blogly-dev
 */
package repository

import (
	"context"

	"github.com/blogly-dev/blogly/pkg/domain/model"
)

// PostTagRepository 管理文章与标签之间的关联集合。
// 关联行没有独立的生命周期，只会作为设置集合或删除实体的副作用被创建、销毁。
type PostTagRepository interface {
	// SetTags 用 tagIDs 整体替换文章的标签集合。
	// 不存在的标签ID会被静默过滤；文章不存在时返回 NotFoundError。
	SetTags(ctx context.Context, postID uint, tagIDs []uint) error

	// SetPosts 是 SetTags 在标签一侧的对称操作。
	SetPosts(ctx context.Context, tagID uint, postIDs []uint) error

	// List 返回全部关联行，按 (post_id, tag_id) 排序
	List(ctx context.Context) ([]model.PostTag, error)
}
