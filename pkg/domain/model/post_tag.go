/*
 * @Description:
 * @Author: blogly-dev
 * @Date: 2026-10-12 11:25:03
 * @LastEditTime: 2026-10-12 11:25:03
 * @LastEditors: blogly-dev
 */
package model

// PostTag 是文章与标签之间的一条关联记录。
// 它没有自己的 ID，只由 (PostID, TagID) 这一对值确定。
type PostTag struct {
	PostID uint `json:"post_id"`
	TagID  uint `json:"tag_id"`
}
