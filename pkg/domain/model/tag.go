/*
 * @Description: 标签领域模型
 * @Author: blogly-dev
 * @Date: 2026-10-12 11:18:35
 * @LastEditTime: 2026-10-13 20:05:57
 * @LastEditors: blogly-dev
 */
package model

import (
	"strings"

	"github.com/blogly-dev/blogly/pkg/constant"
)

// Tag 是标签的核心领域模型
type Tag struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// TagDetail 聚合了标签详情页所需的文章列表
type TagDetail struct {
	Tag   *Tag
	Posts []*Post
}

// HasPost 判断标签是否关联了指定文章，供编辑表单勾选使用
func (d *TagDetail) HasPost(postID uint) bool {
	for _, p := range d.Posts {
		if p.ID == postID {
			return true
		}
	}
	return false
}

// CreateTagRequest 定义了创建标签的表单
type CreateTagRequest struct {
	Name    string `form:"name" json:"name"`
	PostIDs []uint `form:"post_ids" json:"post_ids"`
}

// Validate 检查必填字段
func (r *CreateTagRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return constant.NewValidationError(constant.EntityTag, "name")
	}
	return nil
}

// UpdateTagRequest 定义了编辑标签的表单，整体覆盖 name 以及文章集合
type UpdateTagRequest struct {
	Name    string `form:"name" json:"name"`
	PostIDs []uint `form:"post_ids" json:"post_ids"`
}

// Apply 将表单的全部字段覆盖到 t 上
func (r *UpdateTagRequest) Apply(t *Tag) {
	t.Name = r.Name
}
