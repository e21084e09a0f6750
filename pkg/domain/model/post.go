/*
 * @Description: 文章领域模型
 * @Author: blogly-dev
 * @Date: 2026-10-12 11:10:52
 * @LastEditTime: 2026-10-14 15:41:30
 * @LastEditors: blogly-dev
 */
package model

import (
	"strings"
	"time"

	"github.com/blogly-dev/blogly/pkg/constant"
)

// Post 是文章的核心领域模型。每篇文章恰好属于一个用户。
type Post struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `json:"user_id"`
}

// FriendlyDate 返回适合页面展示的创建时间，例如 "Mon Jan 2 2006, 3:04 PM"
func (p *Post) FriendlyDate() string {
	return p.CreatedAt.Local().Format("Mon Jan 2 2006, 3:04 PM")
}

// PostDetail 聚合了文章详情页所需的作者与标签
type PostDetail struct {
	Post   *Post
	Author *User
	Tags   []*Tag
}

// HasTag 判断文章是否关联了指定标签，供编辑表单勾选使用
func (d *PostDetail) HasTag(tagID uint) bool {
	for _, t := range d.Tags {
		if t.ID == tagID {
			return true
		}
	}
	return false
}

// CreatePostRequest 定义了创建文章的表单
type CreatePostRequest struct {
	Title   string `form:"title" json:"title"`
	Content string `form:"content" json:"content"`
	TagIDs  []uint `form:"tag_ids" json:"tag_ids"`
}

// Validate 检查必填字段
func (r *CreatePostRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return constant.NewValidationError(constant.EntityPost, "title")
	}
	if strings.TrimSpace(r.Content) == "" {
		return constant.NewValidationError(constant.EntityPost, "content")
	}
	return nil
}

// UpdatePostRequest 定义了编辑文章的表单，整体覆盖 title、content 以及标签集合
type UpdatePostRequest struct {
	Title   string `form:"title" json:"title"`
	Content string `form:"content" json:"content"`
	TagIDs  []uint `form:"tag_ids" json:"tag_ids"`
}

// Apply 将表单的全部字段覆盖到 p 上
func (r *UpdatePostRequest) Apply(p *Post) {
	p.Title = r.Title
	p.Content = r.Content
}
