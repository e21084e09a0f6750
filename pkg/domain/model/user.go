/*
 * @Description: 用户领域模型
 * @Author: blogly-dev
 * @Date: 2026-10-12 11:02:16
 * @LastEditTime: 2026-10-14 15:40:09
 * @LastEditors: blogly-dev
 */
package model

import (
	"strings"

	"github.com/blogly-dev/blogly/pkg/constant"
)

// ========= 领域模型定义 =========

// User 是用户的核心领域模型。一个用户拥有零到多篇文章。
type User struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ImageURL  string `json:"image_url"`
}

// FullName 返回 "名 姓" 形式的全名
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UserDetail 是用户详情页所需的数据：用户本身及其全部文章
type UserDetail struct {
	User  *User
	Posts []*Post
}

// ========= 表单数据传输对象 =========

// CreateUserRequest 定义了创建用户的表单
type CreateUserRequest struct {
	FirstName string `form:"first_name" json:"first_name"`
	LastName  string `form:"last_name" json:"last_name"`
	ImageURL  string `form:"image_url" json:"image_url"`
}

// Validate 检查必填字段
func (r *CreateUserRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return constant.NewValidationError(constant.EntityUser, "first_name")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return constant.NewValidationError(constant.EntityUser, "last_name")
	}
	return nil
}

// UpdateUserRequest 定义了编辑用户的表单。
// 这是整体覆盖而不是局部更新：表单中缺失的字段会以空字符串写入。
type UpdateUserRequest struct {
	FirstName string `form:"first_name" json:"first_name"`
	LastName  string `form:"last_name" json:"last_name"`
	ImageURL  string `form:"image_url" json:"image_url"`
}

// Apply 将表单的全部字段覆盖到 u 上
func (r *UpdateUserRequest) Apply(u *User) {
	u.FirstName = r.FirstName
	u.LastName = r.LastName
	u.ImageURL = r.ImageURL
}
