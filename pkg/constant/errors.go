/*
 * @Description: 业务错误定义
 * @Author: blogly-dev
 * @Date: 2026-10-12 10:21:07
 * @LastEditTime: 2026-10-14 16:02:41
 * @LastEditors: blogly-dev
 */
package constant

import (
	"errors"
	"fmt"
)

// 定义业务逻辑相关的标准错误
var (
	// ErrNotFound 表示资源未找到，可以由 Handler 转换为 404
	ErrNotFound = errors.New("资源未找到")

	// ErrValidation 表示必填字段缺失，可以由 Handler 转换为 400
	ErrValidation = errors.New("数据校验失败")

	// ErrBadRequest 表示请求参数错误，可以由 Handler 转换为 400
	ErrBadRequest = errors.New("错误的请求")

	// ErrInternalServer 表示服务器内部错误，可以由 Handler 转换为 500
	ErrInternalServer = errors.New("内部服务器错误")
)

// NotFoundError 指明了哪一种实体的哪个 ID 不存在。
// errors.Is(err, ErrNotFound) 对它成立。
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s (ID: %d) 不存在", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError 构造一个 NotFoundError
func NewNotFoundError(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError 指明了哪一个必填字段缺失。
// errors.Is(err, ErrValidation) 对它成立。
type ValidationError struct {
	Entity string
	Field  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s 的字段 %s 不能为空", e.Entity, e.Field)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError 构造一个 ValidationError
func NewValidationError(entity, field string) error {
	return &ValidationError{Entity: entity, Field: field}
}

// 实体名称，用于错误信息
const (
	EntityUser = "User"
	EntityPost = "Post"
	EntityTag  = "Tag"
)
