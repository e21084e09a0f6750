package repository

import (
	"context"
)

// BaseRepository 定义了所有仓储层都应具备的最基础的CRUD操作。
type BaseRepository[T any] interface {
	// FindByID 根据主键ID查找实体，不存在时返回 *constant.NotFoundError。
	FindByID(ctx context.Context, id uint) (*T, error)

	// Create 创建一个新的实体，并把生成的ID回写到实体上。
	Create(ctx context.Context, entity *T) error

	// Update 整体覆盖一个已存在的实体。
	Update(ctx context.Context, entity *T) error

	// Delete 根据主键ID删除一个实体及其从属数据。
	Delete(ctx context.Context, id uint) error
}
