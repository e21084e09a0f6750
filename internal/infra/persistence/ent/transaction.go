/*
 * @Description:
 * @Author: blogly-dev
 * @Date: 2026-10-12 17:58:12
 * @LastEditTime: 2026-10-14 11:20:46
 * @LastEditors: blogly-dev
 */
package ent

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"

	"github.com/blogly-dev/blogly/pkg/domain/repository"
)

// NewRepositories 返回直接作用在驱动上（不在事务中）的一组仓储，读操作使用它。
func NewRepositories(eq dialect.ExecQuerier, dialectName string) repository.Repositories {
	return repository.Repositories{
		User:    NewEntUserRepository(eq, dialectName),
		Post:    NewPostRepo(eq, dialectName),
		Tag:     NewTagRepo(eq, dialectName),
		PostTag: NewPostTagRepo(eq, dialectName),
	}
}

// entTransactionManager 是基于 ent 方言驱动的事务管理器实现。
type entTransactionManager struct {
	drv dialect.Driver
}

// NewEntTransactionManager 是 entTransactionManager 的构造函数。
func NewEntTransactionManager(drv dialect.Driver) repository.TransactionManager {
	return &entTransactionManager{drv: drv}
}

// Do 实现了 TransactionManager 接口。
// 它会开启一个事务，并将 Repositories 结构体中定义的所有仓库包裹在这个事务中。
func (tm *entTransactionManager) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := tm.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("开启事务失败: %w", err)
	}

	// 使用 defer 来确保 panic 时事务被回滚
	defer func() {
		if v := recover(); v != nil {
			tx.Rollback()
			panic(v)
		}
	}()

	repos := NewRepositories(tx, tm.drv.Dialect())

	if err := fn(repos); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("事务执行失败: %w, 回滚事务也失败: %v", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("提交事务失败: %w", err)
	}
	return nil
}
