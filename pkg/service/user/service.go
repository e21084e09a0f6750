/*
 * @Description: 用户服务
 * @Author: blogly-dev
 * @Date: 2026-10-13 10:30:18
 * @LastEditTime: 2026-10-15 14:12:40
 * @LastEditors: blogly-dev
 */
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/blogly-dev/blogly/pkg/domain/model"
	"github.com/blogly-dev/blogly/pkg/domain/repository"
)

// Service 封装了用户相关的业务逻辑。
type Service struct {
	userRepo        repository.UserRepository
	postRepo        repository.PostRepository
	txManager       repository.TransactionManager
	defaultImageURL string
}

// NewService 是 user Service 的构造函数。
func NewService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	txManager repository.TransactionManager,
	defaultImageURL string,
) *Service {
	return &Service{
		userRepo:        userRepo,
		postRepo:        postRepo,
		txManager:       txManager,
		defaultImageURL: defaultImageURL,
	}
}

// Create 校验必填字段后创建用户。头像留空时使用默认头像。
func (s *Service) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		ImageURL:  req.ImageURL,
	}
	if strings.TrimSpace(u.ImageURL) == "" {
		u.ImageURL = s.defaultImageURL
	}

	err := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		return repos.User.Create(ctx, u)
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// List 返回按姓、名排序的全部用户
func (s *Service) List(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}

// GetWithPosts 返回用户详情页需要的数据
func (s *Service) GetWithPosts(ctx context.Context, id uint) (*model.UserDetail, error) {
	u, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("获取用户文章失败: %w", err)
	}
	return &model.UserDetail{User: u, Posts: posts}, nil
}

// Update 用表单整体覆盖用户，不做必填校验
func (s *Service) Update(ctx context.Context, id uint, req *model.UpdateUserRequest) (*model.User, error) {
	var updated *model.User
	err := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		u, err := repos.User.FindByID(ctx, id)
		if err != nil {
			return err
		}
		req.Apply(u)
		if err := repos.User.Update(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete 删除用户，连带删除其全部文章及文章的标签关联
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.txManager.Do(ctx, func(repos repository.Repositories) error {
		return repos.User.Delete(ctx, id)
	})
}
