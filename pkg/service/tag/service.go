/*
 * @Description: 标签服务
 * @Author: blogly-dev
 * @Date: 2026-10-13 11:15:02
 * @LastEditTime: 2026-10-15 14:24:51
 * @LastEditors: blogly-dev
 */
package tag

import (
	"context"
	"fmt"

	"github.com/blogly-dev/blogly/pkg/domain/model"
	"github.com/blogly-dev/blogly/pkg/domain/repository"
)

// Service 封装了标签的业务逻辑。
type Service struct {
	tagRepo   repository.TagRepository
	postRepo  repository.PostRepository
	txManager repository.TransactionManager
}

// NewService 是 tag Service 的构造函数。
func NewService(
	tagRepo repository.TagRepository,
	postRepo repository.PostRepository,
	txManager repository.TransactionManager,
) *Service {
	return &Service{
		tagRepo:   tagRepo,
		postRepo:  postRepo,
		txManager: txManager,
	}
}

// Create 创建标签并写入初始文章集合。同名标签允许重复。
func (s *Service) Create(ctx context.Context, req *model.CreateTagRequest) (*model.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t := &model.Tag{Name: req.Name}
	err := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		if err := repos.Tag.Create(ctx, t); err != nil {
			return err
		}
		return repos.PostTag.SetPosts(ctx, t.ID, req.PostIDs)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*model.Tag, error) {
	return s.tagRepo.FindByID(ctx, id)
}

// GetDetail 返回标签及其关联的全部文章
func (s *Service) GetDetail(ctx context.Context, id uint) (*model.TagDetail, error) {
	t, err := s.tagRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListByTag(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("获取标签文章失败: %w", err)
	}
	return &model.TagDetail{Tag: t, Posts: posts}, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Tag, error) {
	return s.tagRepo.List(ctx)
}

// Update 整体覆盖名称，并替换文章集合
func (s *Service) Update(ctx context.Context, id uint, req *model.UpdateTagRequest) (*model.Tag, error) {
	var updated *model.Tag
	err := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		t, err := repos.Tag.FindByID(ctx, id)
		if err != nil {
			return err
		}
		req.Apply(t)
		if err := repos.Tag.Update(ctx, t); err != nil {
			return err
		}
		if err := repos.PostTag.SetPosts(ctx, id, req.PostIDs); err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete 删除标签，文章保留
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.txManager.Do(ctx, func(repos repository.Repositories) error {
		return repos.Tag.Delete(ctx, id)
	})
}

// SetPosts 替换标签的文章集合
func (s *Service) SetPosts(ctx context.Context, id uint, postIDs []uint) error {
	return s.txManager.Do(ctx, func(repos repository.Repositories) error {
		return repos.PostTag.SetPosts(ctx, id, postIDs)
	})
}
