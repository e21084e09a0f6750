/*
 * @Description: 文章服务
 * @Author: blogly-dev
 * @Date: 2026-10-13 10:52:37
 * @LastEditTime: 2026-10-15 14:20:03
 * @LastEditors: blogly-dev
 */
package post

import (
	"context"
	"fmt"

	"github.com/blogly-dev/blogly/pkg/constant"
	"github.com/blogly-dev/blogly/pkg/domain/model"
	"github.com/blogly-dev/blogly/pkg/domain/repository"
)

// Service 封装了文章的业务逻辑，包括文章与标签关联的维护。
type Service struct {
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	tagRepo   repository.TagRepository
	txManager repository.TransactionManager
}

// NewService 是 post Service 的构造函数。
func NewService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	tagRepo repository.TagRepository,
	txManager repository.TransactionManager,
) *Service {
	return &Service{
		postRepo:  postRepo,
		userRepo:  userRepo,
		tagRepo:   tagRepo,
		txManager: txManager,
	}
}

// Create 为 userID 创建一篇文章，并在同一个事务里写入初始标签集合。
func (s *Service) Create(ctx context.Context, userID uint, req *model.CreatePostRequest) (*model.Post, error) {
	if userID == 0 {
		return nil, constant.NewValidationError(constant.EntityPost, "user_id")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := &model.Post{
		Title:   req.Title,
		Content: req.Content,
		UserID:  userID,
	}
	err := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		if err := repos.Post.Create(ctx, p); err != nil {
			return err
		}
		return repos.PostTag.SetTags(ctx, p.ID, req.TagIDs)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*model.Post, error) {
	return s.postRepo.FindByID(ctx, id)
}

// GetDetail 返回文章、作者以及文章的全部标签
func (s *Service) GetDetail(ctx context.Context, id uint) (*model.PostDetail, error) {
	p, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	author, err := s.userRepo.FindByID(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("获取文章作者失败: %w", err)
	}
	tags, err := s.tagRepo.ListByPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("获取文章标签失败: %w", err)
	}
	return &model.PostDetail{Post: p, Author: author, Tags: tags}, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Post, error) {
	return s.postRepo.List(ctx)
}

// ListByUser 返回某个用户的全部文章，用户不存在时返回 NotFoundError
func (s *Service) ListByUser(ctx context.Context, userID uint) ([]*model.Post, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.postRepo.ListByUser(ctx, userID)
}

// Update 整体覆盖标题、正文，并替换标签集合。
func (s *Service) Update(ctx context.Context, id uint, req *model.UpdatePostRequest) (*model.Post, error) {
	var updated *model.Post
	err := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		p, err := repos.Post.FindByID(ctx, id)
		if err != nil {
			return err
		}
		req.Apply(p)
		if err := repos.Post.Update(ctx, p); err != nil {
			return err
		}
		if err := repos.PostTag.SetTags(ctx, id, req.TagIDs); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete 删除文章并返回被删除的文章，调用方据此跳回作者页面
func (s *Service) Delete(ctx context.Context, id uint) (*model.Post, error) {
	var deleted *model.Post
	err := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		p, err := repos.Post.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := repos.Post.Delete(ctx, id); err != nil {
			return err
		}
		deleted = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// SetTags 替换文章的标签集合
func (s *Service) SetTags(ctx context.Context, id uint, tagIDs []uint) error {
	return s.txManager.Do(ctx, func(repos repository.Repositories) error {
		return repos.PostTag.SetTags(ctx, id, tagIDs)
	})
}
