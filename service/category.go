package service

import (
	"context"

	"Tube/models"
	"Tube/pkg/response"
	"Tube/pkg/uid"
)

// CategoryStore 视频分类存储,由 dao.Category 实现
type CategoryStore interface {
	Create(ctx context.Context, category *models.VideoCategory) error
	GetByID(ctx context.Context, id string) (*models.VideoCategory, error)
	List(ctx context.Context) ([]*models.VideoCategory, error)
	CountVideos(ctx context.Context, categoryID string) (int64, error)
	Delete(ctx context.Context, id string) error
}

var _ ICategoryService = (*CategoryService)(nil)

type ICategoryService interface {
	Create(ctx context.Context, name string) (*models.VideoCategory, error)
	List(ctx context.Context) ([]*models.VideoCategory, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService struct {
	Store CategoryStore
}

func (s *CategoryService) Create(ctx context.Context, name string) (*models.VideoCategory, error) {
	category := &models.VideoCategory{
		ID:   uid.NewID(),
		Name: name,
	}
	if err := s.Store.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]*models.VideoCategory, error) {
	return s.Store.List(ctx)
}

// Delete 删除保护:分类下还有视频时拒绝,先迁移或删除视频
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	category, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return response.NewNotFound("视频分类不存在")
	}

	count, err := s.Store.CountVideos(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return response.NewReferential("该分类下仍有视频,无法删除")
	}
	return s.Store.Delete(ctx, id)
}
