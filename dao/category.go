package dao

import (
	"context"

	"Tube/models"

	"gorm.io/gorm"
)

type Category struct {
	Repo[models.VideoCategory]
}

func NewCategory(db *gorm.DB) *Category {
	return &Category{
		Repo: NewRepo[models.VideoCategory](db),
	}
}

func (d *Category) GetByID(ctx context.Context, id string) (*models.VideoCategory, error) {
	return d.FindByWhere(ctx, "id = ?", id)
}

func (d *Category) List(ctx context.Context) ([]*models.VideoCategory, error) {
	var items []*models.VideoCategory
	err := d.Db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

// CountVideos 该分类下的视频数,用于删除保护判断
func (d *Category) CountVideos(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Video{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

func (d *Category) Delete(ctx context.Context, id string) error {
	return d.Db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.VideoCategory{}).Error
}
