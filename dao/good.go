package dao

import (
	"context"

	"Tube/models"

	"gorm.io/gorm"
)

type GoodDAO struct {
	Repo[models.GoodVideo]
}

func NewGoodDAO(db *gorm.DB) *GoodDAO {
	return &GoodDAO{
		Repo: NewRepo[models.GoodVideo](db),
	}
}

func (d *GoodDAO) GetByUserVideo(ctx context.Context, userID, videoID string) (*models.GoodVideo, error) {
	return d.FindByWhere(ctx, "user_id = ? AND video_id = ?", userID, videoID)
}

func (d *GoodDAO) DeleteByUserVideo(ctx context.Context, userID, videoID string) (int64, error) {
	res := d.Db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&models.GoodVideo{})
	return res.RowsAffected, res.Error
}

func (d *GoodDAO) CountForVideo(ctx context.Context, videoID string) (int64, error) {
	return d.FindCount(ctx, "video_id = ?", videoID)
}

// RatedVideoIDs 用户点过赞的视频 ID,个人页使用
func (d *GoodDAO) RatedVideoIDs(ctx context.Context, userID string, limit int) ([]string, error) {
	var ids []string
	err := d.Db.WithContext(ctx).Model(&models.GoodVideo{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Pluck("video_id", &ids).Error
	return ids, err
}
