package dao

import (
	"context"

	"Tube/models"

	"gorm.io/gorm"
)

type MyListDAO struct {
	Repo[models.MyList]
}

func NewMyListDAO(db *gorm.DB) *MyListDAO {
	return &MyListDAO{
		Repo: NewRepo[models.MyList](db),
	}
}

func (d *MyListDAO) GetByUserVideo(ctx context.Context, userID, videoID string) (*models.MyList, error) {
	return d.FindByWhere(ctx, "user_id = ? AND video_id = ?", userID, videoID)
}

func (d *MyListDAO) DeleteByUserVideo(ctx context.Context, userID, videoID string) (int64, error) {
	res := d.Db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&models.MyList{})
	return res.RowsAffected, res.Error
}

func (d *MyListDAO) ListForUser(ctx context.Context, userID string, offset, limit int) ([]*models.MyList, error) {
	var items []*models.MyList
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (d *MyListDAO) CountForVideo(ctx context.Context, videoID string) (int64, error) {
	return d.FindCount(ctx, "video_id = ?", videoID)
}

// BatchCountForVideos 列表页批量取收藏数
func (d *MyListDAO) BatchCountForVideos(ctx context.Context, videoIDs []string) (map[string]int64, error) {
	if len(videoIDs) == 0 {
		return map[string]int64{}, nil
	}
	var rows []struct {
		VideoID string `gorm:"column:video_id"`
		Count   int64  `gorm:"column:count"`
	}
	err := d.Db.WithContext(ctx).Model(&models.MyList{}).
		Select("video_id, COUNT(*) AS count").
		Where("video_id IN ?", videoIDs).
		Group("video_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.VideoID] = row.Count
	}
	return result, nil
}
