package dao

import (
	"context"
	"time"

	"Tube/models"
	"Tube/pkg/uid"

	"gorm.io/gorm"
)

type HistoryDAO struct {
	Repo[models.History]
}

func NewHistoryDAO(db *gorm.DB) *HistoryDAO {
	return &HistoryDAO{
		Repo: NewRepo[models.History](db),
	}
}

// Upsert 同一 (user, video) 只保留一行:已有则 views+1 并刷新时间,否则新建。
// 先 UPDATE 后 INSERT,配合唯一索引避免并发下插入重复行
func (d *HistoryDAO) Upsert(ctx context.Context, userID, videoID string) error {
	now := time.Now()
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		res := tx.Model(&models.History{}).
			Where("user_id = ? AND video_id = ?", userID, videoID).
			Updates(map[string]any{
				"views":     gorm.Expr("views + ?", 1),
				"viewed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		return tx.Create(&models.History{
			ID:       uid.NewID(),
			UserID:   userID,
			VideoID:  videoID,
			Views:    1,
			ViewedAt: now,
		}).Error
	})
}

func (d *HistoryDAO) GetByUserVideo(ctx context.Context, userID, videoID string) (*models.History, error) {
	return d.FindByWhere(ctx, "user_id = ? AND video_id = ?", userID, videoID)
}

// ListForUser 视听履历一览。exclude 为现在被拉黑的作者,
// 其视频不出现在一览里,但 History 行本身保留
func (d *HistoryDAO) ListForUser(ctx context.Context, userID string, exclude []string, offset, limit int) ([]*models.HistoryListRow, error) {
	var rows []*models.HistoryListRow
	query := d.Db.WithContext(ctx).
		Table("history h").
		Select("h.id, h.user_id, h.video_id, h.views, h.viewed_at, v.title, v.thumbnail, v.user_id AS author_id").
		Joins("INNER JOIN video v ON v.id = h.video_id").
		Where("h.user_id = ?", userID)
	if len(exclude) > 0 {
		query = query.Where("v.user_id NOT IN ?", exclude)
	}
	err := query.
		Order("h.viewed_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (d *HistoryDAO) CountForUser(ctx context.Context, userID string, exclude []string) (int64, error) {
	var count int64
	query := d.Db.WithContext(ctx).
		Table("history h").
		Joins("INNER JOIN video v ON v.id = h.video_id").
		Where("h.user_id = ?", userID)
	if len(exclude) > 0 {
		query = query.Where("v.user_id NOT IN ?", exclude)
	}
	err := query.Count(&count).Error
	return count, err
}

// RecentVideoIDs 最近看过的视频 ID(首页“最近看过”栏用)
func (d *HistoryDAO) RecentVideoIDs(ctx context.Context, userID string, limit int) ([]string, error) {
	var ids []string
	err := d.Db.WithContext(ctx).Model(&models.History{}).
		Where("user_id = ?", userID).
		Order("viewed_at DESC").
		Limit(limit).
		Pluck("video_id", &ids).Error
	return ids, err
}
