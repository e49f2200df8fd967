package dao

import (
	"context"
	"time"

	"Tube/models"
	"Tube/pkg/uid"

	"gorm.io/gorm"
)

type FollowDAO struct {
	Repo[models.UserFollow]
}

func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{
		Repo: NewRepo[models.UserFollow](db),
	}
}

// IsFollowing 检查有向边是否存在
func (d *FollowDAO) IsFollowing(ctx context.Context, fromUserID, toUserID string) (bool, error) {
	return d.IsExist(ctx, "from_user_id = ? AND to_user_id = ?", fromUserID, toUserID)
}

func (d *FollowDAO) Create(ctx context.Context, fromUserID, toUserID string) error {
	return d.Db.WithContext(ctx).Create(&models.UserFollow{
		ID:         uid.NewID(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		CreatedAt:  time.Now(),
	}).Error
}

func (d *FollowDAO) Delete(ctx context.Context, fromUserID, toUserID string) (int64, error) {
	res := d.Db.WithContext(ctx).
		Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).
		Delete(&models.UserFollow{})
	return res.RowsAffected, res.Error
}

// FollowingIDs 自己关注的对象 ID 列表
func (d *FollowDAO) FollowingIDs(ctx context.Context, fromUserID string) ([]string, error) {
	var ids []string
	err := d.Db.WithContext(ctx).Model(&models.UserFollow{}).
		Where("from_user_id = ?", fromUserID).
		Order("created_at DESC").
		Pluck("to_user_id", &ids).Error
	return ids, err
}

// FollowerIDs 关注自己的用户 ID 列表
func (d *FollowDAO) FollowerIDs(ctx context.Context, toUserID string) ([]string, error) {
	var ids []string
	err := d.Db.WithContext(ctx).Model(&models.UserFollow{}).
		Where("to_user_id = ?", toUserID).
		Order("created_at DESC").
		Pluck("from_user_id", &ids).Error
	return ids, err
}
