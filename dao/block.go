package dao

import (
	"context"
	"time"

	"Tube/models"
	"Tube/pkg/uid"

	"gorm.io/gorm"
)

type BlockDAO struct {
	Repo[models.UserBlock]
}

func NewBlockDAO(db *gorm.DB) *BlockDAO {
	return &BlockDAO{
		Repo: NewRepo[models.UserBlock](db),
	}
}

// IsBlocked from 是否拉黑了 to
func (d *BlockDAO) IsBlocked(ctx context.Context, fromUserID, toUserID string) (bool, error) {
	return d.IsExist(ctx, "from_user_id = ? AND to_user_id = ?", fromUserID, toUserID)
}

func (d *BlockDAO) Create(ctx context.Context, fromUserID, toUserID string) error {
	return d.Db.WithContext(ctx).Create(&models.UserBlock{
		ID:         uid.NewID(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		CreatedAt:  time.Now(),
	}).Error
}

func (d *BlockDAO) Delete(ctx context.Context, fromUserID, toUserID string) (int64, error) {
	res := d.Db.WithContext(ctx).
		Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).
		Delete(&models.UserBlock{})
	return res.RowsAffected, res.Error
}

// BlockedIDs viewer 拉黑的对象集合,所有列表展示都要排除
func (d *BlockDAO) BlockedIDs(ctx context.Context, fromUserID string) ([]string, error) {
	var ids []string
	err := d.Db.WithContext(ctx).Model(&models.UserBlock{}).
		Where("from_user_id = ?", fromUserID).
		Pluck("to_user_id", &ids).Error
	return ids, err
}
