package dao

import (
	"context"
	"time"

	"Tube/models"
	"Tube/pkg/uid"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotifyDAO struct {
	Repo[models.Notify]
}

func NewNotifyDAO(db *gorm.DB) *NotifyDAO {
	return &NotifyDAO{
		Repo: NewRepo[models.Notify](db),
	}
}

// CreateWithTargets 通知本体与投递行在同一事务中创建。
// (notify, user) 唯一索引 + ON CONFLICT DO NOTHING,
// 重试时重复投递同一收件人既不会产生重复行也不会报错
func (d *NotifyDAO) CreateWithTargets(ctx context.Context, notify *models.Notify, userIDs []string) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(notify).Error; err != nil {
			return err
		}

		now := time.Now()
		targets := make([]*models.NotifyTarget, 0, len(userIDs))
		for _, userID := range userIDs {
			targets = append(targets, &models.NotifyTarget{
				ID:          uid.NewID(),
				NotifyID:    notify.ID,
				UserID:      userID,
				Read:        false,
				DeliveredAt: now,
			})
		}
		if len(targets) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "notify_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(&targets).Error
	})
}

func (d *NotifyDAO) GetCategory(ctx context.Context, id string) (*models.NotifyCategory, error) {
	var category models.NotifyCategory
	err := d.Db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&category).Error
	if err != nil {
		return nil, err
	}
	if category.ID == "" {
		return nil, nil
	}
	return &category, nil
}

// TargetUserIDs 指定通知的全部收件人,批量更新后用来逐个失效未读缓存
func (d *NotifyDAO) TargetUserIDs(ctx context.Context, notifyIDs []string) ([]string, error) {
	if len(notifyIDs) == 0 {
		return nil, nil
	}
	var userIDs []string
	err := d.Db.WithContext(ctx).Model(&models.NotifyTarget{}).
		Distinct("user_id").
		Where("notify_id IN ?", notifyIDs).
		Pluck("user_id", &userIDs).Error
	return userIDs, err
}

// GetTarget (notify, user) 唯一,至多一行
func (d *NotifyDAO) GetTarget(ctx context.Context, notifyID, userID string) (*models.NotifyTarget, error) {
	var target models.NotifyTarget
	err := d.Db.WithContext(ctx).
		Where("notify_id = ? AND user_id = ?", notifyID, userID).
		Limit(1).
		Find(&target).Error
	if err != nil {
		return nil, err
	}
	if target.ID == "" {
		return nil, nil
	}
	return &target, nil
}

func (d *NotifyDAO) SetTargetRead(ctx context.Context, targetID string, read bool) error {
	return d.Db.WithContext(ctx).Model(&models.NotifyTarget{}).
		Where("id = ?", targetID).
		Update("read", read).Error
}

// BulkSetRead 管理操作:对指定通知的全部投递行一次性更新,不区分所有者
func (d *NotifyDAO) BulkSetRead(ctx context.Context, notifyIDs []string, read bool) (int64, error) {
	if len(notifyIDs) == 0 {
		return 0, nil
	}
	res := d.Db.WithContext(ctx).Model(&models.NotifyTarget{}).
		Where("notify_id IN ?", notifyIDs).
		Update("read", read)
	return res.RowsAffected, res.Error
}

// ListForUser 投递行与通知本体 join,按投递时刻倒序返回
func (d *NotifyDAO) ListForUser(ctx context.Context, userID string, offset, limit int) ([]*models.NotifyFeedRow, error) {
	var rows []*models.NotifyFeedRow
	err := d.Db.WithContext(ctx).
		Table("notify_target nt").
		Select("nt.id AS target_id, nt.notify_id, n.title, n.content, nt.read, nt.delivered_at").
		Joins("INNER JOIN notify n ON n.id = nt.notify_id").
		Where("nt.user_id = ?", userID).
		Order("nt.delivered_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (d *NotifyDAO) CountForUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.NotifyTarget{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// CountUnread 未读数的数据库真值,缓存未命中时用来重算
func (d *NotifyDAO) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.NotifyTarget{}).
		Where("user_id = ? AND `read` = 0", userID).
		Count(&count).Error
	return count, err
}
