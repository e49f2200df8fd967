package dao

import (
	"context"
	"time"

	"Tube/models"
	"Tube/pkg/uid"

	"gorm.io/gorm"
)

type PolicyDAO struct {
	Repo[models.UserPolicy]
}

func NewPolicyDAO(db *gorm.DB) *PolicyDAO {
	return &PolicyDAO{
		Repo: NewRepo[models.UserPolicy](db),
	}
}

func (d *PolicyDAO) GetByUser(ctx context.Context, userID string) (*models.UserPolicy, error) {
	return d.FindByWhere(ctx, "user_id = ?", userID)
}

// Accept 同意是单向的:已有行时只会更新为 accept=1,不支持撤回
func (d *PolicyDAO) Accept(ctx context.Context, userID string) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		res := tx.Model(&models.UserPolicy{}).
			Where("user_id = ?", userID).
			Update("accept", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		return tx.Create(&models.UserPolicy{
			ID:        uid.NewID(),
			UserID:    userID,
			Accept:    true,
			CreatedAt: time.Now(),
		}).Error
	})
}
