package dao

import (
	"context"

	"Tube/models"

	"gorm.io/gorm"
)

type ReportDAO struct {
	Repo[models.Report]
}

func NewReportDAO(db *gorm.DB) *ReportDAO {
	return &ReportDAO{
		Repo: NewRepo[models.Report](db),
	}
}

func (d *ReportDAO) GetCategory(ctx context.Context, id string) (*models.ReportCategory, error) {
	var cat models.ReportCategory
	err := d.Db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&cat).Error
	if err != nil {
		return nil, err
	}
	if cat.ID == "" {
		return nil, nil
	}
	return &cat, nil
}

func (d *ReportDAO) ListCategories(ctx context.Context) ([]*models.ReportCategory, error) {
	var cats []*models.ReportCategory
	err := d.Db.WithContext(ctx).Order("name ASC").Find(&cats).Error
	return cats, err
}
