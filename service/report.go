package service

import (
	"context"
	"time"

	"Tube/models"
	"Tube/pkg/response"
	"Tube/pkg/uid"
	"Tube/types"
)

// ReportStore 通报存储,由 dao.ReportDAO 实现
type ReportStore interface {
	Create(ctx context.Context, report *models.Report) error
	GetCategory(ctx context.Context, id string) (*models.ReportCategory, error)
	ListCategories(ctx context.Context) ([]*models.ReportCategory, error)
}

var _ IReportService = (*ReportService)(nil)

type IReportService interface {
	File(ctx context.Context, reporterID string, req *types.FileReportRequest) (*models.Report, error)
	ListCategories(ctx context.Context) ([]*models.ReportCategory, error)
}

type ReportService struct {
	Store ReportStore
}

func (s *ReportService) File(ctx context.Context, reporterID string, req *types.FileReportRequest) (*models.Report, error) {
	if reporterID == req.ReportedID {
		return nil, response.NewValidation("不能通报自己", "reported_id")
	}

	var categoryID *string
	if req.CategoryID != "" {
		category, err := s.Store.GetCategory(ctx, req.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, response.NewNotFound("通报分类不存在")
		}
		categoryID = &req.CategoryID
	}

	report := &models.Report{
		ID:         uid.NewID(),
		ReporterID: reporterID,
		ReportedID: req.ReportedID,
		Reason:     req.Reason,
		CategoryID: categoryID,
		Target:     req.Target,
		CreatedAt:  time.Now(),
	}
	if err := s.Store.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) ListCategories(ctx context.Context) ([]*models.ReportCategory, error) {
	return s.Store.ListCategories(ctx)
}
