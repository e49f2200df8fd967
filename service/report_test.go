package service

import (
	"context"
	"testing"

	"Tube/models"
	"Tube/pkg/response"
	"Tube/types"
)

type memReports struct {
	reports    []*models.Report
	categories map[string]*models.ReportCategory
}

func newMemReports() *memReports {
	return &memReports{categories: map[string]*models.ReportCategory{}}
}

func (m *memReports) Create(_ context.Context, report *models.Report) error {
	m.reports = append(m.reports, report)
	return nil
}

func (m *memReports) GetCategory(_ context.Context, id string) (*models.ReportCategory, error) {
	return m.categories[id], nil
}

func (m *memReports) ListCategories(_ context.Context) ([]*models.ReportCategory, error) {
	out := make([]*models.ReportCategory, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	return out, nil
}

func TestFileReport(t *testing.T) {
	store := newMemReports()
	store.categories["rc1"] = &models.ReportCategory{ID: "rc1", Name: "侵权"}
	svc := &ReportService{Store: store}
	ctx := context.Background()

	report, err := svc.File(ctx, "alice", &types.FileReportRequest{
		ReportedID: "bob",
		Reason:     "转载他人视频",
		CategoryID: "rc1",
		Target:     "video v1",
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.ReporterID != "alice" || report.CategoryID == nil || *report.CategoryID != "rc1" {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(store.reports) != 1 {
		t.Fatalf("stored=%d, want 1", len(store.reports))
	}
}

func TestFileReport_SelfReference(t *testing.T) {
	svc := &ReportService{Store: newMemReports()}
	_, err := svc.File(context.Background(), "alice", &types.FileReportRequest{
		ReportedID: "alice",
		Reason:     "r",
	})
	if !isKind(err, response.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFileReport_MissingCategory(t *testing.T) {
	svc := &ReportService{Store: newMemReports()}
	_, err := svc.File(context.Background(), "alice", &types.FileReportRequest{
		ReportedID: "bob",
		Reason:     "r",
		CategoryID: "nope",
	})
	if !isKind(err, response.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFileReport_CategoryOptional(t *testing.T) {
	store := newMemReports()
	svc := &ReportService{Store: store}

	report, err := svc.File(context.Background(), "alice", &types.FileReportRequest{
		ReportedID: "bob",
		Reason:     "r",
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.CategoryID != nil {
		t.Fatal("category should stay nil when omitted")
	}
}
