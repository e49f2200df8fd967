package models

import (
	"time"
)

type ReportCategory struct {
	ID   string `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Name string `gorm:"column:name;type:varchar(10);not null" json:"name"`
}

func (ReportCategory) TableName() string {
	return "report_category"
}

type Report struct {
	ID         string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	ReporterID string    `gorm:"column:reporter_id;type:char(36);not null;index:idx_reporter" json:"reporter_id"`
	ReportedID string    `gorm:"column:reported_id;type:char(36);not null;index:idx_reported" json:"reported_id"`
	Reason     string    `gorm:"column:reason;type:varchar(200);not null" json:"reason"`
	CategoryID *string   `gorm:"column:category_id;type:char(36)" json:"category_id,omitempty"`
	Target     string    `gorm:"column:target;type:varchar(500);not null" json:"target"` // 自由文本,指明被通报的内容
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Report) TableName() string {
	return "report"
}
