package types

import (
	"Tube/models"
)

type CreateNotifyRequest struct {
	CategoryID string   `json:"category_id"`
	Title      string   `json:"title" binding:"required,min=1,max=200"`
	Content    string   `json:"content" binding:"required,min=1,max=2000"`
	Recipients []string `json:"recipients" binding:"required,min=1"`
}

type MarkReadRequest struct {
	NotifyID string `json:"notify_id" binding:"required"`
	Read     bool   `json:"read"`
}

// BulkMarkReadRequest 管理端批量操作,跨所有者更新
type BulkMarkReadRequest struct {
	NotifyIDs []string `json:"notify_ids" binding:"required,min=1"`
	Read      bool     `json:"read"`
}

type NotifyListResponse struct {
	Notifies []*models.NotifyFeedRow `json:"notifies"`
	Amount   int64                   `json:"amount"`
	Unread   int64                   `json:"unread"`
	Page     int                     `json:"page"`
}
