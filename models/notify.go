package models

import (
	"time"
)

type NotifyCategory struct {
	ID   string `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Name string `gorm:"column:name;type:varchar(10);not null" json:"name"`
}

func (NotifyCategory) TableName() string {
	return "notify_category"
}

type Notify struct {
	ID         string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	CategoryID *string   `gorm:"column:category_id;type:char(36)" json:"category_id,omitempty"`
	Title      string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Content    string    `gorm:"column:content;type:varchar(2000);not null" json:"content"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Notify) TableName() string {
	return "notify"
}

// NotifyTarget 通知与用户的多对多行。(notify, user) 的唯一索引是
// 幂等投递和既读/未读切换的锚点,必须由存储层保证
type NotifyTarget struct {
	ID          string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	NotifyID    string    `gorm:"column:notify_id;type:char(36);not null;uniqueIndex:uk_notify_user" json:"notify_id"`
	UserID      string    `gorm:"column:user_id;type:char(36);not null;uniqueIndex:uk_notify_user;index:idx_user" json:"user_id"`
	Read        bool      `gorm:"column:read;not null;default:0" json:"read"`
	DeliveredAt time.Time `gorm:"column:delivered_at;index:idx_delivered_at" json:"delivered_at"`
}

func (NotifyTarget) TableName() string {
	return "notify_target"
}

// NotifyFeedRow 用户通知一览行(target join notify)
type NotifyFeedRow struct {
	TargetID    string    `gorm:"column:target_id" json:"target_id"`
	NotifyID    string    `gorm:"column:notify_id" json:"notify_id"`
	Title       string    `gorm:"column:title" json:"title"`
	Content     string    `gorm:"column:content" json:"content"`
	Read        bool      `gorm:"column:read" json:"read"`
	DeliveredAt time.Time `gorm:"column:delivered_at" json:"delivered_at"`
}
