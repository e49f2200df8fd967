package models

import (
	"time"
)

// UserFollow 有向关注边,(from, to) 唯一
type UserFollow struct {
	ID         string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	FromUserID string    `gorm:"column:from_user_id;type:char(36);not null;uniqueIndex:uk_from_to" json:"from_user_id"`
	ToUserID   string    `gorm:"column:to_user_id;type:char(36);not null;uniqueIndex:uk_from_to;index:idx_to" json:"to_user_id"`
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (UserFollow) TableName() string {
	return "user_follow"
}

// UserBlock 有向屏蔽边,与关注互相独立:拉黑不会解除已有的关注
type UserBlock struct {
	ID         string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	FromUserID string    `gorm:"column:from_user_id;type:char(36);not null;uniqueIndex:uk_from_to" json:"from_user_id"`
	ToUserID   string    `gorm:"column:to_user_id;type:char(36);not null;uniqueIndex:uk_from_to;index:idx_to" json:"to_user_id"`
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (UserBlock) TableName() string {
	return "user_block"
}
