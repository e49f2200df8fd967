package models

import (
	"time"
)

// UserPolicy 利用规约同意状态,每用户一行,同意后不可撤回
type UserPolicy struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;type:char(36);not null;uniqueIndex:uk_user" json:"user_id"`
	Accept    bool      `gorm:"column:accept;not null;default:0" json:"accept"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (UserPolicy) TableName() string {
	return "userpolicy"
}
