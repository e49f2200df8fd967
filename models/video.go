package models

import (
	"time"

	"gorm.io/datatypes"
)

type VideoCategory struct {
	ID   string `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Name string `gorm:"column:name;type:varchar(10);not null" json:"name"`
}

func (VideoCategory) TableName() string {
	return "video_category"
}

type Video struct {
	ID          string         `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	CategoryID  string         `gorm:"column:category_id;type:char(36);not null;index:idx_category" json:"category_id"`
	UserID      string         `gorm:"column:user_id;type:char(36);not null;index:idx_user" json:"user_id"`
	Title       string         `gorm:"column:title;type:varchar(50);not null" json:"title"`
	Description string         `gorm:"column:description;type:varchar(500);not null;default:''" json:"description"`
	MediaURL    string         `gorm:"column:media_url;type:varchar(500);not null" json:"media_url"`
	MediaData   datatypes.JSON `gorm:"column:media_data;type:json" json:"media_data"` // size/mime/duration 等上传层回传的元信息
	Thumbnail   string         `gorm:"column:thumbnail;type:varchar(500)" json:"thumbnail"`
	Edited      bool           `gorm:"column:edited;not null;default:0" json:"edited"`
	Views       int64          `gorm:"column:views;not null;default:0" json:"views"` // 全局再生回数,匿名访问也计数
	CreatedAt   time.Time      `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
}

func (Video) TableName() string {
	return "video"
}
