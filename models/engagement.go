package models

import (
	"time"
)

// History 同一 (user, video) 只有一行,重复观看累加 views 并刷新时间
type History struct {
	ID       string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	UserID   string    `gorm:"column:user_id;type:char(36);not null;uniqueIndex:uk_user_video" json:"user_id"`
	VideoID  string    `gorm:"column:video_id;type:char(36);not null;uniqueIndex:uk_user_video" json:"video_id"`
	Views    int64     `gorm:"column:views;not null;default:1" json:"views"`
	ViewedAt time.Time `gorm:"column:viewed_at;index:idx_viewed_at" json:"viewed_at"`
}

func (History) TableName() string {
	return "history"
}

// MyList 行存在即已收藏,唯一键保证 (user, video) 至多一行
type MyList struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;type:char(36);not null;uniqueIndex:uk_user_video" json:"user_id"`
	VideoID   string    `gorm:"column:video_id;type:char(36);not null;uniqueIndex:uk_user_video" json:"video_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (MyList) TableName() string {
	return "mylist"
}

// GoodVideo 高评价,同样是存在性开关
type GoodVideo struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;type:char(36);not null;uniqueIndex:uk_user_video" json:"user_id"`
	VideoID   string    `gorm:"column:video_id;type:char(36);not null;uniqueIndex:uk_user_video" json:"video_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (GoodVideo) TableName() string {
	return "good_video"
}

// HistoryListRow 履历一览,带上视频信息与作者(用于屏蔽过滤)
type HistoryListRow struct {
	History
	Title     string `gorm:"column:title" json:"title"`
	Thumbnail string `gorm:"column:thumbnail" json:"thumbnail"`
	AuthorID  string `gorm:"column:author_id" json:"author_id"`
}
