package models

import (
	"time"
)

// 评论固定三层:Comment → Reply → ReplyToReply,每层显式引用上级,不做无限嵌套

type Comment struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	VideoID   string    `gorm:"column:video_id;type:char(36);not null;index:idx_video" json:"video_id"`
	UserID    string    `gorm:"column:user_id;type:char(36);not null" json:"user_id"`
	Content   string    `gorm:"column:content;type:varchar(500);not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
}

func (Comment) TableName() string {
	return "video_comment"
}

type Reply struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	CommentID string    `gorm:"column:comment_id;type:char(36);not null;index:idx_comment" json:"comment_id"`
	UserID    string    `gorm:"column:user_id;type:char(36);not null" json:"user_id"`
	Content   string    `gorm:"column:content;type:varchar(500);not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
}

func (Reply) TableName() string {
	return "video_comment_reply"
}

type ReplyToReply struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	ReplyID   string    `gorm:"column:reply_id;type:char(36);not null;index:idx_reply" json:"reply_id"`
	UserID    string    `gorm:"column:user_id;type:char(36);not null" json:"user_id"`
	Content   string    `gorm:"column:content;type:varchar(500);not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
}

func (ReplyToReply) TableName() string {
	return "video_comment_reply_to_reply"
}

// CommentListRow 评论列表行,附带下一层回复数
type CommentListRow struct {
	Comment
	NumReplies int64 `gorm:"-" json:"num_replies"`
}

type ReplyListRow struct {
	Reply
	NumReplies int64 `gorm:"-" json:"num_replies"`
}
