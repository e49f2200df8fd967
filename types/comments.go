package types

import (
	"Tube/models"
)

type PostCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=500"`
}

type EditCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=500"`
}

type CommentListResponse struct {
	VideoID  string                   `json:"video_id"`
	Comments []*models.CommentListRow `json:"comments"`
	Amount   int64                    `json:"amount"`
	Page     int                      `json:"page"`
}

type ReplyListResponse struct {
	VideoID   string                 `json:"video_id"`
	CommentID string                 `json:"comment_id"`
	Replies   []*models.ReplyListRow `json:"replies"`
	Amount    int64                  `json:"amount"`
	Page      int                    `json:"page"`
}

type ReplyToReplyListResponse struct {
	VideoID string                 `json:"video_id"`
	ReplyID string                 `json:"reply_id"`
	Replies []*models.ReplyToReply `json:"replies"`
	Amount  int64                  `json:"amount"`
	Page    int                    `json:"page"`
}
