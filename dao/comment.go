package dao

import (
	"context"

	"Tube/models"

	"gorm.io/gorm"
)

// Comment 管理三层评论树:Comment / Reply / ReplyToReply
type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

func (d *Comment) CreateComment(ctx context.Context, comment *models.Comment) error {
	return d.Db.WithContext(ctx).Create(comment).Error
}

func (d *Comment) CreateReply(ctx context.Context, reply *models.Reply) error {
	return d.Db.WithContext(ctx).Create(reply).Error
}

func (d *Comment) CreateReplyToReply(ctx context.Context, rtr *models.ReplyToReply) error {
	return d.Db.WithContext(ctx).Create(rtr).Error
}

func (d *Comment) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	return d.FindByWhere(ctx, "id = ?", id)
}

func (d *Comment) GetReply(ctx context.Context, id string) (*models.Reply, error) {
	var reply models.Reply
	err := d.Db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&reply).Error
	if err != nil {
		return nil, err
	}
	if reply.ID == "" {
		return nil, nil
	}
	return &reply, nil
}

func (d *Comment) GetReplyToReply(ctx context.Context, id string) (*models.ReplyToReply, error) {
	var rtr models.ReplyToReply
	err := d.Db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rtr).Error
	if err != nil {
		return nil, err
	}
	if rtr.ID == "" {
		return nil, nil
	}
	return &rtr, nil
}

func (d *Comment) UpdateCommentContent(ctx context.Context, id, content string) error {
	return d.Db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ?", id).
		Update("content", content).Error
}

func (d *Comment) UpdateReplyContent(ctx context.Context, id, content string) error {
	return d.Db.WithContext(ctx).Model(&models.Reply{}).
		Where("id = ?", id).
		Update("content", content).Error
}

func (d *Comment) UpdateReplyToReplyContent(ctx context.Context, id, content string) error {
	return d.Db.WithContext(ctx).Model(&models.ReplyToReply{}).
		Where("id = ?", id).
		Update("content", content).Error
}

// DeleteCommentTree 删除评论及其下两层回复,单个事务,要么全删要么不删
func (d *Comment) DeleteCommentTree(ctx context.Context, commentID string) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		replyIDs := tx.Model(&models.Reply{}).Select("id").Where("comment_id = ?", commentID)

		if err := tx.Where("reply_id IN (?)", replyIDs).Delete(&models.ReplyToReply{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_id = ?", commentID).Delete(&models.Reply{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", commentID).Delete(&models.Comment{}).Error
	})
}

// DeleteReplyTree 删除回复及其下一层
func (d *Comment) DeleteReplyTree(ctx context.Context, replyID string) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("reply_id = ?", replyID).Delete(&models.ReplyToReply{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", replyID).Delete(&models.Reply{}).Error
	})
}

func (d *Comment) DeleteReplyToReply(ctx context.Context, id string) error {
	return d.Db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.ReplyToReply{}).Error
}

// ListComments 视频的评论一览,投稿时刻倒序
func (d *Comment) ListComments(ctx context.Context, videoID string, offset, limit int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

func (d *Comment) CountComments(ctx context.Context, videoID string) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Comment{}).
		Where("video_id = ?", videoID).
		Count(&count).Error
	return count, err
}

func (d *Comment) ListReplies(ctx context.Context, commentID string, offset, limit int) ([]*models.Reply, error) {
	var replies []*models.Reply
	err := d.Db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&replies).Error
	return replies, err
}

// CountReplies 直接下一层的回复数,不递归
func (d *Comment) CountReplies(ctx context.Context, commentID string) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Reply{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}

func (d *Comment) ListReplyToReplies(ctx context.Context, replyID string, offset, limit int) ([]*models.ReplyToReply, error) {
	var rtrs []*models.ReplyToReply
	err := d.Db.WithContext(ctx).
		Where("reply_id = ?", replyID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rtrs).Error
	return rtrs, err
}

func (d *Comment) CountReplyToReplies(ctx context.Context, replyID string) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.ReplyToReply{}).
		Where("reply_id = ?", replyID).
		Count(&count).Error
	return count, err
}

// BatchCountComments 批量取多个视频的评论数(列表页用)
func (d *Comment) BatchCountComments(ctx context.Context, videoIDs []string) (map[string]int64, error) {
	if len(videoIDs) == 0 {
		return map[string]int64{}, nil
	}
	var rows []struct {
		VideoID string `gorm:"column:video_id"`
		Count   int64  `gorm:"column:count"`
	}
	err := d.Db.WithContext(ctx).Model(&models.Comment{}).
		Select("video_id, COUNT(*) AS count").
		Where("video_id IN ?", videoIDs).
		Group("video_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.VideoID] = row.Count
	}
	return result, nil
}

// BatchCountReplies 批量取多条评论的回复数
func (d *Comment) BatchCountReplies(ctx context.Context, commentIDs []string) (map[string]int64, error) {
	if len(commentIDs) == 0 {
		return map[string]int64{}, nil
	}
	var rows []struct {
		CommentID string `gorm:"column:comment_id"`
		Count     int64  `gorm:"column:count"`
	}
	err := d.Db.WithContext(ctx).Model(&models.Reply{}).
		Select("comment_id, COUNT(*) AS count").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.CommentID] = row.Count
	}
	return result, nil
}
