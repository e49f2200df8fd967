package dao

import (
	"context"

	"Tube/models"

	"gorm.io/gorm"
)

type Video struct {
	Repo[models.Video]
}

func NewVideo(db *gorm.DB) *Video {
	return &Video{
		Repo: NewRepo[models.Video](db),
	}
}

// excludeAuthors 屏蔽过滤:作者在排除集内的内容不出现在任何列表查询里
func excludeAuthors(exclude []string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(exclude) == 0 {
			return db
		}
		return db.Where("user_id NOT IN ?", exclude)
	}
}

func (d *Video) GetByID(ctx context.Context, id string) (*models.Video, error) {
	return d.FindByWhere(ctx, "id = ?", id)
}

// IncrViews 再生回数自增。必须走原子 UPDATE,不允许读-改-写
func (d *Video) IncrViews(ctx context.Context, videoID string) error {
	return d.Db.WithContext(ctx).Model(&models.Video{}).
		Where("id = ?", videoID).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (d *Video) UpdateMeta(ctx context.Context, videoID string, updates map[string]any) error {
	return d.Db.WithContext(ctx).Model(&models.Video{}).
		Where("id = ?", videoID).
		Updates(updates).Error
}

// DeleteCascade 删除视频及其全部派生行:三层评论树、历史记录、收藏、点赞。
// 整体一个事务,崩溃不会留下孤儿行
func (d *Video) DeleteCascade(ctx context.Context, videoID string) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		commentIDs := tx.Model(&models.Comment{}).Select("id").Where("video_id = ?", videoID)
		replyIDs := tx.Model(&models.Reply{}).Select("id").Where("comment_id IN (?)", commentIDs)

		if err := tx.Where("reply_id IN (?)", replyIDs).Delete(&models.ReplyToReply{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_id IN (?)", commentIDs).Delete(&models.Reply{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&models.History{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&models.MyList{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&models.GoodVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", videoID).Delete(&models.Video{}).Error
	})
}

// ListLatest 新着顺
func (d *Video) ListLatest(ctx context.Context, exclude []string, limit int) ([]*models.Video, error) {
	var videos []*models.Video
	err := d.Db.WithContext(ctx).
		Scopes(excludeAuthors(exclude)).
		Order("created_at DESC").
		Limit(limit).
		Find(&videos).Error
	return videos, err
}

func (d *Video) ListByUser(ctx context.Context, userID string) ([]*models.Video, error) {
	var videos []*models.Video
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&videos).Error
	return videos, err
}

// ListByAuthors 关注流:指定作者集合的最新视频
func (d *Video) ListByAuthors(ctx context.Context, authorIDs []string, limit int) ([]*models.Video, error) {
	if len(authorIDs) == 0 {
		return []*models.Video{}, nil
	}
	var videos []*models.Video
	err := d.Db.WithContext(ctx).
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC").
		Limit(limit).
		Find(&videos).Error
	return videos, err
}

func (d *Video) ListByIDs(ctx context.Context, ids []string) ([]*models.Video, error) {
	if len(ids) == 0 {
		return []*models.Video{}, nil
	}
	var videos []*models.Video
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("created_at DESC").
		Find(&videos).Error
	return videos, err
}

// ListRelated 同分类的关联视频,排除当前视频本身
func (d *Video) ListRelated(ctx context.Context, categoryID, excludeVideoID string, exclude []string, limit int) ([]*models.Video, error) {
	var videos []*models.Video
	err := d.Db.WithContext(ctx).
		Scopes(excludeAuthors(exclude)).
		Where("category_id = ? AND id <> ?", categoryID, excludeVideoID).
		Order("created_at DESC").
		Limit(limit).
		Find(&videos).Error
	return videos, err
}

// searchScope 检索词 AND 连接,标题或说明文的部分一致
func searchScope(words []string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, w := range words {
			like := "%" + w + "%"
			db = db.Where("(title LIKE ? OR description LIKE ?)", like, like)
		}
		return db
	}
}

func (d *Video) Search(ctx context.Context, words, exclude []string, offset, limit int) ([]*models.Video, error) {
	var videos []*models.Video
	err := d.Db.WithContext(ctx).
		Scopes(searchScope(words), excludeAuthors(exclude)).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&videos).Error
	return videos, err
}

func (d *Video) SearchCount(ctx context.Context, words, exclude []string) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Video{}).
		Scopes(searchScope(words), excludeAuthors(exclude)).
		Count(&count).Error
	return count, err
}
