package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Tube/models"
	"Tube/pkg/response"
	"Tube/pkg/uid"
	"Tube/types"

	"gorm.io/gorm"
)

const toggleLockTTL = 3 * time.Second

// EngagementVideoStore 参与行为侧需要的视频读写,由 dao.Video 实现
type EngagementVideoStore interface {
	GetByID(ctx context.Context, id string) (*models.Video, error)
	IncrViews(ctx context.Context, videoID string) error
	ListByIDs(ctx context.Context, ids []string) ([]*models.Video, error)
}

// HistoryStore 观看记录,由 dao.HistoryDAO 实现
type HistoryStore interface {
	Upsert(ctx context.Context, userID, videoID string) error
	ListForUser(ctx context.Context, userID string, exclude []string, offset, limit int) ([]*models.HistoryListRow, error)
	CountForUser(ctx context.Context, userID string, exclude []string) (int64, error)
}

// MyListStore 收藏,由 dao.MyListDAO 实现
type MyListStore interface {
	GetByUserVideo(ctx context.Context, userID, videoID string) (*models.MyList, error)
	Create(ctx context.Context, entry *models.MyList) error
	DeleteByUserVideo(ctx context.Context, userID, videoID string) (int64, error)
	ListForUser(ctx context.Context, userID string, offset, limit int) ([]*models.MyList, error)
}

// GoodStore 点赞,由 dao.GoodDAO 实现
type GoodStore interface {
	GetByUserVideo(ctx context.Context, userID, videoID string) (*models.GoodVideo, error)
	Create(ctx context.Context, entry *models.GoodVideo) error
	DeleteByUserVideo(ctx context.Context, userID, videoID string) (int64, error)
}

var _ IEngagementService = (*EngagementService)(nil)

type IEngagementService interface {
	RecordView(ctx context.Context, viewer, videoID string) error
	ToggleGood(ctx context.Context, userID, videoID string) (*types.ToggleResult, error)
	ToggleMyList(ctx context.Context, userID, videoID string) (*types.ToggleResult, error)
	ListHistory(ctx context.Context, userID string, page int) (*types.HistoryListResponse, error)
	ListMyList(ctx context.Context, userID string, page int) (*types.MyListResponse, error)
}

type EngagementService struct {
	Videos    EngagementVideoStore
	Histories HistoryStore
	MyLists   MyListStore
	Goods     GoodStore
	Vis       IVisibilityService
	Lock      Locker
}

// RecordView 全局计数对任何观看都自增,匿名也算;
// 个人观看记录只在登录时落行,同一 (user, video) 始终一行
func (s *EngagementService) RecordView(ctx context.Context, viewer, videoID string) error {
	video, err := s.Videos.GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return response.NewNotFound("视频不存在")
	}

	if err := s.Videos.IncrViews(ctx, videoID); err != nil {
		return err
	}
	if viewer == "" {
		return nil
	}

	err = s.Histories.Upsert(ctx, viewer, videoID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// 并发首看:双方都没更新到行,输家撞唯一索引,重试走 UPDATE 路径
		return s.Histories.Upsert(ctx, viewer, videoID)
	}
	return err
}

// ToggleGood 点赞开关。redis 锁串行化同一 (user, video) 的并发请求,
// 锁内仍可能与残留请求竞争,唯一索引冲突时按“已存在”解释为移除
func (s *EngagementService) ToggleGood(ctx context.Context, userID, videoID string) (*types.ToggleResult, error) {
	video, err := s.Videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, response.NewNotFound("视频不存在")
	}

	lockKey := fmt.Sprintf("lock:good:%s:%s", userID, videoID)
	ok, err := s.Lock.Acquire(ctx, lockKey, toggleLockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, response.NewConflict("操作过于频繁,请稍后再试")
	}
	defer s.Lock.Release(ctx, lockKey)

	existing, err := s.Goods.GetByUserVideo(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if _, err := s.Goods.DeleteByUserVideo(ctx, userID, videoID); err != nil {
			return nil, err
		}
		return &types.ToggleResult{State: types.ToggleRemoved}, nil
	}

	err = s.Goods.Create(ctx, &models.GoodVideo{
		ID:        uid.NewID(),
		UserID:    userID,
		VideoID:   videoID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if _, derr := s.Goods.DeleteByUserVideo(ctx, userID, videoID); derr != nil {
				return nil, derr
			}
			return &types.ToggleResult{State: types.ToggleRemoved}, nil
		}
		return nil, err
	}
	return &types.ToggleResult{State: types.ToggleAdded}, nil
}

func (s *EngagementService) ToggleMyList(ctx context.Context, userID, videoID string) (*types.ToggleResult, error) {
	video, err := s.Videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, response.NewNotFound("视频不存在")
	}

	lockKey := fmt.Sprintf("lock:mylist:%s:%s", userID, videoID)
	ok, err := s.Lock.Acquire(ctx, lockKey, toggleLockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, response.NewConflict("操作过于频繁,请稍后再试")
	}
	defer s.Lock.Release(ctx, lockKey)

	existing, err := s.MyLists.GetByUserVideo(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if _, err := s.MyLists.DeleteByUserVideo(ctx, userID, videoID); err != nil {
			return nil, err
		}
		return &types.ToggleResult{State: types.ToggleRemoved}, nil
	}

	err = s.MyLists.Create(ctx, &models.MyList{
		ID:        uid.NewID(),
		UserID:    userID,
		VideoID:   videoID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if _, derr := s.MyLists.DeleteByUserVideo(ctx, userID, videoID); derr != nil {
				return nil, derr
			}
			return &types.ToggleResult{State: types.ToggleRemoved}, nil
		}
		return nil, err
	}
	return &types.ToggleResult{State: types.ToggleAdded}, nil
}

// ListHistory 一览里排除现在被拉黑的作者,History 行本身保留,
// 解除拉黑后自然恢复可见
func (s *EngagementService) ListHistory(ctx context.Context, userID string, page int) (*types.HistoryListResponse, error) {
	exclude, err := s.Vis.BlockedSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	page = normalizePage(page)
	rows, err := s.Histories.ListForUser(ctx, userID, exclude, pageOffset(page, HistoryPerPage), HistoryPerPage)
	if err != nil {
		return nil, err
	}
	amount, err := s.Histories.CountForUser(ctx, userID, exclude)
	if err != nil {
		return nil, err
	}

	return &types.HistoryListResponse{
		Histories: rows,
		Amount:    amount,
		Page:      page,
	}, nil
}

func (s *EngagementService) ListMyList(ctx context.Context, userID string, page int) (*types.MyListResponse, error) {
	page = normalizePage(page)
	entries, err := s.MyLists.ListForUser(ctx, userID, pageOffset(page, HistoryPerPage), HistoryPerPage)
	if err != nil {
		return nil, err
	}

	videoIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		videoIDs = append(videoIDs, e.VideoID)
	}
	videos, err := s.Videos.ListByIDs(ctx, videoIDs)
	if err != nil {
		return nil, err
	}
	videoByID := make(map[string]*models.Video, len(videos))
	for _, v := range videos {
		videoByID[v.ID] = v
	}

	blockedIDs, err := s.Vis.BlockedSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	blocked := make(map[string]struct{}, len(blockedIDs))
	for _, id := range blockedIDs {
		blocked[id] = struct{}{}
	}

	items := make([]*types.MyListItem, 0, len(entries))
	for _, e := range entries {
		video := videoByID[e.VideoID]
		if video != nil {
			if _, hidden := blocked[video.UserID]; hidden {
				continue
			}
		}
		items = append(items, &types.MyListItem{Entry: e, Video: video})
	}

	return &types.MyListResponse{
		Items: items,
		Page:  page,
	}, nil
}
