package service

import (
	"context"
	"time"

	"Tube/models"
	"Tube/pkg/response"
	"Tube/pkg/uid"
	"Tube/types"
)

// NotifyStore 通知及投递行的存储契约,由 dao.NotifyDAO 实现
type NotifyStore interface {
	CreateWithTargets(ctx context.Context, notify *models.Notify, userIDs []string) error
	GetCategory(ctx context.Context, id string) (*models.NotifyCategory, error)
	GetTarget(ctx context.Context, notifyID, userID string) (*models.NotifyTarget, error)
	SetTargetRead(ctx context.Context, targetID string, read bool) error
	BulkSetRead(ctx context.Context, notifyIDs []string, read bool) (int64, error)
	TargetUserIDs(ctx context.Context, notifyIDs []string) ([]string, error)
	ListForUser(ctx context.Context, userID string, offset, limit int) ([]*models.NotifyFeedRow, error)
	CountForUser(ctx context.Context, userID string) (int64, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
}

// UnreadCache 未读数缓存,redis 实现见 dao/cache
type UnreadCache interface {
	Incr(ctx context.Context, userID string, delta int64)
	Get(ctx context.Context, userID string) int64
	Set(ctx context.Context, userID string, count int64)
	Del(ctx context.Context, userID string)
}

var _ INotifyService = (*NotifyService)(nil)

type INotifyService interface {
	Create(ctx context.Context, req *types.CreateNotifyRequest) (*models.Notify, error)
	MarkRead(ctx context.Context, userID, notifyID string, read bool) error
	BulkMarkRead(ctx context.Context, notifyIDs []string, read bool) (int64, error)
	ListForUser(ctx context.Context, userID string, page int) (*types.NotifyListResponse, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

type NotifyService struct {
	Store  NotifyStore
	Unread UnreadCache
}

// Create 发布通知并同步投递给全部收件人。收件人先去重,
// 投递行靠 (notify, user) 唯一索引保证幂等,重试不会重复计数以外的写入
func (s *NotifyService) Create(ctx context.Context, req *types.CreateNotifyRequest) (*models.Notify, error) {
	recipients := dedupe(req.Recipients)
	if len(recipients) == 0 {
		return nil, response.NewValidation("收件人不能为空", "recipients")
	}

	var categoryID *string
	if req.CategoryID != "" {
		category, err := s.Store.GetCategory(ctx, req.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, response.NewNotFound("通知分类不存在")
		}
		categoryID = &req.CategoryID
	}

	notify := &models.Notify{
		ID:         uid.NewID(),
		CategoryID: categoryID,
		Title:      req.Title,
		Content:    req.Content,
		CreatedAt:  time.Now(),
	}
	if err := s.Store.CreateWithTargets(ctx, notify, recipients); err != nil {
		return nil, err
	}

	for _, userID := range recipients {
		s.Unread.Incr(ctx, userID, 1)
	}
	return notify, nil
}

// MarkRead 对 (notify, user) 的唯一投递行切换既读状态。
// 已处于目标状态时直接返回,重复调用不产生额外写入
func (s *NotifyService) MarkRead(ctx context.Context, userID, notifyID string, read bool) error {
	target, err := s.Store.GetTarget(ctx, notifyID, userID)
	if err != nil {
		return err
	}
	if target == nil {
		return response.NewNotFound("通知不存在")
	}
	if target.Read == read {
		return nil
	}

	if err := s.Store.SetTargetRead(ctx, target.ID, read); err != nil {
		return err
	}
	s.Unread.Del(ctx, userID)
	return nil
}

// BulkMarkRead 管理端批量更新,逐个失效受影响用户的未读缓存
func (s *NotifyService) BulkMarkRead(ctx context.Context, notifyIDs []string, read bool) (int64, error) {
	if len(notifyIDs) == 0 {
		return 0, response.NewValidation("通知 ID 不能为空", "notify_ids")
	}

	userIDs, err := s.Store.TargetUserIDs(ctx, notifyIDs)
	if err != nil {
		return 0, err
	}
	affected, err := s.Store.BulkSetRead(ctx, notifyIDs, read)
	if err != nil {
		return 0, err
	}
	for _, userID := range userIDs {
		s.Unread.Del(ctx, userID)
	}
	return affected, nil
}

func (s *NotifyService) ListForUser(ctx context.Context, userID string, page int) (*types.NotifyListResponse, error) {
	page = normalizePage(page)
	rows, err := s.Store.ListForUser(ctx, userID, pageOffset(page, NotifyPerPage), NotifyPerPage)
	if err != nil {
		return nil, err
	}
	amount, err := s.Store.CountForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	unread, err := s.UnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &types.NotifyListResponse{
		Notifies: rows,
		Amount:   amount,
		Unread:   unread,
		Page:     page,
	}, nil
}

// UnreadCount 缓存未命中时回源 DB 并回填
func (s *NotifyService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if cached := s.Unread.Get(ctx, userID); cached >= 0 {
		return cached, nil
	}
	count, err := s.Store.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.Unread.Set(ctx, userID, count)
	return count, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
