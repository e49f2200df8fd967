package service

import (
	"context"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// blockedSetTTL 屏蔽集合的进程内缓存时长。拉黑/解除时主动失效,
// 这里只兜底多实例间的过期
const blockedSetTTL = 30 * time.Second

type BlockStore interface {
	BlockedIDs(ctx context.Context, fromUserID string) ([]string, error)
	IsBlocked(ctx context.Context, fromUserID, toUserID string) (bool, error)
}

var _ IVisibilityService = (*VisibilityService)(nil)

// IVisibilityService 屏蔽过滤器:任何内容列表都要先经过它拿到排除集,
// 单页访问用 CanView 判定
type IVisibilityService interface {
	// BlockedSet viewer 拉黑的作者集合,这些作者的内容从 viewer 的
	// 首页/检索/用户页/履历一览中排除。匿名 viewer 返回空集
	BlockedSet(ctx context.Context, viewer string) ([]string, error)
	// CanView 单页访问判定:任一方向存在拉黑边即拒绝
	CanView(ctx context.Context, viewer, ownerID string) (bool, error)
	// Invalidate 拉黑关系变化后使缓存失效
	Invalidate(viewer string)
}

type blockedEntry struct {
	ids       []string
	expiresAt time.Time
}

type VisibilityService struct {
	Blocks BlockStore
	cache  cmap.ConcurrentMap[string, blockedEntry]
}

func NewVisibilityService(blocks BlockStore) *VisibilityService {
	return &VisibilityService{
		Blocks: blocks,
		cache:  cmap.New[blockedEntry](),
	}
}

func (s *VisibilityService) BlockedSet(ctx context.Context, viewer string) ([]string, error) {
	if viewer == "" {
		return nil, nil
	}

	if entry, ok := s.cache.Get(viewer); ok && time.Now().Before(entry.expiresAt) {
		return entry.ids, nil
	}

	ids, err := s.Blocks.BlockedIDs(ctx, viewer)
	if err != nil {
		return nil, err
	}

	s.cache.Set(viewer, blockedEntry{ids: ids, expiresAt: time.Now().Add(blockedSetTTL)})
	return ids, nil
}

func (s *VisibilityService) CanView(ctx context.Context, viewer, ownerID string) (bool, error) {
	if viewer == "" || ownerID == "" || viewer == ownerID {
		return true, nil
	}

	// viewer 拉黑对方或被对方拉黑,两个方向都拒绝访问
	blocked, err := s.Blocks.IsBlocked(ctx, viewer, ownerID)
	if err != nil {
		return false, err
	}
	if blocked {
		return false, nil
	}

	blocked, err = s.Blocks.IsBlocked(ctx, ownerID, viewer)
	if err != nil {
		return false, err
	}
	return !blocked, nil
}

func (s *VisibilityService) Invalidate(viewer string) {
	s.cache.Remove(viewer)
}
