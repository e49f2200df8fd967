package service

import (
	"context"

	"Tube/pkg/response"
	"Tube/types"
)

// FollowStore 关注边读写,由 dao.FollowDAO 实现
type FollowStore interface {
	IsFollowing(ctx context.Context, fromUserID, toUserID string) (bool, error)
	Create(ctx context.Context, fromUserID, toUserID string) error
	Delete(ctx context.Context, fromUserID, toUserID string) (int64, error)
	FollowingIDs(ctx context.Context, fromUserID string) ([]string, error)
	FollowerIDs(ctx context.Context, toUserID string) ([]string, error)
}

// BlockEdgeStore 屏蔽边读写,由 dao.BlockDAO 实现
type BlockEdgeStore interface {
	IsBlocked(ctx context.Context, fromUserID, toUserID string) (bool, error)
	Create(ctx context.Context, fromUserID, toUserID string) error
	Delete(ctx context.Context, fromUserID, toUserID string) (int64, error)
	BlockedIDs(ctx context.Context, fromUserID string) ([]string, error)
}

var _ IRelationService = (*RelationService)(nil)

type IRelationService interface {
	Follow(ctx context.Context, userID, targetID string) error
	Unfollow(ctx context.Context, userID, targetID string) error
	Block(ctx context.Context, userID, targetID string) error
	Unblock(ctx context.Context, userID, targetID string) error
	Config(ctx context.Context, userID string) (*types.ConfigResponse, error)
}

type RelationService struct {
	Follows FollowStore
	Blocks  BlockEdgeStore
	Vis     IVisibilityService
}

// Follow 幂等:已关注时直接成功。拉黑与关注互相独立
func (s *RelationService) Follow(ctx context.Context, userID, targetID string) error {
	if userID == targetID {
		return response.NewValidation("不能关注自己", "target_id")
	}

	followed, err := s.Follows.IsFollowing(ctx, userID, targetID)
	if err != nil {
		return err
	}
	if followed {
		return nil
	}
	return s.Follows.Create(ctx, userID, targetID)
}

func (s *RelationService) Unfollow(ctx context.Context, userID, targetID string) error {
	if userID == targetID {
		return response.NewValidation("不能取消关注自己", "target_id")
	}
	_, err := s.Follows.Delete(ctx, userID, targetID)
	return err
}

// Block 拉黑同样幂等,变化后立即失效屏蔽集缓存。
// 不触碰关注边:解除拉黑后关注关系原样恢复生效
func (s *RelationService) Block(ctx context.Context, userID, targetID string) error {
	if userID == targetID {
		return response.NewValidation("不能拉黑自己", "target_id")
	}

	blocked, err := s.Blocks.IsBlocked(ctx, userID, targetID)
	if err != nil {
		return err
	}
	if blocked {
		return nil
	}
	if err := s.Blocks.Create(ctx, userID, targetID); err != nil {
		return err
	}
	s.Vis.Invalidate(userID)
	return nil
}

func (s *RelationService) Unblock(ctx context.Context, userID, targetID string) error {
	if userID == targetID {
		return response.NewValidation("不能解除拉黑自己", "target_id")
	}
	if _, err := s.Blocks.Delete(ctx, userID, targetID); err != nil {
		return err
	}
	s.Vis.Invalidate(userID)
	return nil
}

// Config 设置页:关注/粉丝/拉黑三份名单
func (s *RelationService) Config(ctx context.Context, userID string) (*types.ConfigResponse, error) {
	following, err := s.Follows.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	followers, err := s.Follows.FollowerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	blocked, err := s.Blocks.BlockedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &types.ConfigResponse{
		Following: following,
		Followers: followers,
		Blocked:   blocked,
	}, nil
}
