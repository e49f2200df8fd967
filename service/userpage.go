package service

import (
	"context"

	"Tube/pkg/response"
	"Tube/types"
)

// RatedVideoReader 个人页“高评价过的视频”,由 dao.GoodDAO 实现
type RatedVideoReader interface {
	RatedVideoIDs(ctx context.Context, userID string, limit int) ([]string, error)
}

var _ IUserPageService = (*UserPageService)(nil)

type IUserPageService interface {
	MyPage(ctx context.Context, userID string) (*types.MyPageResponse, error)
	Profile(ctx context.Context, viewer, userID string) (*types.ProfileResponse, error)
}

type UserPageService struct {
	Videos  *VideoService
	Rated   RatedVideoReader
	Follows FollowStore
	Blocks  BlockEdgeStore
	Vis     IVisibilityService
}

// MyPage 自己的投稿一览和点过赞的视频
func (s *UserPageService) MyPage(ctx context.Context, userID string) (*types.MyPageResponse, error) {
	videos, err := s.Videos.Videos.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := s.Videos.enrich(ctx, videos)
	if err != nil {
		return nil, err
	}

	ratedIDs, err := s.Rated.RatedVideoIDs(ctx, userID, FeedAmount)
	if err != nil {
		return nil, err
	}
	rated, err := s.Videos.Videos.ListByIDs(ctx, ratedIDs)
	if err != nil {
		return nil, err
	}
	ratedItems, err := s.Videos.enrich(ctx, rated)
	if err != nil {
		return nil, err
	}

	return &types.MyPageResponse{
		Videos:     items,
		GoodVideos: ratedItems,
	}, nil
}

// Profile 他人用户页。任一方向存在拉黑边即拒绝
func (s *UserPageService) Profile(ctx context.Context, viewer, userID string) (*types.ProfileResponse, error) {
	ok, err := s.Vis.CanView(ctx, viewer, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, response.NewAccessDenied("无权访问该用户页")
	}

	videos, err := s.Videos.Videos.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := s.Videos.enrich(ctx, videos)
	if err != nil {
		return nil, err
	}

	following, err := s.Follows.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	followers, err := s.Follows.FollowerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &types.ProfileResponse{
		UserID:    userID,
		Videos:    items,
		Following: len(following),
		Followers: len(followers),
	}
	if viewer != "" && viewer != userID {
		isFollowing, err := s.Follows.IsFollowing(ctx, viewer, userID)
		if err != nil {
			return nil, err
		}
		isBlocked, err := s.Blocks.IsBlocked(ctx, viewer, userID)
		if err != nil {
			return nil, err
		}
		resp.IsFollowing = isFollowing
		resp.IsBlocked = isBlocked
	}
	return resp, nil
}
