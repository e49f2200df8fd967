package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"Tube/models"
	"Tube/pkg/log"
	"Tube/pkg/response"
	"Tube/pkg/uid"
	"Tube/types"

	"github.com/sourcegraph/conc/pool"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const relatedAmount = 10

// VideoStore 视频主表的存储契约,由 dao.Video 实现
type VideoStore interface {
	Create(ctx context.Context, video *models.Video) error
	GetByID(ctx context.Context, id string) (*models.Video, error)
	UpdateMeta(ctx context.Context, videoID string, updates map[string]any) error
	DeleteCascade(ctx context.Context, videoID string) error
	ListLatest(ctx context.Context, exclude []string, limit int) ([]*models.Video, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Video, error)
	ListByAuthors(ctx context.Context, authorIDs []string, limit int) ([]*models.Video, error)
	ListByIDs(ctx context.Context, ids []string) ([]*models.Video, error)
	ListRelated(ctx context.Context, categoryID, excludeVideoID string, exclude []string, limit int) ([]*models.Video, error)
	Search(ctx context.Context, words, exclude []string, offset, limit int) ([]*models.Video, error)
	SearchCount(ctx context.Context, words, exclude []string) (int64, error)
}

// CommentCounter 列表页/单页的评论数,由 dao.Comment 实现
type CommentCounter interface {
	CountComments(ctx context.Context, videoID string) (int64, error)
	BatchCountComments(ctx context.Context, videoIDs []string) (map[string]int64, error)
}

// MyListCounter 收藏数与已收藏判定,由 dao.MyListDAO 实现
type MyListCounter interface {
	CountForVideo(ctx context.Context, videoID string) (int64, error)
	BatchCountForVideos(ctx context.Context, videoIDs []string) (map[string]int64, error)
	GetByUserVideo(ctx context.Context, userID, videoID string) (*models.MyList, error)
}

// GoodCounter 点赞数与已点赞判定,由 dao.GoodDAO 实现
type GoodCounter interface {
	CountForVideo(ctx context.Context, videoID string) (int64, error)
	GetByUserVideo(ctx context.Context, userID, videoID string) (*models.GoodVideo, error)
}

// FollowReader 关注流需要的关注边读取,由 dao.FollowDAO 实现
type FollowReader interface {
	FollowingIDs(ctx context.Context, fromUserID string) ([]string, error)
}

// RecentHistoryReader 首页“最近看过”栏,由 dao.HistoryDAO 实现
type RecentHistoryReader interface {
	RecentVideoIDs(ctx context.Context, userID string, limit int) ([]string, error)
}

// CategoryReader 上传/编辑时校验分类引用,由 dao.Category 实现
type CategoryReader interface {
	GetByID(ctx context.Context, id string) (*models.VideoCategory, error)
}

var _ IVideoService = (*VideoService)(nil)

type IVideoService interface {
	Upload(ctx context.Context, userID string, req *types.UploadVideoRequest) (*models.Video, error)
	Feed(ctx context.Context, viewer string) (*types.FeedResponse, error)
	Search(ctx context.Context, viewer, word string, page int) (*types.SearchResponse, error)
	Single(ctx context.Context, viewer, videoID string) (*types.VideoSingleResponse, error)
	Edit(ctx context.Context, requester, videoID string, req *types.EditVideoRequest) error
	Delete(ctx context.Context, requester, videoID string) error
}

type VideoService struct {
	Videos     VideoStore
	Comments   CommentCounter
	MyLists    MyListCounter
	Goods      GoodCounter
	Follows    FollowReader
	Histories  RecentHistoryReader
	Categories CategoryReader
	Vis        IVisibilityService
	Engagement IEngagementService
	Threads    ICommentService
	Media      IMediaService
}

func (s *VideoService) Upload(ctx context.Context, userID string, req *types.UploadVideoRequest) (*models.Video, error) {
	if req.Title == "" {
		return nil, response.NewValidation("标题不能为空", "title")
	}
	if utf8.RuneCountInString(req.Title) > 50 {
		return nil, response.NewValidation("标题过长", "title")
	}
	if utf8.RuneCountInString(req.Description) > 500 {
		return nil, response.NewValidation("说明过长", "description")
	}

	category, err := s.Categories.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, response.NewNotFound("视频分类不存在")
	}

	video := &models.Video{
		ID:          uid.NewID(),
		CategoryID:  req.CategoryID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		MediaURL:    req.MediaURL,
		Thumbnail:   req.Thumbnail,
		CreatedAt:   time.Now(),
	}
	if req.MediaData != "" {
		video.MediaData = datatypes.JSON(req.MediaData)
	}
	if err := s.Videos.Create(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// Feed 首页三栏:新着 / 最近看过 / 关注的人的投稿。
// 三栏都先过屏蔽集,匿名访问只有新着栏
func (s *VideoService) Feed(ctx context.Context, viewer string) (*types.FeedResponse, error) {
	exclude, err := s.Vis.BlockedSet(ctx, viewer)
	if err != nil {
		return nil, err
	}
	excludeSet := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		excludeSet[id] = struct{}{}
	}

	resp := &types.FeedResponse{}
	p := pool.New().WithErrors()

	p.Go(func() error {
		latests, err := s.Videos.ListLatest(ctx, exclude, FeedAmount)
		if err != nil {
			return err
		}
		items, err := s.enrich(ctx, latests)
		if err != nil {
			return err
		}
		resp.Latests = items
		return nil
	})

	if viewer != "" {
		p.Go(func() error {
			recentIDs, err := s.Histories.RecentVideoIDs(ctx, viewer, FeedAmount)
			if err != nil {
				return err
			}
			videos, err := s.Videos.ListByIDs(ctx, recentIDs)
			if err != nil {
				return err
			}
			visible := make([]*models.Video, 0, len(videos))
			for _, v := range videos {
				if _, hidden := excludeSet[v.UserID]; hidden {
					continue
				}
				visible = append(visible, v)
			}
			items, err := s.enrich(ctx, visible)
			if err != nil {
				return err
			}
			resp.Histories = items
			return nil
		})

		p.Go(func() error {
			followingIDs, err := s.Follows.FollowingIDs(ctx, viewer)
			if err != nil {
				return err
			}
			authors := make([]string, 0, len(followingIDs))
			for _, id := range followingIDs {
				if _, hidden := excludeSet[id]; hidden {
					continue
				}
				authors = append(authors, id)
			}
			videos, err := s.Videos.ListByAuthors(ctx, authors, FeedAmount)
			if err != nil {
				return err
			}
			items, err := s.enrich(ctx, videos)
			if err != nil {
				return err
			}
			resp.Follows = items
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}

// normalizeSearchWords 全角空格归一为半角后按空白切词,各词 AND 检索
func normalizeSearchWords(word string) []string {
	return strings.Fields(strings.ReplaceAll(word, "　", " "))
}

func (s *VideoService) Search(ctx context.Context, viewer, word string, page int) (*types.SearchResponse, error) {
	words := normalizeSearchWords(word)
	exclude, err := s.Vis.BlockedSet(ctx, viewer)
	if err != nil {
		return nil, err
	}

	page = normalizePage(page)
	videos, err := s.Videos.Search(ctx, words, exclude, pageOffset(page, SearchPerPage), SearchPerPage)
	if err != nil {
		return nil, err
	}
	amount, err := s.Videos.SearchCount(ctx, words, exclude)
	if err != nil {
		return nil, err
	}
	items, err := s.enrich(ctx, videos)
	if err != nil {
		return nil, err
	}

	return &types.SearchResponse{
		Videos: items,
		Amount: amount,
		Page:   page,
	}, nil
}

// Single 单页:可见性判定在所有副作用之前,拒绝访问时不计再生数
func (s *VideoService) Single(ctx context.Context, viewer, videoID string) (*types.VideoSingleResponse, error) {
	video, err := s.Videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, response.NewNotFound("视频不存在")
	}

	ok, err := s.Vis.CanView(ctx, viewer, video.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, response.NewAccessDenied("无权访问该视频")
	}

	if err := s.Engagement.RecordView(ctx, viewer, videoID); err != nil {
		return nil, err
	}

	resp := &types.VideoSingleResponse{
		Video:    video,
		Duration: extractDuration(video.MediaData),
	}

	exclude, err := s.Vis.BlockedSet(ctx, viewer)
	if err != nil {
		return nil, err
	}

	p := pool.New().WithErrors()
	p.Go(func() error {
		count, err := s.Comments.CountComments(ctx, videoID)
		if err != nil {
			return err
		}
		resp.NumComments = count
		return nil
	})
	p.Go(func() error {
		count, err := s.Goods.CountForVideo(ctx, videoID)
		if err != nil {
			return err
		}
		resp.NumGoods = count
		return nil
	})
	p.Go(func() error {
		count, err := s.MyLists.CountForVideo(ctx, videoID)
		if err != nil {
			return err
		}
		resp.NumMyLists = count
		return nil
	})
	p.Go(func() error {
		relates, err := s.Videos.ListRelated(ctx, video.CategoryID, videoID, exclude, relatedAmount)
		if err != nil {
			return err
		}
		resp.Relates = relates
		return nil
	})
	if viewer != "" {
		p.Go(func() error {
			good, err := s.Goods.GetByUserVideo(ctx, viewer, videoID)
			if err != nil {
				return err
			}
			resp.AlreadyGood = good != nil
			return nil
		})
		p.Go(func() error {
			entry, err := s.MyLists.GetByUserVideo(ctx, viewer, videoID)
			if err != nil {
				return err
			}
			resp.AlreadyMyList = entry != nil
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	comments, err := s.Threads.ListComments(ctx, viewer, videoID, 1)
	if err != nil {
		return nil, err
	}
	resp.Comments = comments
	return resp, nil
}

// Edit 仅限作者本人。编辑后打 edited 标记
func (s *VideoService) Edit(ctx context.Context, requester, videoID string, req *types.EditVideoRequest) error {
	video, err := s.Videos.GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return response.NewNotFound("视频不存在")
	}
	if video.UserID != requester {
		return response.NewAccessDenied("只能编辑自己的视频")
	}

	updates := map[string]any{"edited": true}
	if req.Title != "" {
		if utf8.RuneCountInString(req.Title) > 50 {
			return response.NewValidation("标题过长", "title")
		}
		updates["title"] = req.Title
	}
	if req.Description != "" {
		if utf8.RuneCountInString(req.Description) > 500 {
			return response.NewValidation("说明过长", "description")
		}
		updates["description"] = req.Description
	}
	if req.CategoryID != "" {
		category, err := s.Categories.GetByID(ctx, req.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return response.NewNotFound("视频分类不存在")
		}
		updates["category_id"] = req.CategoryID
	}

	return s.Videos.UpdateMeta(ctx, videoID, updates)
}

func (s *VideoService) Delete(ctx context.Context, requester, videoID string) error {
	video, err := s.Videos.GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return response.NewNotFound("视频不存在")
	}
	if video.UserID != requester {
		return response.NewAccessDenied("只能删除自己的视频")
	}

	if err := s.Videos.DeleteCascade(ctx, videoID); err != nil {
		return err
	}

	// DB 删除成功后清理 OSS 对象,失败只记日志,孤儿对象靠离线清理兜底
	if objectKey := gjson.GetBytes(video.MediaData, "object_key").String(); objectKey != "" {
		if err := s.Media.Delete(ctx, objectKey); err != nil {
			log.L.Warn("删除媒体对象失败",
				zap.String("video_id", videoID),
				zap.String("object_key", objectKey),
				zap.Error(err),
			)
		}
	}
	return nil
}

// enrich 批量补评论数/收藏数,两路计数并行
func (s *VideoService) enrich(ctx context.Context, videos []*models.Video) ([]*types.VideoItem, error) {
	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.ID)
	}

	var commentCounts, mylistCounts map[string]int64
	p := pool.New().WithErrors()
	p.Go(func() error {
		counts, err := s.Comments.BatchCountComments(ctx, ids)
		if err != nil {
			return err
		}
		commentCounts = counts
		return nil
	})
	p.Go(func() error {
		counts, err := s.MyLists.BatchCountForVideos(ctx, ids)
		if err != nil {
			return err
		}
		mylistCounts = counts
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	items := make([]*types.VideoItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, &types.VideoItem{
			Video:       *v,
			NumComments: commentCounts[v.ID],
			NumMyLists:  mylistCounts[v.ID],
			Duration:    extractDuration(v.MediaData),
		})
	}
	return items, nil
}

// extractDuration 上传层回传的 media_data JSON 里取 duration,没有就留空
func extractDuration(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return gjson.GetBytes(data, "duration").String()
}
