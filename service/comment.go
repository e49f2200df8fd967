package service

import (
	"context"
	"time"
	"unicode/utf8"

	"Tube/models"
	"Tube/pkg/response"
	"Tube/pkg/uid"
	"Tube/types"
)

const commentMaxLen = 500

// ThreadStore 三层评论树的存储契约,由 dao.CommentDAO 实现
type ThreadStore interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	CreateReply(ctx context.Context, reply *models.Reply) error
	CreateReplyToReply(ctx context.Context, rtr *models.ReplyToReply) error
	GetComment(ctx context.Context, id string) (*models.Comment, error)
	GetReply(ctx context.Context, id string) (*models.Reply, error)
	GetReplyToReply(ctx context.Context, id string) (*models.ReplyToReply, error)
	UpdateCommentContent(ctx context.Context, id, content string) error
	UpdateReplyContent(ctx context.Context, id, content string) error
	UpdateReplyToReplyContent(ctx context.Context, id, content string) error
	DeleteCommentTree(ctx context.Context, commentID string) error
	DeleteReplyTree(ctx context.Context, replyID string) error
	DeleteReplyToReply(ctx context.Context, id string) error
	ListComments(ctx context.Context, videoID string, offset, limit int) ([]*models.Comment, error)
	CountComments(ctx context.Context, videoID string) (int64, error)
	ListReplies(ctx context.Context, commentID string, offset, limit int) ([]*models.Reply, error)
	CountReplies(ctx context.Context, commentID string) (int64, error)
	ListReplyToReplies(ctx context.Context, replyID string, offset, limit int) ([]*models.ReplyToReply, error)
	CountReplyToReplies(ctx context.Context, replyID string) (int64, error)
	BatchCountReplies(ctx context.Context, commentIDs []string) (map[string]int64, error)
}

// VideoReader 评论侧只需要读取视频
type VideoReader interface {
	GetByID(ctx context.Context, id string) (*models.Video, error)
}

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	PostComment(ctx context.Context, videoID, userID, content string) (*models.Comment, error)
	PostReply(ctx context.Context, commentID, userID, content string) (*models.Reply, error)
	PostReplyToReply(ctx context.Context, replyID, userID, content string) (*models.ReplyToReply, error)
	EditComment(ctx context.Context, commentID, requester, content string) error
	EditReply(ctx context.Context, replyID, requester, content string) error
	EditReplyToReply(ctx context.Context, id, requester, content string) error
	DeleteComment(ctx context.Context, commentID, requester string) error
	DeleteReply(ctx context.Context, replyID, requester string) error
	DeleteReplyToReply(ctx context.Context, id, requester string) error
	ListComments(ctx context.Context, viewer, videoID string, page int) (*types.CommentListResponse, error)
	ListReplies(ctx context.Context, viewer, commentID string, page int) (*types.ReplyListResponse, error)
	ListReplyToReplies(ctx context.Context, viewer, replyID string, page int) (*types.ReplyToReplyListResponse, error)
}

type CommentService struct {
	Threads ThreadStore
	Videos  VideoReader
	Vis     IVisibilityService
}

func validateContent(content string) error {
	if content == "" {
		return response.NewValidation("评论内容不能为空", "content")
	}
	if utf8.RuneCountInString(content) > commentMaxLen {
		return response.NewValidation("评论内容过长", "content")
	}
	return nil
}

// PostComment 作者以服务端认证用户为准,不信任请求体
func (s *CommentService) PostComment(ctx context.Context, videoID, userID, content string) (*models.Comment, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}

	video, err := s.Videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, response.NewNotFound("视频不存在")
	}

	comment := &models.Comment{
		ID:        uid.NewID(),
		VideoID:   videoID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.Threads.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) PostReply(ctx context.Context, commentID, userID, content string) (*models.Reply, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}

	comment, err := s.Threads.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, response.NewNotFound("评论不存在")
	}

	reply := &models.Reply{
		ID:        uid.NewID(),
		CommentID: commentID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.Threads.CreateReply(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *CommentService) PostReplyToReply(ctx context.Context, replyID, userID, content string) (*models.ReplyToReply, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}

	reply, err := s.Threads.GetReply(ctx, replyID)
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, response.NewNotFound("回复不存在")
	}

	rtr := &models.ReplyToReply{
		ID:        uid.NewID(),
		ReplyID:   replyID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.Threads.CreateReplyToReply(ctx, rtr); err != nil {
		return nil, err
	}
	return rtr, nil
}

// EditComment 仅限本人编辑
func (s *CommentService) EditComment(ctx context.Context, commentID, requester, content string) error {
	if err := validateContent(content); err != nil {
		return err
	}

	comment, err := s.Threads.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return response.NewNotFound("评论不存在")
	}
	if comment.UserID != requester {
		return response.NewAccessDenied("只能编辑自己的评论")
	}

	return s.Threads.UpdateCommentContent(ctx, commentID, content)
}

func (s *CommentService) EditReply(ctx context.Context, replyID, requester, content string) error {
	if err := validateContent(content); err != nil {
		return err
	}

	reply, err := s.Threads.GetReply(ctx, replyID)
	if err != nil {
		return err
	}
	if reply == nil {
		return response.NewNotFound("回复不存在")
	}
	if reply.UserID != requester {
		return response.NewAccessDenied("只能编辑自己的回复")
	}

	return s.Threads.UpdateReplyContent(ctx, replyID, content)
}

func (s *CommentService) EditReplyToReply(ctx context.Context, id, requester, content string) error {
	if err := validateContent(content); err != nil {
		return err
	}

	rtr, err := s.Threads.GetReplyToReply(ctx, id)
	if err != nil {
		return err
	}
	if rtr == nil {
		return response.NewNotFound("回复不存在")
	}
	if rtr.UserID != requester {
		return response.NewAccessDenied("只能编辑自己的回复")
	}

	return s.Threads.UpdateReplyToReplyContent(ctx, id, content)
}

// DeleteComment 连同下层所有回复一并删除,整个过程在单个事务中完成
func (s *CommentService) DeleteComment(ctx context.Context, commentID, requester string) error {
	comment, err := s.Threads.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return response.NewNotFound("评论不存在")
	}
	if comment.UserID != requester {
		return response.NewAccessDenied("只能删除自己的评论")
	}

	return s.Threads.DeleteCommentTree(ctx, commentID)
}

func (s *CommentService) DeleteReply(ctx context.Context, replyID, requester string) error {
	reply, err := s.Threads.GetReply(ctx, replyID)
	if err != nil {
		return err
	}
	if reply == nil {
		return response.NewNotFound("回复不存在")
	}
	if reply.UserID != requester {
		return response.NewAccessDenied("只能删除自己的回复")
	}

	return s.Threads.DeleteReplyTree(ctx, replyID)
}

func (s *CommentService) DeleteReplyToReply(ctx context.Context, id, requester string) error {
	rtr, err := s.Threads.GetReplyToReply(ctx, id)
	if err != nil {
		return err
	}
	if rtr == nil {
		return response.NewNotFound("回复不存在")
	}
	if rtr.UserID != requester {
		return response.NewAccessDenied("只能删除自己的回复")
	}

	return s.Threads.DeleteReplyToReply(ctx, id)
}

// checkVideoAccess 评论区的可见性跟随所属视频
func (s *CommentService) checkVideoAccess(ctx context.Context, viewer, videoID string) error {
	video, err := s.Videos.GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return response.NewNotFound("视频不存在")
	}

	ok, err := s.Vis.CanView(ctx, viewer, video.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return response.NewAccessDenied("无权访问该视频")
	}
	return nil
}

func (s *CommentService) ListComments(ctx context.Context, viewer, videoID string, page int) (*types.CommentListResponse, error) {
	if err := s.checkVideoAccess(ctx, viewer, videoID); err != nil {
		return nil, err
	}

	page = normalizePage(page)
	comments, err := s.Threads.ListComments(ctx, videoID, pageOffset(page, CommentsPerPage), CommentsPerPage)
	if err != nil {
		return nil, err
	}
	amount, err := s.Threads.CountComments(ctx, videoID)
	if err != nil {
		return nil, err
	}

	commentIDs := make([]string, 0, len(comments))
	for _, c := range comments {
		commentIDs = append(commentIDs, c.ID)
	}
	replyCounts, err := s.Threads.BatchCountReplies(ctx, commentIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]*models.CommentListRow, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, &models.CommentListRow{
			Comment:    *c,
			NumReplies: replyCounts[c.ID],
		})
	}

	return &types.CommentListResponse{
		VideoID:  videoID,
		Comments: rows,
		Amount:   amount,
		Page:     page,
	}, nil
}

// ListReplies 服务端回查 reply 所属的 comment 与 video,不信任客户端传入的祖先
func (s *CommentService) ListReplies(ctx context.Context, viewer, commentID string, page int) (*types.ReplyListResponse, error) {
	comment, err := s.Threads.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, response.NewNotFound("评论不存在")
	}
	if err := s.checkVideoAccess(ctx, viewer, comment.VideoID); err != nil {
		return nil, err
	}

	page = normalizePage(page)
	replies, err := s.Threads.ListReplies(ctx, commentID, pageOffset(page, CommentsPerPage), CommentsPerPage)
	if err != nil {
		return nil, err
	}
	amount, err := s.Threads.CountReplies(ctx, commentID)
	if err != nil {
		return nil, err
	}

	rows := make([]*models.ReplyListRow, 0, len(replies))
	for _, r := range replies {
		count, err := s.Threads.CountReplyToReplies(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, &models.ReplyListRow{
			Reply:      *r,
			NumReplies: count,
		})
	}

	return &types.ReplyListResponse{
		VideoID:   comment.VideoID,
		CommentID: commentID,
		Replies:   rows,
		Amount:    amount,
		Page:      page,
	}, nil
}

func (s *CommentService) ListReplyToReplies(ctx context.Context, viewer, replyID string, page int) (*types.ReplyToReplyListResponse, error) {
	reply, err := s.Threads.GetReply(ctx, replyID)
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, response.NewNotFound("回复不存在")
	}

	comment, err := s.Threads.GetComment(ctx, reply.CommentID)
	if err != nil {
		return nil, err
	}
	videoID := ""
	if comment != nil {
		videoID = comment.VideoID
		if err := s.checkVideoAccess(ctx, viewer, videoID); err != nil {
			return nil, err
		}
	}

	page = normalizePage(page)
	rtrs, err := s.Threads.ListReplyToReplies(ctx, replyID, pageOffset(page, CommentsPerPage), CommentsPerPage)
	if err != nil {
		return nil, err
	}
	amount, err := s.Threads.CountReplyToReplies(ctx, replyID)
	if err != nil {
		return nil, err
	}

	return &types.ReplyToReplyListResponse{
		VideoID: videoID,
		ReplyID: replyID,
		Replies: rtrs,
		Amount:  amount,
		Page:    page,
	}, nil
}
