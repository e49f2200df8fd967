package handler

import (
	"net/http"

	"Tube/config"
	"Tube/middleware"
	"Tube/pkg/context"
	"Tube/pkg/response"
	"Tube/service"
	"Tube/types"

	"github.com/gin-gonic/gin"
)

type Comments struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (h *Comments) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1/comments")
	g.GET("/video/:video_id", optional, context.Wrap(h.ListComments))
	g.GET("/:comment_id/replies", optional, context.Wrap(h.ListReplies))
	g.GET("/replies/:reply_id/replies", optional, context.Wrap(h.ListReplyToReplies))

	g.POST("/video/:video_id", authorize, context.Wrap(h.PostComment))
	g.POST("/:comment_id/replies", authorize, context.Wrap(h.PostReply))
	g.POST("/replies/:reply_id/replies", authorize, context.Wrap(h.PostReplyToReply))

	g.PUT("/:comment_id", authorize, context.Wrap(h.EditComment))
	g.PUT("/replies/:reply_id", authorize, context.Wrap(h.EditReply))
	g.PUT("/replies/second/:reply_id", authorize, context.Wrap(h.EditReplyToReply))

	g.DELETE("/:comment_id", authorize, context.Wrap(h.DeleteComment))
	g.DELETE("/replies/:reply_id", authorize, context.Wrap(h.DeleteReply))
	g.DELETE("/replies/second/:reply_id", authorize, context.Wrap(h.DeleteReplyToReply))
}

func (h *Comments) ListComments(c *gin.Context) error {
	viewer := context.OptionalUserID(c)
	result, err := h.CommentService.ListComments(c.Request.Context(), viewer, c.Param("video_id"), pageQuery(c))
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *Comments) ListReplies(c *gin.Context) error {
	viewer := context.OptionalUserID(c)
	result, err := h.CommentService.ListReplies(c.Request.Context(), viewer, c.Param("comment_id"), pageQuery(c))
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *Comments) ListReplyToReplies(c *gin.Context) error {
	viewer := context.OptionalUserID(c)
	result, err := h.CommentService.ListReplyToReplies(c.Request.Context(), viewer, c.Param("reply_id"), pageQuery(c))
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *Comments) PostComment(c *gin.Context) error {
	var req types.PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	comment, err := h.CommentService.PostComment(c.Request.Context(), c.Param("video_id"), userID, req.Content)
	if err != nil {
		return err
	}
	response.Success(c, comment)
	return nil
}

func (h *Comments) PostReply(c *gin.Context) error {
	var req types.PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	reply, err := h.CommentService.PostReply(c.Request.Context(), c.Param("comment_id"), userID, req.Content)
	if err != nil {
		return err
	}
	response.Success(c, reply)
	return nil
}

func (h *Comments) PostReplyToReply(c *gin.Context) error {
	var req types.PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	rtr, err := h.CommentService.PostReplyToReply(c.Request.Context(), c.Param("reply_id"), userID, req.Content)
	if err != nil {
		return err
	}
	response.Success(c, rtr)
	return nil
}

func (h *Comments) EditComment(c *gin.Context) error {
	var req types.EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.CommentService.EditComment(c.Request.Context(), c.Param("comment_id"), userID, req.Content); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Comments) EditReply(c *gin.Context) error {
	var req types.EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.CommentService.EditReply(c.Request.Context(), c.Param("reply_id"), userID, req.Content); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Comments) EditReplyToReply(c *gin.Context) error {
	var req types.EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.CommentService.EditReplyToReply(c.Request.Context(), c.Param("reply_id"), userID, req.Content); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Comments) DeleteComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.CommentService.DeleteComment(c.Request.Context(), c.Param("comment_id"), userID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Comments) DeleteReply(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.CommentService.DeleteReply(c.Request.Context(), c.Param("reply_id"), userID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Comments) DeleteReplyToReply(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.CommentService.DeleteReplyToReply(c.Request.Context(), c.Param("reply_id"), userID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
