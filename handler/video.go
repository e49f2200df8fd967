package handler

import (
	"net/http"
	"strconv"

	"Tube/config"
	"Tube/middleware"
	"Tube/pkg/context"
	"Tube/pkg/response"
	"Tube/service"
	"Tube/types"

	"github.com/gin-gonic/gin"
)

type Video struct {
	Config       *config.Config
	VideoService service.IVideoService
	MediaService service.IMediaService
}

func (h *Video) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1/videos")
	g.GET("", optional, context.Wrap(h.Feed))
	g.GET("/search", optional, context.Wrap(h.Search))
	g.GET("/:video_id", optional, context.Wrap(h.Single))
	g.POST("", authorize, context.Wrap(h.Upload))
	g.POST("/media", authorize, context.Wrap(h.UploadMedia))
	g.PUT("/:video_id", authorize, context.Wrap(h.Edit))
	g.DELETE("/:video_id", authorize, context.Wrap(h.Delete))
}

// Feed 首页三栏,匿名只返回新着
func (h *Video) Feed(c *gin.Context) error {
	viewer := context.OptionalUserID(c)
	feed, err := h.VideoService.Feed(c.Request.Context(), viewer)
	if err != nil {
		return err
	}
	response.Success(c, feed)
	return nil
}

func (h *Video) Search(c *gin.Context) error {
	var req types.SearchVideoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	viewer := context.OptionalUserID(c)
	result, err := h.VideoService.Search(c.Request.Context(), viewer, req.Word, req.Page)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *Video) Single(c *gin.Context) error {
	videoID := c.Param("video_id")
	viewer := context.OptionalUserID(c)

	single, err := h.VideoService.Single(c.Request.Context(), viewer, videoID)
	if err != nil {
		return err
	}
	response.Success(c, single)
	return nil
}

func (h *Video) Upload(c *gin.Context) error {
	var req types.UploadVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	video, err := h.VideoService.Upload(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, video)
	return nil
}

// UploadMedia 表单上传视频本体或缩略图,返回 OSS 地址和元信息
func (h *Video) UploadMedia(c *gin.Context) error {
	header, err := c.FormFile("media")
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	result, err := h.MediaService.UploadMedia(c.Request.Context(), userID, header)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *Video) Edit(c *gin.Context) error {
	var req types.EditVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.VideoService.Edit(c.Request.Context(), userID, c.Param("video_id"), &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Video) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.VideoService.Delete(c.Request.Context(), userID, c.Param("video_id")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func pageQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}
