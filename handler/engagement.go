package handler

import (
	"net/http"

	"Tube/config"
	"Tube/middleware"
	"Tube/pkg/context"
	"Tube/pkg/response"
	"Tube/service"

	"github.com/gin-gonic/gin"
)

type Engagement struct {
	Config            *config.Config
	EngagementService service.IEngagementService
}

func (h *Engagement) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1", authorize)
	g.POST("/videos/:video_id/good", context.Wrap(h.ToggleGood))
	g.POST("/videos/:video_id/mylist", context.Wrap(h.ToggleMyList))
	g.GET("/history", context.Wrap(h.ListHistory))
	g.GET("/mylist", context.Wrap(h.ListMyList))
}

func (h *Engagement) ToggleGood(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	result, err := h.EngagementService.ToggleGood(c.Request.Context(), userID, c.Param("video_id"))
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *Engagement) ToggleMyList(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	result, err := h.EngagementService.ToggleMyList(c.Request.Context(), userID, c.Param("video_id"))
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *Engagement) ListHistory(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	result, err := h.EngagementService.ListHistory(c.Request.Context(), userID, pageQuery(c))
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *Engagement) ListMyList(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	result, err := h.EngagementService.ListMyList(c.Request.Context(), userID, pageQuery(c))
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
