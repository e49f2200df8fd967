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

type Notify struct {
	Config        *config.Config
	NotifyService service.INotifyService
}

func (h *Notify) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)

	g := r.Group("/v1/notifies")
	g.GET("", authorize, context.Wrap(h.List))
	g.GET("/unread", authorize, context.Wrap(h.Unread))
	g.POST("/read", authorize, context.Wrap(h.MarkRead))

	admin := r.Group("/v1/admin/notifies", authorize, middleware.Admin())
	admin.POST("", context.Wrap(h.Create))
	admin.POST("/read", context.Wrap(h.BulkMarkRead))
}

func (h *Notify) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	result, err := h.NotifyService.ListForUser(c.Request.Context(), userID, pageQuery(c))
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (h *Notify) Unread(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	count, err := h.NotifyService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"unread": count})
	return nil
}

// MarkRead 既读/未读切换,同一状态重复提交是幂等的
func (h *Notify) MarkRead(c *gin.Context) error {
	var req types.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.NotifyService.MarkRead(c.Request.Context(), userID, req.NotifyID, req.Read); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Notify) Create(c *gin.Context) error {
	var req types.CreateNotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	notify, err := h.NotifyService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, notify)
	return nil
}

func (h *Notify) BulkMarkRead(c *gin.Context) error {
	var req types.BulkMarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	affected, err := h.NotifyService.BulkMarkRead(c.Request.Context(), req.NotifyIDs, req.Read)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"affected": affected})
	return nil
}
