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

type Relation struct {
	Config          *config.Config
	RelationService service.IRelationService
}

func (h *Relation) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/relations", authorize)
	g.GET("/config", context.Wrap(h.GetConfig))
	g.POST("/follow/:user_id", context.Wrap(h.Follow))
	g.DELETE("/follow/:user_id", context.Wrap(h.Unfollow))
	g.POST("/block/:user_id", context.Wrap(h.Block))
	g.DELETE("/block/:user_id", context.Wrap(h.Unblock))
}

// GetConfig 设置页的关注/粉丝/拉黑名单
func (h *Relation) GetConfig(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	cfg, err := h.RelationService.Config(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, cfg)
	return nil
}

func (h *Relation) Follow(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.RelationService.Follow(c.Request.Context(), userID, c.Param("user_id")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Relation) Unfollow(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.RelationService.Unfollow(c.Request.Context(), userID, c.Param("user_id")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Relation) Block(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.RelationService.Block(c.Request.Context(), userID, c.Param("user_id")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Relation) Unblock(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.RelationService.Unblock(c.Request.Context(), userID, c.Param("user_id")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
