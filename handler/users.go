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

type Users struct {
	Config          *config.Config
	UserPageService service.IUserPageService
}

func (h *Users) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1/users")
	g.GET("/me", authorize, context.Wrap(h.MyPage))
	g.GET("/:user_id", optional, context.Wrap(h.Profile))
}

func (h *Users) MyPage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	page, err := h.UserPageService.MyPage(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, page)
	return nil
}

func (h *Users) Profile(c *gin.Context) error {
	viewer := context.OptionalUserID(c)
	profile, err := h.UserPageService.Profile(c.Request.Context(), viewer, c.Param("user_id"))
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}
