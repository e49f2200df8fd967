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

type Policy struct {
	Config        *config.Config
	PolicyService service.IPolicyService
}

func (h *Policy) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/policy", authorize)
	g.GET("", context.Wrap(h.Accepted))
	g.POST("/accept", context.Wrap(h.Accept))
}

func (h *Policy) Accepted(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	accepted, err := h.PolicyService.Accepted(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"accepted": accepted})
	return nil
}

func (h *Policy) Accept(c *gin.Context) error {
	var req types.AcceptPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.PolicyService.Accept(c.Request.Context(), userID, req.Accept); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
