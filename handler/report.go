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

type Report struct {
	Config        *config.Config
	ReportService service.IReportService
}

func (h *Report) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/reports", authorize)
	g.POST("", context.Wrap(h.File))
	g.GET("/categories", context.Wrap(h.ListCategories))
}

func (h *Report) File(c *gin.Context) error {
	var req types.FileReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	report, err := h.ReportService.File(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, report)
	return nil
}

func (h *Report) ListCategories(c *gin.Context) error {
	categories, err := h.ReportService.ListCategories(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, categories)
	return nil
}
