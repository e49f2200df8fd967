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

type Category struct {
	Config          *config.Config
	CategoryService service.ICategoryService
}

func (h *Category) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/categories")
	g.GET("", context.Wrap(h.List))

	admin := r.Group("/v1/admin/categories", authorize, middleware.Admin())
	admin.POST("", context.Wrap(h.Create))
	admin.DELETE("/:category_id", context.Wrap(h.Delete))
}

func (h *Category) List(c *gin.Context) error {
	categories, err := h.CategoryService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, categories)
	return nil
}

func (h *Category) Create(c *gin.Context) error {
	var req types.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	category, err := h.CategoryService.Create(c.Request.Context(), req.Name)
	if err != nil {
		return err
	}
	response.Success(c, category)
	return nil
}

// Delete 分类下仍有视频时返回引用保护错误
func (h *Category) Delete(c *gin.Context) error {
	if err := h.CategoryService.Delete(c.Request.Context(), c.Param("category_id")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
