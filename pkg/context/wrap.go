package context

import (
	"errors"
	"net/http"

	"Tube/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应,直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(http.StatusOK, response.Response{
					Code: be.Code,
					Kind: string(be.Kind),
					Msg:  be.Error(),
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

// GetUserID 取当前登录用户 ID,未登录返回错误
func GetUserID(c *gin.Context) (string, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return "", errors.New("user_id 不存在")
	}

	uid, ok := v.(string)
	if !ok || uid == "" {
		return "", errors.New("user_id 类型错误")
	}

	return uid, nil
}

// OptionalUserID 匿名访问时返回空串
func OptionalUserID(c *gin.Context) string {
	uid, err := GetUserID(c)
	if err != nil {
		return ""
	}
	return uid
}

func GetRole(c *gin.Context) string {
	v, ok := c.Get(CtxRole)
	if !ok {
		return ""
	}
	role, _ := v.(string)
	return role
}
