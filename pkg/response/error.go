package response

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Kind 业务错误分类,所有对外暴露的失败都属于其中之一
type Kind string

const (
	KindValidation   Kind = "validation_error"
	KindNotFound     Kind = "not_found"
	KindReferential  Kind = "referential_block"
	KindAccessDenied Kind = "access_denied"
	KindConflict     Kind = "conflict"
)

type BizError struct {
	Code   int
	Kind   Kind
	Msg    string
	Fields []string // 校验失败时的字段名
}

func (e *BizError) Error() string {
	if len(e.Fields) > 0 {
		return e.Msg + ": " + strings.Join(e.Fields, ",")
	}
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// NewValidation 字段校验失败,附带违规字段
func NewValidation(msg string, fields ...string) *BizError {
	return &BizError{Code: http.StatusBadRequest, Kind: KindValidation, Msg: msg, Fields: fields}
}

func NewNotFound(msg string) *BizError {
	return &BizError{Code: http.StatusNotFound, Kind: KindNotFound, Msg: msg}
}

// NewReferential 删除因保护性外键引用被阻止
func NewReferential(msg string) *BizError {
	return &BizError{Code: http.StatusConflict, Kind: KindReferential, Msg: msg}
}

func NewAccessDenied(msg string) *BizError {
	return &BizError{Code: http.StatusForbidden, Kind: KindAccessDenied, Msg: msg}
}

func NewConflict(msg string) *BizError {
	return &BizError{Code: http.StatusConflict, Kind: KindConflict, Msg: msg}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
