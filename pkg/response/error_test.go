package response

import (
	"net/http"
	"testing"
)

func TestBizErrorKinds(t *testing.T) {
	cases := []struct {
		name string
		err  *BizError
		kind Kind
		code int
	}{
		{"validation", NewValidation("输入校验失败", "title"), KindValidation, http.StatusBadRequest},
		{"not found", NewNotFound("动画不存在"), KindNotFound, http.StatusNotFound},
		{"referential", NewReferential("分类仍被引用"), KindReferential, http.StatusConflict},
		{"access denied", NewAccessDenied("无权访问"), KindAccessDenied, http.StatusForbidden},
		{"conflict", NewConflict("重复操作"), KindConflict, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Kind != tc.kind {
				t.Fatalf("kind = %s, want %s", tc.err.Kind, tc.kind)
			}
			if tc.err.Code != tc.code {
				t.Fatalf("code = %d, want %d", tc.err.Code, tc.code)
			}
		})
	}
}

func TestBizErrorFields(t *testing.T) {
	err := NewValidation("字段校验失败", "title", "description")
	want := "字段校验失败: title,description"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}

	plain := NewNotFound("不存在")
	if plain.Error() != "不存在" {
		t.Fatalf("Error() = %q", plain.Error())
	}
}
