package admin

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"agora/internal/model/auth"
	"agora/internal/pkg/ctxutil"
	httputil "agora/internal/pkg/http"
	"agora/internal/service"
)

// ErrorResponse 错误响应类型别名（使用共用的 http.ErrorResponse）
type ErrorResponse = httputil.ErrorResponse

// UserInfo 用户信息（管理后台视图，不含密码哈希）
type UserInfo struct {
	ID          string `json:"id"`
	Login       string `json:"login"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	Email       string `json:"email,omitempty"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	LastLoginAt string `json:"last_login_at,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// toUserInfo 将User实体转换为UserInfo
func toUserInfo(user *auth.User) UserInfo {
	info := UserInfo{
		ID:        user.ID,
		Login:     user.Login,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      string(user.Role),
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
	if user.LastLoginAt != nil {
		info.LastLoginAt = user.LastLoginAt.Format(time.RFC3339)
	}
	return info
}

// toUserInfoList 将User列表转换为UserInfo列表
func toUserInfoList(users []*auth.User) []UserInfo {
	result := make([]UserInfo, len(users))
	for i, u := range users {
		result[i] = toUserInfo(u)
	}
	return result
}

// currentUser 获取当前登录用户，未登录时写出401
func currentUser(c *gin.Context) (ctxutil.User, bool) {
	current, ok := ctxutil.GetUser(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    httputil.CodeInvalidToken,
			Message: "Not authenticated",
		})
	}
	return current, ok
}

// respondError 将Service错误映射到HTTP状态码和业务错误码
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := httputil.CodeInternal

	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrNotPending):
		status, code = http.StatusNotFound, httputil.CodeNotFound
	case errors.Is(err, service.ErrCannotModifySelf),
		errors.Is(err, service.ErrCannotModifyAdmin),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidTransition):
		status, code = http.StatusBadRequest, httputil.CodeValidation
	}

	c.JSON(status, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
