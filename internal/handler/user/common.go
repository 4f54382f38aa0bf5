package user

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

// ProfileInfo 用户资料（用于响应）
type ProfileInfo struct {
	ID        string `json:"id"`
	Login     string `json:"login"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// toProfileInfo 将User实体转换为ProfileInfo
func toProfileInfo(user *auth.User) ProfileInfo {
	return ProfileInfo{
		ID:        user.ID,
		Login:     user.Login,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Bio:       user.Bio,
		Avatar:    user.Avatar,
		Role:      string(user.Role),
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// PublicProfileInfo 公开资料（不含邮箱等私有字段）
type PublicProfileInfo struct {
	ID        string `json:"id"`
	Login     string `json:"login"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Bio       string `json:"bio,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Initials  string `json:"initials"`
	CreatedAt string `json:"created_at"`
}

// toPublicProfileInfo 将User实体转换为公开资料
func toPublicProfileInfo(user *auth.User) PublicProfileInfo {
	return PublicProfileInfo{
		ID:        user.ID,
		Login:     user.Login,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Bio:       user.Bio,
		Avatar:    user.Avatar,
		Initials:  user.Initials(),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
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
	case errors.Is(err, service.ErrUserNotFound):
		status, code = http.StatusNotFound, httputil.CodeNotFound
	case errors.Is(err, service.ErrQueryTooShort):
		status, code = http.StatusBadRequest, httputil.CodeValidation
	case errors.Is(err, service.ErrAvatarTooLarge):
		status, code = http.StatusRequestEntityTooLarge, httputil.CodePayloadTooLarge
	case errors.Is(err, service.ErrUnsupportedAvatar):
		status, code = http.StatusBadRequest, httputil.CodeValidation
	case errors.Is(err, service.ErrForumNotFound):
		status, code = http.StatusNotFound, httputil.CodeNotFound
	case errors.Is(err, service.ErrForumAccessDenied):
		status, code = http.StatusForbidden, httputil.CodeForbidden
	}

	c.JSON(status, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
