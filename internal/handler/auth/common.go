package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"agora/internal/model/auth"
	httputil "agora/internal/pkg/http"
	"agora/internal/service"
)

// ErrorResponse 错误响应类型别名（使用共用的 http.ErrorResponse）
type ErrorResponse = httputil.ErrorResponse

// UserInfo 用户信息（用于响应，所有API共用）
type UserInfo struct {
	ID          string `json:"id"`
	Login       string `json:"login"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	Email       string `json:"email,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	Role        string `json:"role"`   // user/mod/admin
	Status      string `json:"status"` // pending/active/inactive/rejected
	LastLoginAt string `json:"last_login_at,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// toUserInfo 将User实体转换为UserInfo（所有API共用）
func toUserInfo(user *auth.User) UserInfo {
	info := UserInfo{
		ID:        user.ID,
		Login:     user.Login,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Bio:       user.Bio,
		Avatar:    user.Avatar,
		Role:      string(user.Role),
		Status:    string(user.Status),
	}

	if user.LastLoginAt != nil {
		info.LastLoginAt = user.LastLoginAt.Format(time.RFC3339)
	}
	info.CreatedAt = user.CreatedAt.Format(time.RFC3339)

	return info
}

// respondError 将Service错误映射到HTTP状态码和业务错误码
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := httputil.CodeInternal

	switch {
	case errors.Is(err, service.ErrInvalidCredential):
		status, code = http.StatusUnauthorized, httputil.CodeInvalidCredential
	case errors.Is(err, service.ErrInvalidToken):
		status, code = http.StatusUnauthorized, httputil.CodeInvalidToken
	case errors.Is(err, service.ErrExpiredToken):
		status, code = http.StatusUnauthorized, httputil.CodeExpiredToken
	case errors.Is(err, service.ErrUserPending):
		status, code = http.StatusForbidden, httputil.CodePendingAccount
	case errors.Is(err, service.ErrUserInactive):
		status, code = http.StatusForbidden, httputil.CodeInactiveAccount
	case errors.Is(err, service.ErrLoginTaken):
		status, code = http.StatusConflict, httputil.CodeConflict
	case errors.Is(err, service.ErrUserNotFound):
		status, code = http.StatusUnauthorized, httputil.CodeInvalidToken
	case errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrInvalidLogin):
		status, code = http.StatusBadRequest, httputil.CodeValidation
	}

	c.JSON(status, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
