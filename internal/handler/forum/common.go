package forum

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"agora/internal/model/forum"
	"agora/internal/pkg/ctxutil"
	httputil "agora/internal/pkg/http"
	"agora/internal/service"
)

// ErrorResponse 错误响应类型别名（使用共用的 http.ErrorResponse）
type ErrorResponse = httputil.ErrorResponse

// ForumInfo 论坛信息（用于响应）
type ForumInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// toForumInfo 将Forum实体转换为ForumInfo
func toForumInfo(f *forum.Forum) ForumInfo {
	return ForumInfo{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		IsPublic:    f.IsPublic,
		CreatedBy:   f.CreatedBy,
		CreatedAt:   f.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   f.UpdatedAt.Format(time.RFC3339),
	}
}

// toForumInfoList 将Forum列表转换为ForumInfo列表
func toForumInfoList(forums []*forum.Forum) []ForumInfo {
	result := make([]ForumInfo, len(forums))
	for i, f := range forums {
		result[i] = toForumInfo(f)
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
	case errors.Is(err, service.ErrForumNotFound):
		status, code = http.StatusNotFound, httputil.CodeNotFound
	case errors.Is(err, service.ErrForumAccessDenied):
		status, code = http.StatusForbidden, httputil.CodeForbidden
	case errors.Is(err, service.ErrForumNameTaken):
		status, code = http.StatusConflict, httputil.CodeConflict
	case errors.Is(err, service.ErrInvalidForumName):
		status, code = http.StatusBadRequest, httputil.CodeValidation
	}

	c.JSON(status, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
