package pm

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"agora/internal/pkg/ctxutil"
	httputil "agora/internal/pkg/http"
	"agora/internal/service"
)

// ErrorResponse 错误响应类型别名（使用共用的 http.ErrorResponse）
type ErrorResponse = httputil.ErrorResponse

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
	case errors.Is(err, service.ErrConversationNotFound),
		errors.Is(err, service.ErrRecipientNotFound):
		status, code = http.StatusNotFound, httputil.CodeNotFound
	case errors.Is(err, service.ErrNotParticipant):
		status, code = http.StatusForbidden, httputil.CodeForbidden
	case errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrSelfConversation):
		status, code = http.StatusBadRequest, httputil.CodeValidation
	}

	c.JSON(status, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
