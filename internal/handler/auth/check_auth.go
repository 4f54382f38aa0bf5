package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	modelauth "agora/internal/model/auth"
	"agora/internal/pkg/ctxutil"
	httputil "agora/internal/pkg/http"
	"agora/internal/service"
)

// CheckAuth 校验当前登录状态
// @Summary      校验登录状态
// @Description  验证Access Token并返回当前用户信息
// @Tags         认证
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /api/v1/auth/check-auth [get]
func (h *Handler) CheckAuth(c *gin.Context) {
	current, ok := ctxutil.GetUser(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    httputil.CodeInvalidToken,
			Message: "Not authenticated",
		})
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), current.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Token有效但账号已被停用时拒绝
	if user.Status != modelauth.UserStatusActive {
		respondError(c, service.ErrUserInactive)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "OK",
		"data":    gin.H{"user": toUserInfo(user)},
	})
}
