package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetPublicProfile 按登录名查看公开资料
// @Summary      查看公开资料
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Param        login  path  string  true  "登录名"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/users/profile/{login} [get]
func (h *Handler) GetPublicProfile(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	user, err := h.userService.GetPublicProfile(c.Request.Context(), c.Param("login"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "OK",
		"data":    toPublicProfileInfo(user),
	})
}
