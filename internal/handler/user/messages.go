package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agora/internal/model/auth"
)

// GetMessages 查看用户发布的留言
// @Summary      查看用户留言
// @Description  返回该用户在调用方可见论坛中发布的留言
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "用户ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/users/{id}/messages [get]
func (h *Handler) GetMessages(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	messages, err := h.messageService.ListByUser(c.Request.Context(),
		c.Param("id"), current.ID, auth.UserRole(current.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "OK",
		"data":    gin.H{"messages": messages},
	})
}
