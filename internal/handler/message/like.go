package message

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agora/internal/model/auth"
)

// ToggleLike 切换留言点赞
// @Summary      留言点赞/取消点赞
// @Description  切换调用方在点赞集合中的成员关系，返回最新状态
// @Tags         留言
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "留言ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/messages/{id}/like [post]
func (h *Handler) ToggleLike(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	result, err := h.messageService.ToggleLike(c.Request.Context(),
		c.Param("id"), current.ID, auth.UserRole(current.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "OK",
		"data":    result,
	})
}

// ToggleReplyLike 切换回复点赞
// @Summary      回复点赞/取消点赞
// @Tags         留言
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string  true  "留言ID"
// @Param        replyId  path  string  true  "回复ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/messages/{id}/replies/{replyId}/like [post]
func (h *Handler) ToggleReplyLike(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	result, err := h.messageService.ToggleReplyLike(c.Request.Context(),
		c.Param("id"), c.Param("replyId"), current.ID, auth.UserRole(current.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "OK",
		"data":    result,
	})
}
