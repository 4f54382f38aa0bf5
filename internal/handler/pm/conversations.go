package pm

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListConversations 查询会话列表
// @Summary      会话列表
// @Description  调用方参与的会话，按最近更新排序，含未读标记
// @Tags         私信
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Router       /api/v1/private-messages/conversations [get]
func (h *Handler) ListConversations(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	conversations, err := h.pmService.ListConversations(c.Request.Context(), current.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "OK",
		"data":    gin.H{"conversations": conversations},
	})
}

// GetMessages 查询会话消息
// @Summary      会话消息
// @Description  按时间正序返回，并清除调用方的未读标记
// @Tags         私信
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "会话ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/private-messages/conversations/{id} [get]
func (h *Handler) GetMessages(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	messages, err := h.pmService.GetMessages(c.Request.Context(), c.Param("id"), current.ID)
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

// MarkRead 标记会话已读
// @Summary      标记已读
// @Tags         私信
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "会话ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/private-messages/conversations/{id}/read [post]
func (h *Handler) MarkRead(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.pmService.MarkRead(c.Request.Context(), c.Param("id"), current.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "Conversation marked read",
	})
}
