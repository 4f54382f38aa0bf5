package message

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agora/internal/model/auth"
	httputil "agora/internal/pkg/http"
)

// UpdateRequest 编辑留言请求
type UpdateRequest struct {
	Text string `json:"text" binding:"required,max=10000"` // 新内容（必填）
}

// Update 编辑留言（仅作者本人）
// @Summary      编辑留言
// @Tags         留言
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string         true  "留言ID"
// @Param        request  body      UpdateRequest  true  "内容"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /api/v1/messages/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    httputil.CodeInvalidBody,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	view, err := h.messageService.UpdateText(c.Request.Context(),
		c.Param("id"), current.ID, req.Text, auth.UserRole(current.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "Message updated",
		"data":    view,
	})
}

// Delete 删除留言（作者本人或管理角色）
// @Summary      删除留言
// @Tags         留言
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "留言ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/messages/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	err := h.messageService.Delete(c.Request.Context(),
		c.Param("id"), current.ID, auth.UserRole(current.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "Message deleted",
	})
}
