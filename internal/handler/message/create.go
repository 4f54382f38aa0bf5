package message

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agora/internal/model/auth"
	httputil "agora/internal/pkg/http"
)

// CreateRequest 发布留言请求
type CreateRequest struct {
	ForumID string `json:"forum_id" binding:"required"`          // 论坛ID（必填）
	Text    string `json:"text" binding:"required,max=10000"`    // 内容（必填）
}

// Create 发布留言
// @Summary      发布留言
// @Tags         留言
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateRequest  true  "留言"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /api/v1/messages [post]
func (h *Handler) Create(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    httputil.CodeInvalidBody,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	view, err := h.messageService.Create(c.Request.Context(),
		req.ForumID, current.ID, req.Text, auth.UserRole(current.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "Message posted",
		"data":    view,
	})
}
