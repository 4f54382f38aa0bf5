package message

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agora/internal/model/auth"
	httputil "agora/internal/pkg/http"
)

// ReplyRequest 回复留言请求
type ReplyRequest struct {
	Text string `json:"text" binding:"required,max=10000"` // 回复内容（必填）
}

// AddReply 回复留言
// @Summary      回复留言
// @Description  仅支持一级回复，回复不能再被回复
// @Tags         留言
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string        true  "留言ID"
// @Param        request  body      ReplyRequest  true  "回复"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /api/v1/messages/{id}/replies [post]
func (h *Handler) AddReply(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    httputil.CodeInvalidBody,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	view, err := h.messageService.AddReply(c.Request.Context(),
		c.Param("id"), current.ID, req.Text, auth.UserRole(current.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "Reply posted",
		"data":    view,
	})
}
