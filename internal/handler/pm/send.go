package pm

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httputil "agora/internal/pkg/http"
)

// SendRequest 发送私信请求
// recipient 可以是用户ID或登录名；
// conversation_id 指定时沿用已有会话，recipient 可省略
type SendRequest struct {
	Recipient      string `json:"recipient"`                         // 接收方（ID或登录名）
	ConversationID string `json:"conversation_id"`                   // 会话ID（可选）
	Text           string `json:"text" binding:"required,max=10000"` // 内容（必填）
}

// Send 发送私信
// @Summary      发送私信
// @Description  未指定会话时按接收方 find-or-create 会话
// @Tags         私信
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      SendRequest  true  "私信"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /api/v1/private-messages/send [post]
func (h *Handler) Send(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    httputil.CodeInvalidBody,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	if req.Recipient == "" && req.ConversationID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    httputil.CodeValidation,
			Message: "recipient or conversation_id is required",
		})
		return
	}

	result, err := h.pmService.Send(c.Request.Context(),
		current.ID, req.Recipient, req.ConversationID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "Message sent",
		"data":    result,
	})
}
