package forum

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httputil "agora/internal/pkg/http"
)

// UpdateAccessRequest 变更可见性请求
type UpdateAccessRequest struct {
	IsPublic *bool `json:"is_public" binding:"required"` // 是否公开（必填）
}

// UpdateAccess 变更论坛可见性
// @Summary      变更论坛可见性
// @Tags         论坛
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string               true  "论坛ID"
// @Param        request  body      UpdateAccessRequest  true  "可见性"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /api/v1/forums/{id}/access [put]
func (h *Handler) UpdateAccess(c *gin.Context) {
	var req UpdateAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    httputil.CodeInvalidBody,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	f, err := h.forumService.UpdateAccess(c.Request.Context(), c.Param("id"), *req.IsPublic)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "Forum access updated",
		"data":    toForumInfo(f),
	})
}
