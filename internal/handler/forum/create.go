package forum

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httputil "agora/internal/pkg/http"
)

// CreateRequest 创建论坛请求
type CreateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"` // 名称（必填，唯一）
	Description string `json:"description" binding:"max=500"`         // 描述
	IsPublic    *bool  `json:"is_public" binding:"required"`          // 是否公开（必填）
}

// Create 创建论坛
// @Summary      创建论坛
// @Tags         论坛
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateRequest  true  "论坛"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /api/v1/forums [post]
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

	f, err := h.forumService.Create(c.Request.Context(), req.Name, req.Description, *req.IsPublic, current.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "Forum created",
		"data":    toForumInfo(f),
	})
}
