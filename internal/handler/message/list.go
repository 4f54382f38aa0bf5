package message

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agora/internal/model/auth"
	httputil "agora/internal/pkg/http"
)

// List 查询论坛留言列表
// @Summary      论坛留言列表
// @Description  最新优先，作者展示信息批量解析
// @Tags         留言
// @Produce      json
// @Security     BearerAuth
// @Param        forum_id  query  string  true  "论坛ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/messages [get]
func (h *Handler) List(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	forumID := c.Query("forum_id")
	if forumID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    httputil.CodeValidation,
			Message: "forum_id is required",
		})
		return
	}

	messages, err := h.messageService.ListByForum(c.Request.Context(),
		forumID, current.ID, auth.UserRole(current.Role))
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

// Get 获取单条留言
// @Summary      留言详情
// @Tags         留言
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "留言ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/messages/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.messageService.Get(c.Request.Context(),
		c.Param("id"), current.ID, auth.UserRole(current.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "OK",
		"data":    view,
	})
}
