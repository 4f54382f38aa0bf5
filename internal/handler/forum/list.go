package forum

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agora/internal/model/auth"
)

// List 查询论坛列表
// @Summary      论坛列表
// @Description  管理员可见全部论坛，普通成员仅可见公开论坛
// @Tags         论坛
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Router       /api/v1/forums [get]
func (h *Handler) List(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	forums, err := h.forumService.List(c.Request.Context(), auth.UserRole(current.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "OK",
		"data":    gin.H{"forums": toForumInfoList(forums)},
	})
}

// ListAll 查询全部论坛（管理后台）
// @Summary      全部论坛列表
// @Tags         论坛
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /api/v1/forums/admin/all [get]
func (h *Handler) ListAll(c *gin.Context) {
	forums, err := h.forumService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "OK",
		"data":    gin.H{"forums": toForumInfoList(forums)},
	})
}
