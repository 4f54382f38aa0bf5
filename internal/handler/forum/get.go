package forum

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agora/internal/model/auth"
)

// Get 获取论坛详情
// @Summary      论坛详情
// @Tags         论坛
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "论坛ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/forums/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	f, err := h.forumService.Get(c.Request.Context(), c.Param("id"), auth.UserRole(current.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "OK",
		"data":    toForumInfo(f),
	})
}
