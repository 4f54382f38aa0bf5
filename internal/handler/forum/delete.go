package forum

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Delete 删除论坛及其所有留言
// @Summary      删除论坛
// @Description  级联删除论坛下全部留言
// @Tags         论坛
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "论坛ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/forums/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.forumService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "Forum deleted",
	})
}
