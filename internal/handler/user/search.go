package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Search 搜索用户
// @Summary      搜索用户
// @Description  按登录名或姓名前缀搜索激活用户，至少2个字符，最多10条结果
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  true  "搜索词"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /api/v1/users/search [get]
func (h *Handler) Search(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	results, err := h.userService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "OK",
		"data":    gin.H{"users": results},
	})
}
