package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Approve 批准注册申请
// @Summary      批准注册
// @Description  仅待审核用户可批准，否则404
// @Tags         管理
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "用户ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/admin/users/{id}/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	user, err := h.adminService.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "User approved",
		"data":    toUserInfo(user),
	})
}

// Reject 拒绝注册申请
// @Summary      拒绝注册
// @Description  仅待审核用户可拒绝，拒绝为终态
// @Tags         管理
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "用户ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/admin/users/{id}/reject [post]
func (h *Handler) Reject(c *gin.Context) {
	user, err := h.adminService.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "User rejected",
		"data":    toUserInfo(user),
	})
}
