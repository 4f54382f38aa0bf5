package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListUsers 查询用户列表
// @Summary      用户列表
// @Description  支持状态/角色筛选与分页
// @Tags         管理
// @Produce      json
// @Security     BearerAuth
// @Param        status     query  string  false  "状态筛选"
// @Param        role       query  string  false  "角色筛选"
// @Param        page       query  int     false  "页码"
// @Param        page_size  query  int     false  "每页数量"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /api/v1/admin/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	pageSize, _ := strconv.ParseInt(c.DefaultQuery("page_size", "20"), 10, 64)

	users, total, err := h.adminService.ListUsers(c.Request.Context(),
		c.Query("status"), c.Query("role"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "OK",
		"data": gin.H{
			"users": toUserInfoList(users),
			"total": total,
			"page":  page,
		},
	})
}

// ListPending 查询待审核用户
// @Summary      待审核用户列表
// @Tags         管理
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /api/v1/admin/users/pending [get]
func (h *Handler) ListPending(c *gin.Context) {
	users, err := h.adminService.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "OK",
		"data":    gin.H{"users": toUserInfoList(users)},
	})
}
