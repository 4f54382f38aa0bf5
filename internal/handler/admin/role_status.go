package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agora/internal/model/auth"
	httputil "agora/internal/pkg/http"
)

// ChangeRoleRequest 变更角色请求
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user mod admin"` // 角色（必填）
}

// ChangeStatusRequest 变更状态请求
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"` // 状态（必填）
}

// ChangeRole 变更用户角色
// @Summary      变更角色
// @Description  不能修改自己或其他管理员
// @Tags         管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string             true  "用户ID"
// @Param        request  body      ChangeRoleRequest  true  "角色"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /api/v1/admin/users/{id}/role [put]
func (h *Handler) ChangeRole(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    httputil.CodeInvalidBody,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	user, err := h.adminService.ChangeRole(c.Request.Context(),
		current.ID, c.Param("id"), auth.UserRole(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "User role updated",
		"data":    toUserInfo(user),
	})
}

// ChangeStatus 变更用户状态
// @Summary      变更状态
// @Description  active/inactive 互转；不能修改自己或其他管理员
// @Tags         管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string               true  "用户ID"
// @Param        request  body      ChangeStatusRequest  true  "状态"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /api/v1/admin/users/{id}/status [put]
func (h *Handler) ChangeStatus(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    httputil.CodeInvalidBody,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	user, err := h.adminService.ChangeStatus(c.Request.Context(),
		current.ID, c.Param("id"), auth.UserStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "User status updated",
		"data":    toUserInfo(user),
	})
}
