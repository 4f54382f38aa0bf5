package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httputil "agora/internal/pkg/http"
)

// UpdateProfileRequest 更新资料请求
type UpdateProfileRequest struct {
	FirstName string `json:"firstname" binding:"required"`       // 名（必填）
	LastName  string `json:"lastname" binding:"required"`        // 姓（必填）
	Email     string `json:"email" binding:"omitempty,email"`    // 邮箱（可选）
	Bio       string `json:"bio" binding:"omitempty,max=500"`    // 简介（可选）
}

// GetProfile 获取当前用户资料
// @Summary      获取当前用户资料
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Router       /api/v1/users/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), current.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "OK",
		"data":    toProfileInfo(user),
	})
}

// UpdateProfile 更新当前用户资料
// @Summary      更新当前用户资料
// @Tags         用户
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      UpdateProfileRequest  true  "资料"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Router       /api/v1/users/profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    httputil.CodeInvalidBody,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), current.ID,
		req.FirstName, req.LastName, req.Email, req.Bio)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "Profile updated",
		"data":    toProfileInfo(user),
	})
}
