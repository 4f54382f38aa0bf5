package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agora/internal/model/system"
	httputil "agora/internal/pkg/http"
)

// UpdateSettingsRequest 更新站点设置请求
type UpdateSettingsRequest struct {
	SiteName                     string `json:"site_name" binding:"required,max=100"` // 站点名称
	RegistrationRequiresApproval *bool  `json:"registration_requires_approval" binding:"required"`
}

// GetSettings 获取站点设置
// @Summary      获取站点设置
// @Tags         管理
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Router       /api/v1/admin/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "OK",
		"data":    settings,
	})
}

// UpdateSettings 更新站点设置
// @Summary      更新站点设置
// @Description  更新后使缓存失效
// @Tags         管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      UpdateSettingsRequest  true  "设置"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Router       /api/v1/admin/settings [put]
func (h *Handler) UpdateSettings(c *gin.Context) {
	current, ok := currentUser(c)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    httputil.CodeInvalidBody,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	settings := &system.Settings{
		SiteName:                     req.SiteName,
		RegistrationRequiresApproval: *req.RegistrationRequiresApproval,
	}

	updated, err := h.settingsService.Update(c.Request.Context(), settings, current.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "Settings updated",
		"data":    updated,
	})
}
