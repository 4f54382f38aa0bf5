package admin

import (
	"agora/internal/service"
)

// Handler 管理处理器
type Handler struct {
	adminService    *service.AdminService
	settingsService *service.SettingsService
}

// NewHandler 创建管理处理器
func NewHandler(adminService *service.AdminService, settingsService *service.SettingsService) *Handler {
	return &Handler{
		adminService:    adminService,
		settingsService: settingsService,
	}
}
