package user

import (
	"agora/internal/service"
)

// Handler 用户处理器
type Handler struct {
	userService    *service.UserService
	messageService *service.MessageService
}

// NewHandler 创建用户处理器
func NewHandler(userService *service.UserService, messageService *service.MessageService) *Handler {
	return &Handler{
		userService:    userService,
		messageService: messageService,
	}
}
