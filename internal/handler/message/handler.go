package message

import (
	"agora/internal/service"
)

// Handler 留言处理器
type Handler struct {
	messageService *service.MessageService
}

// NewHandler 创建留言处理器
func NewHandler(messageService *service.MessageService) *Handler {
	return &Handler{
		messageService: messageService,
	}
}
