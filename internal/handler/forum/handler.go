package forum

import (
	"agora/internal/service"
)

// Handler 论坛处理器
type Handler struct {
	forumService *service.ForumService
}

// NewHandler 创建论坛处理器
func NewHandler(forumService *service.ForumService) *Handler {
	return &Handler{
		forumService: forumService,
	}
}
