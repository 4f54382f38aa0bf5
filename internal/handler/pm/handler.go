package pm

import (
	"agora/internal/service"
)

// Handler 私信处理器
type Handler struct {
	pmService *service.PMService
}

// NewHandler 创建私信处理器
func NewHandler(pmService *service.PMService) *Handler {
	return &Handler{
		pmService: pmService,
	}
}
