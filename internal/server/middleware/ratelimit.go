package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"agora/internal/config"
	"agora/internal/pkg/cache"
	httputil "agora/internal/pkg/http"
)

// RateLimit 认证接口限流中间件
// 基于 Redis 的固定窗口计数，按客户端IP。Redis 不可用时放行并记录警告
func RateLimit(c *cache.RedisCache, cfg *config.RateLimitConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if c == nil || !cfg.Enabled {
			ctx.Next()
			return
		}

		key := cache.RateLimitKey(ctx.ClientIP())
		count, err := c.Incr(ctx.Request.Context(), key, cfg.Window)
		if err != nil {
			log.Warn().Err(err).Msg("rate limit counter unavailable, allowing request")
			ctx.Next()
			return
		}

		if count > cfg.MaxRequests {
			ctx.JSON(http.StatusTooManyRequests, gin.H{
				"code":    httputil.CodeRateLimited,
				"message": "Too many requests, try again later",
			})
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
