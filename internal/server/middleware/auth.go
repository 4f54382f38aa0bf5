package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"agora/internal/pkg/ctxutil"
	httputil "agora/internal/pkg/http"
	"agora/internal/pkg/jwt"
)

// Auth JWT 认证中间件
// 从 Authorization header 中提取 Bearer token，验证后注入当前用户到 context
func Auth(jwtUtil *jwt.JWT) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 从 Header 获取 Token
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    httputil.CodeInvalidToken,
				"message": "Authorization required",
			})
			c.Abort()
			return
		}

		// 提取 Token（Bearer {token}）
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    httputil.CodeInvalidToken,
				"message": "Invalid authorization header",
			})
			c.Abort()
			return
		}

		// 验证 Token
		claims, err := jwtUtil.ValidateAccessToken(parts[1])
		if err != nil {
			code := httputil.CodeInvalidToken
			if errors.Is(err, jwt.ErrExpiredToken) {
				code = httputil.CodeExpiredToken
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    code,
				"message": "Token invalid or expired",
			})
			c.Abort()
			return
		}

		// 将当前用户注入到 context
		ctx := ctxutil.WithUser(c.Request.Context(), ctxutil.User{
			ID:    claims.UserID,
			Login: claims.Login,
			Role:  claims.Role,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAdmin 管理员权限中间件，须在 Auth 之后使用
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := ctxutil.GetUser(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    httputil.CodeInvalidToken,
				"message": "Authorization required",
			})
			c.Abort()
			return
		}

		if current.Role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    httputil.CodeForbidden,
				"message": "Admin privileges required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
