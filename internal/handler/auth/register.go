package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httputil "agora/internal/pkg/http"
)

// RegisterRequest 用户注册请求
type RegisterRequest struct {
	Login     string `json:"login" binding:"required,min=3,max=50"` // 登录名（必填，3-50字符）
	Password  string `json:"password" binding:"required,min=6"`     // 密码（必填，至少6位）
	Password2 string `json:"password2" binding:"required"`          // 确认密码（必填）
	FirstName string `json:"firstname" binding:"required"`          // 名（必填）
	LastName  string `json:"lastname" binding:"required"`           // 姓（必填）
}

// RegisterResponseData 注册响应数据
type RegisterResponseData struct {
	UserID string `json:"user_id"` // 用户ID
	Login  string `json:"login"`   // 登录名
	Status string `json:"status"`  // 状态：pending（需审核）或 active
}

// Register 用户注册
// @Summary      用户注册
// @Description  注册新用户，按站点设置决定是否需要管理员审核
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "注册请求"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /api/v1/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    httputil.CodeInvalidBody,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	ctx := c.Request.Context()

	// 调用Service层（传递基本类型参数，不依赖Handler层的Request类型）
	resp, err := h.authService.Register(ctx, req.Login, req.Password, req.Password2, req.FirstName, req.LastName)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Registration successful"
	if resp.Status == "pending" {
		message = "Registration successful, awaiting admin approval"
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": message,
		"data": RegisterResponseData{
			UserID: resp.UserID,
			Login:  resp.Login,
			Status: resp.Status,
		},
	})
}
