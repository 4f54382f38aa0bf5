package http

// ErrorResponse 错误响应（所有API共用）
// 用于统一错误响应格式
type ErrorResponse struct {
	Code    int    `json:"code"`             // 错误码（非0表示错误）
	Message string `json:"message"`          // 错误消息
	Detail  string `json:"detail,omitempty"` // 错误详情（可选）
}

// SuccessResponse 成功响应（所有API共用）
// 用于统一成功响应格式
type SuccessResponse struct {
	Code    int         `json:"code"`           // 状态码（0表示成功）
	Message string      `json:"message"`        // 响应消息
	Data    interface{} `json:"data,omitempty"` // 响应数据（可选）
}

// NewSuccessResponse 创建成功响应
func NewSuccessResponse(message string, data interface{}) *SuccessResponse {
	return &SuccessResponse{
		Code:    0,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(code int, message string, detail ...string) *ErrorResponse {
	resp := &ErrorResponse{
		Code:    code,
		Message: message,
	}
	if len(detail) > 0 && detail[0] != "" {
		resp.Detail = detail[0]
	}
	return resp
}

// 业务错误码
// 4xxyy：yy 区分同一 HTTP 状态下的不同业务错误
const (
	CodeInvalidBody       = 40001 // 请求体格式错误
	CodeValidation        = 40002 // 参数校验失败
	CodeInvalidCredential = 40101 // 登录名或密码错误
	CodeInvalidToken      = 40102 // Token无效
	CodeExpiredToken      = 40103 // Token过期
	CodePendingAccount    = 40301 // 账号待审核
	CodeInactiveAccount   = 40302 // 账号已停用或被拒绝
	CodeForbidden         = 40303 // 无访问权限
	CodeNotFound          = 40401 // 资源不存在
	CodeConflict          = 40901 // 资源冲突
	CodePayloadTooLarge   = 41301 // 请求体过大
	CodeRateLimited       = 42901 // 请求过于频繁
	CodeInternal          = 50001 // 服务器内部错误
)
