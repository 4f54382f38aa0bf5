package ctxutil

import "context"

// userKeyType 使用私有类型避免与其他 context key 冲突
type userKeyType struct{}

var userKey = userKeyType{}

// User 认证中间件解析出的当前用户身份
type User struct {
	ID    string
	Login string
	Role  string
}

// WithUser 将当前用户注入到 context 中
// 说明：在认证中间件中解析 JWT 成功后调用：
//   ctx := ctxutil.WithUser(c.Request.Context(), user)
//   c.Request = c.Request.WithContext(ctx)
func WithUser(ctx context.Context, user User) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, userKey, user)
}

// GetUser 从 context 中解析当前用户
// 返回值：
//   - User: 解析到的用户身份
//   - bool: 是否存在有效的用户
func GetUser(ctx context.Context) (User, bool) {
	if ctx == nil {
		return User{}, false
	}
	v := ctx.Value(userKey)
	user, ok := v.(User)
	if !ok || user.ID == "" {
		return User{}, false
	}
	return user, true
}
