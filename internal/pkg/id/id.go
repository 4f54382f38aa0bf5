package id

import "github.com/google/uuid"

// New 生成 UUID v4 字符串
// 全部实体（用户、论坛、留言、会话）统一用此格式做主键
func New() string {
	return uuid.NewString()
}

// IsValid 判断字符串是否为合法 UUID
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
