package auth

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// User 用户实体
// ID使用UUID格式（string），避免ObjectID转换的麻烦
type User struct {
	ID          string     `bson:"_id,omitempty" json:"id"`      // UUID格式的ID
	Login       string     `bson:"login" json:"login"`           // 登录名（唯一）
	Password    string     `bson:"password" json:"-"`            // 密码（加密存储，不返回）
	FirstName   string     `bson:"first_name" json:"firstname"`  // 名
	LastName    string     `bson:"last_name" json:"lastname"`    // 姓
	Email       string     `bson:"email,omitempty" json:"email,omitempty"`
	Role        UserRole   `bson:"role" json:"role"`             // 角色
	Status      UserStatus `bson:"status" json:"status"`         // 状态
	Avatar      string     `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Bio         string     `bson:"bio,omitempty" json:"bio,omitempty"`
	LastLoginAt *time.Time `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}

// FullName 返回展示用的全名
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Initials 返回姓名首字母（头像占位用）
// 按 rune 取首字符，姓名可能包含多字节字符
func (u *User) Initials() string {
	var b strings.Builder
	if u.FirstName != "" {
		r, _ := utf8.DecodeRuneInString(u.FirstName)
		b.WriteRune(unicode.ToUpper(r))
	}
	if u.LastName != "" {
		r, _ := utf8.DecodeRuneInString(u.LastName)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// UserRole 用户角色
type UserRole string

const (
	RoleUser  UserRole = "user"  // 普通成员
	RoleMod   UserRole = "mod"   // 版主
	RoleAdmin UserRole = "admin" // 管理员
)

// IsValid 检查角色是否有效
func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleMod || r == RoleAdmin
}

// String 返回角色字符串
func (r UserRole) String() string {
	return string(r)
}

// UserStatus 用户状态
type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"  // 注册待审核
	UserStatusActive   UserStatus = "active"   // 激活
	UserStatusInactive UserStatus = "inactive" // 停用（可恢复）
	UserStatusRejected UserStatus = "rejected" // 注册被拒绝（终态）
)

// IsValid 检查状态是否有效
func (s UserStatus) IsValid() bool {
	return s == UserStatusPending || s == UserStatusActive ||
		s == UserStatusInactive || s == UserStatusRejected
}

// String 返回状态字符串
func (s UserStatus) String() string {
	return string(s)
}

// CanTransitionTo 检查状态流转是否合法
// pending -> active | rejected
// active <-> inactive
// rejected 为终态
func (s UserStatus) CanTransitionTo(target UserStatus) bool {
	switch s {
	case UserStatusPending:
		return target == UserStatusActive || target == UserStatusRejected
	case UserStatusActive:
		return target == UserStatusInactive
	case UserStatusInactive:
		return target == UserStatusActive
	default:
		return false
	}
}
