package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims JWT Claims结构
type Claims struct {
	UserID string `json:"user_id"`
	Login  string `json:"login"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWT JWT工具
// Refresh Token 使用独立密钥（secret + "_refresh"）签名，
// 两种 token 互不通用
type JWT struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewJWT 创建JWT工具实例
func NewJWT(secret string, accessExpiry, refreshExpiry time.Duration) *JWT {
	return &JWT{
		accessSecret:  []byte(secret),
		refreshSecret: []byte(secret + "_refresh"),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// GenerateAccessToken 生成Access Token
func (j *JWT) GenerateAccessToken(userID, login, role string) (string, error) {
	return j.generate(userID, login, role, j.accessSecret, j.accessExpiry)
}

// GenerateRefreshToken 生成Refresh Token
func (j *JWT) GenerateRefreshToken(userID, login, role string) (string, error) {
	return j.generate(userID, login, role, j.refreshSecret, j.refreshExpiry)
}

func (j *JWT) generate(userID, login, role string, secret []byte, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Login:  login,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateAccessToken 验证Access Token并返回Claims
func (j *JWT) ValidateAccessToken(tokenString string) (*Claims, error) {
	return j.validate(tokenString, j.accessSecret)
}

// ValidateRefreshToken 验证Refresh Token并返回Claims
func (j *JWT) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return j.validate(tokenString, j.refreshSecret)
}

func (j *JWT) validate(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})

	if err != nil {
		// jwt/v5 使用 errors.Is 来检查错误类型
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// AccessExpiry 获取Access Token过期时间
func (j *JWT) AccessExpiry() time.Duration {
	return j.accessExpiry
}

// RefreshExpiry 获取Refresh Token过期时间
func (j *JWT) RefreshExpiry() time.Duration {
	return j.refreshExpiry
}
