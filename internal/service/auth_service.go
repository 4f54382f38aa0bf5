package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"agora/internal/model/auth"
	"agora/internal/pkg/id"
	"agora/internal/pkg/jwt"
	"agora/internal/pkg/password"
	authRepo "agora/internal/repository/auth"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrLoginTaken        = errors.New("login already taken")
	ErrInvalidCredential = errors.New("invalid login or password")
	ErrUserPending       = errors.New("account pending approval")
	ErrUserInactive      = errors.New("account is not active")
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token expired")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrWeakPassword      = errors.New("password too short")
	ErrInvalidLogin      = errors.New("invalid login format")
)

// AuthService 认证服务
type AuthService struct {
	userRepo *authRepo.UserRepo
	settings *SettingsService
	jwt      *jwt.JWT
}

// NewAuthService 创建认证服务
func NewAuthService(
	userRepo *authRepo.UserRepo,
	settings *SettingsService,
	jwtSecret string,
	accessTokenExpiry time.Duration,
	refreshTokenExpiry time.Duration,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		settings: settings,
		jwt:      jwt.NewJWT(jwtSecret, accessTokenExpiry, refreshTokenExpiry),
	}
}

// RegisterResult 注册结果
type RegisterResult struct {
	UserID string
	Login  string
	Status string
}

// Register 用户注册
// 使用基本类型参数，不依赖Handler层的Request类型
func (s *AuthService) Register(ctx context.Context, login, pwd, pwd2, firstName, lastName string) (*RegisterResult, error) {
	login = strings.TrimSpace(strings.ToLower(login))
	if len(login) < 3 {
		return nil, ErrInvalidLogin
	}
	if pwd != pwd2 {
		return nil, ErrPasswordMismatch
	}
	if len(pwd) < 6 {
		return nil, ErrWeakPassword
	}

	// 检查登录名是否已存在
	existing, _ := s.userRepo.FindByLogin(ctx, login)
	if existing != nil {
		return nil, ErrLoginTaken
	}

	// 加密密码
	hashedPassword, err := password.Hash(pwd)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		return nil, errors.New("failed to hash password")
	}

	// 注册审核开关决定初始状态
	status := auth.UserStatusActive
	settings, err := s.settings.Get(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load settings, defaulting to approval required")
		status = auth.UserStatusPending
	} else if settings.RegistrationRequiresApproval {
		status = auth.UserStatusPending
	}

	user := &auth.User{
		ID:        id.New(),
		Login:     login,
		Password:  hashedPassword,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Role:      auth.RoleUser,
		Status:    status,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")
		return nil, errors.New("failed to create user")
	}

	return &RegisterResult{
		UserID: user.ID,
		Login:  user.Login,
		Status: string(user.Status),
	}, nil
}

// LoginResult 登录结果
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
	TokenType    string
	User         *auth.User
}

// Login 用户登录
// 登录名不存在和密码错误返回同一个错误，避免探测账户
func (s *AuthService) Login(ctx context.Context, login, pwd string) (*LoginResult, error) {
	login = strings.TrimSpace(strings.ToLower(login))

	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		return nil, ErrInvalidCredential
	}

	if !password.Verify(pwd, user.Password) {
		return nil, ErrInvalidCredential
	}

	// 检查用户状态
	switch user.Status {
	case auth.UserStatusPending:
		return nil, ErrUserPending
	case auth.UserStatusInactive, auth.UserStatusRejected:
		return nil, ErrUserInactive
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Login, string(user.Role))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate access token")
		return nil, errors.New("failed to generate token")
	}

	refreshToken, err := s.jwt.GenerateRefreshToken(user.ID, user.Login, string(user.Role))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate refresh token")
		return nil, errors.New("failed to generate token")
	}

	// 更新最后登录时间
	if err := s.userRepo.UpdateLastLoginAt(ctx, user.ID); err != nil {
		log.Warn().Err(err).Msg("failed to update last login time")
		// 不影响登录流程，只记录警告
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.jwt.AccessExpiry().Seconds()),
		TokenType:    "Bearer",
		User:         user,
	}, nil
}

// RefreshResult 刷新Token结果
type RefreshResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
	TokenType    string
}

// Refresh 用 Refresh Token 换取新的 Access Token 和 Refresh Token
// Refresh Token 无状态，验证签名后重查用户确认状态未变
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*RefreshResult, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if user.Status != auth.UserStatusActive {
		return nil, ErrUserInactive
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Login, string(user.Role))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate access token")
		return nil, errors.New("failed to generate token")
	}

	newRefreshToken, err := s.jwt.GenerateRefreshToken(user.ID, user.Login, string(user.Role))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate refresh token")
		return nil, errors.New("failed to generate token")
	}

	return &RefreshResult{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    int(s.jwt.AccessExpiry().Seconds()),
		TokenType:    "Bearer",
	}, nil
}

// GetUserByID 根据ID获取用户信息
func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*auth.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ValidateToken 验证Access Token并返回Claims
func (s *AuthService) ValidateToken(tokenString string) (*jwt.Claims, error) {
	claims, err := s.jwt.ValidateAccessToken(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	return claims, nil
}
