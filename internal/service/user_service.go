package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"agora/internal/model/auth"
	"agora/internal/pkg/storage"
	authRepo "agora/internal/repository/auth"
)

var (
	ErrAvatarTooLarge    = errors.New("avatar file too large")
	ErrUnsupportedAvatar = errors.New("unsupported avatar format")
	ErrQueryTooShort     = errors.New("search query too short")
)

// AvatarMaxSize 头像文件大小上限
const AvatarMaxSize = 2 << 20 // 2MiB

// SearchResultLimit 用户搜索结果上限
const SearchResultLimit = 10

// avatarContentTypes 允许的头像类型及扩展名
var avatarContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UserDisplay 用户展示信息（留言、私信读取时解析）
type UserDisplay struct {
	ID        string `json:"id"`
	Login     string `json:"login"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Initials  string `json:"initials"`
	Avatar    string `json:"avatar,omitempty"`
}

// displayOf 构造用户展示信息
func displayOf(u *auth.User) UserDisplay {
	return UserDisplay{
		ID:        u.ID,
		Login:     u.Login,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Initials:  u.Initials(),
		Avatar:    u.Avatar,
	}
}

// deletedUserDisplay 已删除用户的占位展示信息
func deletedUserDisplay(id string) UserDisplay {
	return UserDisplay{
		ID:       id,
		Login:    "deleted",
		Initials: "?",
	}
}

// UserService 用户服务
type UserService struct {
	userRepo *authRepo.UserRepo
	storage  storage.Storage
}

// NewUserService 创建用户服务
func NewUserService(userRepo *authRepo.UserRepo, store storage.Storage) *UserService {
	return &UserService{
		userRepo: userRepo,
		storage:  store,
	}
}

// GetProfile 获取用户资料
func (s *UserService) GetProfile(ctx context.Context, userID string) (*auth.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetPublicProfile 根据登录名获取公开资料（仅激活用户）
func (s *UserService) GetPublicProfile(ctx context.Context, login string) (*auth.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, strings.ToLower(login))
	if err != nil {
		return nil, ErrUserNotFound
	}
	if user.Status != auth.UserStatusActive {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile 更新用户资料（姓名、邮箱、简介）
func (s *UserService) UpdateProfile(ctx context.Context, userID, firstName, lastName, email, bio string) (*auth.User, error) {
	update := bson.M{"$set": bson.M{
		"first_name": strings.TrimSpace(firstName),
		"last_name":  strings.TrimSpace(lastName),
		"email":      strings.TrimSpace(email),
		"bio":        strings.TrimSpace(bio),
	}}

	if err := s.userRepo.Update(ctx, userID, update); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to update profile")
		return nil, errors.New("failed to update profile")
	}

	return s.GetProfile(ctx, userID)
}

// UploadAvatar 上传头像并更新用户资料
func (s *UserService) UploadAvatar(ctx context.Context, userID string, data io.Reader, size int64, contentType string) (string, error) {
	if size > AvatarMaxSize {
		return "", ErrAvatarTooLarge
	}

	ext, ok := avatarContentTypes[contentType]
	if !ok {
		return "", ErrUnsupportedAvatar
	}

	key := path.Join("avatars", fmt.Sprintf("%s%s", userID, ext))
	url, err := s.storage.Upload(ctx, key, io.LimitReader(data, AvatarMaxSize), contentType)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to upload avatar")
		return "", errors.New("failed to upload avatar")
	}

	update := bson.M{"$set": bson.M{"avatar": url}}
	if err := s.userRepo.Update(ctx, userID, update); err != nil {
		return "", errors.New("failed to update avatar")
	}

	return url, nil
}

// Search 搜索激活用户（登录名/姓名前缀匹配）
func (s *UserService) Search(ctx context.Context, query string) ([]UserDisplay, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, ErrQueryTooShort
	}

	users, err := s.userRepo.Search(ctx, query, SearchResultLimit)
	if err != nil {
		return nil, err
	}

	results := make([]UserDisplay, 0, len(users))
	for _, u := range users {
		results = append(results, displayOf(u))
	}
	return results, nil
}

// ResolveDisplay 批量解析用户展示信息
// 找不到的用户（已删除）返回占位信息
func (s *UserService) ResolveDisplay(ctx context.Context, ids []string) (map[string]UserDisplay, error) {
	// 去重
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" && !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	users, err := s.userRepo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}

	result := make(map[string]UserDisplay, len(unique))
	for _, u := range users {
		result[u.ID] = displayOf(u)
	}
	for _, id := range unique {
		if _, ok := result[id]; !ok {
			result[id] = deletedUserDisplay(id)
		}
	}
	return result, nil
}
