package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"agora/internal/model/auth"
	"agora/internal/model/forum"
	"agora/internal/pkg/id"
	forumRepo "agora/internal/repository/forum"
)

var (
	ErrForumNotFound     = errors.New("forum not found")
	ErrForumNameTaken    = errors.New("forum name already taken")
	ErrForumAccessDenied = errors.New("forum access denied")
	ErrInvalidForumName  = errors.New("invalid forum name")
)

// ForumService 论坛服务
type ForumService struct {
	forumRepo   *forumRepo.ForumRepo
	messageRepo *forumRepo.MessageRepo
}

// NewForumService 创建论坛服务
func NewForumService(fr *forumRepo.ForumRepo, mr *forumRepo.MessageRepo) *ForumService {
	return &ForumService{
		forumRepo:   fr,
		messageRepo: mr,
	}
}

// List 查询当前用户可见的论坛列表
// 管理员可见全部，普通成员仅可见公开论坛
func (s *ForumService) List(ctx context.Context, role auth.UserRole) ([]*forum.Forum, error) {
	filter := bson.M{}
	if role != auth.RoleAdmin {
		filter["is_public"] = true
	}
	return s.forumRepo.List(ctx, filter)
}

// ListAll 查询全部论坛（管理后台用）
func (s *ForumService) ListAll(ctx context.Context) ([]*forum.Forum, error) {
	return s.forumRepo.List(ctx, bson.M{})
}

// Get 获取论坛，校验访问权限
func (s *ForumService) Get(ctx context.Context, forumID string, role auth.UserRole) (*forum.Forum, error) {
	f, err := s.forumRepo.FindByID(ctx, forumID)
	if err != nil {
		return nil, ErrForumNotFound
	}
	if !f.IsPublic && role != auth.RoleAdmin {
		return nil, ErrForumAccessDenied
	}
	return f, nil
}

// CheckAccess 检查用户对论坛的访问权限
func (s *ForumService) CheckAccess(ctx context.Context, forumID string, role auth.UserRole) error {
	_, err := s.Get(ctx, forumID, role)
	return err
}

// Create 创建论坛
func (s *ForumService) Create(ctx context.Context, name, description string, isPublic bool, createdBy string) (*forum.Forum, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidForumName
	}

	existing, _ := s.forumRepo.FindByName(ctx, name)
	if existing != nil {
		return nil, ErrForumNameTaken
	}

	f := &forum.Forum{
		ID:          id.New(),
		Name:        name,
		Description: strings.TrimSpace(description),
		IsPublic:    isPublic,
		CreatedBy:   createdBy,
	}

	if err := s.forumRepo.Create(ctx, f); err != nil {
		log.Error().Err(err).Str("name", name).Msg("failed to create forum")
		return nil, errors.New("failed to create forum")
	}

	return f, nil
}

// UpdateAccess 变更论坛可见性
func (s *ForumService) UpdateAccess(ctx context.Context, forumID string, isPublic bool) (*forum.Forum, error) {
	if _, err := s.forumRepo.FindByID(ctx, forumID); err != nil {
		return nil, ErrForumNotFound
	}

	update := bson.M{"$set": bson.M{"is_public": isPublic}}
	if err := s.forumRepo.Update(ctx, forumID, update); err != nil {
		log.Error().Err(err).Str("forum_id", forumID).Msg("failed to update forum access")
		return nil, errors.New("failed to update forum access")
	}

	return s.forumRepo.FindByID(ctx, forumID)
}

// Delete 删除论坛及其所有留言
// 先删留言再删论坛，中途失败时论坛仍在，可重试
func (s *ForumService) Delete(ctx context.Context, forumID string) error {
	if _, err := s.forumRepo.FindByID(ctx, forumID); err != nil {
		return ErrForumNotFound
	}

	deleted, err := s.messageRepo.DeleteByForum(ctx, forumID)
	if err != nil {
		log.Error().Err(err).Str("forum_id", forumID).Msg("failed to delete forum messages")
		return errors.New("failed to delete forum messages")
	}

	if err := s.forumRepo.Delete(ctx, forumID); err != nil {
		log.Error().Err(err).Str("forum_id", forumID).Msg("failed to delete forum")
		return errors.New("failed to delete forum")
	}

	log.Info().
		Str("forum_id", forumID).
		Int64("messages_deleted", deleted).
		Msg("forum deleted")

	return nil
}
