package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"agora/internal/model/auth"
	"agora/internal/model/forum"
	"agora/internal/pkg/id"
	forumRepo "agora/internal/repository/forum"
)

var (
	ErrMessageNotFound  = errors.New("message not found")
	ErrReplyNotFound    = errors.New("reply not found")
	ErrNotMessageAuthor = errors.New("not the message author")
	ErrEmptyMessage     = errors.New("message text is empty")
)

// MessageView 留言视图，作者信息读取时解析
type MessageView struct {
	ID        string      `json:"id"`
	ForumID   string      `json:"forum_id"`
	Author    UserDisplay `json:"author"`
	Text      string      `json:"text"`
	LikeCount int         `json:"like_count"`
	Liked     bool        `json:"liked"`
	Replies   []ReplyView `json:"replies"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ReplyView 回复视图
type ReplyView struct {
	ID        string      `json:"id"`
	Author    UserDisplay `json:"author"`
	Text      string      `json:"text"`
	LikeCount int         `json:"like_count"`
	Liked     bool        `json:"liked"`
	CreatedAt time.Time   `json:"created_at"`
}

// LikeResult 点赞切换结果
type LikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

// MessageService 论坛留言服务
type MessageService struct {
	messageRepo *forumRepo.MessageRepo
	forums      *ForumService
	users       *UserService
}

// NewMessageService 创建留言服务
func NewMessageService(mr *forumRepo.MessageRepo, forums *ForumService, users *UserService) *MessageService {
	return &MessageService{
		messageRepo: mr,
		forums:      forums,
		users:       users,
	}
}

// ListByForum 查询论坛的留言列表
func (s *MessageService) ListByForum(ctx context.Context, forumID, viewerID string, role auth.UserRole) ([]MessageView, error) {
	if err := s.forums.CheckAccess(ctx, forumID, role); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.ListByForum(ctx, forumID)
	if err != nil {
		return nil, err
	}

	return s.buildViews(ctx, messages, viewerID)
}

// ListByUser 查询用户发布的留言（限定访问者可见的论坛）
func (s *MessageService) ListByUser(ctx context.Context, authorID, viewerID string, role auth.UserRole) ([]MessageView, error) {
	var forumIDs []string
	if role != auth.RoleAdmin {
		forums, err := s.forums.List(ctx, role)
		if err != nil {
			return nil, err
		}
		forumIDs = make([]string, 0, len(forums))
		for _, f := range forums {
			forumIDs = append(forumIDs, f.ID)
		}
	}

	messages, err := s.messageRepo.ListByAuthor(ctx, authorID, forumIDs)
	if err != nil {
		return nil, err
	}

	return s.buildViews(ctx, messages, viewerID)
}

// Get 获取单条留言
func (s *MessageService) Get(ctx context.Context, messageID, viewerID string, role auth.UserRole) (*MessageView, error) {
	m, err := s.findAccessible(ctx, messageID, role)
	if err != nil {
		return nil, err
	}

	views, err := s.buildViews(ctx, []*forum.Message{m}, viewerID)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Create 发布留言
func (s *MessageService) Create(ctx context.Context, forumID, authorID, text string, role auth.UserRole) (*MessageView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	if err := s.forums.CheckAccess(ctx, forumID, role); err != nil {
		return nil, err
	}

	m := &forum.Message{
		ID:       id.New(),
		ForumID:  forumID,
		AuthorID: authorID,
		Text:     text,
	}

	if err := s.messageRepo.Create(ctx, m); err != nil {
		log.Error().Err(err).Str("forum_id", forumID).Msg("failed to create message")
		return nil, errors.New("failed to create message")
	}

	views, err := s.buildViews(ctx, []*forum.Message{m}, authorID)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// UpdateText 编辑留言内容（仅作者本人）
func (s *MessageService) UpdateText(ctx context.Context, messageID, userID, text string, role auth.UserRole) (*MessageView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	m, err := s.findAccessible(ctx, messageID, role)
	if err != nil {
		return nil, err
	}

	if m.AuthorID != userID {
		return nil, ErrNotMessageAuthor
	}

	if err := s.messageRepo.UpdateText(ctx, messageID, text); err != nil {
		log.Error().Err(err).Str("message_id", messageID).Msg("failed to update message")
		return nil, errors.New("failed to update message")
	}

	m.Text = text
	m.UpdatedAt = time.Now()
	views, err := s.buildViews(ctx, []*forum.Message{m}, userID)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Delete 删除留言（仅作者本人或管理员，版主无此权限）
func (s *MessageService) Delete(ctx context.Context, messageID, userID string, role auth.UserRole) error {
	m, err := s.findAccessible(ctx, messageID, role)
	if err != nil {
		return err
	}

	if m.AuthorID != userID && role != auth.RoleAdmin {
		return ErrNotMessageAuthor
	}

	return s.messageRepo.Delete(ctx, messageID)
}

// AddReply 回复留言（仅一级回复）
func (s *MessageService) AddReply(ctx context.Context, messageID, authorID, text string, role auth.UserRole) (*MessageView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	if _, err := s.findAccessible(ctx, messageID, role); err != nil {
		return nil, err
	}

	reply := &forum.Reply{
		ID:        id.New(),
		AuthorID:  authorID,
		Text:      text,
		Likes:     []string{},
		CreatedAt: time.Now(),
	}

	if err := s.messageRepo.AddReply(ctx, messageID, reply); err != nil {
		log.Error().Err(err).Str("message_id", messageID).Msg("failed to add reply")
		return nil, errors.New("failed to add reply")
	}

	return s.Get(ctx, messageID, authorID, role)
}

// ToggleLike 切换留言点赞状态
func (s *MessageService) ToggleLike(ctx context.Context, messageID, userID string, role auth.UserRole) (*LikeResult, error) {
	m, err := s.findAccessible(ctx, messageID, role)
	if err != nil {
		return nil, err
	}

	liked := m.LikedBy(userID)
	if liked {
		err = s.messageRepo.RemoveLike(ctx, messageID, userID)
	} else {
		err = s.messageRepo.AddLike(ctx, messageID, userID)
	}
	if err != nil {
		return nil, errors.New("failed to toggle like")
	}

	count := len(m.Likes)
	if liked {
		count--
	} else {
		count++
	}

	return &LikeResult{Liked: !liked, LikeCount: count}, nil
}

// ToggleReplyLike 切换回复点赞状态
func (s *MessageService) ToggleReplyLike(ctx context.Context, messageID, replyID, userID string, role auth.UserRole) (*LikeResult, error) {
	m, err := s.findAccessible(ctx, messageID, role)
	if err != nil {
		return nil, err
	}

	var reply *forum.Reply
	for i := range m.Replies {
		if m.Replies[i].ID == replyID {
			reply = &m.Replies[i]
			break
		}
	}
	if reply == nil {
		return nil, ErrReplyNotFound
	}

	liked := reply.LikedBy(userID)
	if liked {
		err = s.messageRepo.RemoveReplyLike(ctx, messageID, replyID, userID)
	} else {
		err = s.messageRepo.AddReplyLike(ctx, messageID, replyID, userID)
	}
	if err != nil {
		return nil, errors.New("failed to toggle like")
	}

	count := len(reply.Likes)
	if liked {
		count--
	} else {
		count++
	}

	return &LikeResult{Liked: !liked, LikeCount: count}, nil
}

// findAccessible 查询留言并校验所在论坛的访问权限
func (s *MessageService) findAccessible(ctx context.Context, messageID string, role auth.UserRole) (*forum.Message, error) {
	m, err := s.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		return nil, ErrMessageNotFound
	}

	if err := s.forums.CheckAccess(ctx, m.ForumID, role); err != nil {
		return nil, err
	}

	return m, nil
}

// buildViews 批量构建留言视图，一次性解析所有作者展示信息
func (s *MessageService) buildViews(ctx context.Context, messages []*forum.Message, viewerID string) ([]MessageView, error) {
	// 收集留言和回复的作者ID
	authorIDs := make([]string, 0, len(messages))
	for _, m := range messages {
		authorIDs = append(authorIDs, m.AuthorID)
		for _, r := range m.Replies {
			authorIDs = append(authorIDs, r.AuthorID)
		}
	}

	authors, err := s.users.ResolveDisplay(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]MessageView, 0, len(messages))
	for _, m := range messages {
		replies := make([]ReplyView, 0, len(m.Replies))
		for _, r := range m.Replies {
			replies = append(replies, ReplyView{
				ID:        r.ID,
				Author:    authors[r.AuthorID],
				Text:      r.Text,
				LikeCount: len(r.Likes),
				Liked:     r.LikedBy(viewerID),
				CreatedAt: r.CreatedAt,
			})
		}

		views = append(views, MessageView{
			ID:        m.ID,
			ForumID:   m.ForumID,
			Author:    authors[m.AuthorID],
			Text:      m.Text,
			LikeCount: len(m.Likes),
			Liked:     m.LikedBy(viewerID),
			Replies:   replies,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		})
	}

	return views, nil
}
