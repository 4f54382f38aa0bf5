package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"agora/internal/model/auth"
	"agora/internal/model/pm"
	"agora/internal/pkg/id"
	authRepo "agora/internal/repository/auth"
	pmRepo "agora/internal/repository/pm"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("not a conversation participant")
	ErrRecipientNotFound    = errors.New("recipient not found")
	ErrSelfConversation     = errors.New("cannot message yourself")
)

// ConversationView 会话视图
type ConversationView struct {
	ID          string      `json:"id"`
	Other       UserDisplay `json:"other"`
	LastMessage string      `json:"last_message"`
	LastSender  string      `json:"last_sender_id"`
	Unread      int         `json:"unread"` // 0 或 1
	UpdatedAt   time.Time   `json:"updated_at"`
}

// PrivateMessageView 私信消息视图
type PrivateMessageView struct {
	ID        string      `json:"id"`
	Sender    UserDisplay `json:"sender"`
	Text      string      `json:"text"`
	Timestamp time.Time   `json:"timestamp"`
}

// PMService 私信服务
type PMService struct {
	convRepo    *pmRepo.ConversationRepo
	messageRepo *pmRepo.MessageRepo
	userRepo    *authRepo.UserRepo
	users       *UserService
}

// NewPMService 创建私信服务
func NewPMService(cr *pmRepo.ConversationRepo, mr *pmRepo.MessageRepo, ur *authRepo.UserRepo, users *UserService) *PMService {
	return &PMService{
		convRepo:    cr,
		messageRepo: mr,
		userRepo:    ur,
		users:       users,
	}
}

// ListConversations 查询用户的会话列表（最近更新优先）
func (s *PMService) ListConversations(ctx context.Context, userID string) ([]ConversationView, error) {
	conversations, err := s.convRepo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 批量解析对方展示信息
	otherIDs := make([]string, 0, len(conversations))
	for _, c := range conversations {
		otherIDs = append(otherIDs, c.OtherParticipant(userID))
	}
	others, err := s.users.ResolveDisplay(ctx, otherIDs)
	if err != nil {
		return nil, err
	}

	views := make([]ConversationView, 0, len(conversations))
	for _, c := range conversations {
		unread := 0
		if c.UnreadFor(userID) {
			unread = 1
		}
		views = append(views, ConversationView{
			ID:          c.ID,
			Other:       others[c.OtherParticipant(userID)],
			LastMessage: c.LastMessage,
			LastSender:  c.LastSenderID,
			Unread:      unread,
			UpdatedAt:   c.UpdatedAt,
		})
	}

	return views, nil
}

// GetMessages 查询会话消息并清除调用方的未读标记
// 读取即视为已读，与会话列表的 unread 标记联动
func (s *PMService) GetMessages(ctx context.Context, convID, userID string) ([]PrivateMessageView, error) {
	conv, err := s.convRepo.FindByID(ctx, convID)
	if err != nil {
		return nil, ErrConversationNotFound
	}
	if !conv.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}

	messages, err := s.messageRepo.ListByConversation(ctx, convID)
	if err != nil {
		return nil, err
	}

	// 读取时清除未读标记
	if err := s.convRepo.MarkRead(ctx, convID, userID); err != nil {
		log.Warn().Err(err).Str("conversation_id", convID).Msg("failed to clear unread flag")
	}
	if err := s.messageRepo.MarkReadByConversation(ctx, convID, userID); err != nil {
		log.Warn().Err(err).Str("conversation_id", convID).Msg("failed to mark messages read")
	}

	senderIDs := make([]string, 0, len(messages))
	for _, m := range messages {
		senderIDs = append(senderIDs, m.SenderID)
	}
	senders, err := s.users.ResolveDisplay(ctx, senderIDs)
	if err != nil {
		return nil, err
	}

	views := make([]PrivateMessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, PrivateMessageView{
			ID:        m.ID,
			Sender:    senders[m.SenderID],
			Text:      m.Text,
			Timestamp: m.Timestamp,
		})
	}

	return views, nil
}

// SendResult 发送结果
type SendResult struct {
	ConversationID string             `json:"conversation_id"`
	Message        PrivateMessageView `json:"message"`
}

// Send 发送私信
// 指定 conversation_id 时校验参与者并沿用该会话，
// 否则按接收方（ID或登录名）find-or-create 会话
func (s *PMService) Send(ctx context.Context, senderID, recipient, conversationID, text string) (*SendResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	var conv *pm.Conversation
	var recipientID string

	if conversationID != "" {
		c, err := s.convRepo.FindByID(ctx, conversationID)
		if err != nil {
			return nil, ErrConversationNotFound
		}
		if !c.HasParticipant(senderID) {
			return nil, ErrNotParticipant
		}
		conv = c
		recipientID = c.OtherParticipant(senderID)
	} else {
		target, err := s.resolveRecipient(ctx, recipient)
		if err != nil {
			return nil, err
		}
		if target.ID == senderID {
			return nil, ErrSelfConversation
		}
		recipientID = target.ID

		conv, err = s.convRepo.FindOrCreate(ctx, senderID, recipientID)
		if err != nil {
			log.Error().Err(err).Msg("failed to find or create conversation")
			return nil, errors.New("failed to open conversation")
		}
	}

	message := &pm.Message{
		ID:             id.New(),
		ConversationID: conv.ID,
		SenderID:       senderID,
		RecipientID:    recipientID,
		Text:           text,
		Read:           false,
		Timestamp:      time.Now(),
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		log.Error().Err(err).Str("conversation_id", conv.ID).Msg("failed to send message")
		return nil, errors.New("failed to send message")
	}

	if err := s.convRepo.TouchLastMessage(ctx, conv.ID, senderID, recipientID, text); err != nil {
		log.Warn().Err(err).Str("conversation_id", conv.ID).Msg("failed to update conversation summary")
	}

	senders, err := s.users.ResolveDisplay(ctx, []string{senderID})
	if err != nil {
		return nil, err
	}

	return &SendResult{
		ConversationID: conv.ID,
		Message: PrivateMessageView{
			ID:        message.ID,
			Sender:    senders[senderID],
			Text:      message.Text,
			Timestamp: message.Timestamp,
		},
	}, nil
}

// MarkRead 清除调用方在会话中的未读标记
func (s *PMService) MarkRead(ctx context.Context, convID, userID string) error {
	conv, err := s.convRepo.FindByID(ctx, convID)
	if err != nil {
		return ErrConversationNotFound
	}
	if !conv.HasParticipant(userID) {
		return ErrNotParticipant
	}

	if err := s.convRepo.MarkRead(ctx, convID, userID); err != nil {
		return err
	}
	return s.messageRepo.MarkReadByConversation(ctx, convID, userID)
}

// resolveRecipient 按ID或登录名解析接收方（须为激活用户）
func (s *PMService) resolveRecipient(ctx context.Context, recipient string) (*auth.User, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return nil, ErrRecipientNotFound
	}

	if id.IsValid(recipient) {
		if user, err := s.userRepo.FindByID(ctx, recipient); err == nil {
			return user, nil
		}
	}

	user, err := s.userRepo.FindByLogin(ctx, strings.ToLower(recipient))
	if err != nil {
		return nil, ErrRecipientNotFound
	}
	return user, nil
}
