package pm

import (
	"strings"
	"time"
)

// Conversation 私信会话实体
// 同一对用户之间只有一个会话，通过 pair_key 唯一索引保证
type Conversation struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	PairKey      string    `bson:"pair_key" json:"-"`            // 排序后的参与者ID拼接
	Participants []string  `bson:"participants" json:"participants"`
	LastMessage  string    `bson:"last_message" json:"last_message"`
	LastSenderID string    `bson:"last_sender_id" json:"last_sender_id"`
	UnreadBy     []string  `bson:"unread_by" json:"-"` // 有未读消息的参与者ID
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// PairKey 计算一对用户的会话键，与参数顺序无关
func PairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + ":" + b
}

// OtherParticipant 返回会话中另一方的用户ID
func (c *Conversation) OtherParticipant(userID string) string {
	for _, p := range c.Participants {
		if p != userID {
			return p
		}
	}
	return ""
}

// HasParticipant 检查用户是否为会话参与者
func (c *Conversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// UnreadFor 检查用户是否有未读消息
func (c *Conversation) UnreadFor(userID string) bool {
	for _, p := range c.UnreadBy {
		if p == userID {
			return true
		}
	}
	return false
}

// ParticipantsFromPairKey 从 pair_key 还原参与者ID
func ParticipantsFromPairKey(key string) []string {
	return strings.SplitN(key, ":", 2)
}
