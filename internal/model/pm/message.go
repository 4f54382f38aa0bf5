package pm

import (
	"time"
)

// Message 私信消息实体
type Message struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	ConversationID string    `bson:"conversation_id" json:"conversation_id"`
	SenderID       string    `bson:"sender_id" json:"sender_id"`
	RecipientID    string    `bson:"recipient_id" json:"recipient_id"`
	Text           string    `bson:"text" json:"text"`
	Read           bool      `bson:"read" json:"read"`
	Timestamp      time.Time `bson:"timestamp" json:"timestamp"`
}
