package pm

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agora/internal/model/pm"
)

// MessageRepo 私信消息仓库
type MessageRepo struct {
	collection *mongo.Collection
}

// NewMessageRepo 创建私信消息仓库
func NewMessageRepo(db *mongo.Database) *MessageRepo {
	return &MessageRepo{
		collection: db.Collection("private_messages"),
	}
}

// Create 创建私信消息
func (r *MessageRepo) Create(ctx context.Context, m *pm.Message) error {
	_, err := r.collection.InsertOne(ctx, m)
	return err
}

// ListByConversation 查询会话的消息（按时间正序）
func (r *MessageRepo) ListByConversation(ctx context.Context, convID string) ([]*pm.Message, error) {
	opts := options.Find().
		SetSort(bson.D{bson.E{Key: "timestamp", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"conversation_id": convID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []*pm.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkReadByConversation 将会话中发给该用户的消息标记为已读
func (r *MessageRepo) MarkReadByConversation(ctx context.Context, convID, recipientID string) error {
	filter := bson.M{
		"conversation_id": convID,
		"recipient_id":    recipientID,
		"read":            false,
	}
	_, err := r.collection.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"read": true}})
	return err
}

// DeleteByConversation 删除会话的所有消息
func (r *MessageRepo) DeleteByConversation(ctx context.Context, convID string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"conversation_id": convID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
