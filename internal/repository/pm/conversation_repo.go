package pm

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agora/internal/model/pm"
	"agora/internal/pkg/id"
)

// ConversationRepo 私信会话仓库
type ConversationRepo struct {
	collection *mongo.Collection
}

// NewConversationRepo 创建会话仓库
func NewConversationRepo(db *mongo.Database) *ConversationRepo {
	return &ConversationRepo{
		collection: db.Collection("conversations"),
	}
}

// FindOrCreate 查找或创建一对用户的会话
// 通过 pair_key 唯一索引 + upsert 保证并发下同一对用户只有一个会话
func (r *ConversationRepo) FindOrCreate(ctx context.Context, userA, userB string) (*pm.Conversation, error) {
	pairKey := pm.PairKey(userA, userB)
	now := time.Now()

	filter := bson.M{"pair_key": pairKey}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":            id.New(),
			"pair_key":       pairKey,
			"participants":   pm.ParticipantsFromPairKey(pairKey),
			"last_message":   "",
			"last_sender_id": "",
			"unread_by":      []string{},
			"created_at":     now,
			"updated_at":     now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var conv pm.Conversation
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// FindByID 根据ID查询会话
func (r *ConversationRepo) FindByID(ctx context.Context, convID string) (*pm.Conversation, error) {
	var conv pm.Conversation
	err := r.collection.FindOne(ctx, bson.M{"_id": convID}).Decode(&conv)
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// ListByParticipant 查询用户参与的会话（最近更新优先）
func (r *ConversationRepo) ListByParticipant(ctx context.Context, userID string) ([]*pm.Conversation, error) {
	opts := options.Find().
		SetSort(bson.D{bson.E{Key: "updated_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"participants": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var conversations []*pm.Conversation
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// TouchLastMessage 发送消息后更新会话摘要，并将接收方标记为未读
func (r *ConversationRepo) TouchLastMessage(ctx context.Context, convID, senderID, recipientID, text string) error {
	update := bson.M{
		"$set": bson.M{
			"last_message":   text,
			"last_sender_id": senderID,
			"updated_at":     time.Now(),
		},
		"$addToSet": bson.M{"unread_by": recipientID},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": convID}, update)
	return err
}

// MarkRead 清除用户在会话中的未读标记
func (r *ConversationRepo) MarkRead(ctx context.Context, convID, userID string) error {
	update := bson.M{
		"$pull": bson.M{"unread_by": userID},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": convID}, update)
	return err
}
