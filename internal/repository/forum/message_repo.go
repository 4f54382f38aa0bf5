package forum

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agora/internal/model/forum"
)

// MessageRepo 论坛留言仓库
// 回复内嵌在留言文档中，使用数组更新操作符维护
type MessageRepo struct {
	collection *mongo.Collection
}

// NewMessageRepo 创建留言仓库
func NewMessageRepo(db *mongo.Database) *MessageRepo {
	return &MessageRepo{
		collection: db.Collection("messages"),
	}
}

// Create 创建留言
func (r *MessageRepo) Create(ctx context.Context, m *forum.Message) error {
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	if m.Likes == nil {
		m.Likes = []string{}
	}
	if m.Replies == nil {
		m.Replies = []forum.Reply{}
	}

	_, err := r.collection.InsertOne(ctx, m)
	return err
}

// FindByID 根据ID查询留言
func (r *MessageRepo) FindByID(ctx context.Context, id string) (*forum.Message, error) {
	var m forum.Message
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByForum 查询论坛的留言列表（最新优先）
func (r *MessageRepo) ListByForum(ctx context.Context, forumID string) ([]*forum.Message, error) {
	opts := options.Find().
		SetSort(bson.D{bson.E{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"forum_id": forumID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []*forum.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// ListByAuthor 查询用户发布的留言（限定论坛范围）
func (r *MessageRepo) ListByAuthor(ctx context.Context, authorID string, forumIDs []string) ([]*forum.Message, error) {
	filter := bson.M{"author_id": authorID}
	if forumIDs != nil {
		filter["forum_id"] = bson.M{"$in": forumIDs}
	}

	opts := options.Find().
		SetSort(bson.D{bson.E{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []*forum.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// UpdateText 更新留言内容
func (r *MessageRepo) UpdateText(ctx context.Context, id, text string) error {
	update := bson.M{
		"$set": bson.M{
			"text":       text,
			"updated_at": time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

// Delete 删除留言
func (r *MessageRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteByForum 删除论坛的所有留言（论坛级联删除用）
func (r *MessageRepo) DeleteByForum(ctx context.Context, forumID string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"forum_id": forumID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// AddReply 追加回复
func (r *MessageRepo) AddReply(ctx context.Context, messageID string, reply *forum.Reply) error {
	update := bson.M{
		"$push": bson.M{"replies": reply},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": messageID}, update)
	return err
}

// AddLike 给留言点赞（$addToSet 保证幂等）
func (r *MessageRepo) AddLike(ctx context.Context, messageID, userID string) error {
	update := bson.M{
		"$addToSet": bson.M{"likes": userID},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": messageID}, update)
	return err
}

// RemoveLike 取消留言点赞
func (r *MessageRepo) RemoveLike(ctx context.Context, messageID, userID string) error {
	update := bson.M{
		"$pull": bson.M{"likes": userID},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": messageID}, update)
	return err
}

// AddReplyLike 给回复点赞
func (r *MessageRepo) AddReplyLike(ctx context.Context, messageID, replyID, userID string) error {
	filter := bson.M{"_id": messageID, "replies._id": replyID}
	update := bson.M{
		"$addToSet": bson.M{"replies.$.likes": userID},
	}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

// RemoveReplyLike 取消回复点赞
func (r *MessageRepo) RemoveReplyLike(ctx context.Context, messageID, replyID, userID string) error {
	filter := bson.M{"_id": messageID, "replies._id": replyID}
	update := bson.M{
		"$pull": bson.M{"replies.$.likes": userID},
	}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}
