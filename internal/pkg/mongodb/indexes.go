package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes 为集合创建索引
func CreateIndexes(ctx context.Context, coll *mongo.Collection, indexes []mongo.IndexModel) error {
	if len(indexes) == 0 {
		return nil
	}
	_, err := coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// EnsureIndexes 创建所有集合的索引
// 统一入口，应用启动时调用
func EnsureIndexes(db *mongo.Database) error {
	ctx := context.Background()

	// users 集合索引
	userColl := db.Collection("users")
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{bson.E{Key: "login", Value: 1}},
			Options: options.Index().SetName("idx_login").SetUnique(true),
		},
		{
			Keys:    bson.D{bson.E{Key: "role", Value: 1}, bson.E{Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_role_status"),
		},
		{
			Keys:    bson.D{bson.E{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_created_at"),
		},
	}
	if err := CreateIndexes(ctx, userColl, userIndexes); err != nil {
		return err
	}

	// forums 集合索引
	forumColl := db.Collection("forums")
	forumIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{bson.E{Key: "name", Value: 1}},
			Options: options.Index().SetName("idx_name").SetUnique(true),
		},
		{
			Keys:    bson.D{bson.E{Key: "is_public", Value: 1}},
			Options: options.Index().SetName("idx_is_public"),
		},
	}
	if err := CreateIndexes(ctx, forumColl, forumIndexes); err != nil {
		return err
	}

	// messages 集合索引
	msgColl := db.Collection("messages")
	msgIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{bson.E{Key: "forum_id", Value: 1}, bson.E{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_forum_created"),
		},
		{
			Keys:    bson.D{bson.E{Key: "author_id", Value: 1}, bson.E{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_author_created"),
		},
	}
	if err := CreateIndexes(ctx, msgColl, msgIndexes); err != nil {
		return err
	}

	// conversations 集合索引
	// pair_key 唯一索引保证同一对用户只有一个会话
	convColl := db.Collection("conversations")
	convIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{bson.E{Key: "pair_key", Value: 1}},
			Options: options.Index().SetName("idx_pair_key").SetUnique(true),
		},
		{
			Keys:    bson.D{bson.E{Key: "participants", Value: 1}, bson.E{Key: "updated_at", Value: -1}},
			Options: options.Index().SetName("idx_participants_updated"),
		},
	}
	if err := CreateIndexes(ctx, convColl, convIndexes); err != nil {
		return err
	}

	// private_messages 集合索引
	pmColl := db.Collection("private_messages")
	pmIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{bson.E{Key: "conversation_id", Value: 1}, bson.E{Key: "timestamp", Value: 1}},
			Options: options.Index().SetName("idx_conversation_ts"),
		},
	}
	if err := CreateIndexes(ctx, pmColl, pmIndexes); err != nil {
		return err
	}

	return nil
}
