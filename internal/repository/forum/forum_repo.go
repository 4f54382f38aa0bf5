package forum

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agora/internal/model/forum"
)

// ForumRepo 论坛仓库
type ForumRepo struct {
	collection *mongo.Collection
}

// NewForumRepo 创建论坛仓库
func NewForumRepo(db *mongo.Database) *ForumRepo {
	return &ForumRepo{
		collection: db.Collection("forums"),
	}
}

// Create 创建论坛
func (r *ForumRepo) Create(ctx context.Context, f *forum.Forum) error {
	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, f)
	return err
}

// FindByID 根据ID查询论坛
func (r *ForumRepo) FindByID(ctx context.Context, id string) (*forum.Forum, error) {
	var f forum.Forum
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FindByName 根据名称查询论坛
func (r *ForumRepo) FindByName(ctx context.Context, name string) (*forum.Forum, error) {
	var f forum.Forum
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&f)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// List 查询论坛列表
func (r *ForumRepo) List(ctx context.Context, filter bson.M) ([]*forum.Forum, error) {
	opts := options.Find().
		SetSort(bson.D{bson.E{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var forums []*forum.Forum
	if err := cursor.All(ctx, &forums); err != nil {
		return nil, err
	}
	return forums, nil
}

// Update 更新论坛
func (r *ForumRepo) Update(ctx context.Context, id string, update bson.M) error {
	if setDoc, ok := update["$set"].(bson.M); ok {
		setDoc["updated_at"] = time.Now()
	} else {
		update["$set"] = bson.M{"updated_at": time.Now()}
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

// Delete 删除论坛
func (r *ForumRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
