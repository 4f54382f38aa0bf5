package system

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agora/internal/model/system"
)

// SettingsRepo 站点设置仓库（单例文档）
type SettingsRepo struct {
	collection *mongo.Collection
}

// NewSettingsRepo 创建设置仓库
func NewSettingsRepo(db *mongo.Database) *SettingsRepo {
	return &SettingsRepo{
		collection: db.Collection("settings"),
	}
}

// Get 获取站点设置，不存在时返回默认设置
func (r *SettingsRepo) Get(ctx context.Context) (*system.Settings, error) {
	var settings system.Settings
	err := r.collection.FindOne(ctx, bson.M{"_id": system.SettingsID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return system.DefaultSettings(), nil
		}
		return nil, err
	}
	return &settings, nil
}

// EnsureDefault 初始化默认设置，已存在时不覆盖
func (r *SettingsRepo) EnsureDefault(ctx context.Context) error {
	defaults := system.DefaultSettings()
	update := bson.M{
		"$setOnInsert": bson.M{
			"site_name":                      defaults.SiteName,
			"registration_requires_approval": defaults.RegistrationRequiresApproval,
			"updated_at":                     time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": system.SettingsID}, update, opts)
	return err
}

// Upsert 更新站点设置
func (r *SettingsRepo) Upsert(ctx context.Context, settings *system.Settings) error {
	settings.ID = system.SettingsID
	settings.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": system.SettingsID}, settings, opts)
	return err
}
