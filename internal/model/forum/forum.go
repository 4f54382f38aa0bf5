package forum

import (
	"time"
)

// Forum 论坛实体
type Forum struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`               // 论坛名称（唯一）
	Description string    `bson:"description" json:"description"` // 描述
	IsPublic    bool      `bson:"is_public" json:"is_public"`     // 是否对所有成员开放
	CreatedBy   string    `bson:"created_by" json:"created_by"`   // 创建者用户ID
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
