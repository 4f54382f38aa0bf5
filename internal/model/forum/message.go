package forum

import (
	"time"
)

// Message 论坛留言实体
// 回复内嵌在留言文档中，仅支持一级回复
type Message struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	ForumID   string    `bson:"forum_id" json:"forum_id"`
	AuthorID  string    `bson:"author_id" json:"author_id"` // 作者用户ID，展示信息读取时再解析
	Text      string    `bson:"text" json:"text"`
	Likes     []string  `bson:"likes" json:"-"` // 点赞用户ID列表
	Replies   []Reply   `bson:"replies" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Reply 留言回复
type Reply struct {
	ID        string    `bson:"_id" json:"id"`
	AuthorID  string    `bson:"author_id" json:"author_id"`
	Text      string    `bson:"text" json:"text"`
	Likes     []string  `bson:"likes" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// LikedBy 检查用户是否已点赞
func (m *Message) LikedBy(userID string) bool {
	for _, id := range m.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// LikedBy 检查用户是否已点赞回复
func (r *Reply) LikedBy(userID string) bool {
	for _, id := range r.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
