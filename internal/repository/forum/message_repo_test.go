package forum

import (
	"context"
	"os"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	forummodel "agora/internal/model/forum"
	"agora/internal/pkg/id"
)

// testDB 连接测试数据库，未配置 MONGO_URI 时跳过
func testDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect mongo: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Fatalf("ping mongo: %v", err)
	}

	db := client.Database("agora_test")
	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanupCancel()
		_ = db.Collection("forums").Drop(cleanupCtx)
		_ = db.Collection("messages").Drop(cleanupCtx)
		_ = client.Disconnect(cleanupCtx)
	})
	return db
}

func newTestMessage(forumID string) *forummodel.Message {
	return &forummodel.Message{
		ID:       id.New(),
		ForumID:  forumID,
		AuthorID: "author-1",
		Text:     "hello forum",
	}
}

func TestMessageRepoLikes(t *testing.T) {
	db := testDB(t)
	repo := NewMessageRepo(db)
	ctx := context.Background()

	Convey("Given a message", t, func() {
		m := newTestMessage("forum-1")
		So(repo.Create(ctx, m), ShouldBeNil)

		Convey("AddLike is idempotent", func() {
			So(repo.AddLike(ctx, m.ID, "user-1"), ShouldBeNil)
			So(repo.AddLike(ctx, m.ID, "user-1"), ShouldBeNil)

			got, err := repo.FindByID(ctx, m.ID)
			So(err, ShouldBeNil)
			So(got.Likes, ShouldHaveLength, 1)
			So(got.LikedBy("user-1"), ShouldBeTrue)

			Convey("RemoveLike clears it", func() {
				So(repo.RemoveLike(ctx, m.ID, "user-1"), ShouldBeNil)

				got, err := repo.FindByID(ctx, m.ID)
				So(err, ShouldBeNil)
				So(got.Likes, ShouldBeEmpty)
			})
		})
	})
}

func TestMessageRepoReplies(t *testing.T) {
	db := testDB(t)
	repo := NewMessageRepo(db)
	ctx := context.Background()

	Convey("Given a message with a reply", t, func() {
		m := newTestMessage("forum-1")
		So(repo.Create(ctx, m), ShouldBeNil)

		reply := &forummodel.Reply{
			ID:        id.New(),
			AuthorID:  "author-2",
			Text:      "a reply",
			Likes:     []string{},
			CreatedAt: time.Now(),
		}
		So(repo.AddReply(ctx, m.ID, reply), ShouldBeNil)

		Convey("Reply is embedded in the message", func() {
			got, err := repo.FindByID(ctx, m.ID)
			So(err, ShouldBeNil)
			So(got.Replies, ShouldHaveLength, 1)
			So(got.Replies[0].Text, ShouldEqual, "a reply")
		})

		Convey("Reply likes toggle through the positional operator", func() {
			So(repo.AddReplyLike(ctx, m.ID, reply.ID, "user-1"), ShouldBeNil)

			got, err := repo.FindByID(ctx, m.ID)
			So(err, ShouldBeNil)
			So(got.Replies[0].LikedBy("user-1"), ShouldBeTrue)

			So(repo.RemoveReplyLike(ctx, m.ID, reply.ID, "user-1"), ShouldBeNil)

			got, err = repo.FindByID(ctx, m.ID)
			So(err, ShouldBeNil)
			So(got.Replies[0].Likes, ShouldBeEmpty)
		})
	})
}

func TestMessageRepoDeleteByForum(t *testing.T) {
	db := testDB(t)
	repo := NewMessageRepo(db)
	ctx := context.Background()

	Convey("Given messages across two forums", t, func() {
		So(repo.Create(ctx, newTestMessage("forum-a")), ShouldBeNil)
		So(repo.Create(ctx, newTestMessage("forum-a")), ShouldBeNil)
		So(repo.Create(ctx, newTestMessage("forum-b")), ShouldBeNil)

		Convey("DeleteByForum removes only that forum's messages", func() {
			count, err := repo.DeleteByForum(ctx, "forum-a")
			So(err, ShouldBeNil)
			So(count, ShouldEqual, 2)

			remaining, err := repo.ListByForum(ctx, "forum-b")
			So(err, ShouldBeNil)
			So(remaining, ShouldHaveLength, 1)
		})
	})
}
