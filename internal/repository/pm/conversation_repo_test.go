package pm

import (
	"context"
	"os"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	pmmodel "agora/internal/model/pm"
	"agora/internal/pkg/id"
	"agora/internal/pkg/mongodb"
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
		_ = db.Collection("conversations").Drop(cleanupCtx)
		_ = db.Collection("private_messages").Drop(cleanupCtx)
		_ = client.Disconnect(cleanupCtx)
	})
	return db
}

func TestConversationRepoFindOrCreate(t *testing.T) {
	db := testDB(t)
	if err := mongodb.EnsureIndexes(db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	repo := NewConversationRepo(db)
	ctx := context.Background()

	Convey("FindOrCreate returns the same conversation for both orders", t, func() {
		c1, err := repo.FindOrCreate(ctx, "user-a", "user-b")
		So(err, ShouldBeNil)
		So(c1.ID, ShouldNotBeEmpty)
		So(c1.Participants, ShouldResemble, []string{"user-a", "user-b"})

		c2, err := repo.FindOrCreate(ctx, "user-b", "user-a")
		So(err, ShouldBeNil)
		So(c2.ID, ShouldEqual, c1.ID)
	})

	Convey("Different pairs get different conversations", t, func() {
		c1, err := repo.FindOrCreate(ctx, "user-a", "user-b")
		So(err, ShouldBeNil)

		c3, err := repo.FindOrCreate(ctx, "user-a", "user-c")
		So(err, ShouldBeNil)
		So(c3.ID, ShouldNotEqual, c1.ID)
	})
}

func TestConversationRepoUnreadFlow(t *testing.T) {
	db := testDB(t)
	repo := NewConversationRepo(db)
	ctx := context.Background()

	Convey("Given a fresh conversation", t, func() {
		conv, err := repo.FindOrCreate(ctx, "sender", "recipient")
		So(err, ShouldBeNil)
		So(conv.UnreadBy, ShouldBeEmpty)

		Convey("TouchLastMessage marks the recipient unread", func() {
			err := repo.TouchLastMessage(ctx, conv.ID, "sender", "recipient", "hello there")
			So(err, ShouldBeNil)

			got, err := repo.FindByID(ctx, conv.ID)
			So(err, ShouldBeNil)
			So(got.LastMessage, ShouldEqual, "hello there")
			So(got.LastSenderID, ShouldEqual, "sender")
			So(got.UnreadFor("recipient"), ShouldBeTrue)
			So(got.UnreadFor("sender"), ShouldBeFalse)

			Convey("MarkRead clears the unread flag", func() {
				err := repo.MarkRead(ctx, conv.ID, "recipient")
				So(err, ShouldBeNil)

				got, err := repo.FindByID(ctx, conv.ID)
				So(err, ShouldBeNil)
				So(got.UnreadFor("recipient"), ShouldBeFalse)
			})
		})
	})
}

func TestMessageRepoReadReconciliation(t *testing.T) {
	db := testDB(t)
	convRepo := NewConversationRepo(db)
	msgRepo := NewMessageRepo(db)
	ctx := context.Background()

	Convey("Given a conversation with unread messages", t, func() {
		conv, err := convRepo.FindOrCreate(ctx, "sender", "recipient")
		So(err, ShouldBeNil)

		base := time.Now()
		for i, text := range []string{"first", "second"} {
			err := msgRepo.Create(ctx, &pmmodel.Message{
				ID:             id.New(),
				ConversationID: conv.ID,
				SenderID:       "sender",
				RecipientID:    "recipient",
				Text:           text,
				Timestamp:      base.Add(time.Duration(i) * time.Second),
			})
			So(err, ShouldBeNil)
		}

		Convey("Messages come back in timestamp order", func() {
			messages, err := msgRepo.ListByConversation(ctx, conv.ID)
			So(err, ShouldBeNil)
			So(messages, ShouldHaveLength, 2)
			So(messages[0].Text, ShouldEqual, "first")
			So(messages[1].Text, ShouldEqual, "second")
			So(messages[0].Read, ShouldBeFalse)
		})

		Convey("MarkReadByConversation flips only the recipient's messages", func() {
			err := msgRepo.MarkReadByConversation(ctx, conv.ID, "recipient")
			So(err, ShouldBeNil)

			messages, err := msgRepo.ListByConversation(ctx, conv.ID)
			So(err, ShouldBeNil)
			for _, m := range messages {
				So(m.Read, ShouldBeTrue)
			}
		})
	})
}
