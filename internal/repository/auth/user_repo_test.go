package auth

import (
	"context"
	"os"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodel "agora/internal/model/auth"
	"agora/internal/pkg/id"
)

func TestEscapeRegex(t *testing.T) {
	Convey("Regex special characters are escaped", t, func() {
		So(escapeRegex("alice"), ShouldEqual, "alice")
		So(escapeRegex("a.b"), ShouldEqual, `a\.b`)
		So(escapeRegex(".*"), ShouldEqual, `\.\*`)
		So(escapeRegex("a+b(c)"), ShouldEqual, `a\+b\(c\)`)
	})
}

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
		_ = db.Collection("users").Drop(cleanupCtx)
		_ = client.Disconnect(cleanupCtx)
	})
	return db
}

func newTestUser(login string, status authmodel.UserStatus) *authmodel.User {
	return &authmodel.User{
		ID:        id.New(),
		Login:     login,
		Password:  "hashed",
		FirstName: "Test",
		LastName:  "User",
		Role:      authmodel.RoleUser,
		Status:    status,
	}
}

func TestUserRepoCRUD(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	u := newTestUser("crud_user", authmodel.UserStatusActive)
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}

	Convey("FindByID and FindByLogin return the created user", t, func() {
		byID, err := repo.FindByID(ctx, u.ID)
		So(err, ShouldBeNil)
		So(byID.Login, ShouldEqual, "crud_user")

		byLogin, err := repo.FindByLogin(ctx, "crud_user")
		So(err, ShouldBeNil)
		So(byLogin.ID, ShouldEqual, u.ID)
	})

	Convey("FindByLogin for unknown login returns ErrNoDocuments", t, func() {
		_, err := repo.FindByLogin(ctx, "no_such_user")
		So(err, ShouldEqual, mongo.ErrNoDocuments)
	})
}

func TestUserRepoUpdateStatusIf(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	u := newTestUser("pending_user", authmodel.UserStatusPending)
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}

	Convey("Conditional status update guards the approval flow", t, func() {
		ok, err := repo.UpdateStatusIf(ctx, u.ID, authmodel.UserStatusPending, authmodel.UserStatusActive)
		So(err, ShouldBeNil)
		So(ok, ShouldBeTrue)

		// 重复审批是 no-op
		ok, err = repo.UpdateStatusIf(ctx, u.ID, authmodel.UserStatusPending, authmodel.UserStatusActive)
		So(err, ShouldBeNil)
		So(ok, ShouldBeFalse)

		// 已激活用户不能再走待审批拒绝
		ok, err = repo.UpdateStatusIf(ctx, u.ID, authmodel.UserStatusPending, authmodel.UserStatusRejected)
		So(err, ShouldBeNil)
		So(ok, ShouldBeFalse)

		got, err := repo.FindByID(ctx, u.ID)
		So(err, ShouldBeNil)
		So(got.Status, ShouldEqual, authmodel.UserStatusActive)
	})
}

func TestUserRepoSearch(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	active := newTestUser("search_alice", authmodel.UserStatusActive)
	active.FirstName = "Alice"
	if err := repo.Create(ctx, active); err != nil {
		t.Fatalf("create user: %v", err)
	}
	pending := newTestUser("search_albert", authmodel.UserStatusPending)
	if err := repo.Create(ctx, pending); err != nil {
		t.Fatalf("create user: %v", err)
	}

	Convey("Prefix search only finds active users", t, func() {
		users, err := repo.Search(ctx, "search_al", 10)
		So(err, ShouldBeNil)
		So(users, ShouldHaveLength, 1)
		So(users[0].Login, ShouldEqual, "search_alice")
	})

	Convey("Search matches first name case-insensitively", t, func() {
		users, err := repo.Search(ctx, "ali", 10)
		So(err, ShouldBeNil)
		So(users, ShouldHaveLength, 1)
		So(users[0].ID, ShouldEqual, active.ID)
	})

	Convey("Regex input does not widen the match", t, func() {
		users, err := repo.Search(ctx, ".*", 10)
		So(err, ShouldBeNil)
		So(users, ShouldBeEmpty)
	})
}
