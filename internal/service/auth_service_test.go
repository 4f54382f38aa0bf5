package service

import (
	"context"
	"os"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agora/internal/model/system"
	authRepo "agora/internal/repository/auth"
	systemRepo "agora/internal/repository/system"
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

	db := client.Database("agora_service_test")
	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanupCancel()
		_ = db.Drop(cleanupCtx)
		_ = client.Disconnect(cleanupCtx)
	})
	return db
}

// newAuthService 构造测试用认证服务（无 Redis 缓存）
func newAuthService(db *mongo.Database) (*AuthService, *systemRepo.SettingsRepo) {
	settingsRepo := systemRepo.NewSettingsRepo(db)
	settingsService := NewSettingsService(settingsRepo, nil)
	svc := NewAuthService(
		authRepo.NewUserRepo(db),
		settingsService,
		"test-secret",
		15*time.Minute,
		time.Hour,
	)
	return svc, settingsRepo
}

func TestAuthServiceRegister(t *testing.T) {
	db := testDB(t)
	svc, settingsRepo := newAuthService(db)
	ctx := context.Background()

	Convey("With approval required, registration lands in pending", t, func() {
		res, err := svc.Register(ctx, "Newcomer", "secret6", "secret6", "New", "Comer")
		So(err, ShouldBeNil)
		So(res.Login, ShouldEqual, "newcomer")
		So(res.Status, ShouldEqual, "pending")
	})

	Convey("Validation failures are reported as sentinel errors", t, func() {
		_, err := svc.Register(ctx, "ab", "secret6", "secret6", "A", "B")
		So(err, ShouldEqual, ErrInvalidLogin)

		_, err = svc.Register(ctx, "valid_login", "secret6", "other66", "A", "B")
		So(err, ShouldEqual, ErrPasswordMismatch)

		_, err = svc.Register(ctx, "valid_login", "short", "short", "A", "B")
		So(err, ShouldEqual, ErrWeakPassword)
	})

	Convey("Duplicate login is rejected", t, func() {
		_, err := svc.Register(ctx, "newcomer", "secret6", "secret6", "New", "Comer")
		So(err, ShouldEqual, ErrLoginTaken)
	})

	Convey("With approval disabled, registration is immediately active", t, func() {
		settings := system.DefaultSettings()
		settings.RegistrationRequiresApproval = false
		So(settingsRepo.Upsert(ctx, settings), ShouldBeNil)

		res, err := svc.Register(ctx, "walk_in", "secret6", "secret6", "Walk", "In")
		So(err, ShouldBeNil)
		So(res.Status, ShouldEqual, "active")
	})
}

func TestAuthServiceLogin(t *testing.T) {
	db := testDB(t)
	svc, settingsRepo := newAuthService(db)
	ctx := context.Background()

	settings := system.DefaultSettings()
	settings.RegistrationRequiresApproval = false
	if err := settingsRepo.Upsert(ctx, settings); err != nil {
		t.Fatalf("upsert settings: %v", err)
	}
	if _, err := svc.Register(ctx, "member", "secret6", "secret6", "Mem", "Ber"); err != nil {
		t.Fatalf("register: %v", err)
	}

	Convey("Login with correct credentials issues both tokens", t, func() {
		res, err := svc.Login(ctx, "member", "secret6")
		So(err, ShouldBeNil)
		So(res.AccessToken, ShouldNotBeEmpty)
		So(res.RefreshToken, ShouldNotBeEmpty)
		So(res.TokenType, ShouldEqual, "Bearer")
		So(res.User.Login, ShouldEqual, "member")
	})

	Convey("Unknown login and wrong password yield the same error", t, func() {
		_, errUnknown := svc.Login(ctx, "ghost", "secret6")
		So(errUnknown, ShouldEqual, ErrInvalidCredential)

		_, errWrong := svc.Login(ctx, "member", "wrong-password")
		So(errWrong, ShouldEqual, ErrInvalidCredential)
	})

	Convey("Pending account cannot log in", t, func() {
		settings.RegistrationRequiresApproval = true
		So(settingsRepo.Upsert(ctx, settings), ShouldBeNil)

		_, err := svc.Register(ctx, "waiting", "secret6", "secret6", "Wai", "Ting")
		So(err, ShouldBeNil)

		_, err = svc.Login(ctx, "waiting", "secret6")
		So(err, ShouldEqual, ErrUserPending)
	})
}

func TestAuthServiceRefresh(t *testing.T) {
	db := testDB(t)
	svc, settingsRepo := newAuthService(db)
	ctx := context.Background()

	settings := system.DefaultSettings()
	settings.RegistrationRequiresApproval = false
	if err := settingsRepo.Upsert(ctx, settings); err != nil {
		t.Fatalf("upsert settings: %v", err)
	}
	if _, err := svc.Register(ctx, "refresher", "secret6", "secret6", "Re", "Fresher"); err != nil {
		t.Fatalf("register: %v", err)
	}

	Convey("Refresh rotates both tokens", t, func() {
		loginRes, err := svc.Login(ctx, "refresher", "secret6")
		So(err, ShouldBeNil)

		res, err := svc.Refresh(ctx, loginRes.RefreshToken)
		So(err, ShouldBeNil)
		So(res.AccessToken, ShouldNotBeEmpty)
		So(res.RefreshToken, ShouldNotBeEmpty)
	})

	Convey("Access token is not accepted for refresh", t, func() {
		loginRes, err := svc.Login(ctx, "refresher", "secret6")
		So(err, ShouldBeNil)

		_, err = svc.Refresh(ctx, loginRes.AccessToken)
		So(err, ShouldEqual, ErrInvalidToken)
	})

	Convey("Garbage refresh token is invalid", t, func() {
		_, err := svc.Refresh(ctx, "not-a-token")
		So(err, ShouldEqual, ErrInvalidToken)
	})
}
