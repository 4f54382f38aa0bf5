package service

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"agora/internal/model/auth"
	authRepo "agora/internal/repository/auth"
	forumRepo "agora/internal/repository/forum"
)

func TestMessageServiceDelete(t *testing.T) {
	db := testDB(t)
	userRepo := authRepo.NewUserRepo(db)
	users := NewUserService(userRepo, nil)
	messageRepo := forumRepo.NewMessageRepo(db)
	forums := NewForumService(forumRepo.NewForumRepo(db), messageRepo)
	svc := NewMessageService(messageRepo, forums, users)
	ctx := context.Background()

	owner := seedUser(t, userRepo, "msg_owner", auth.RoleUser, auth.UserStatusActive)
	member := seedUser(t, userRepo, "msg_member", auth.RoleUser, auth.UserStatusActive)
	mod := seedUser(t, userRepo, "msg_mod", auth.RoleMod, auth.UserStatusActive)
	admin := seedUser(t, userRepo, "msg_admin", auth.RoleAdmin, auth.UserStatusActive)

	f, err := forums.Create(ctx, "General", "open floor", true, admin.ID)
	if err != nil {
		t.Fatalf("create forum: %v", err)
	}

	post := func(text string) string {
		v, err := svc.Create(ctx, f.ID, owner.ID, text, auth.RoleUser)
		if err != nil {
			t.Fatalf("create message: %v", err)
		}
		return v.ID
	}

	Convey("A mod cannot delete another member's message", t, func() {
		msgID := post("hands off")
		So(svc.Delete(ctx, msgID, mod.ID, auth.RoleMod), ShouldEqual, ErrNotMessageAuthor)

		// 留言应原样保留
		_, err := svc.Get(ctx, msgID, mod.ID, auth.RoleMod)
		So(err, ShouldBeNil)
	})

	Convey("A regular member cannot delete someone else's message", t, func() {
		msgID := post("still not yours")
		So(svc.Delete(ctx, msgID, member.ID, auth.RoleUser), ShouldEqual, ErrNotMessageAuthor)
	})

	Convey("The author can delete their own message", t, func() {
		msgID := post("mine to remove")
		So(svc.Delete(ctx, msgID, owner.ID, auth.RoleUser), ShouldBeNil)

		_, err := svc.Get(ctx, msgID, owner.ID, auth.RoleUser)
		So(err, ShouldEqual, ErrMessageNotFound)
	})

	Convey("An admin can delete any message", t, func() {
		msgID := post("admin sweep")
		So(svc.Delete(ctx, msgID, admin.ID, auth.RoleAdmin), ShouldBeNil)

		_, err := svc.Get(ctx, msgID, admin.ID, auth.RoleAdmin)
		So(err, ShouldEqual, ErrMessageNotFound)
	})
}
