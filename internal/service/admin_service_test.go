package service

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"agora/internal/model/auth"
	"agora/internal/pkg/id"
	authRepo "agora/internal/repository/auth"
)

func seedUser(t *testing.T, repo *authRepo.UserRepo, login string, role auth.UserRole, status auth.UserStatus) *auth.User {
	t.Helper()
	u := &auth.User{
		ID:        id.New(),
		Login:     login,
		Password:  "hashed",
		FirstName: "Seed",
		LastName:  "User",
		Role:      role,
		Status:    status,
	}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user %s: %v", login, err)
	}
	return u
}

func TestAdminServiceApproval(t *testing.T) {
	db := testDB(t)
	userRepo := authRepo.NewUserRepo(db)
	svc := NewAdminService(userRepo)
	ctx := context.Background()

	pending := seedUser(t, userRepo, "approve_me", auth.RoleUser, auth.UserStatusPending)
	rejected := seedUser(t, userRepo, "reject_me", auth.RoleUser, auth.UserStatusPending)

	Convey("Approve moves a pending user to active", t, func() {
		got, err := svc.Approve(ctx, pending.ID)
		So(err, ShouldBeNil)
		So(got.Status, ShouldEqual, auth.UserStatusActive)

		// 重复批准报错
		_, err = svc.Approve(ctx, pending.ID)
		So(err, ShouldEqual, ErrNotPending)
	})

	Convey("Reject is terminal", t, func() {
		got, err := svc.Reject(ctx, rejected.ID)
		So(err, ShouldBeNil)
		So(got.Status, ShouldEqual, auth.UserStatusRejected)

		// 拒绝后不能再批准
		_, err = svc.Approve(ctx, rejected.ID)
		So(err, ShouldEqual, ErrNotPending)
	})

	Convey("Approving an unknown user reports not pending", t, func() {
		_, err := svc.Approve(ctx, id.New())
		So(err, ShouldEqual, ErrNotPending)
	})
}

func TestAdminServiceChangeRole(t *testing.T) {
	db := testDB(t)
	userRepo := authRepo.NewUserRepo(db)
	svc := NewAdminService(userRepo)
	ctx := context.Background()

	admin := seedUser(t, userRepo, "the_admin", auth.RoleAdmin, auth.UserStatusActive)
	otherAdmin := seedUser(t, userRepo, "other_admin", auth.RoleAdmin, auth.UserStatusActive)
	member := seedUser(t, userRepo, "the_member", auth.RoleUser, auth.UserStatusActive)

	Convey("Admin can promote a member to mod", t, func() {
		got, err := svc.ChangeRole(ctx, admin.ID, member.ID, auth.RoleMod)
		So(err, ShouldBeNil)
		So(got.Role, ShouldEqual, auth.RoleMod)
	})

	Convey("Admin cannot change own role", t, func() {
		_, err := svc.ChangeRole(ctx, admin.ID, admin.ID, auth.RoleUser)
		So(err, ShouldEqual, ErrCannotModifySelf)
	})

	Convey("Admin cannot change another admin", t, func() {
		_, err := svc.ChangeRole(ctx, admin.ID, otherAdmin.ID, auth.RoleUser)
		So(err, ShouldEqual, ErrCannotModifyAdmin)
	})

	Convey("Invalid role is rejected", t, func() {
		_, err := svc.ChangeRole(ctx, admin.ID, member.ID, auth.UserRole("root"))
		So(err, ShouldEqual, ErrInvalidRole)
	})
}

func TestAdminServiceChangeStatus(t *testing.T) {
	db := testDB(t)
	userRepo := authRepo.NewUserRepo(db)
	svc := NewAdminService(userRepo)
	ctx := context.Background()

	admin := seedUser(t, userRepo, "status_admin", auth.RoleAdmin, auth.UserStatusActive)
	member := seedUser(t, userRepo, "status_member", auth.RoleUser, auth.UserStatusActive)
	rejected := seedUser(t, userRepo, "status_rejected", auth.RoleUser, auth.UserStatusRejected)

	Convey("Active and inactive toggle", t, func() {
		got, err := svc.ChangeStatus(ctx, admin.ID, member.ID, auth.UserStatusInactive)
		So(err, ShouldBeNil)
		So(got.Status, ShouldEqual, auth.UserStatusInactive)

		got, err = svc.ChangeStatus(ctx, admin.ID, member.ID, auth.UserStatusActive)
		So(err, ShouldBeNil)
		So(got.Status, ShouldEqual, auth.UserStatusActive)
	})

	Convey("Rejected users cannot be reactivated", t, func() {
		_, err := svc.ChangeStatus(ctx, admin.ID, rejected.ID, auth.UserStatusActive)
		So(err, ShouldEqual, ErrInvalidTransition)
	})

	Convey("Setting the current status is a no-op", t, func() {
		got, err := svc.ChangeStatus(ctx, admin.ID, member.ID, auth.UserStatusActive)
		So(err, ShouldBeNil)
		So(got.Status, ShouldEqual, auth.UserStatusActive)
	})
}
