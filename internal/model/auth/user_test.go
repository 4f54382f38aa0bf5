package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUserStatusTransitions(t *testing.T) {
	Convey("Pending can only become active or rejected", t, func() {
		So(UserStatusPending.CanTransitionTo(UserStatusActive), ShouldBeTrue)
		So(UserStatusPending.CanTransitionTo(UserStatusRejected), ShouldBeTrue)
		So(UserStatusPending.CanTransitionTo(UserStatusInactive), ShouldBeFalse)
	})

	Convey("Active and inactive toggle", t, func() {
		So(UserStatusActive.CanTransitionTo(UserStatusInactive), ShouldBeTrue)
		So(UserStatusInactive.CanTransitionTo(UserStatusActive), ShouldBeTrue)
		So(UserStatusActive.CanTransitionTo(UserStatusRejected), ShouldBeFalse)
	})

	Convey("Rejected is terminal", t, func() {
		So(UserStatusRejected.CanTransitionTo(UserStatusActive), ShouldBeFalse)
		So(UserStatusRejected.CanTransitionTo(UserStatusPending), ShouldBeFalse)
		So(UserStatusRejected.CanTransitionTo(UserStatusInactive), ShouldBeFalse)
	})
}

func TestUserDisplayHelpers(t *testing.T) {
	Convey("Given a user with first and last name", t, func() {
		u := &User{FirstName: "marie", LastName: "curie"}

		Convey("FullName joins the names", func() {
			So(u.FullName(), ShouldEqual, "marie curie")
		})

		Convey("Initials are uppercased", func() {
			So(u.Initials(), ShouldEqual, "MC")
		})
	})

	Convey("Missing names degrade gracefully", t, func() {
		So((&User{FirstName: "solo"}).Initials(), ShouldEqual, "S")
		So((&User{}).Initials(), ShouldEqual, "")
		So((&User{LastName: "doe"}).FullName(), ShouldEqual, "doe")
	})

	Convey("Multibyte names keep the whole first rune", t, func() {
		u := &User{FirstName: "élodie", LastName: "ménard"}
		So(u.Initials(), ShouldEqual, "ÉM")
		So((&User{FirstName: "张", LastName: "伟"}).Initials(), ShouldEqual, "张伟")
	})
}

func TestRoleAndStatusValidity(t *testing.T) {
	Convey("Known roles are valid", t, func() {
		So(RoleUser.IsValid(), ShouldBeTrue)
		So(RoleMod.IsValid(), ShouldBeTrue)
		So(RoleAdmin.IsValid(), ShouldBeTrue)
		So(UserRole("root").IsValid(), ShouldBeFalse)
	})

	Convey("Known statuses are valid", t, func() {
		So(UserStatusPending.IsValid(), ShouldBeTrue)
		So(UserStatusActive.IsValid(), ShouldBeTrue)
		So(UserStatusInactive.IsValid(), ShouldBeTrue)
		So(UserStatusRejected.IsValid(), ShouldBeTrue)
		So(UserStatus("banned").IsValid(), ShouldBeFalse)
	})
}
