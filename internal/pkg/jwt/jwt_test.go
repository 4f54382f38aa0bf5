package jwt

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestJWT(t *testing.T) {
	Convey("Given a JWT util", t, func() {
		j := NewJWT("test-secret", 15*time.Minute, 168*time.Hour)

		Convey("Access token round-trips claims", func() {
			token, err := j.GenerateAccessToken("u-1", "alice", "user")
			So(err, ShouldBeNil)
			So(token, ShouldNotBeEmpty)

			claims, err := j.ValidateAccessToken(token)
			So(err, ShouldBeNil)
			So(claims.UserID, ShouldEqual, "u-1")
			So(claims.Login, ShouldEqual, "alice")
			So(claims.Role, ShouldEqual, "user")
		})

		Convey("Refresh token round-trips claims", func() {
			token, err := j.GenerateRefreshToken("u-2", "bob", "admin")
			So(err, ShouldBeNil)

			claims, err := j.ValidateRefreshToken(token)
			So(err, ShouldBeNil)
			So(claims.UserID, ShouldEqual, "u-2")
			So(claims.Role, ShouldEqual, "admin")
		})

		Convey("Access token is rejected as refresh token", func() {
			token, err := j.GenerateAccessToken("u-1", "alice", "user")
			So(err, ShouldBeNil)

			_, err = j.ValidateRefreshToken(token)
			So(err, ShouldEqual, ErrInvalidToken)
		})

		Convey("Refresh token is rejected as access token", func() {
			token, err := j.GenerateRefreshToken("u-1", "alice", "user")
			So(err, ShouldBeNil)

			_, err = j.ValidateAccessToken(token)
			So(err, ShouldEqual, ErrInvalidToken)
		})

		Convey("Garbage token is invalid", func() {
			_, err := j.ValidateAccessToken("not-a-token")
			So(err, ShouldEqual, ErrInvalidToken)
		})

		Convey("Expired token returns ErrExpiredToken", func() {
			short := NewJWT("test-secret", -time.Minute, 168*time.Hour)
			token, err := short.GenerateAccessToken("u-1", "alice", "user")
			So(err, ShouldBeNil)

			_, err = short.ValidateAccessToken(token)
			So(err, ShouldEqual, ErrExpiredToken)
		})

		Convey("Token signed with a different secret is invalid", func() {
			other := NewJWT("other-secret", 15*time.Minute, 168*time.Hour)
			token, err := other.GenerateAccessToken("u-1", "alice", "user")
			So(err, ShouldBeNil)

			_, err = j.ValidateAccessToken(token)
			So(err, ShouldEqual, ErrInvalidToken)
		})
	})
}
