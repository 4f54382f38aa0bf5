package password

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPassword(t *testing.T) {
	Convey("Given a plain password", t, func() {
		plain := "s3cret-password"

		Convey("Hash produces a verifiable hash", func() {
			hash, err := Hash(plain)
			So(err, ShouldBeNil)
			So(hash, ShouldNotEqual, plain)
			So(Verify(plain, hash), ShouldBeTrue)
		})

		Convey("Wrong password does not verify", func() {
			hash, err := Hash(plain)
			So(err, ShouldBeNil)
			So(Verify("wrong-password", hash), ShouldBeFalse)
		})

		Convey("Hashing twice yields different hashes", func() {
			h1, err := Hash(plain)
			So(err, ShouldBeNil)
			h2, err := Hash(plain)
			So(err, ShouldBeNil)
			So(h1, ShouldNotEqual, h2)
		})
	})
}
