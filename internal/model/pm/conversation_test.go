package pm

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPairKey(t *testing.T) {
	Convey("PairKey is order-independent", t, func() {
		So(PairKey("a", "b"), ShouldEqual, PairKey("b", "a"))
		So(PairKey("a", "b"), ShouldEqual, "a:b")
	})

	Convey("ParticipantsFromPairKey restores both ids", t, func() {
		parts := ParticipantsFromPairKey(PairKey("u-2", "u-1"))
		So(parts, ShouldHaveLength, 2)
		So(parts[0], ShouldEqual, "u-1")
		So(parts[1], ShouldEqual, "u-2")
	})
}

func TestConversationHelpers(t *testing.T) {
	Convey("Given a conversation between two users", t, func() {
		conv := &Conversation{
			ID:           "c-1",
			Participants: []string{"u-1", "u-2"},
			UnreadBy:     []string{"u-2"},
		}

		Convey("OtherParticipant returns the peer", func() {
			So(conv.OtherParticipant("u-1"), ShouldEqual, "u-2")
			So(conv.OtherParticipant("u-2"), ShouldEqual, "u-1")
		})

		Convey("HasParticipant rejects outsiders", func() {
			So(conv.HasParticipant("u-1"), ShouldBeTrue)
			So(conv.HasParticipant("u-3"), ShouldBeFalse)
		})

		Convey("UnreadFor is per-user", func() {
			So(conv.UnreadFor("u-2"), ShouldBeTrue)
			So(conv.UnreadFor("u-1"), ShouldBeFalse)
		})
	})
}
