package service

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"agora/internal/model/auth"
	"agora/internal/pkg/id"
	authRepo "agora/internal/repository/auth"
	pmRepo "agora/internal/repository/pm"
)

func TestPMServiceSend(t *testing.T) {
	db := testDB(t)
	userRepo := authRepo.NewUserRepo(db)
	users := NewUserService(userRepo, nil)
	svc := NewPMService(pmRepo.NewConversationRepo(db), pmRepo.NewMessageRepo(db), userRepo, users)
	ctx := context.Background()

	alice := seedUser(t, userRepo, "pm_alice", auth.RoleUser, auth.UserStatusActive)
	bob := seedUser(t, userRepo, "pm_bob", auth.RoleUser, auth.UserStatusActive)
	eve := seedUser(t, userRepo, "pm_eve", auth.RoleUser, auth.UserStatusActive)

	first, err := svc.Send(ctx, alice.ID, bob.ID, "", "salut")
	if err != nil {
		t.Fatalf("first send: %v", err)
	}
	convID := first.ConversationID

	Convey("The first message opens a conversation and flags only the recipient unread", t, func() {
		So(convID, ShouldNotBeEmpty)
		So(first.Message.Text, ShouldEqual, "salut")

		bobConvs, err := svc.ListConversations(ctx, bob.ID)
		So(err, ShouldBeNil)
		So(len(bobConvs), ShouldEqual, 1)
		So(bobConvs[0].ID, ShouldEqual, convID)
		So(bobConvs[0].Unread, ShouldEqual, 1)
		So(bobConvs[0].Other.ID, ShouldEqual, alice.ID)

		aliceConvs, err := svc.ListConversations(ctx, alice.ID)
		So(err, ShouldBeNil)
		So(len(aliceConvs), ShouldEqual, 1)
		So(aliceConvs[0].Unread, ShouldEqual, 0)
	})

	Convey("A second send to the same recipient reuses the conversation", t, func() {
		res, err := svc.Send(ctx, alice.ID, bob.ID, "", "encore")
		So(err, ShouldBeNil)
		So(res.ConversationID, ShouldEqual, convID)

		bobConvs, err := svc.ListConversations(ctx, bob.ID)
		So(err, ShouldBeNil)
		So(len(bobConvs), ShouldEqual, 1)
		So(bobConvs[0].LastMessage, ShouldEqual, "encore")
	})

	Convey("A participant can reply through the explicit conversation id", t, func() {
		res, err := svc.Send(ctx, bob.ID, "", convID, "réponse")
		So(err, ShouldBeNil)
		So(res.ConversationID, ShouldEqual, convID)

		// 现在轮到 alice 有未读
		aliceConvs, err := svc.ListConversations(ctx, alice.ID)
		So(err, ShouldBeNil)
		So(aliceConvs[0].Unread, ShouldEqual, 1)
	})

	Convey("A non-participant is rejected from an explicit conversation", t, func() {
		_, err := svc.Send(ctx, eve.ID, "", convID, "intrusion")
		So(err, ShouldEqual, ErrNotParticipant)

		_, err = svc.Send(ctx, eve.ID, "", id.New(), "nowhere")
		So(err, ShouldEqual, ErrConversationNotFound)
	})

	Convey("Self-messaging and bad input are rejected", t, func() {
		_, err := svc.Send(ctx, alice.ID, alice.ID, "", "note to self")
		So(err, ShouldEqual, ErrSelfConversation)

		_, err = svc.Send(ctx, alice.ID, bob.ID, "", "   ")
		So(err, ShouldEqual, ErrEmptyMessage)

		_, err = svc.Send(ctx, alice.ID, "nobody_here", "", "hello")
		So(err, ShouldEqual, ErrRecipientNotFound)
	})

	Convey("Reading the conversation clears the caller's unread flag", t, func() {
		messages, err := svc.GetMessages(ctx, convID, alice.ID)
		So(err, ShouldBeNil)
		So(len(messages), ShouldEqual, 3)

		texts := make([]string, 0, len(messages))
		for _, m := range messages {
			texts = append(texts, m.Text)
		}
		So(texts, ShouldContain, "salut")
		So(texts, ShouldContain, "réponse")

		aliceConvs, err := svc.ListConversations(ctx, alice.ID)
		So(err, ShouldBeNil)
		So(aliceConvs[0].Unread, ShouldEqual, 0)

		// 对非参与者同样不可读
		_, err = svc.GetMessages(ctx, convID, eve.ID)
		So(err, ShouldEqual, ErrNotParticipant)
	})
}
