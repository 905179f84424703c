package message

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"gorm.io/gorm"

	"gochat/internal/common"
	"gochat/internal/dbmysql"
	"gochat/internal/pagination"
)

const (
	alice = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	bob   = "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"
	carol = "cccccccc-cccc-4ccc-8ccc-cccccccccccc"
	grp   = "11111111-1111-4111-8111-111111111111"
)

type svcMocks struct {
	repo   *MockMessageRepository
	users  *MockUserDirectory
	groups *MockGroupFinder
	access *MockAccessChecker
}

func newService(t *testing.T) (MessageService, svcMocks, context.Context) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := svcMocks{
		repo:   NewMockMessageRepository(ctrl),
		users:  NewMockUserDirectory(ctrl),
		groups: NewMockGroupFinder(ctrl),
		access: NewMockAccessChecker(ctrl),
	}
	return NewMessageService(m.repo, m.users, m.groups, m.access), m, context.Background()
}

func strptr(s string) *string { return &s }

func msgAt(id string, ts time.Time) dbmysql.Message {
	return dbmysql.Message{MessageID: id, SenderID: alice, GroupID: strptr(grp), CreatedAt: ts}
}

func TestSendMessage(t *testing.T) {
	sender := &dbmysql.User{UserID: alice, Name: "Alice", Phone: "+15550001111"}
	receiver := &dbmysql.User{UserID: bob, Name: "Bob", Phone: "+15550002222"}

	t.Run("direct message captures snapshots", func(t *testing.T) {
		svc, m, ctx := newService(t)

		m.users.EXPECT().GetUserByID(ctx, alice).Return(sender, nil)
		m.users.EXPECT().GetUserByID(ctx, bob).Return(receiver, nil)
		m.repo.EXPECT().CreateMessage(ctx, gomock.Any()).Return(nil)

		msg, err := svc.SendMessage(ctx, alice, SendMessageInput{Content: "hey", ReceiverID: strptr(bob)})
		require.NoError(t, err)
		assert.Equal(t, "Alice", msg.SenderName)
		assert.Equal(t, "+15550001111", msg.SenderPhone)
		assert.Equal(t, "Bob", msg.ReceiverName)
		assert.Equal(t, "+15550002222", msg.ReceiverPhone)
		assert.NotEmpty(t, msg.MessageID)
	})

	t.Run("group message requires membership", func(t *testing.T) {
		svc, m, ctx := newService(t)

		m.users.EXPECT().GetUserByID(ctx, alice).Return(sender, nil)
		m.groups.EXPECT().GetGroupByID(ctx, grp).Return(&dbmysql.Group{GroupID: grp}, nil)
		m.access.EXPECT().RequireAccess(ctx, alice, grp, false).
			Return(common.PermissionDenied("you are not a member of this group"))

		_, err := svc.SendMessage(ctx, alice, SendMessageInput{Content: "hey", GroupID: strptr(grp)})
		assert.True(t, common.IsCode(err, codes.PermissionDenied))
	})

	t.Run("neither receiver nor group", func(t *testing.T) {
		svc, _, ctx := newService(t)

		_, err := svc.SendMessage(ctx, alice, SendMessageInput{Content: "hey"})
		assert.True(t, common.IsCode(err, codes.InvalidArgument))
	})

	t.Run("both receiver and group", func(t *testing.T) {
		svc, _, ctx := newService(t)

		_, err := svc.SendMessage(ctx, alice, SendMessageInput{
			Content:    "hey",
			ReceiverID: strptr(bob),
			GroupID:    strptr(grp),
		})
		assert.True(t, common.IsCode(err, codes.InvalidArgument))
	})

	t.Run("empty content", func(t *testing.T) {
		svc, _, ctx := newService(t)

		_, err := svc.SendMessage(ctx, alice, SendMessageInput{Content: "   ", ReceiverID: strptr(bob)})
		assert.True(t, common.IsCode(err, codes.InvalidArgument))
	})

	t.Run("unknown receiver", func(t *testing.T) {
		svc, m, ctx := newService(t)

		m.users.EXPECT().GetUserByID(ctx, alice).Return(sender, nil)
		m.users.EXPECT().GetUserByID(ctx, carol).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.SendMessage(ctx, alice, SendMessageInput{Content: "hey", ReceiverID: strptr(carol)})
		assert.True(t, common.IsCode(err, codes.InvalidArgument))
	})

	t.Run("reply must stay in the same group", func(t *testing.T) {
		svc, m, ctx := newService(t)

		other := "22222222-2222-4222-8222-222222222222"
		m.users.EXPECT().GetUserByID(ctx, alice).Return(sender, nil)
		m.groups.EXPECT().GetGroupByID(ctx, grp).Return(&dbmysql.Group{GroupID: grp}, nil)
		m.access.EXPECT().RequireAccess(ctx, alice, grp, false).Return(nil)
		m.repo.EXPECT().GetMessageByID(ctx, "parent-id").
			Return(&dbmysql.Message{MessageID: "parent-id", SenderID: bob, GroupID: strptr(other)}, nil)

		_, err := svc.SendMessage(ctx, alice, SendMessageInput{
			Content:   "reply",
			GroupID:   strptr(grp),
			ReplyToID: strptr("parent-id"),
		})
		assert.True(t, common.IsCode(err, codes.InvalidArgument))
	})

	t.Run("direct reply must be within the same pair", func(t *testing.T) {
		svc, m, ctx := newService(t)

		m.users.EXPECT().GetUserByID(ctx, alice).Return(sender, nil)
		m.users.EXPECT().GetUserByID(ctx, bob).Return(receiver, nil)
		m.repo.EXPECT().GetMessageByID(ctx, "parent-id").
			Return(&dbmysql.Message{MessageID: "parent-id", SenderID: carol, ReceiverID: strptr(alice)}, nil)

		_, err := svc.SendMessage(ctx, alice, SendMessageInput{
			Content:    "reply",
			ReceiverID: strptr(bob),
			ReplyToID:  strptr("parent-id"),
		})
		assert.True(t, common.IsCode(err, codes.InvalidArgument))
	})

	t.Run("valid direct reply", func(t *testing.T) {
		svc, m, ctx := newService(t)

		m.users.EXPECT().GetUserByID(ctx, alice).Return(sender, nil)
		m.users.EXPECT().GetUserByID(ctx, bob).Return(receiver, nil)
		m.repo.EXPECT().GetMessageByID(ctx, "parent-id").
			Return(&dbmysql.Message{MessageID: "parent-id", SenderID: bob, ReceiverID: strptr(alice)}, nil)
		m.repo.EXPECT().CreateMessage(ctx, gomock.Any()).Return(nil)

		msg, err := svc.SendMessage(ctx, alice, SendMessageInput{
			Content:    "reply",
			ReceiverID: strptr(bob),
			ReplyToID:  strptr("parent-id"),
		})
		require.NoError(t, err)
		require.NotNil(t, msg.ReplyToID)
		assert.Equal(t, "parent-id", *msg.ReplyToID)
	})
}

func TestEditMessage(t *testing.T) {
	t.Run("sender can edit", func(t *testing.T) {
		svc, m, ctx := newService(t)

		m.repo.EXPECT().GetMessageByID(ctx, "m1").
			Return(&dbmysql.Message{MessageID: "m1", SenderID: alice, Content: "old"}, nil)
		m.repo.EXPECT().UpdateMessage(ctx, gomock.Any()).Return(nil)

		msg, err := svc.EditMessage(ctx, alice, "m1", "new")
		require.NoError(t, err)
		assert.Equal(t, "new", msg.Content)
	})

	t.Run("non-sender denied", func(t *testing.T) {
		svc, m, ctx := newService(t)

		m.repo.EXPECT().GetMessageByID(ctx, "m1").
			Return(&dbmysql.Message{MessageID: "m1", SenderID: alice}, nil)

		_, err := svc.EditMessage(ctx, bob, "m1", "new")
		assert.True(t, common.IsCode(err, codes.PermissionDenied))
	})

	t.Run("missing message", func(t *testing.T) {
		svc, m, ctx := newService(t)

		m.repo.EXPECT().GetMessageByID(ctx, "m1").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.EditMessage(ctx, alice, "m1", "new")
		assert.True(t, common.IsCode(err, codes.NotFound))
	})
}

func TestDeleteMessage(t *testing.T) {
	t.Run("sender can delete", func(t *testing.T) {
		svc, m, ctx := newService(t)

		m.repo.EXPECT().GetMessageByID(ctx, "m1").
			Return(&dbmysql.Message{MessageID: "m1", SenderID: alice}, nil)
		m.repo.EXPECT().DeleteMessage(ctx, "m1").Return(nil)

		require.NoError(t, svc.DeleteMessage(ctx, alice, "m1"))
	})

	t.Run("non-sender denied", func(t *testing.T) {
		svc, m, ctx := newService(t)

		m.repo.EXPECT().GetMessageByID(ctx, "m1").
			Return(&dbmysql.Message{MessageID: "m1", SenderID: alice}, nil)

		err := svc.DeleteMessage(ctx, bob, "m1")
		assert.True(t, common.IsCode(err, codes.PermissionDenied))
	})
}

func TestListGroupMessages(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// five messages t1<...<t5, paged desc two at a time, as in the classic
	// walk: [t5 t4] -> [t3 t2] -> [t1]
	all := make([]dbmysql.Message, 0, 5)
	for i := 5; i >= 1; i-- {
		all = append(all, msgAt(fmt.Sprintf("m%d", i), base.Add(time.Duration(i)*time.Minute)))
	}

	expectGroupAndAccess := func(m svcMocks, ctx context.Context) {
		m.groups.EXPECT().GetGroupByID(ctx, grp).Return(&dbmysql.Group{GroupID: grp}, nil)
		m.access.EXPECT().RequireAccess(ctx, alice, grp, false).Return(nil)
	}

	t.Run("first page probes limit+1 and reports hasMore", func(t *testing.T) {
		svc, m, ctx := newService(t)
		expectGroupAndAccess(m, ctx)

		m.repo.EXPECT().ListGroup(ctx, grp, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, q Query) ([]dbmysql.Message, error) {
				assert.Equal(t, 3, q.Limit) // limit+1 probe
				assert.Nil(t, q.CursorTS)
				assert.Equal(t, pagination.SortDesc, q.Sort)
				return all[:3], nil
			})

		page, err := svc.ListGroupMessages(ctx, alice, grp, pagination.Params{Limit: 2})
		require.NoError(t, err)

		require.Len(t, page.Items, 2)
		assert.Equal(t, "m5", page.Items[0].MessageID)
		assert.Equal(t, "m4", page.Items[1].MessageID)
		assert.True(t, page.HasMore)
		assert.Equal(t, 2, page.Count)

		require.NotNil(t, page.NextCursor)
		ts, id, err := pagination.DecodeCursor(*page.NextCursor)
		require.NoError(t, err)
		assert.Equal(t, "m4", id)
		assert.True(t, ts.Equal(all[1].CreatedAt))

		// prevCursor is always emitted on a non-empty page, first page included
		require.NotNil(t, page.PrevCursor)
		_, id, err = pagination.DecodeCursor(*page.PrevCursor)
		require.NoError(t, err)
		assert.Equal(t, "m5", id)
	})

	t.Run("cursor page passes the decoded position to the store", func(t *testing.T) {
		svc, m, ctx := newService(t)
		expectGroupAndAccess(m, ctx)

		cursor := pagination.EncodeCursor(all[1].CreatedAt, "m4")
		m.repo.EXPECT().ListGroup(ctx, grp, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, q Query) ([]dbmysql.Message, error) {
				require.NotNil(t, q.CursorTS)
				assert.True(t, q.CursorTS.Equal(all[1].CreatedAt))
				assert.Equal(t, "m4", q.CursorID)
				return all[2:], nil // m3, m2, m1
			})

		page, err := svc.ListGroupMessages(ctx, alice, grp, pagination.Params{Limit: 2, Cursor: cursor})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "m3", page.Items[0].MessageID)
		assert.Equal(t, "m2", page.Items[1].MessageID)
		assert.True(t, page.HasMore)
	})

	t.Run("final short page has no more", func(t *testing.T) {
		svc, m, ctx := newService(t)
		expectGroupAndAccess(m, ctx)

		m.repo.EXPECT().ListGroup(ctx, grp, gomock.Any()).Return(all[4:], nil) // just m1

		page, err := svc.ListGroupMessages(ctx, alice, grp, pagination.Params{Limit: 2})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "m1", page.Items[0].MessageID)
		assert.False(t, page.HasMore)
	})

	t.Run("empty page has nil cursors", func(t *testing.T) {
		svc, m, ctx := newService(t)
		expectGroupAndAccess(m, ctx)

		m.repo.EXPECT().ListGroup(ctx, grp, gomock.Any()).Return(nil, nil)

		page, err := svc.ListGroupMessages(ctx, alice, grp, pagination.Params{Limit: 2})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Nil(t, page.NextCursor)
		assert.Nil(t, page.PrevCursor)
		assert.False(t, page.HasMore)
	})

	t.Run("malformed cursor rejected before any query", func(t *testing.T) {
		svc, m, ctx := newService(t)
		expectGroupAndAccess(m, ctx)

		_, err := svc.ListGroupMessages(ctx, alice, grp, pagination.Params{Cursor: "garbage"})
		assert.True(t, common.IsCode(err, codes.InvalidArgument))
	})

	t.Run("unknown group is NotFound", func(t *testing.T) {
		svc, m, ctx := newService(t)

		m.groups.EXPECT().GetGroupByID(ctx, grp).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.ListGroupMessages(ctx, alice, grp, pagination.Params{})
		assert.True(t, common.IsCode(err, codes.NotFound))
	})

	t.Run("non-member denied", func(t *testing.T) {
		svc, m, ctx := newService(t)

		m.groups.EXPECT().GetGroupByID(ctx, grp).Return(&dbmysql.Group{GroupID: grp}, nil)
		m.access.EXPECT().RequireAccess(ctx, alice, grp, false).
			Return(common.PermissionDenied("you are not a member of this group"))

		_, err := svc.ListGroupMessages(ctx, alice, grp, pagination.Params{})
		assert.True(t, common.IsCode(err, codes.PermissionDenied))
	})
}

func TestListInbox(t *testing.T) {
	svc, m, ctx := newService(t)

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := []dbmysql.Message{
		{MessageID: "d2", SenderID: bob, ReceiverID: strptr(alice), CreatedAt: base.Add(2 * time.Minute)},
		{MessageID: "d1", SenderID: alice, ReceiverID: strptr(bob), CreatedAt: base.Add(time.Minute)},
	}

	m.repo.EXPECT().ListInbox(ctx, alice, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, q Query) ([]dbmysql.Message, error) {
			assert.Equal(t, 21, q.Limit) // default 20, probed with one extra
			return rows, nil
		})

	page, err := svc.ListInbox(ctx, alice, pagination.Params{})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.False(t, page.HasMore)
	assert.Equal(t, 20, page.Limit)
}
