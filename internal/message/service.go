package message

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gochat/internal/common"
	"gochat/internal/dbmysql"
	"gochat/internal/group"
	"gochat/internal/pagination"
)

// UserDirectory is the slice of the user store this service needs to
// validate participants and capture name/phone snapshots.
type UserDirectory interface {
	GetUserByID(ctx context.Context, userID string) (*dbmysql.User, error)
}

// GroupFinder resolves groups so listing a nonexistent group is NotFound
// rather than an empty page. The group repository satisfies it.
type GroupFinder interface {
	GetGroupByID(ctx context.Context, groupID string) (*dbmysql.Group, error)
}

type SendMessageInput struct {
	Content    string
	ReceiverID *string
	GroupID    *string
	ReplyToID  *string
}

// Page is a cursor page of messages.
type Page struct {
	Items []dbmysql.Message `json:"items"`
	pagination.Meta
}

type MessageService interface {
	SendMessage(ctx context.Context, senderID string, in SendMessageInput) (*dbmysql.Message, error)
	EditMessage(ctx context.Context, actingUserID, messageID, content string) (*dbmysql.Message, error)
	DeleteMessage(ctx context.Context, actingUserID, messageID string) error

	ListInbox(ctx context.Context, userID string, p pagination.Params) (*Page, error)
	ListGroupMessages(ctx context.Context, userID, groupID string, p pagination.Params) (*Page, error)
}

type messageService struct {
	msgRepo MessageRepository
	users   UserDirectory
	groups  GroupFinder
	access  group.AccessChecker
}

func NewMessageService(msgRepo MessageRepository, users UserDirectory, groups GroupFinder, access group.AccessChecker) MessageService {
	return &messageService{msgRepo: msgRepo, users: users, groups: groups, access: access}
}

func (s *messageService) SendMessage(ctx context.Context, senderID string, in SendMessageInput) (*dbmysql.Message, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, common.InvalidArgument("message content cannot be empty")
	}

	hasReceiver := in.ReceiverID != nil && *in.ReceiverID != ""
	hasGroup := in.GroupID != nil && *in.GroupID != ""
	if hasReceiver == hasGroup {
		return nil, common.InvalidArgument("exactly one of receiver_id or group_id must be set")
	}

	sender, err := s.users.GetUserByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFound("sender not found")
		}
		return nil, err
	}

	msg := &dbmysql.Message{
		MessageID:   uuid.New().String(),
		SenderID:    senderID,
		Content:     in.Content,
		SenderName:  sender.Name,
		SenderPhone: sender.Phone,
		CreatedAt:   time.Now().UTC(),
	}

	if hasReceiver {
		receiver, err := s.users.GetUserByID(ctx, *in.ReceiverID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.InvalidArgument("unknown receiver id")
			}
			return nil, err
		}
		msg.ReceiverID = in.ReceiverID
		msg.ReceiverName = receiver.Name
		msg.ReceiverPhone = receiver.Phone
	} else {
		if _, err := s.groups.GetGroupByID(ctx, *in.GroupID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.NotFound("group not found")
			}
			return nil, err
		}
		if err := s.access.RequireAccess(ctx, senderID, *in.GroupID, false); err != nil {
			return nil, err
		}
		msg.GroupID = in.GroupID
	}

	if in.ReplyToID != nil && *in.ReplyToID != "" {
		if err := s.validateReplyTarget(ctx, msg, *in.ReplyToID); err != nil {
			return nil, err
		}
		msg.ReplyToID = in.ReplyToID
	}

	if err := s.msgRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// validateReplyTarget checks the parent exists and lives in the same scope
// as the new message.
func (s *messageService) validateReplyTarget(ctx context.Context, msg *dbmysql.Message, replyToID string) error {
	parent, err := s.msgRepo.GetMessageByID(ctx, replyToID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.InvalidArgument("unknown reply_to message id")
		}
		return err
	}

	if msg.GroupID != nil {
		if parent.GroupID == nil || *parent.GroupID != *msg.GroupID {
			return common.InvalidArgument("reply_to message belongs to a different conversation")
		}
		return nil
	}

	// direct thread: parent must be between the same two users
	if parent.ReceiverID == nil {
		return common.InvalidArgument("reply_to message belongs to a different conversation")
	}
	pair := map[string]bool{parent.SenderID: true, *parent.ReceiverID: true}
	if !pair[msg.SenderID] || !pair[*msg.ReceiverID] {
		return common.InvalidArgument("reply_to message belongs to a different conversation")
	}
	return nil
}

func (s *messageService) EditMessage(ctx context.Context, actingUserID, messageID, content string) (*dbmysql.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, common.InvalidArgument("message content cannot be empty")
	}

	msg, err := s.msgRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFound("message not found")
		}
		return nil, err
	}

	if msg.SenderID != actingUserID {
		return nil, common.PermissionDenied("only the sender can edit a message")
	}

	msg.Content = content
	if err := s.msgRepo.UpdateMessage(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

func (s *messageService) DeleteMessage(ctx context.Context, actingUserID, messageID string) error {
	msg, err := s.msgRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NotFound("message not found")
		}
		return err
	}

	if msg.SenderID != actingUserID {
		return common.PermissionDenied("only the sender can delete a message")
	}

	return s.msgRepo.DeleteMessage(ctx, messageID)
}

// toQuery decodes the optional cursor into the repository window. A decode
// failure is the only pagination error; a well-formed cursor pointing nowhere
// just yields an empty page.
func toQuery(p pagination.Params) (Query, error) {
	q := Query{Limit: p.Limit + 1, Sort: p.Sort}

	if p.Cursor != "" {
		ts, id, err := pagination.DecodeCursor(p.Cursor)
		if err != nil {
			return Query{}, err
		}
		q.CursorTS = &ts
		q.CursorID = id
	}

	return q, nil
}

func buildPage(items []dbmysql.Message, limit int) *Page {
	hasMore := false
	if len(items) > limit {
		hasMore = true
		items = items[:limit]
	}

	page := &Page{
		Items: items,
		Meta: pagination.Meta{
			Count:   len(items),
			Limit:   limit,
			HasMore: hasMore,
		},
	}

	if len(items) > 0 {
		next := pagination.EncodeCursor(items[len(items)-1].CreatedAt, items[len(items)-1].MessageID)
		prev := pagination.EncodeCursor(items[0].CreatedAt, items[0].MessageID)
		page.NextCursor = &next
		page.PrevCursor = &prev
	}

	return page
}

func (s *messageService) ListInbox(ctx context.Context, userID string, p pagination.Params) (*Page, error) {
	p = p.Normalize()
	q, err := toQuery(p)
	if err != nil {
		return nil, err
	}

	items, err := s.msgRepo.ListInbox(ctx, userID, q)
	if err != nil {
		return nil, err
	}

	return buildPage(items, p.Limit), nil
}

func (s *messageService) ListGroupMessages(ctx context.Context, userID, groupID string, p pagination.Params) (*Page, error) {
	if _, err := s.groups.GetGroupByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFound("group not found")
		}
		return nil, err
	}

	if err := s.access.RequireAccess(ctx, userID, groupID, false); err != nil {
		return nil, err
	}

	p = p.Normalize()
	q, err := toQuery(p)
	if err != nil {
		return nil, err
	}

	items, err := s.msgRepo.ListGroup(ctx, groupID, q)
	if err != nil {
		return nil, err
	}

	return buildPage(items, p.Limit), nil
}
