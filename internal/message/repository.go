package message

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gochat/internal/dbmysql"
	"gochat/internal/pagination"
)

// Query is the repository-level paging window. Limit is the exact number of
// rows to fetch; the service passes limit+1 to probe for a next page.
type Query struct {
	Limit    int
	Sort     string
	CursorTS *time.Time
	CursorID string
}

type MessageRepository interface {
	CreateMessage(ctx context.Context, msg *dbmysql.Message) error
	GetMessageByID(ctx context.Context, messageID string) (*dbmysql.Message, error)
	UpdateMessage(ctx context.Context, msg *dbmysql.Message) error
	DeleteMessage(ctx context.Context, messageID string) error

	ListInbox(ctx context.Context, userID string, q Query) ([]dbmysql.Message, error)
	ListGroup(ctx context.Context, groupID string, q Query) ([]dbmysql.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) CreateMessage(ctx context.Context, msg *dbmysql.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepository) GetMessageByID(ctx context.Context, messageID string) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	err := r.db.WithContext(ctx).Where("message_id = ?", messageID).First(&msg).Error
	if err != nil {
		return nil, err
	}

	return &msg, nil
}

func (r *messageRepository) UpdateMessage(ctx context.Context, msg *dbmysql.Message) error {
	return r.db.WithContext(ctx).Save(msg).Error
}

// DeleteMessage hard deletes the row and detaches replies, so deleting a
// parent never cascades into the thread.
func (r *messageRepository) DeleteMessage(ctx context.Context, messageID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&dbmysql.Message{}).
			Where("reply_to_id = ?", messageID).
			Update("reply_to_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("message_id = ?", messageID).Delete(&dbmysql.Message{}).Error
	})
}

// applyWindow adds the compound cursor predicate and (created_at, message_id)
// ordering. Both components follow the same direction so the order is total
// even when timestamps collide.
func applyWindow(db *gorm.DB, q Query) *gorm.DB {
	if q.CursorTS != nil {
		if q.Sort == pagination.SortAsc {
			db = db.Where("created_at > ? OR (created_at = ? AND message_id > ?)", *q.CursorTS, *q.CursorTS, q.CursorID)
		} else {
			db = db.Where("created_at < ? OR (created_at = ? AND message_id < ?)", *q.CursorTS, *q.CursorTS, q.CursorID)
		}
	}

	if q.Sort == pagination.SortAsc {
		db = db.Order("created_at ASC, message_id ASC")
	} else {
		db = db.Order("created_at DESC, message_id DESC")
	}

	return db.Limit(q.Limit)
}

func (r *messageRepository) ListInbox(ctx context.Context, userID string, q Query) ([]dbmysql.Message, error) {
	var messages []dbmysql.Message
	db := r.db.WithContext(ctx).Model(&dbmysql.Message{}).
		Where("receiver_id IS NOT NULL AND (sender_id = ? OR receiver_id = ?)", userID, userID)

	err := applyWindow(db, q).Find(&messages).Error
	return messages, err
}

func (r *messageRepository) ListGroup(ctx context.Context, groupID string, q Query) ([]dbmysql.Message, error) {
	var messages []dbmysql.Message
	db := r.db.WithContext(ctx).Model(&dbmysql.Message{}).
		Where("group_id = ?", groupID)

	err := applyWindow(db, q).Find(&messages).Error
	return messages, err
}
