package dbmysql

import (
	"time"
)

// Message is either direct (ReceiverID set) or group (GroupID set), never
// both. Sender/receiver name+phone are denormalized snapshots captured at
// send time so history survives later account deletion.
type Message struct {
	MessageID string  `gorm:"primaryKey;column:message_id;size:36" json:"message_id"`
	SenderID  string  `gorm:"column:sender_id;size:36;not null;index" json:"sender_id"`
	ReceiverID *string `gorm:"column:receiver_id;size:36;index" json:"receiver_id,omitempty"`
	GroupID    *string `gorm:"column:group_id;size:36;index" json:"group_id,omitempty"`
	Content    string  `gorm:"column:content;type:text;not null" json:"content"`

	// weak back-reference, detached (set NULL) when the parent is deleted
	ReplyToID *string `gorm:"column:reply_to_id;size:36" json:"reply_to_id,omitempty"`

	SenderName    string `gorm:"column:sender_name;size:100" json:"sender_name"`
	SenderPhone   string `gorm:"column:sender_phone;size:20" json:"sender_phone"`
	ReceiverName  string `gorm:"column:receiver_name;size:100" json:"receiver_name,omitempty"`
	ReceiverPhone string `gorm:"column:receiver_phone;size:20" json:"receiver_phone,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;index:idx_messages_cursor,priority:1" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
