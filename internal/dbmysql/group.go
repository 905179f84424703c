package dbmysql

import (
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type Group struct {
	GroupID     string    `gorm:"primaryKey;column:group_id;size:36" json:"group_id"`
	Name        string    `gorm:"column:name;size:100;not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedBy   string    `gorm:"column:created_by;size:36;not null;index" json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Members []GroupMember `gorm:"foreignKey:GroupID;references:GroupID" json:"members,omitempty"`
}

// GroupMember is the join row governing one user's participation in one group.
// (group_id, user_id) is unique so a user cannot double-join.
type GroupMember struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupID  string    `gorm:"column:group_id;size:36;not null;uniqueIndex:idx_group_user" json:"group_id"`
	UserID   string    `gorm:"column:user_id;size:36;not null;uniqueIndex:idx_group_user" json:"user_id"`
	Role     string    `gorm:"column:role;type:enum('admin','member');default:'member'" json:"role"`
	JoinedAt time.Time `gorm:"column:joined_at;not null" json:"joined_at"`
}

func (GroupMember) TableName() string {
	return "group_members"
}
