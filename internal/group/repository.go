package group

import (
	"context"

	"gorm.io/gorm"

	"gochat/internal/dbmysql"
)

type GroupRepository interface {
	CreateGroup(ctx context.Context, group *dbmysql.Group, members []dbmysql.GroupMember) error
	GetGroupByID(ctx context.Context, groupID string) (*dbmysql.Group, error)

	GetMember(ctx context.Context, groupID, userID string) (*dbmysql.GroupMember, error)
	ListMembers(ctx context.Context, groupID string) ([]dbmysql.GroupMember, error)
	IsMember(ctx context.Context, groupID, userID string) (bool, error)
	CountAdmins(ctx context.Context, groupID string) (int64, error)

	AddMembers(ctx context.Context, members []dbmysql.GroupMember) error
	RemoveMember(ctx context.Context, groupID, userID string) error
	RemoveMemberWithPromotion(ctx context.Context, groupID, removeUserID, promoteUserID string) error
	UpdateMemberRole(ctx context.Context, groupID, userID, role string) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

// CreateGroup inserts the group and its initial member set in one transaction.
func (r *groupRepository) CreateGroup(ctx context.Context, group *dbmysql.Group, members []dbmysql.GroupMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		return tx.Create(&members).Error
	})
}

func (r *groupRepository) GetGroupByID(ctx context.Context, groupID string) (*dbmysql.Group, error) {
	var group dbmysql.Group
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("joined_at ASC, id ASC")
		}).
		Where("group_id = ?", groupID).
		First(&group).Error
	if err != nil {
		return nil, err
	}

	return &group, nil
}

func (r *groupRepository) GetMember(ctx context.Context, groupID, userID string) (*dbmysql.GroupMember, error) {
	var member dbmysql.GroupMember
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&member).Error
	if err != nil {
		return nil, err
	}

	return &member, nil
}

// ListMembers returns members in seniority order, which auto-promotion
// relies on.
func (r *groupRepository) ListMembers(ctx context.Context, groupID string) ([]dbmysql.GroupMember, error) {
	var members []dbmysql.GroupMember
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("joined_at ASC, id ASC").
		Find(&members).Error
	return members, err
}

func (r *groupRepository) IsMember(ctx context.Context, groupID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *groupRepository) CountAdmins(ctx context.Context, groupID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.GroupMember{}).
		Where("group_id = ? AND role = ?", groupID, dbmysql.RoleAdmin).
		Count(&count).Error
	return count, err
}

func (r *groupRepository) AddMembers(ctx context.Context, members []dbmysql.GroupMember) error {
	return r.db.WithContext(ctx).Create(&members).Error
}

func (r *groupRepository) RemoveMember(ctx context.Context, groupID, userID string) error {
	return r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&dbmysql.GroupMember{}).Error
}

// RemoveMemberWithPromotion promotes the successor and removes the departing
// admin in a single transaction, so no state with zero admins is ever visible.
func (r *groupRepository) RemoveMemberWithPromotion(ctx context.Context, groupID, removeUserID, promoteUserID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&dbmysql.GroupMember{}).
			Where("group_id = ? AND user_id = ? AND role = ?", groupID, promoteUserID, dbmysql.RoleMember).
			Update("role", dbmysql.RoleAdmin)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		res = tx.Where("group_id = ? AND user_id = ?", groupID, removeUserID).
			Delete(&dbmysql.GroupMember{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

func (r *groupRepository) UpdateMemberRole(ctx context.Context, groupID, userID, role string) error {
	return r.db.WithContext(ctx).Model(&dbmysql.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Update("role", role).Error
}
