package user

import (
	"context"

	"gorm.io/gorm"

	"gochat/internal/dbmysql"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *dbmysql.User) error
	GetUserByID(ctx context.Context, userID string) (*dbmysql.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*dbmysql.User, error)
	UpdateUser(ctx context.Context, user *dbmysql.User) error

	CheckPhoneExists(ctx context.Context, phone string) (bool, error)
	GetActiveUsers(ctx context.Context, userIDs []string) ([]*dbmysql.User, error)
	SoftDeleteUser(ctx context.Context, user *dbmysql.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("user_id = ? AND status = ?", userID, dbmysql.UserStatusActive).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetUserByPhone(ctx context.Context, phone string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("phone = ? AND status = ?", phone, dbmysql.UserStatusActive).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) CheckPhoneExists(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.User{}).Where("phone = ?", phone).Count(&count).Error
	return count > 0, err
}

// GetActiveUsers returns the subset of userIDs that resolve to live accounts.
// Callers compare lengths to detect unknown or deleted ids.
func (r *userRepository) GetActiveUsers(ctx context.Context, userIDs []string) ([]*dbmysql.User, error) {
	var users []*dbmysql.User
	err := r.db.WithContext(ctx).
		Where("user_id IN ? AND status = ?", userIDs, dbmysql.UserStatusActive).
		Find(&users).Error
	return users, err
}

// SoftDeleteUser persists the anonymized fields, then flags the row deleted.
func (r *userRepository) SoftDeleteUser(ctx context.Context, user *dbmysql.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(user).Error
}
