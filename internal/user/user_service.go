package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gochat/internal/common"
	"gochat/internal/dbmysql"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

type UserService interface {
	RegisterUser(ctx context.Context, name, phone, password string) (*dbmysql.User, string, error)
	LoginUser(ctx context.Context, phone, password string) (*dbmysql.User, string, error)
	GetProfile(ctx context.Context, userID string) (*dbmysql.User, error)
	UpdateProfile(ctx context.Context, userID, name, phone string) error
	DeleteAccount(ctx context.Context, userID string) error
}

type userService struct {
	userRepo UserRepository
}

func NewUserService(userRepo UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) RegisterUser(ctx context.Context, name, phone, password string) (*dbmysql.User, string, error) {
	if name == "" {
		return nil, "", common.InvalidArgument("name is required")
	}
	if !phoneRegex.MatchString(phone) {
		return nil, "", common.InvalidArgument("invalid phone number")
	}
	if len(password) < 6 {
		return nil, "", common.InvalidArgument("password must be at least 6 characters")
	}

	exists, err := s.userRepo.CheckPhoneExists(ctx, phone)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", common.Conflict("phone number already registered")
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &dbmysql.User{
		UserID:       uuid.New().String(),
		Name:         name,
		Phone:        phone,
		PasswordHash: hashed,
		Status:       dbmysql.UserStatusActive,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := common.GenerateToken(user.UserID, user.Phone)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *userService) LoginUser(ctx context.Context, phone, password string) (*dbmysql.User, string, error) {
	if phone == "" || password == "" {
		return nil, "", common.InvalidArgument("phone and password required")
	}

	user, err := s.userRepo.GetUserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", common.Unauthenticated("invalid phone or password")
		}
		return nil, "", err
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", common.Unauthenticated("invalid phone or password")
	}

	token, err := common.GenerateToken(user.UserID, user.Phone)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*dbmysql.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID, name, phone string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NotFound("user not found")
		}
		return err
	}

	if name != "" {
		user.Name = name
	}

	if phone != "" && phone != user.Phone {
		if !phoneRegex.MatchString(phone) {
			return common.InvalidArgument("invalid phone number")
		}
		exists, err := s.userRepo.CheckPhoneExists(ctx, phone)
		if err != nil {
			return err
		}
		if exists {
			return common.Conflict("phone number already registered")
		}
		user.Phone = phone
	}

	return s.userRepo.UpdateUser(ctx, user)
}

// DeleteAccount anonymizes the profile and soft deletes the row. Messages
// keep their denormalized name/phone snapshots, so history is unaffected.
func (s *userService) DeleteAccount(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NotFound("user not found")
		}
		return err
	}

	user.Name = "Deleted User"
	user.Phone = fmt.Sprintf("deleted-%s", user.UserID[:8])
	user.PasswordHash = ""
	user.Status = dbmysql.UserStatusDeleted
	user.UpdatedAt = time.Now().UTC()

	return s.userRepo.SoftDeleteUser(ctx, user)
}
