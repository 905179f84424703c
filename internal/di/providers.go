package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"gochat/internal/config"
	"gochat/internal/group"
	"gochat/internal/message"
	"gochat/internal/user"
)

// Application holds everything main needs to serve requests.
type Application struct {
	Config         *config.Config
	DB             *gorm.DB
	Redis          *redis.Client
	UserHandler    *user.Handler
	GroupHandler   *group.Handler
	MessageHandler *message.Handler
}

// The cross-package capability interfaces are narrower than the repositories
// that satisfy them, so wire needs explicit adapters.

func ProvideGroupUserDirectory(repo user.UserRepository) group.UserDirectory {
	return repo
}

func ProvideMessageUserDirectory(repo user.UserRepository) message.UserDirectory {
	return repo
}

func ProvideGroupFinder(repo group.GroupRepository) message.GroupFinder {
	return repo
}

func ProvideAccessChecker(svc group.GroupService) group.AccessChecker {
	return svc
}
