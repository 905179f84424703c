//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"gochat/internal/cache"
	"gochat/internal/config"
	"gochat/internal/dbmysql"
	"gochat/internal/group"
	"gochat/internal/message"
	"gochat/internal/user"
)

// This is just a declaration — wire will generate the real body
func InitializeApplication() (*Application, error) {
	wire.Build(
		config.Load,
		dbmysql.NewMySQL,
		cache.NewRedis,
		cache.NewRedisStore,
		user.NewUserRepository,
		user.NewUserService,
		user.NewHandler,
		group.NewGroupRepository,
		group.NewCachedLookup,
		ProvideGroupUserDirectory,
		group.NewGroupService,
		group.NewHandler,
		ProvideAccessChecker,
		ProvideMessageUserDirectory,
		ProvideGroupFinder,
		message.NewMessageRepository,
		message.NewMessageService,
		message.NewHandler,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
