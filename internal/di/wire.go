//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Kukaas/marketplace/internal/api"
	"github.com/Kukaas/marketplace/internal/common"
	"github.com/Kukaas/marketplace/internal/config"
	"github.com/Kukaas/marketplace/internal/dbmysql"
	"github.com/Kukaas/marketplace/internal/listing"
	"github.com/Kukaas/marketplace/internal/mail"
	"github.com/Kukaas/marketplace/internal/message"
)

// This is just a declaration — wire generates the real body
func InitializeApplication() (*Application, error) {
	wire.Build(
		config.LoadConfig,
		dbmysql.NewMySQL,
		listing.NewRepository,
		listing.NewService,
		listing.NewHandler,
		message.NewRepository,
		message.NewService,
		message.NewHandler,
		mail.NewSMTPService,
		mail.NewDispatcher,
		mail.NewHandler,
		wire.Bind(new(common.MessageNotifier), new(*mail.Dispatcher)),
		api.NewRouter,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
