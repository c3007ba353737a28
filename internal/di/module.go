package di

import (
	"github.com/loyaltyworks/rewards/internal/adapter/social"
	"github.com/loyaltyworks/rewards/internal/app"
	"github.com/loyaltyworks/rewards/internal/config"
	"github.com/loyaltyworks/rewards/internal/logger"
	"github.com/loyaltyworks/rewards/internal/pkg/auth"
	"github.com/loyaltyworks/rewards/internal/server/http/handlers"
	"github.com/loyaltyworks/rewards/internal/server/http/router"
	"github.com/loyaltyworks/rewards/internal/storage/postgres"
	"github.com/loyaltyworks/rewards/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		social.Module,
		usecase.Module,
		fx.Provide(
			func(client social.Client) app.AwardSource { return client },
			func(facade *app.RewardsFacade) handlers.ServiceFacade { return facade },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
