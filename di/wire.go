//go:build wireinject
// +build wireinject

package di

import (
	"zeit/config"
	"zeit/infras/clock"
	"zeit/infras/otel"
	"zeit/infras/redis"
	"zeit/infras/tzdb"
	"zeit/shared/cache"
	"zeit/transport/http"
	"zeit/transport/http/middleware"
	"zeit/transport/http/router"

	worldtimeService "zeit/internal/domains/worldtime/service"
	systemHandler "zeit/internal/handlers/system"
	worldtimeHandler "zeit/internal/handlers/worldtime"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	clock.New,
	tzdb.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var worldtimeDomain = wire.NewSet(
	worldtimeService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	worldtimeHandler.New,
	systemHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		worldtimeDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
