//go:build wireinject
// +build wireinject

package di

import (
	"libraryhub/config"
	"libraryhub/infras/jwt"
	"libraryhub/infras/kafka"
	"libraryhub/infras/otel"
	"libraryhub/infras/postgres"
	"libraryhub/infras/s3"
	"libraryhub/permissions"
	"libraryhub/shared/cache"
	"libraryhub/transport/http"
	"libraryhub/transport/http/middleware"
	"libraryhub/transport/http/router"

	"github.com/google/wire"

	authService "libraryhub/internal/domains/auth/service"
	bookingGate "libraryhub/internal/domains/booking/gate"
	bookingRepository "libraryhub/internal/domains/booking/repository"
	bookingService "libraryhub/internal/domains/booking/service"
	libraryRepository "libraryhub/internal/domains/library/repository"
	libraryService "libraryhub/internal/domains/library/service"
	planRepository "libraryhub/internal/domains/plan/repository"
	planService "libraryhub/internal/domains/plan/service"
	seatRepository "libraryhub/internal/domains/seat/repository"
	seatService "libraryhub/internal/domains/seat/service"
	userRepository "libraryhub/internal/domains/user/repository"
	userService "libraryhub/internal/domains/user/service"

	authHandler "libraryhub/internal/handlers/auth"
	bookingHandler "libraryhub/internal/handlers/booking"
	libraryHandler "libraryhub/internal/handlers/library"
	planHandler "libraryhub/internal/handlers/plan"
	seatHandler "libraryhub/internal/handlers/seat"
	userHandler "libraryhub/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
)

var repositories = wire.NewSet(
	libraryRepository.New,
	seatRepository.New,
	planRepository.New,
	userRepository.New,
	bookingRepository.New,
)

var domains = wire.NewSet(
	libraryService.New,
	seatService.New,
	planService.New,
	userService.New,
	authService.New,
	bookingGate.New,
	bookingService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	libraryHandler.New,
	seatHandler.New,
	planHandler.New,
	userHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
