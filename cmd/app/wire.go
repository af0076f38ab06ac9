//go:build wireinject
// +build wireinject

package main

import (
	"backoffice/config"
	"backoffice/internal/command"
	"backoffice/internal/cron"
	"backoffice/internal/database"
	"backoffice/internal/handler"
	"backoffice/internal/middleware"
	"backoffice/internal/payment"
	"backoffice/internal/router"
	"backoffice/internal/service"
	"backoffice/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			payment.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			telemetry.ProviderSet,
			payment.ProviderSet,
			command.ProviderSet,
		),
	)
}
