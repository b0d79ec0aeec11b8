package main

import (
	"libraryhub/config"
	"libraryhub/di"
	"libraryhub/helper"
	"libraryhub/shared/logger"
	"libraryhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title LibraryHub API
// @version 1.0
// @description Seat reservation service for LibraryHub libraries.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	timezone.SetLocation(cfg.App.Timezone)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to apply database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
