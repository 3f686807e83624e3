package main

import (
	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/tecno-hogar/tecnohogar_api/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("No .env file found, using system environment")
	}

	ctx, err := context.NewCtx(
		&services.JWTService{},
		&services.AuthService{},
		&services.PostgresService{},
		&services.MonitoringService{},

		&services.RateLimitService{},
		&services.ProfanityGuardService{},
		&services.CostMonitorService{},

		&services.SheetsService{},
		&services.WhatsAppService{},
		&services.NotificationService{},

		&services.ClientService{},
		&services.TicketService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
