package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/psyai-redux/psyai-bot/pkg/api"
	"github.com/psyai-redux/psyai-bot/pkg/bot"
	"github.com/psyai-redux/psyai-bot/pkg/config"
	"github.com/psyai-redux/psyai-bot/pkg/repository/userprovider"
	"github.com/psyai-redux/psyai-bot/pkg/service/brain"
	"github.com/psyai-redux/psyai-bot/pkg/service/checkout"
	"github.com/psyai-redux/psyai-bot/pkg/service/gate"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Local development convenience; production supplies real env vars.
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration.")
	}

	provider, err := userprovider.NewUserProvider(userprovider.Config{
		DatabasePath:   cfg.DatabasePath,
		MigrationsPath: cfg.MigrationsPath,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Could not open entitlement store.")
	}
	defer provider.Close()

	brainService := brain.NewService(brain.Config{
		BaseURL:      cfg.BrainBaseURL,
		Model:        cfg.BrainModelID,
		OpenAIAPIKey: cfg.OpenAIAPIKey,
		BearerToken:  cfg.BearerToken,
	})

	checkoutService, err := checkout.New(checkout.Config{
		APIKey:     cfg.StripeAPIKey,
		PriceID:    cfg.StripePlanID,
		SuccessURL: cfg.SuccessURL,
		CancelURL:  cfg.CancelURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Could not configure checkout.")
	}

	orch := bot.NewOrchestrator(provider, brainService, checkoutService, gate.New(cfg.ExemptGuildIDs))

	b, err := bot.New(cfg.DiscordToken, orch)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not create bot.")
	}

	// Ops server: health check plus checkout landing pages. The host
	// platform expects a bound port.
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Ops server starting.")
		if err := http.ListenAndServe(":"+cfg.Port, api.NewHandler().Router()); err != nil {
			log.Fatal().Err(err).Msg("Ops server failed.")
		}
	}()

	if err := b.Start(); err != nil {
		log.Fatal().Err(err).Msg("Could not start bot.")
	}
	defer b.Close()
	log.Info().Msg("Bot is running. Press Ctrl+C to exit.")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info().Msg("Shutting down.")
}
