package config

import (
	"fmt"
	"os"
	"strings"
)

// Config collects the externally supplied settings for every collaborator:
// Discord, the brain backend, the entitlement store, and Stripe.
type Config struct {
	DiscordToken string

	BrainBaseURL string
	BrainModelID string
	OpenAIAPIKey string
	BearerToken  string

	DatabasePath   string
	MigrationsPath string

	StripeAPIKey string
	StripePlanID string
	SuccessURL   string
	CancelURL    string

	ExemptGuildIDs []string

	Port string
}

// FromEnv reads the configuration from the environment. Callers load any
// .env file beforehand (godotenv in main).
func FromEnv() (Config, error) {
	cfg := Config{
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		BrainBaseURL:   os.Getenv("BRAIN_BASE_URL"),
		BrainModelID:   os.Getenv("LLM_MODEL_ID"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		BearerToken:    os.Getenv("BEARER_TOKEN"),
		DatabasePath:   getenvDefault("DATABASE_PATH", "./users.db"),
		MigrationsPath: getenvDefault("MIGRATIONS_PATH", "./migrations"),
		StripeAPIKey:   os.Getenv("STRIPE_API_KEY"),
		StripePlanID:   os.Getenv("STRIPE_PLAN_ID"),
		SuccessURL:     getenvDefault("CHECKOUT_SUCCESS_URL", "https://psyai-patreon-linker-97bd2997eae8.herokuapp.com/success"),
		CancelURL:      getenvDefault("CHECKOUT_CANCEL_URL", "https://psyai-patreon-linker-97bd2997eae8.herokuapp.com/cancel"),
		Port:           getenvDefault("PORT", "5801"),
	}

	if ids := os.Getenv("EXEMPT_GUILD_IDS"); ids != "" {
		for _, id := range strings.Split(ids, ",") {
			if id = strings.TrimSpace(id); id != "" {
				cfg.ExemptGuildIDs = append(cfg.ExemptGuildIDs, id)
			}
		}
	}

	for _, required := range []struct{ name, value string }{
		{"DISCORD_TOKEN", cfg.DiscordToken},
		{"BRAIN_BASE_URL", cfg.BrainBaseURL},
		{"LLM_MODEL_ID", cfg.BrainModelID},
		{"STRIPE_API_KEY", cfg.StripeAPIKey},
		{"STRIPE_PLAN_ID", cfg.StripePlanID},
	} {
		if required.value == "" {
			return Config{}, fmt.Errorf("%s environment variable is required", required.name)
		}
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
