package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("BRAIN_BASE_URL", "http://brain.test")
	t.Setenv("LLM_MODEL_ID", "model")
	t.Setenv("STRIPE_API_KEY", "sk_test")
	t.Setenv("STRIPE_PLAN_ID", "price_1")
}

func TestFromEnvDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "./users.db", cfg.DatabasePath)
	assert.Equal(t, "./migrations", cfg.MigrationsPath)
	assert.Equal(t, "5801", cfg.Port)
	assert.Empty(t, cfg.ExemptGuildIDs)
}

func TestFromEnvMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("DISCORD_TOKEN", "")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "DISCORD_TOKEN")
}

func TestFromEnvExemptGuilds(t *testing.T) {
	setRequired(t)
	t.Setenv("EXEMPT_GUILD_IDS", "1032772277223297085, 1037189729294225518,")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"1032772277223297085", "1037189729294225518"}, cfg.ExemptGuildIDs)
}
