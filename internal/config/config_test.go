package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/bevvy_test")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://ai.gateway.lovable.dev/v1", cfg.AIGatewayURL)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 587, cfg.MailPort)
}

func TestLoadWebhookURLIsInjected(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/bevvy_test")
	t.Setenv("GHL_WEBHOOK_URL", "http://127.0.0.1:9999/hook")
	t.Setenv("ALLOWED_ORIGINS", "https://chateaubevvy.com,https://www.chateaubevvy.com")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9999/hook", cfg.GHLWebhookURL)
	assert.Equal(t, []string{"https://chateaubevvy.com", "https://www.chateaubevvy.com"}, cfg.AllowedOrigins)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}
