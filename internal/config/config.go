package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime option. GHLWebhookURL is injected rather than
// compiled in so tests and staging can point at their own receiver.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	GHLWebhookURL string `env:"GHL_WEBHOOK_URL"`

	AIGatewayURL    string `env:"AI_GATEWAY_URL" envDefault:"https://ai.gateway.lovable.dev/v1"`
	AIGatewayAPIKey string `env:"AI_GATEWAY_API_KEY"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	MailHost          string `env:"MAIL_HOST"`
	MailPort          int    `env:"MAIL_PORT" envDefault:"587"`
	MailUser          string `env:"MAIL_USER"`
	MailPass          string `env:"MAIL_PASS"`
	MailFrom          string `env:"MAIL_FROM" envDefault:"no-reply@chateaubevvy.com"`
	EventInquiryInbox string `env:"EVENT_INQUIRY_INBOX" envDefault:"events@chateaubevvy.com"`
}

// Load reads .env when present, then parses the environment.
func Load() (*Config, error) {
	godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
