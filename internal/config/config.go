package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is loaded from environment variables.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	DBPath    string `env:"DB_PATH" envDefault:"data/gatewarden.db"`
	SecretKey string `env:"SECRET_KEY" envDefault:"change_me_in_production"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPFrom     string `env:"SMTP_FROM" envDefault:"no-reply@localhost"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	// FederationUserInfoURL is the identity provider endpoint that resolves
	// federated sign-in assertions.
	FederationUserInfoURL string `env:"FEDERATION_USERINFO_URL" envDefault:"https://www.googleapis.com/oauth2/v3/userinfo"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
