package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is built once at startup and passed by injection; nothing reads the
// environment after Load returns.
type Config struct {
	Port             string
	MongoURI         string
	MongoDB          string
	JWTSecret        string
	JWTExpiry        time.Duration
	Environment      string
	RateLimitEnabled bool
	EnforceHTTPS     bool
	OTLPEndpoint     string
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "5000")
	v.SetDefault("MONGO_URI", "mongodb://127.0.0.1:27017")
	v.SetDefault("MONGO_DB", "todo-api")
	v.SetDefault("JWT_EXPIRES_IN", "1h")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("ENFORCE_HTTPS", false)
	v.SetDefault("OTLP_ENDPOINT", "")
	v.AutomaticEnv()

	secret := v.GetString("JWT_SECRET")

	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	expiry, err := time.ParseDuration(v.GetString("JWT_EXPIRES_IN"))

	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: %w", err)
	}

	return &Config{
		Port:             v.GetString("PORT"),
		MongoURI:         v.GetString("MONGO_URI"),
		MongoDB:          v.GetString("MONGO_DB"),
		JWTSecret:        secret,
		JWTExpiry:        expiry,
		Environment:      v.GetString("APP_ENV"),
		RateLimitEnabled: v.GetBool("RATE_LIMIT_ENABLED"),
		EnforceHTTPS:     v.GetBool("ENFORCE_HTTPS"),
		OTLPEndpoint:     v.GetString("OTLP_ENDPOINT"),
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
