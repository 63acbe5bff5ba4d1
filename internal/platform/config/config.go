package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Access token signing
	AccessTokenSecret string
	AccessTokenExpiry time.Duration

	// Refresh token signing
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration

	// Password reset token lifetime
	ResetTokenExpiry time.Duration

	TokenIssuer string
}

// LoadConfig loads configuration from environment variables and a .env file if present.
//
// The four token variables (ACCESS_TOKEN_SECRET, ACCESS_TOKEN_EXPIRY,
// REFRESH_TOKEN_SECRET, REFRESH_TOKEN_EXPIRY) are required: a missing or
// unparsable value is a startup-fatal misconfiguration and is returned as an
// error rather than defaulted, so it can never surface as a per-request failure.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RESET_TOKEN_EXPIRY", "10m")
	viper.SetDefault("TOKEN_ISSUER", "user-account-app")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.TokenIssuer = viper.GetString("TOKEN_ISSUER")

	cfg.AccessTokenSecret = viper.GetString("ACCESS_TOKEN_SECRET")
	if cfg.AccessTokenSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is required but not set")
	}

	accessExpiryStr := viper.GetString("ACCESS_TOKEN_EXPIRY")
	if accessExpiryStr == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRY is required but not set")
	}
	accessExpiry, err := time.ParseDuration(accessExpiryStr)
	if err != nil {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRY %q: %w", accessExpiryStr, err)
	}
	cfg.AccessTokenExpiry = accessExpiry

	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")
	if cfg.RefreshTokenSecret == "" {
		return nil, fmt.Errorf("REFRESH_TOKEN_SECRET is required but not set")
	}

	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY")
	if refreshExpiryStr == "" {
		return nil, fmt.Errorf("REFRESH_TOKEN_EXPIRY is required but not set")
	}
	refreshExpiry, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_TOKEN_EXPIRY %q: %w", refreshExpiryStr, err)
	}
	cfg.RefreshTokenExpiry = refreshExpiry

	resetExpiryStr := viper.GetString("RESET_TOKEN_EXPIRY")
	resetExpiry, err := time.ParseDuration(resetExpiryStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RESET_TOKEN_EXPIRY %q: %w", resetExpiryStr, err)
	}
	cfg.ResetTokenExpiry = resetExpiry

	return cfg, nil
}
