package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	// Fixed admin identity; the check itself lives behind
	// services.CredentialVerifier so it stays replaceable.
	AdminName     string
	AdminPassword string
	// Rate limit for the public auth endpoints, limiter format (e.g. "5-M").
	AuthRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "banking-system")
	viper.SetDefault("ADMIN_NAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin")
	viper.SetDefault("AUTH_RATE_LIMIT", "5-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRY_DURATION %q, defaulting to 1h\n", jwtExpiryStr)
		jwtExpiry = time.Hour
	}
	cfg.JWTExpiryDuration = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AdminName = viper.GetString("ADMIN_NAME")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	if cfg.AdminPassword == "admin" {
		log.Println("Warning: ADMIN_PASSWORD is the default. Change it outside of local development.")
	}

	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")

	return cfg, nil
}
