package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string
	Port        string

	// Data tiers
	RemoteSnapshotURL string // empty disables the remote tier
	SnapshotFile      string // local blob path, used unless DatabaseURL is set
	DatabaseURL       string // optional Postgres blob store

	// Owner auth; both empty leaves the tracker open
	JWTSecret      string
	PassphraseHash string
	TokenExpiry    time.Duration

	// Reminder digest
	ReminderCron  string // cron expression, empty disables the digest
	ReminderEmail string

	// Email delivery
	EmailProvider      string // "ses" or "noop"
	EmailFromAddress   string
	EmailFromName      string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string

	CORSAllowedOrigins []string
}

// Load loads configuration from environment variables.
// It attempts to load from .env file if not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		Port:               os.Getenv("PORT"),
		RemoteSnapshotURL:  os.Getenv("REMOTE_SNAPSHOT_URL"),
		SnapshotFile:       os.Getenv("SNAPSHOT_FILE"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		PassphraseHash:     os.Getenv("ACCESS_PASSPHRASE_HASH"),
		ReminderCron:       os.Getenv("REMINDER_CRON"),
		ReminderEmail:      os.Getenv("REMINDER_EMAIL"),
		EmailProvider:      os.Getenv("EMAIL_PROVIDER"),
		EmailFromAddress:   os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:      os.Getenv("EMAIL_FROM_NAME"),
		SESRegion:          os.Getenv("SES_REGION"),
		SESAccessKeyID:     os.Getenv("SES_ACCESS_KEY_ID"),
		SESSecretAccessKey: os.Getenv("SES_SECRET_ACCESS_KEY"),
		TokenExpiry:        24 * time.Hour,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.SnapshotFile == "" {
		cfg.SnapshotFile = "data/conferences.json"
	}
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "noop"
	}
	if s := os.Getenv("TOKEN_EXPIRY"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			cfg.TokenExpiry = d
		} else {
			log.Printf("Warning: invalid TOKEN_EXPIRY %q, using default: %v", s, err)
		}
	}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}

// AuthEnabled reports whether the owner login is configured. Without both a
// signing secret and a passphrase hash the tracker runs open.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != "" && c.PassphraseHash != ""
}
