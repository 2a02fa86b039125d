package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverMemory   = "memory"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port           int    `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"` // development | production
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`

	// Catalog store
	StoreDriver       string `mapstructure:"STORE_DRIVER"` // dynamodb | memory
	AWSRegion         string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID    string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey      string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint  string `mapstructure:"DYNAMODB_ENDPOINT"`
	CatalogTable      string `mapstructure:"CATALOG_TABLE"`
	SeedCatalog       bool   `mapstructure:"SEED_CATALOG"`
	ChangeFeedChannel string `mapstructure:"CHANGE_FEED_CHANNEL"`

	// Redis
	RedisURL string `mapstructure:"REDIS_URL"`

	// Auth
	AdminPassword      string `mapstructure:"ADMIN_PASSWORD"`
	AdminPasswordHash  string `mapstructure:"ADMIN_PASSWORD_HASH"`
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`

	// SMTP
	SMTPHost         string `mapstructure:"SMTP_HOST"`
	SMTPPort         int    `mapstructure:"SMTP_PORT"`
	SMTPUser         string `mapstructure:"SMTP_USER"`
	SMTPPassword     string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom         string `mapstructure:"SMTP_FROM"`
	IssueNotifyEmail string `mapstructure:"ISSUE_NOTIFY_EMAIL"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("WORKER_POOL_SIZE", 2)
	v.SetDefault("STORE_DRIVER", StoreDriverDynamoDB)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("CATALOG_TABLE", "catalog")
	v.SetDefault("SEED_CATALOG", true)
	v.SetDefault("CHANGE_FEED_CHANNEL", "catalog:changes")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRATION_HOURS", 8)
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "")
	v.SetDefault("ISSUE_NOTIFY_EMAIL", "")

	// Optional .env file for local development
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) JWTExpiration() time.Duration {
	return time.Duration(c.JWTExpirationHours) * time.Hour
}

// NotifyRecipients splits ISSUE_NOTIFY_EMAIL on commas.
func (c *Config) NotifyRecipients() []string {
	out := make([]string, 0)
	for _, r := range strings.Split(c.IssueNotifyEmail, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}
