// Package config loads application configuration from an optional yaml file
// with environment-variable overrides, .env included.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server        ServerConfig       `mapstructure:"server"`
	Auth          AuthConfig         `mapstructure:"auth"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Uploads       UploadConfig       `mapstructure:"uploads"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

type ServerConfig struct {
	Port        string `mapstructure:"port"`
	Environment string `mapstructure:"environment"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// Production reports whether the server runs in production mode. Internal
// error messages are suppressed in production and echoed otherwise.
func (s ServerConfig) Production() bool {
	return s.Environment == "production"
}

type AuthConfig struct {
	JWTSecret     string `mapstructure:"jwt_secret"`
	TokenTTLHours int    `mapstructure:"token_ttl_hours"`
}

func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLHours) * time.Hour
}

type NotificationConfig struct {
	// Provider is "ses" or "log".
	Provider    string `mapstructure:"provider"`
	SESRegion   string `mapstructure:"ses_region"`
	FromAddress string `mapstructure:"from_address"`
	QueueSize   int    `mapstructure:"queue_size"`
}

type UploadConfig struct {
	Dir        string `mapstructure:"dir"`
	MaxSizeMB  int64  `mapstructure:"max_size_mb"`
	PublicPath string `mapstructure:"public_path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.frontend_url", "http://localhost:8080")

	v.SetDefault("auth.jwt_secret", "dev-secret-change-me")
	v.SetDefault("auth.token_ttl_hours", 24)

	v.SetDefault("notifications.provider", "log")
	v.SetDefault("notifications.ses_region", "us-east-1")
	v.SetDefault("notifications.from_address", "no-reply@jobportal.com")
	v.SetDefault("notifications.queue_size", 64)

	v.SetDefault("uploads.dir", "./uploads")
	v.SetDefault("uploads.max_size_mb", 5)
	v.SetDefault("uploads.public_path", "/uploads")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
