package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds every runtime setting. Values come from environment
// variables (SERVER_PORT, DATABASE_DSN, ...) with defaults for local dev.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Mail     MailConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port       int    `mapstructure:"port"`
	CORSOrigin string `mapstructure:"cors_origin"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type StorageConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	ServiceKey string `mapstructure:"service_key"`
	Bucket     string `mapstructure:"bucket"`
}

type MailConfig struct {
	APIKey       string `mapstructure:"api_key"`
	FromAddress  string `mapstructure:"from_address"`
	ContactEmail string `mapstructure:"contact_email"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origin", "http://localhost:3000")

	v.SetDefault("database.dsn", "root:password@tcp(127.0.0.1:3306)/soocci?parseTime=true")

	v.SetDefault("storage.base_url", "")
	v.SetDefault("storage.service_key", "")
	v.SetDefault("storage.bucket", "images")

	v.SetDefault("mail.api_key", "")
	v.SetDefault("mail.from_address", "Soocci <noreply@soocci.com>")
	v.SetDefault("mail.contact_email", "info@soocci.com")

	v.SetDefault("auth.jwt_secret", "")
}

// Load reads configuration from the environment. Nested keys map to
// underscore-separated variables, e.g. storage.base_url -> STORAGE_BASE_URL.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// AutomaticEnv does not surface env-only keys through Unmarshal, so
	// every known key is bound explicitly.
	for _, key := range []string{
		"server.port", "server.cors_origin",
		"database.dsn",
		"storage.base_url", "storage.service_key", "storage.bucket",
		"mail.api_key", "mail.from_address", "mail.contact_email",
		"auth.jwt_secret",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
