// Package config loads the application configuration from the environment.
//
// Variables are read with the STINT_ prefix (a `.env` file is loaded first
// when present), mapped into the Config structs and validated so the process
// fails fast on missing values.
//
// A double underscore separates nesting levels:
//
//	STINT_SERVER__READ_TIMEOUT -> server.read_timeout -> Config.Server.ReadTimeout
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix   = "STINT_"
	serviceName = "stint360-api"
)

// Config is the root configuration object for the application.
//
// Redis, Auth and Integration are optional: the server runs without the job
// queue, authentication or outgoing email when they are left empty.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Auth          AuthConfig           `koanf:"auth"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server. Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
	// RateLimit is the number of requests per second allowed per client IP.
	// Zero disables the limiter.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
// ConnMaxLifetime and ConnMaxIdleTime are in seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details. Address is "host:port".
type RedisConfig struct {
	Address string `koanf:"address"`
}

// Enabled reports whether a Redis address was configured.
func (c RedisConfig) Enabled() bool {
	return c.Address != ""
}

// AuthConfig stores the Clerk secret key. Empty leaves /api unauthenticated.
type AuthConfig struct {
	SecretKey string `koanf:"secret_key"`
}

func (c AuthConfig) Enabled() bool {
	return c.SecretKey != ""
}

// IntegrationConfig holds credentials for third-party services.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	// EmailFrom is the sender address for outgoing notifications.
	EmailFrom string `koanf:"email_from"`
}

// LoadConfig loads configuration from environment variables, validates it
// and applies defaults for the optional blocks.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env variables: %w", err)
	}

	mainConfig := &Config{Observability: DefaultObservabilityConfig()}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Plain env vars cannot carry a list, so a comma separated value
	// arrives as a single element.
	mainConfig.Server.CORSAllowedOrigins = splitList(mainConfig.Server.CORSAllowedOrigins)

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = serviceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	if mainConfig.Integration.EmailFrom == "" {
		mainConfig.Integration.EmailFrom = "Stint360 <onboarding@resend.dev>"
	}

	return mainConfig, nil
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
