package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout     string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		QueryTimeout    string `yaml:"query_timeout" env:"DB_QUERY_TIMEOUT"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	CORS struct {
		AllowOrigins []string `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS"`
		MaxAge       string   `yaml:"max_age" env:"CORS_MAX_AGE"`
	} `yaml:"cors"`

	Seed struct {
		Enabled         bool   `yaml:"enabled" env:"SEED_ENABLED"`
		AdminName       string `yaml:"admin_name" env:"SEED_ADMIN_NAME"`
		AdminAccount    int64  `yaml:"admin_account" env:"SEED_ADMIN_ACCOUNT"`
		AdminPassword   int64  `yaml:"admin_password" env:"SEED_ADMIN_PASSWORD"`
		AdminDepartment string `yaml:"admin_department" env:"SEED_ADMIN_DEPARTMENT"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a file, an optional .env file and
// environment variables, in that order of precedence (last wins).
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"
	config.Server.ShutdownTimeout = "10s"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "students"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.QueryTimeout = "5s"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.CORS.AllowOrigins = []string{"*"}
	config.CORS.MaxAge = "12h"

	config.Seed.AdminName = "Administrator"
	config.Seed.AdminDepartment = "full_stack"
}

func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database max_open_conns must be positive")
	}

	if config.Database.MaxIdleConns < 0 || config.Database.MaxIdleConns > config.Database.MaxOpenConns {
		return fmt.Errorf("database max_idle_conns must be between 0 and max_open_conns")
	}

	durations := map[string]string{
		"database conn_max_lifetime": config.Database.ConnMaxLifetime,
		"database query_timeout":     config.Database.QueryTimeout,
		"server read_timeout":        config.Server.ReadTimeout,
		"server write_timeout":       config.Server.WriteTimeout,
		"server shutdown_timeout":    config.Server.ShutdownTimeout,
		"cors max_age":               config.CORS.MaxAge,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	if len(config.CORS.AllowOrigins) == 0 {
		return fmt.Errorf("cors allow_origins must list at least one origin")
	}
	for _, origin := range config.CORS.AllowOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("cors origin %q must be \"*\" or start with http:// or https://", origin)
		}
	}

	if config.Seed.Enabled && config.Seed.AdminAccount <= 0 {
		return fmt.Errorf("seed admin_account must be positive when seeding is enabled")
	}

	if config.Seed.Enabled && config.Seed.AdminPassword < 0 {
		return fmt.Errorf("seed admin_password must not be negative")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string. User and
// password are escaped, so credentials may contain URL delimiters.
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, c.Database.Port),
		Path:     "/" + c.Database.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return dsn.String()
}

// IsProduction reports whether the server runs in release mode.
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}

// AllowsAllOrigins reports whether the CORS policy is the wildcard.
func (c *Config) AllowsAllOrigins() bool {
	for _, origin := range c.CORS.AllowOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
