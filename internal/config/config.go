package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported database drivers
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"PORT" validate:"required"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout     string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER" validate:"oneof=mongo postgres"`
		URI             string `yaml:"uri" env:"MONGO_URI"`
		Name            string `yaml:"name" env:"MONGO_DB_NAME"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" validate:"gte=0"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" validate:"gte=1"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		QueryTimeout    string `yaml:"query_timeout" env:"DB_QUERY_TIMEOUT"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
	} `yaml:"database"`

	Currency struct {
		BaseURL      string   `yaml:"base_url" env:"CURRENCY_API_URL" validate:"required,url"`
		APIKey       string   `yaml:"api_key" env:"CURRENCY_API_KEY"`
		BaseCurrency string   `yaml:"base_currency" env:"CURRENCY_BASE" validate:"required,len=3"`
		Currencies   []string `yaml:"currencies" env:"CURRENCY_LIST"`
		Timeout      string   `yaml:"timeout" env:"CURRENCY_TIMEOUT"`
		MaxAttempts  int      `yaml:"max_attempts" env:"CURRENCY_MAX_ATTEMPTS" validate:"gte=1,lte=10"`
		CacheTTL     string   `yaml:"cache_ttl" env:"CURRENCY_CACHE_TTL"`
		Required     bool     `yaml:"required" env:"CURRENCY_REQUIRED"`
	} `yaml:"currency"`

	Redis struct {
		Enabled  bool   `yaml:"enabled" env:"REDIS_ENABLED"`
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
	} `yaml:"redis"`

	CORS struct {
		AllowOrigins []string `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS"`
	} `yaml:"cors"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Seed struct {
		Enabled bool `yaml:"enabled" env:"SEED_ENABLED"`
	} `yaml:"seed"`
}

var validate = validator.New()

// LoadConfig loads configuration from a file, an optional .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// A missing .env file is fine, variables may come from the real environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	// Override with environment variables
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
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "15s"
	config.Server.ShutdownTimeout = "10s"

	// Database defaults
	config.Database.Driver = DriverMongo
	config.Database.URI = "mongodb://localhost:27017"
	config.Database.Name = "colleges"
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "colleges"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"
	config.Database.QueryTimeout = "10s"
	config.Database.MigrationsDir = "migrations"

	// Currency defaults
	config.Currency.BaseURL = "https://api.freecurrencyapi.com/v1"
	config.Currency.BaseCurrency = "INR"
	config.Currency.Timeout = "5s"
	config.Currency.MaxAttempts = 2
	config.Currency.CacheTTL = "1h"
	config.Currency.Required = true

	// Redis defaults
	config.Redis.Addr = "localhost:6379"

	config.CORS.AllowOrigins = []string{"*"}

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if err := validate.Struct(config); err != nil {
		return err
	}

	switch config.Database.Driver {
	case DriverMongo:
		if config.Database.URI == "" {
			return fmt.Errorf("mongo uri is required")
		}
		if config.Database.Name == "" {
			return fmt.Errorf("mongo database name is required")
		}
	case DriverPostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
	}

	if config.Redis.Enabled && config.Redis.Addr == "" {
		return fmt.Errorf("redis addr is required when redis is enabled")
	}

	durations := map[string]string{
		"server read timeout":     config.Server.ReadTimeout,
		"server write timeout":    config.Server.WriteTimeout,
		"server shutdown timeout": config.Server.ShutdownTimeout,
		"database query timeout":  config.Database.QueryTimeout,
		"database conn lifetime":  config.Database.ConnMaxLifetime,
		"currency timeout":        config.Currency.Timeout,
		"currency cache ttl":      config.Currency.CacheTTL,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}
