package config

import (
	"fmt"

	apperrors "students-api/internal/errors"

	"github.com/spf13/viper"
)

const defaultSessionSecret = "dev"

// catalogueSize is the number of courses the built-in course catalogue holds.
const catalogueSize = 10

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Secret used to sign sessions
	SessionSecret string `mapstructure:"SESSION_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`

	// Seed configuration
	SeedOnStart    bool   `mapstructure:"SEED_ON_START"`
	SeedStudents   int    `mapstructure:"SEED_STUDENTS"`
	SeedGroups     int    `mapstructure:"SEED_GROUPS"`
	SeedCourses    int    `mapstructure:"SEED_COURSES"`
	SeedNamesFile  string `mapstructure:"SEED_NAMES_FILE"`
	SeedRandomSeed uint64 `mapstructure:"SEED_RANDOM_SEED"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "fox")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "students")
	v.SetDefault("DB_SSL_MODE", "disable")

	v.SetDefault("SESSION_SECRET", defaultSessionSecret)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	v.SetDefault("METRICS_ENABLED", true)

	// Seed defaults
	v.SetDefault("SEED_ON_START", false)
	v.SetDefault("SEED_STUDENTS", 200)
	v.SetDefault("SEED_GROUPS", 10)
	v.SetDefault("SEED_COURSES", catalogueSize)
	v.SetDefault("SEED_NAMES_FILE", "")
	v.SetDefault("SEED_RANDOM_SEED", 0)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.IsProduction() && config.SessionSecret == defaultSessionSecret {
		return apperrors.ErrSessionSecretNotSet
	}

	if config.DatabaseName == "" {
		return apperrors.NewConfigurationError("database name is required")
	}

	if config.SeedStudents <= 0 || config.SeedGroups <= 0 || config.SeedCourses <= 0 {
		return apperrors.NewConfigurationError("seed sizes must be positive")
	}

	// Custom names files bring their own catalogue
	if config.SeedNamesFile == "" && config.SeedCourses > catalogueSize {
		return apperrors.NewConfigurationError(fmt.Sprintf("SEED_COURSES must not exceed %d", catalogueSize))
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
