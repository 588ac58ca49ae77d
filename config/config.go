// Package config provides configuration management for the changelog API.
// It loads values from environment variables, applies stage-specific overrides
// and reports every problem at once instead of failing on the first one.
// The resulting AppConfig is built once at startup and passed explicitly to
// every component; nothing reads the environment after that.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported deployment stages.
const (
	StageLocal      = "local"
	StageStaging    = "staging"
	StageProduction = "production"
)

// DatabaseConfig holds the connection string and pool settings for PostgreSQL.
type DatabaseConfig struct {
	URL            string
	MaxConns       int
	MigrationsPath string
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret  string        // Secret key for signing JWTs
	TokenTTL   time.Duration // Zero means tokens carry no expiry
	BcryptCost int           // Work factor for password hashing
	RateLimit  float64       // Requests per second per client on public auth routes
	RateBurst  int
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port       string // Port for the HTTP server
	TrustProxy bool   // Honour X-Forwarded-For; only safe behind a proxy that overwrites it
}

// LogConfig controls logger construction and request logging.
type LogConfig struct {
	Level    string
	Requests bool // log one line per request
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Stage  string
	DB     *DatabaseConfig
	Auth   *AuthConfig
	Server *ServerConfig
	Log    *LogConfig
}

// stageDefaults are used when the corresponding variable is not set.
var stageDefaults = map[string]struct {
	port    string
	logging bool
}{
	StageLocal:      {port: "3001", logging: true},
	StageStaging:    {port: "3001", logging: true},
	StageProduction: {port: "8080", logging: false},
}

// Overrides is the shape of an optional `<stage>.yaml` file. Only the keys
// present in the file replace values loaded from the environment.
type Overrides struct {
	DBURL          *string `yaml:"dbUrl"`
	JWTSecret      *string `yaml:"jwtSecret"`
	Port           *string `yaml:"port"`
	Logging        *bool   `yaml:"logging"`
	LogLevel       *string `yaml:"logLevel"`
	TokenTTL       *string `yaml:"tokenTTL"`
	BcryptCost     *int    `yaml:"bcryptCost"`
	MigrationsPath *string `yaml:"migrationsPath"`
}

// Helper function to get an optional environment variable with a default string value.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// Helper function to get an optional environment variable parsed as an int.
func getOptionalEnvInt(key string, defaultValue int, errs *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

// Helper function to get an optional environment variable parsed as a float.
func getOptionalEnvFloat(key string, defaultValue float64, errs *[]string) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected number, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return v
}

// Helper function to get an optional environment variable parsed as a bool.
func getOptionalEnvBool(key string, defaultValue bool, errs *[]string) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected boolean, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return v
}

// Helper function to get an optional environment variable parsed as time.Duration.
// `time.ParseDuration` expects a string like "15m", "1h30s".
func getOptionalEnvDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return d
}

// clampMaxConns keeps the pool size between 1 and 100, noting any adjustment.
func clampMaxConns(size int, errs *[]string) int {
	if size < 1 {
		*errs = append(*errs, fmt.Sprintf("DB_MAX_CONNS (%d) must be at least 1", size))
		return 1
	}
	if size > 100 {
		*errs = append(*errs, fmt.Sprintf("DB_MAX_CONNS (%d) is greater than maximum 100", size))
		return 100
	}
	return size
}

// LoadConfig creates and returns an AppConfig by reading and validating
// environment variables, then merging `<CONFIG_DIR>/<stage>.yaml` over them
// when that file exists.
func LoadConfig() (*AppConfig, error) {
	var errs []string

	stage := strings.ToLower(getOptionalEnv("STAGE", StageLocal))
	defaults, known := stageDefaults[stage]
	if !known {
		errs = append(errs, fmt.Sprintf("unknown STAGE %q: expected one of local, staging, production", stage))
		defaults = stageDefaults[StageLocal]
	}

	cfg := &AppConfig{
		Stage: stage,
		DB: &DatabaseConfig{
			URL:            os.Getenv("DATABASE_URL"),
			MaxConns:       getOptionalEnvInt("DB_MAX_CONNS", 10, &errs),
			MigrationsPath: getOptionalEnv("MIGRATIONS_PATH", "./migrations"),
		},
		Auth: &AuthConfig{
			JWTSecret:  os.Getenv("JWT_SECRET"),
			TokenTTL:   getOptionalEnvDuration("JWT_TTL", 0, &errs),
			BcryptCost: getOptionalEnvInt("BCRYPT_COST", 5, &errs),
			RateLimit:  getOptionalEnvFloat("AUTH_RATE_LIMIT", 5, &errs),
			RateBurst:  getOptionalEnvInt("AUTH_RATE_BURST", 10, &errs),
		},
		Server: &ServerConfig{
			Port:       getOptionalEnv("PORT", defaults.port),
			TrustProxy: getOptionalEnvBool("TRUST_PROXY", false, &errs),
		},
		Log: &LogConfig{
			Level:    getOptionalEnv("LOG_LEVEL", "info"),
			Requests: getOptionalEnvBool("LOGGING", defaults.logging, &errs),
		},
	}

	dir := getOptionalEnv("CONFIG_DIR", "./config")
	if err := applyStageFile(cfg, filepath.Join(dir, stage+".yaml"), &errs); err != nil {
		errs = append(errs, err.Error())
	}

	// Required values are checked after the merge so a stage file may supply them.
	if cfg.DB.URL == "" {
		errs = append(errs, "missing required environment variable: DATABASE_URL")
	}
	if cfg.Auth.JWTSecret == "" {
		errs = append(errs, "missing required environment variable: JWT_SECRET")
	}
	cfg.DB.MaxConns = clampMaxConns(cfg.DB.MaxConns, &errs)
	if cfg.Auth.TokenTTL < 0 {
		errs = append(errs, "JWT_TTL must not be negative")
	}
	if cfg.Auth.RateLimit <= 0 || cfg.Auth.RateBurst <= 0 {
		errs = append(errs, "AUTH_RATE_LIMIT and AUTH_RATE_BURST must be positive")
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}
	return cfg, nil
}

// applyStageFile merges the optional stage file into cfg. A missing file is not an error.
func applyStageFile(cfg *AppConfig, path string, errs *[]string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var o Overrides
	if err := yaml.Unmarshal(raw, &o); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if o.DBURL != nil {
		cfg.DB.URL = *o.DBURL
	}
	if o.JWTSecret != nil {
		cfg.Auth.JWTSecret = *o.JWTSecret
	}
	if o.Port != nil {
		cfg.Server.Port = *o.Port
	}
	if o.Logging != nil {
		cfg.Log.Requests = *o.Logging
	}
	if o.LogLevel != nil {
		cfg.Log.Level = *o.LogLevel
	}
	if o.BcryptCost != nil {
		cfg.Auth.BcryptCost = *o.BcryptCost
	}
	if o.MigrationsPath != nil {
		cfg.DB.MigrationsPath = *o.MigrationsPath
	}
	if o.TokenTTL != nil {
		d, err := time.ParseDuration(*o.TokenTTL)
		if err != nil {
			*errs = append(*errs, fmt.Sprintf("invalid tokenTTL in %s: %v", path, err))
		} else {
			cfg.Auth.TokenTTL = d
		}
	}
	return nil
}

// IsDev reports whether the stage wants developer-friendly output.
func (c *AppConfig) IsDev() bool {
	return c.Stage == StageLocal
}
