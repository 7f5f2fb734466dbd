package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the development fallback secret. Production refuses it.
const DefaultJWTSecret = "default_secret"

// Config holds all configuration for the application
type Config struct {
	AppMode   string
	Port      string
	Database  DatabaseConfig
	JWT       JWTConfig
	Library   LibraryConfig
	Seed      SeedConfig
	RateLimit RateLimitConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime int // minutes
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// LibraryConfig holds lending rules
type LibraryConfig struct {
	LoanPeriodDays int
	FeePerDay      float64
	Currency       string
	OverdueCron    string
}

// SeedConfig holds the optional bootstrap admin account
type SeedConfig struct {
	AdminUsername string
	AdminPassword string
	AdminEmail    string
}

// RateLimitConfig holds limiter ceilings per minute. Zero disables a limiter.
type RateLimitConfig struct {
	General int
	Auth    int
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	config, err := FromEnv()
	if err != nil {
		return nil, err
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", config.AppMode)
	return config, nil
}

// FromEnv builds the configuration from the process environment only
func FromEnv() (*Config, error) {
	// Trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:   appMode,
		Port:      getEnv("PORT", "3000"),
		Database:  loadDatabaseConfig(appMode),
		JWT:       loadJWTConfig(appMode),
		Library:   loadLibraryConfig(),
		Seed:      loadSeedConfig(),
		RateLimit: loadRateLimitConfig(),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("invalid DB_DRIVER: '%s' (must be 'mysql' or 'postgres')", c.Database.Driver)
	}
	if c.IsProd() && c.JWT.Secret == DefaultJWTSecret {
		return fmt.Errorf("PROD_JWT_SECRET must be set in production")
	}
	if c.Library.LoanPeriodDays <= 0 {
		return fmt.Errorf("LOAN_PERIOD_DAYS must be positive, got %d", c.Library.LoanPeriodDays)
	}
	if c.Library.FeePerDay < 0 {
		return fmt.Errorf("FEE_PER_DAY cannot be negative, got %v", c.Library.FeePerDay)
	}
	return nil
}

func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := modePrefix(mode)

	driver := strings.ToLower(getEnv(prefix+"DB_DRIVER", "mysql"))
	defaultPort := "3306"
	if driver == "postgres" {
		defaultPort = "5432"
	}

	return DatabaseConfig{
		Driver:          driver,
		Host:            getEnv(prefix+"DB_HOST", "localhost"),
		Port:            getEnv(prefix+"DB_PORT", defaultPort),
		User:            getEnv(prefix+"DB_USER", "root"),
		Password:        getEnv(prefix+"DB_PASS", ""),
		DBName:          getEnv(prefix+"DB_NAME", "library"),
		SSLMode:         getEnv(prefix+"DB_SSLMODE", "disable"),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 10),
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 100),
		ConnMaxLifetime: getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 60),
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := modePrefix(mode)

	return JWTConfig{
		Secret:   getEnv(prefix+"JWT_SECRET", DefaultJWTSecret),
		Issuer:   getEnv("JWT_ISSUER", "library-api"),
		Audience: getEnv("JWT_AUDIENCE", "library-clients"),
	}
}

func loadLibraryConfig() LibraryConfig {
	fee, err := strconv.ParseFloat(getEnv("FEE_PER_DAY", "100"), 64)
	if err != nil {
		fee = 100
	}

	return LibraryConfig{
		LoanPeriodDays: getEnvInt("LOAN_PERIOD_DAYS", 14),
		FeePerDay:      fee,
		Currency:       getEnv("FEE_CURRENCY", "NGN"),
		OverdueCron:    getEnv("OVERDUE_CRON", "30 8 * * *"),
	}
}

func loadSeedConfig() SeedConfig {
	return SeedConfig{
		AdminUsername: getEnv("SEED_ADMIN_USERNAME", ""),
		AdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		AdminEmail:    getEnv("SEED_ADMIN_EMAIL", ""),
	}
}

func loadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		General: getEnvInt("RATE_LIMIT_MAX", 100),
		Auth:    getEnvInt("AUTH_RATE_LIMIT_MAX", 5),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return n
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		return "*"
	}
	return origins
}
