package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultDBPort         = "5432"
	defaultDBSSLMode      = "disable"
	defaultDBMaxOpenConns = 10
	defaultDBMaxIdleConns = 5
	defaultAppPort        = "5000"
	defaultJWTTTL         = 7 * 24 * time.Hour
	defaultBcryptCost     = 10
	defaultRequestTimeout = 10 * time.Second
	defaultCORSOrigin     = "*"
)

var ErrMissingDBHost = errors.New("DB_HOST is not set")

type Config struct {
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	DBSSLMode      string
	DBMaxOpenConns int
	DBMaxIdleConns int

	AppPort string
	AppEnv  string

	// JWTSecret is optional; login only mints a token when it is set.
	JWTSecret      string
	JWTTTL         time.Duration
	BcryptCost     int
	RequestTimeout time.Duration
	CORSOrigin     string
}

// Load reads the configuration from the environment, after merging an
// optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getEnv("DB_PORT", defaultDBPort),
		DBSSLMode:  getEnv("DB_SSLMODE", defaultDBSSLMode),
		AppPort:    getEnv("APP_PORT", defaultAppPort),
		AppEnv:     os.Getenv("APP_ENV"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		CORSOrigin: getEnv("CORS_ORIGIN", defaultCORSOrigin),
	}

	if cfg.DBHost == "" {
		return nil, ErrMissingDBHost
	}

	var err error
	if cfg.DBMaxOpenConns, err = getInt("DB_MAX_OPEN_CONNS", defaultDBMaxOpenConns); err != nil {
		return nil, err
	}
	if cfg.DBMaxIdleConns, err = getInt("DB_MAX_IDLE_CONNS", defaultDBMaxIdleConns); err != nil {
		return nil, err
	}
	if cfg.BcryptCost, err = getInt("BCRYPT_COST", defaultBcryptCost); err != nil {
		return nil, err
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, cfg.BcryptCost)
	}
	if cfg.JWTTTL, err = getDuration("JWT_TTL", defaultJWTTTL); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", defaultRequestTimeout); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfig is Load for process start: any error is fatal.
func LoadConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Environment variables not loaded properly: %v", err)
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
