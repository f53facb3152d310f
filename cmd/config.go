package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"jinbbq/internal/adapters/out/postgres/database"
	"jinbbq/internal/adapters/out/rabbitmq"
	"jinbbq/internal/core/domain/model/pricing"
	"jinbbq/internal/jobs"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort    = "8080"
	defaultTaxRate     = "0.10"
	defaultCartIdleTTL = 2 * time.Hour
)

type Config struct {
	HTTPPort                      string
	DBHost                        string
	DBPort                        string
	DBUser                        string
	DBPassword                    string
	DBName                        string
	DBSslMode                     string
	JWTSecret                     string
	TaxRate                       pricing.TaxRate
	EnforceRequiredCustomizations bool
	CartIdleTTL                   time.Duration
	CartSweepSchedule             string
	RabbitMQURL                   string
	RabbitMQOrderChangedQueue     string
	LogLevel                      string
}

// LoadConfig reads the environment, after loading envFile if it exists.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	taxRate, err := pricing.ParseTaxRate(getEnv("TAX_RATE", defaultTaxRate))
	if err != nil {
		return Config{}, fmt.Errorf("TAX_RATE: %w", err)
	}

	enforce, err := strconv.ParseBool(getEnv("ENFORCE_REQUIRED_CUSTOMIZATIONS", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("ENFORCE_REQUIRED_CUSTOMIZATIONS: %w", err)
	}

	idleTTL := defaultCartIdleTTL
	if raw := os.Getenv("CART_IDLE_TTL"); raw != "" {
		if idleTTL, err = time.ParseDuration(raw); err != nil {
			return Config{}, fmt.Errorf("CART_IDLE_TTL: %w", err)
		}
		if idleTTL <= 0 {
			return Config{}, errors.New("CART_IDLE_TTL must be positive")
		}
	}

	return Config{
		HTTPPort:                      getEnv("HTTP_PORT", defaultHTTPPort),
		DBHost:                        os.Getenv("DB_HOST"),
		DBPort:                        os.Getenv("DB_PORT"),
		DBUser:                        os.Getenv("DB_USER"),
		DBPassword:                    os.Getenv("DB_PASSWORD"),
		DBName:                        os.Getenv("DB_NAME"),
		DBSslMode:                     os.Getenv("DB_SSLMODE"),
		JWTSecret:                     os.Getenv("JWT_SECRET"),
		TaxRate:                       taxRate,
		EnforceRequiredCustomizations: enforce,
		CartIdleTTL:                   idleTTL,
		CartSweepSchedule:             getEnv("CART_SWEEP_SCHEDULE", jobs.DefaultCartSweepSchedule),
		RabbitMQURL:                   os.Getenv("RABBITMQ_URL"),
		RabbitMQOrderChangedQueue:     getEnv("RABBITMQ_ORDER_CHANGED_QUEUE", rabbitmq.DefaultQueue),
		LogLevel:                      getEnv("LOG_LEVEL", "info"),
	}, nil
}

func (c Config) Database() database.Config {
	return database.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

func (c Config) RabbitMQ() rabbitmq.Config {
	return rabbitmq.Config{URL: c.RabbitMQURL, Queue: c.RabbitMQOrderChangedQueue}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
