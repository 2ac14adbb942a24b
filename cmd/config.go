package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"fleetflow/internal/adapters/out/redisbus"
	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/jobs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	RedisEventStream string

	LicenseSweepSchedule   string
	DriverEligibleStatuses []driver.Status
	LogLevel               slog.Level
}

// LoadConfig reads the configuration from the environment. Values from an
// optional .env file in the working directory fill in unset variables.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	redisDB, err := strconv.Atoi(envOrDefault("REDIS_DB", "0"))
	if err != nil {
		return Config{}, fmt.Errorf("REDIS_DB: %w", err)
	}
	statuses, err := parseDriverStatuses(envOrDefault("DRIVER_ELIGIBLE_STATUSES", driver.Available.String()))
	if err != nil {
		return Config{}, fmt.Errorf("DRIVER_ELIGIBLE_STATUSES: %w", err)
	}
	var level slog.Level
	if err = level.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return Config{
		HTTPPort:               envOrDefault("HTTP_PORT", "8080"),
		DBHost:                 envOrDefault("DB_HOST", "localhost"),
		DBPort:                 envOrDefault("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              envOrDefault("DB_SSLMODE", "disable"),
		RedisAddr:              envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:                redisDB,
		RedisEventStream:       envOrDefault("REDIS_EVENT_STREAM", redisbus.DefaultStream),
		LicenseSweepSchedule:   envOrDefault("LICENSE_SWEEP_SCHEDULE", jobs.DefaultLicenseSweepSchedule),
		DriverEligibleStatuses: statuses,
		LogLevel:               level,
	}, nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func parseDriverStatuses(list string) ([]driver.Status, error) {
	var statuses []driver.Status
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		status, err := driver.ParseStatus(name)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	if len(statuses) == 0 {
		return nil, errors.New("at least one status is required")
	}
	return statuses, nil
}
