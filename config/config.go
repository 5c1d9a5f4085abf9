package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Database holds the postgres connection settings.
type Database struct {
	Host        string `validate:"required"`
	Port        uint64 `validate:"required,gt=0,lt=65536"`
	User        string `validate:"required"`
	Password    string
	Name        string `validate:"required"`
	SSLMode     string `validate:"required,oneof=disable require verify-ca verify-full"`
	AutoMigrate bool
	Seed        bool
}

func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type Settings struct {
	Port         string `validate:"required,numeric"`
	Env          string `validate:"required,oneof=development production"`
	JWTSecret    string `validate:"required"`
	CorsOrigins  string
	Timezone     string `validate:"required"`
	QueryTimeout time.Duration
	DB           Database

	Location *time.Location `validate:"-"`
}

func (s Settings) IsProduction() bool {
	return s.Env == "production"
}

var validate = validator.New()

// Load reads every setting the service needs and validates it.
func Load() (Settings, error) {
	_ = godotenv.Load(".env")

	settings := Settings{
		Port:        getOrDefault("APP_PORT", "8002"),
		Env:         getOrDefault("APP_ENV", "development"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CorsOrigins: getOrDefault("CORS_ORIGINS", "http://localhost:5173"),
		Timezone:    getOrDefault("APP_TIMEZONE", "Asia/Ho_Chi_Minh"),
		DB: Database{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getOrDefault("DB_SSLMODE", "disable"),
		},
	}

	port, err := strconv.ParseUint(getOrDefault("DB_PORT", "5432"), 10, 32)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse database port: %w", err)
	}
	settings.DB.Port = port

	if settings.DB.AutoMigrate, err = parseBool("DB_AUTO_MIGRATE"); err != nil {
		return Settings{}, err
	}
	if settings.DB.Seed, err = parseBool("DB_SEED"); err != nil {
		return Settings{}, err
	}

	settings.QueryTimeout, err = time.ParseDuration(getOrDefault("QUERY_TIMEOUT", "10s"))
	if err != nil {
		return Settings{}, fmt.Errorf("invalid QUERY_TIMEOUT: %w", err)
	}

	if err := validate.Struct(settings); err != nil {
		return Settings{}, fmt.Errorf("invalid configuration: %w", err)
	}

	settings.Location, err = time.LoadLocation(settings.Timezone)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid APP_TIMEZONE %q: %w", settings.Timezone, err)
	}

	return settings, nil
}

func getOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseBool(key string) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
