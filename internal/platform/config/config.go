package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"payguard/internal/domain/rules"
)

type Config struct {
	Addr              string
	DatabaseURL       string
	JWTSecret         string
	Environment       string
	AdminEmail        string
	AdminPasswordHash string
	RunMigrations     bool
	MetricsEnabled    bool
	MaxBodyBytes      int64
	ReportDir         string

	// Fallback compliance parameters when a request omits them.
	Defaults rules.Globals
}

func Load() Config {
	return Config{
		Addr:              getEnv("APP_ADDR", ":8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		Environment:       getEnv("APP_ENV", "development"),
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		RunMigrations:     getEnvBool("RUN_MIGRATIONS", true),
		MetricsEnabled:    getEnvBool("METRICS_ENABLED", true),
		MaxBodyBytes:      int64(getEnvInt("MAX_BODY_BYTES", 33554432)),
		ReportDir:         getEnv("REPORT_DIR", "storage/reports"),
		Defaults: rules.Globals{
			MinWage:            getEnvFloat("DEFAULT_MIN_WAGE", rules.DefaultMinWage),
			StateMinWage:       getEnvFloat("DEFAULT_STATE_MIN_WAGE", rules.DefaultStateMinWage),
			PayPeriodsPerYear:  getEnvFloat("DEFAULT_PAY_PERIODS_PER_YEAR", rules.DefaultPayPeriodsPerYear),
			OTDayMax:           getEnvFloat("DEFAULT_OT_DAY_MAX", rules.DefaultOTDayMax),
			OTWeekMax:          getEnvFloat("DEFAULT_OT_WEEK_MAX", rules.DefaultOTWeekMax),
			DTDayMax:           getEnvFloat("DEFAULT_DT_DAY_MAX", rules.DefaultDTDayMax),
			ConsecDaysBeforeOT: getEnvFloat("DEFAULT_CONSEC_DAYS_BEFORE_OT", rules.DefaultConsecDaysBeforeOT),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if c.Environment == "production" {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if strings.TrimSpace(c.AdminPasswordHash) == "" {
			return fmt.Errorf("ADMIN_PASSWORD_HASH must be set in production")
		}
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.Defaults.PayPeriodsPerYear <= 0 {
		return fmt.Errorf("DEFAULT_PAY_PERIODS_PER_YEAR must be positive")
	}
	return nil
}
