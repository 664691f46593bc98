package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App struct {
		ENV string
	}

	Log struct {
		Level     string
		Format    string
		Component string
		Source    bool
	}

	DB struct {
		DSN      string
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	Redis struct {
		Addr         string
		Password     string
		DB           int
		LikeCountTTL time.Duration

		// Consecutive failures that open the breaker, and how long it stays open.
		BreakerFailures int
		BreakerTimeout  time.Duration
	}

	GRPC struct {
		Host string
		Port string
	}

	// Metrics.Addr serves /metrics; empty disables it.
	Metrics struct {
		Addr string
	}

	// Match holds the swipe engine defaults.
	Match struct {
		SeekingAgeMin  int
		SeekingAgeMax  int
		SessionIdleTTL time.Duration
		PageSize       int
	}
}

func New() *Config {
	cfg := &Config{}

	cfg.App.ENV = getEnvDefault("APP_ENV", "production")

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", "info")
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", "text")
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", "swipe_engine")
	cfg.Log.Source = isTruthy(os.Getenv("LOG_SOURCE"))

	// Database
	cfg.DB.DSN = os.Getenv("MYSQL_DSN")
	if cfg.DB.DSN == "" {
		cfg.DB.Host = getEnvDefault("DB_HOST", "localhost")
		cfg.DB.Port = getEnvDefault("DB_PORT", "3306")
		cfg.DB.User = getEnvDefault("DB_USER", "root")
		cfg.DB.Password = getEnvDefault("DB_PASSWORD", "root")
		cfg.DB.Name = getEnvDefault("DB_NAME", "swipematch")

		cfg.DB.DSN = fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name,
		)
	}

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)
	cfg.Redis.LikeCountTTL = getEnvDuration("LIKE_COUNT_TTL", time.Hour)
	cfg.Redis.BreakerFailures = getEnvInt("REDIS_BREAKER_FAILURES", 5)
	if cfg.Redis.BreakerFailures < 1 {
		cfg.Redis.BreakerFailures = 1
	}
	cfg.Redis.BreakerTimeout = getEnvDuration("REDIS_BREAKER_TIMEOUT", 30*time.Second)

	// gRPC
	cfg.GRPC.Host = getEnvDefault("GRPC_HOST", "127.0.0.1")
	cfg.GRPC.Port = getEnvDefault("GRPC_PORT", "50051")

	// Metrics; "off" disables the endpoint
	cfg.Metrics.Addr = getEnvDefault("METRICS_ADDR", "127.0.0.1:9090")
	if strings.EqualFold(cfg.Metrics.Addr, "off") {
		cfg.Metrics.Addr = ""
	}

	// Matching
	cfg.Match.SeekingAgeMin = getEnvInt("SEEKING_AGE_MIN", 18)
	cfg.Match.SeekingAgeMax = getEnvInt("SEEKING_AGE_MAX", 50)
	if cfg.Match.SeekingAgeMax < cfg.Match.SeekingAgeMin {
		cfg.Match.SeekingAgeMax = cfg.Match.SeekingAgeMin
	}
	cfg.Match.SessionIdleTTL = getEnvDuration("SESSION_IDLE_TTL", 30*time.Minute)
	cfg.Match.PageSize = getEnvInt("LIKED_YOU_PAGE_SIZE", 5)

	return cfg
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if n, err := strconv.Atoi(getEnvDefault(k, "")); err == nil {
		return n
	}
	return def
}

func getEnvDuration(k string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnvDefault(k, "")); err == nil && d > 0 {
		return d
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
