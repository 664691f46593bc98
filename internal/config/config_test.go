package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("MYSQL_DSN", "")
	t.Setenv("SEEKING_AGE_MIN", "")
	t.Setenv("SEEKING_AGE_MAX", "")

	cfg := New()

	assert.Equal(t, 18, cfg.Match.SeekingAgeMin)
	assert.Equal(t, 50, cfg.Match.SeekingAgeMax)
	assert.Equal(t, 30*time.Minute, cfg.Match.SessionIdleTTL)
	assert.Equal(t, time.Hour, cfg.Redis.LikeCountTTL)
	assert.Equal(t, 5, cfg.Redis.BreakerFailures)
	assert.Equal(t, 30*time.Second, cfg.Redis.BreakerTimeout)
	assert.Contains(t, cfg.DB.DSN, "@tcp(localhost:3306)/swipematch")
}

func TestNew_Metrics(t *testing.T) {
	t.Setenv("METRICS_ADDR", "")
	assert.Equal(t, "127.0.0.1:9090", New().Metrics.Addr)

	t.Setenv("METRICS_ADDR", "OFF")
	assert.Empty(t, New().Metrics.Addr)
}

func TestNew_MatchOverrides(t *testing.T) {
	t.Setenv("SEEKING_AGE_MIN", "30")
	t.Setenv("SEEKING_AGE_MAX", "25")
	t.Setenv("SESSION_IDLE_TTL", "5m")
	t.Setenv("LOG_SOURCE", "yes")

	cfg := New()

	assert.Equal(t, 30, cfg.Match.SeekingAgeMin)
	assert.Equal(t, 30, cfg.Match.SeekingAgeMax, "max is raised to min")
	assert.Equal(t, 5*time.Minute, cfg.Match.SessionIdleTTL)
	assert.True(t, cfg.Log.Source)
}

func TestNew_BadValuesFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "nope")
	t.Setenv("LIKE_COUNT_TTL", "-1s")
	t.Setenv("REDIS_BREAKER_FAILURES", "0")

	cfg := New()
	assert.Equal(t, 1, cfg.Redis.BreakerFailures)

	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, time.Hour, cfg.Redis.LikeCountTTL)
}
