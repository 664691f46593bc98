package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/oggyb/swipe-match/internal/cache"
	"github.com/oggyb/swipe-match/internal/config"
	"github.com/oggyb/swipe-match/internal/repository"
)

// AppContext holds shared dependencies (config, DB, Redis, logger and the
// repositories built on top of them).
type AppContext struct {
	Config     *config.Config
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger

	Profiles  *repository.ProfileRepository
	Decisions *repository.DecisionRepository
}

// New creates a new AppContext. A nil cfg falls back to env defaults.
func New(cfg *config.Config, db *gorm.DB, rdb *cache.RedisCache, logger *slog.Logger) *AppContext {
	if cfg == nil {
		cfg = config.New()
	}
	return &AppContext{
		Config:     cfg,
		DB:         db,
		RedisCache: rdb,
		Logger:     logger,
		Profiles:   repository.NewProfileRepository(db),
		Decisions:  repository.NewDecisionRepository(db),
	}
}
