package match

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/oggyb/swipe-match/internal/app"
	"github.com/oggyb/swipe-match/internal/cache"
	"github.com/oggyb/swipe-match/internal/config"
	"github.com/oggyb/swipe-match/internal/db"
	"github.com/oggyb/swipe-match/internal/logger"
)

// testEnv is an isolated DB + Redis seeded with the minimal dataset:
//
//	u1 Kelly 30 (seeks 25..35)  u2 Jane 28  u3 Sam 33  u4 Alex 45
//	u1 -> u2 like, u2 -> u1 like (mutual)
//	u3 -> u1 like, u1 -> u3 pass
type testEnv struct {
	db     *gorm.DB
	redis  *miniredis.Miniredis
	appCtx *app.AppContext
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	// In-memory SQLite, one per test
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	dbase, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc:        func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(dbase))
	require.NoError(t, db.SeedMinimalTestData(dbase))

	// Fake Redis
	mr := miniredis.RunT(t)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	cfg.Redis.LikeCountTTL = time.Hour
	cfg.Match.SeekingAgeMin = 18
	cfg.Match.SeekingAgeMax = 50
	cfg.Match.SessionIdleTTL = 30 * time.Minute
	cfg.Match.PageSize = 5

	redisCache := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = redisCache.Close() })

	return &testEnv{
		db:     dbase,
		redis:  mr,
		appCtx: app.New(cfg, dbase, redisCache, logger.Discard()),
	}
}

func (e *testEnv) decide(t *testing.T, decider, target string, liked bool) {
	t.Helper()
	require.NoError(t, e.db.Create(&db.Decision{DeciderID: decider, TargetID: target, Liked: liked}).Error)
}

func (e *testEnv) cachedCount(t *testing.T, profileID string) (string, bool) {
	t.Helper()
	key := e.appCtx.RedisCache.KeyForLikeCount(profileID)
	if !e.redis.Exists(key) {
		return "", false
	}
	v, err := e.redis.Get(key)
	require.NoError(t, err)
	return v, true
}
